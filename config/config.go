package config

import (
	"os"
	"strconv"
	"strings"

	"magang-backend/internal/presensi"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

type Config struct {
	Port string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	JWTSecret   string
	JWTTTLHours int

	UploadDir   string
	MaxUploadMB int

	CORSOrigins string

	Presensi presensi.WindowConfig

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// Dipakai gateway: semua /api/* diteruskan ke sini.
	BackendURL  string
	GatewayPort string
}

// Load membaca semua konfigurasi dari environment. Panggil setelah godotenv.Load().
func Load() Config {
	return Config{
		Port: GetEnv("PORT", "5000"),

		DBUser:     GetEnv("DB_USER", "root"),
		DBPassword: GetEnv("DB_PASSWORD", ""),
		DBHost:     GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:     GetEnv("DB_PORT", "3306"),
		DBName:     GetEnv("DB_NAME", "magang_db"),

		JWTSecret:   GetEnv("JWT_SECRET", "rahasia_negara"),
		JWTTTLHours: GetEnvAsInt("JWT_TTL_HOURS", 24),

		UploadDir:   GetEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadMB: GetEnvAsInt("MAX_UPLOAD_MB", 4),

		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),

		Presensi: presensi.WindowConfig{
			MasukStart:  GetEnv("PRESENSI_MASUK_START", ""),
			MasukEnd:    GetEnv("PRESENSI_MASUK_END", ""),
			KeluarStart: GetEnv("PRESENSI_KELUAR_START", ""),
			KeluarEnd:   GetEnv("PRESENSI_KELUAR_END", ""),
		},

		SMTPHost:     GetEnv("SMTP_HOST", ""),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     GetEnv("SMTP_USER", ""),
		SMTPPassword: GetEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     GetEnv("SMTP_FROM", "no-reply@disdik.go.id"),

		BackendURL:  strings.TrimRight(GetEnv("BACKEND_URL", "http://localhost:5000"), "/"),
		GatewayPort: GetEnv("GATEWAY_PORT", "3000"),
	}
}

// BodyLimit harus muat upload base64 (~4/3 ukuran file) plus field JSON lain.
func (c Config) BodyLimit() int {
	return c.MaxUploadMB*2*1024*1024 + 1024*1024
}
