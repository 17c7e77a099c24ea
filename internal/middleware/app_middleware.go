package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Cors: origins dipisah koma, "*" untuk semua (tanpa credentials).
func Cors(origins string) fiber.Handler {
	origins = strings.TrimSpace(origins)
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Disposition",
		AllowCredentials: origins != "*",
	})
}

// Logger mencatat semua request dengan jam WIB.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}

// Recovery menangkap panic dan mengembalikan error 500.
func Recovery() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
	})
}

func rateLimit(max int, exp time.Duration, msg string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: exp,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return deny(c, fiber.StatusTooManyRequests, msg)
		},
	})
}

// Rate limiter untuk login (lebih ketat)
func LoginRateLimiter() fiber.Handler {
	return rateLimit(10, time.Minute, "Terlalu banyak percobaan login. Coba beberapa saat lagi.")
}

func RegisterRateLimiter() fiber.Handler {
	return rateLimit(5, 5*time.Minute, "Terlalu banyak percobaan pendaftaran. Tunggu beberapa menit ya.")
}
