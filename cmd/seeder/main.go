package main

import (
	"fmt"
	"log"

	"magang-backend/config"
	"magang-backend/internal/database"

	"github.com/joho/godotenv"
)

// Seeder dijalankan terpisah dari API: go run ./cmd/seeder
func main() {
	fmt.Println("1. Memulai seeder... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	cfg := config.Load()

	fmt.Printf("2. Mencoba koneksi ke Database %s...\n", cfg.DBName)
	db := config.ConnectDB(cfg)

	fmt.Println("3. Database terhubung, tabel sudah dimigrasi. Mengisi lokasi kantor dan akun bawaan...")
	if err := database.SeedAll(db); err != nil {
		log.Fatalf("Seeding gagal: %v", err)
	}

	fmt.Println("4. Seeding selesai! Akun yang bisa dipakai login:")
	fmt.Printf("   admin   : %s\n", database.AdminEmail)
	fmt.Printf("   peserta : %s\n", database.PesertaEmail)
	fmt.Println("   Password bawaan ada di internal/database/seeder.go, ganti sebelum production.")
}
