package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"magang-backend/config"
	"magang-backend/internal/middleware"
	"magang-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	cfg := config.Load()

	fmt.Println("2. Mencoba koneksi ke Database...")
	db := config.ConnectDB(cfg)
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	deps, err := routes.NewDeps(db, cfg)
	if err != nil {
		log.Fatalf("Gagal menyiapkan folder upload %s: %v", cfg.UploadDir, err)
	}

	app := fiber.New(fiber.Config{
		AppName:   "Magang Disdik API",
		BodyLimit: cfg.BodyLimit(),
	})

	// Middleware Global
	app.Use(middleware.Recovery())
	app.Use(middleware.Logger())
	app.Use(middleware.Cors(cfg.CORSOrigins))

	routes.Setup(app, deps)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		fmt.Println("Mematikan server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	fmt.Printf("4. Server siap! Menunggu request di port :%s\n", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server berhenti: %v", err)
	}
}
