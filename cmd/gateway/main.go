package main

import (
	"fmt"
	"log"

	"magang-backend/config"
	"magang-backend/internal/gateway"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai gateway... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}
	cfg := config.Load()

	app := gateway.New(cfg.BackendURL, cfg.CORSOrigins)

	fmt.Printf("2. Gateway siap di port :%s, meneruskan /api/* ke %s\n", cfg.GatewayPort, cfg.BackendURL)
	if err := app.Listen(":" + cfg.GatewayPort); err != nil {
		log.Fatalf("Gateway berhenti: %v", err)
	}
}
