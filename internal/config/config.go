package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	AdminPassword string
	StrictAmounts bool
}

func Load() Config {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "stock.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./stockledger.log" // default log sink in project root
	}
	pass := os.Getenv("ADMIN_PASSWORD")
	if pass == "" {
		pass = "admin123" // single-user offline default, override in .env
	}
	strict := os.Getenv("STRICT_AMOUNTS") == "true"

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, AdminPassword: pass, StrictAmounts: strict}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s STRICT_AMOUNTS=%v", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.StrictAmounts)
	return cfg
}
