package config

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config holds everything the application reads from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"pilates"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"pilates-studio-secret-key"`

	// Seed credentials for the built-in administrator and staff accounts.
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"5566442"`
	StaffUsername string `env:"STAFF_USERNAME" envDefault:"monitor"`
	StaffPassword string `env:"STAFF_PASSWORD" envDefault:"monitorpass"`

	// External advisor collaborators (focus tips, image editing).
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	DB *sql.DB `env:"-"`
}

var AppConfig *Config

// Load parses the environment (including a local .env file when present)
// into AppConfig. It does not open the database; call InitDB for that.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal("Failed to parse environment:", err)
	}

	AppConfig = cfg
	return cfg
}

// InitDB opens the Postgres connection pool and verifies it with a ping.
func InitDB() {
	cfg := AppConfig
	if cfg == nil {
		cfg = Load()
	}

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	cfg.DB = db
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
