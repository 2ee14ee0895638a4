package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DB        *sql.DB
	JWTSecret string
	Port      string
}

var AppConfig *Config

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB loads the environment and opens the PostgreSQL connection pool.
func InitDB() {
	// .env is optional; real deployments set the variables directly
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using process environment")
	}

	host := getEnv("DB_HOST", "localhost")
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		logrus.Fatalf("Invalid DB_PORT: %v", err)
	}
	user := getEnv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getEnv("DB_NAME", "erp")
	sslmode := getEnv("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s connect_timeout=60",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		logrus.Fatalf("Failed to open database connection: %v", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		logrus.WithFields(logrus.Fields{"host": host, "port": port, "dbname": dbname}).
			Errorf("Database connection failed: %v", err)
		logrus.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB:        db,
		JWTSecret: getEnv("JWT_SECRET", "erp-neitem-dev-secret"),
		Port:      getEnv("PORT", "3000"),
	}
	logrus.Info("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
