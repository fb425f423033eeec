package config

import (
	"os"
	"strings"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr          string
	Env           string
	CatalogDriver string
	DatabaseURL   string
	MongoURI      string
	DBName        string
	JWTSecret     string
	EnsureSchema  bool
}

// Load reads configuration from environment variables.
func Load() Config {
	addr := os.Getenv("CAPTION_ADDR")
	if addr == "" {
		addr = ":3000"
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		}
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "products"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	mongoURI := os.Getenv("MONGODB_URI")
	driver := strings.ToLower(os.Getenv("CATALOG_DRIVER"))
	if driver == "" {
		driver = DriverPostgres
		if mongoURI != "" {
			driver = DriverMongo
		}
	}

	return Config{
		Addr:          addr,
		Env:           env,
		CatalogDriver: driver,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoURI:      mongoURI,
		DBName:        dbName,
		JWTSecret:     os.Getenv("JWT_SECRET"),
		EnsureSchema:  os.Getenv("CATALOG_ENSURE_SCHEMA") == "1",
	}
}
