package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	MarketApiUrl   string // market feed endpoint (CoinGecko style)
	MarketCurrency string // vs_currency for the ticker
	MarketPerPage  int    // number of coins cached per refresh
	MarketCronSpec string // refresh schedule for the market cache

	VaultAddress string // deposit vault address shown to users
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "nexus"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		MarketApiUrl:   getEnv("MARKET_API_URL", "https://api.coingecko.com/api/v3/coins/markets"),
		MarketCurrency: getEnv("MARKET_CURRENCY", "try"),
		MarketPerPage:  getEnvInt("MARKET_PER_PAGE", 10),
		MarketCronSpec: getEnv("MARKET_CRON_SPEC", "@every 5m"),

		VaultAddress: getEnv("VAULT_ADDRESS", "TANoL7ZN21jrBSkKLhPuLZqurNxkX1giTv"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
