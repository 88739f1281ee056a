package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv           string
	Port             string
	LogLevel         string
	CatalogFile      string
	PriceMarkup      float64
	PageSize         int
	VendorName       string
	VendorPhoneLocal string
	VendorPhoneIntl  string
	VendorEmail      string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	markup, _ := strconv.ParseFloat(os.Getenv("PRICE_MARKUP"), 64)
	if markup == 0 {
		markup = 5000
	}

	pageSize, _ := strconv.Atoi(os.Getenv("PAGE_SIZE"))
	if pageSize < 1 {
		pageSize = 9
	}

	AppConfig = &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("APP_PORT", getEnv("PORT", "8082")),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CatalogFile:      getEnv("CATALOG_FILE", "data/watches.json"),
		PriceMarkup:      markup,
		PageSize:         pageSize,
		VendorName:       getEnv("VENDOR_NAME", "Samson"),
		VendorPhoneLocal: getEnv("VENDOR_PHONE_LOCAL", "07069761167"),
		VendorPhoneIntl:  getEnv("VENDOR_PHONE_INTL", "+2347069761167"),
		VendorEmail:      getEnv("VENDOR_EMAIL", "otalorsamson50@gmail.com"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
