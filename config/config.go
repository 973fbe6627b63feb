package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port              string
	DBPath            string
	JWTSecret         string
	JWTExpiryHours    int
	ProductionCSV     string
	ConsumptionCSV    string
	EstablishmentXLSX string
	AdvisoryDomains   string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	expiry, err := strconv.Atoi(get("JWT_EXPIRY_HOURS", "72"))
	if err != nil || expiry <= 0 {
		expiry = 72
	}
	cfg := AppConfig{
		Port:              get("PORT", "8080"),
		DBPath:            get("DB_PATH", "hinga.db"),
		JWTSecret:         get("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiryHours:    expiry,
		ProductionCSV:     get("PRODUCTION_CSV", "./data/production_by_district_crop_season.csv"),
		ConsumptionCSV:    get("CONSUMPTION_CSV", "./data/consumption_by_district_crop.csv"),
		EstablishmentXLSX: get("ESTABLISHMENT_XLSX", "./data/establishment_census.xlsx"),
		AdvisoryDomains:   get("ADVISORY_ALLOWED_DOMAINS", ""),
	}
	log.Printf("[cfg] port=%s db=%s datasets=[%s %s %s]", cfg.Port, cfg.DBPath, cfg.ProductionCSV, cfg.ConsumptionCSV, cfg.EstablishmentXLSX)
	return cfg
}
