package cmd

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every environment-driven setting. Values come from a
// .env file when present, then the process environment, then the default.
type Config struct {
	// StatusDelay is the fixed interval between order status transitions.
	StatusDelay time.Duration

	// NominatimURL and OSRMURL are the base URLs of the geocoding and
	// routing services used for delivery time estimates.
	NominatimURL string
	OSRMURL      string

	// ShopLat and ShopLon are the fixed coordinates of the shop, the
	// origin of every delivery route.
	ShopLat string
	ShopLon string

	// HTTPTimeout bounds every outgoing estimate request.
	HTTPTimeout time.Duration

	// KitchenReportSpec is the cron spec (with seconds) of the periodic
	// open-orders report.
	KitchenReportSpec string
}

// GetConfigs loads the configuration. A missing .env file is fine; every
// setting has a default suitable for local runs.
func GetConfigs() Config {
	_ = godotenv.Load(".env")

	return Config{
		StatusDelay:       getEnvDuration("STATUS_DELAY", 10*time.Second),
		NominatimURL:      getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		OSRMURL:           getEnv("OSRM_URL", "https://router.project-osrm.org"),
		ShopLat:           getEnv("SHOP_LAT", "6.9388614"),
		ShopLon:           getEnv("SHOP_LON", "79.8542005"),
		HTTPTimeout:       getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
		KitchenReportSpec: getEnv("KITCHEN_REPORT_SPEC", "*/30 * * * * *"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
