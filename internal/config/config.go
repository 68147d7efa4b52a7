package config

import "os"

// Config holds all runtime configuration, read from environment variables.
// DatabaseURL is optional: when empty the server runs on the in-memory store.
type Config struct {
	Port        string
	DatabaseURL string
	CarsFile    string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	SendgridAPIKey    string
	SendgridFromEmail string
	OpsNotifyEmail    string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	OpsNotifyPhone   string

	UtilizationCron string
}

// Load reads the configuration from the environment. Optional values fall
// back to defaults; nothing here is fatal so tests can construct a Config
// directly.
func Load() Config {
	return Config{
		Port:              getenv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		CarsFile:          getenv("CARS_FILE", "data/cars.json"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SendgridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendgridFromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		OpsNotifyEmail:    os.Getenv("OPS_NOTIFY_EMAIL"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:  os.Getenv("TWILIO_FROM_NUMBER"),
		OpsNotifyPhone:    os.Getenv("OPS_NOTIFY_PHONE"),
		UtilizationCron:   getenv("UTILIZATION_CRON", "0 7 * * *"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
