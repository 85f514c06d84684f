package config

import (
	"os"
)

// Config is the process configuration, read once at startup. A .env
// file is honored through godotenv/autoload in main.
type Config struct {
	Port                   string
	AWSRegion              string
	DynamoDBEndpoint       string
	RentalsTable           string
	RentalsGSI1            string
	MercadoPagoAccessToken string
	DefaultPhoneRegion     string
}

func Load() Config {
	return Config{
		Port:                   getenvDefault("PORT", "8080"),
		AWSRegion:              getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		RentalsTable:           getenvDefault("RENTALS_TABLE", "rentals"),
		RentalsGSI1:            getenvDefault("RENTALS_GSI1", "gsi1"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		DefaultPhoneRegion:     getenvDefault("DEFAULT_PHONE_REGION", "BR"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
