package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "AWS_REGION", "DYNAMODB_ENDPOINT", "RENTALS_TABLE", "RENTALS_GSI1", "DEFAULT_PHONE_REGION"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Fatalf("AWSRegion = %q, want us-east-1", cfg.AWSRegion)
	}
	if cfg.DynamoDBEndpoint != "" {
		t.Fatalf("DynamoDBEndpoint = %q, want empty", cfg.DynamoDBEndpoint)
	}
	if cfg.RentalsTable != "rentals" {
		t.Fatalf("RentalsTable = %q, want rentals", cfg.RentalsTable)
	}
	if cfg.RentalsGSI1 != "gsi1" {
		t.Fatalf("RentalsGSI1 = %q, want gsi1", cfg.RentalsGSI1)
	}
	if cfg.DefaultPhoneRegion != "BR" {
		t.Fatalf("DefaultPhoneRegion = %q, want BR", cfg.DefaultPhoneRegion)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AWS_REGION", "sa-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("RENTALS_TABLE", "rentals-staging")
	t.Setenv("RENTALS_GSI1", "gsi1-staging")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Fatalf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.AWSRegion != "sa-east-1" {
		t.Fatalf("AWSRegion = %q, want sa-east-1", cfg.AWSRegion)
	}
	if cfg.DynamoDBEndpoint != "http://localhost:8000" {
		t.Fatalf("DynamoDBEndpoint = %q, want the local endpoint", cfg.DynamoDBEndpoint)
	}
	if cfg.RentalsTable != "rentals-staging" {
		t.Fatalf("RentalsTable = %q, want rentals-staging", cfg.RentalsTable)
	}
	if cfg.RentalsGSI1 != "gsi1-staging" {
		t.Fatalf("RentalsGSI1 = %q, want gsi1-staging", cfg.RentalsGSI1)
	}
}
