package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of a required environment variable. A .env file in
// the working directory is loaded first when present.
func Config(envVar string) string {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	envVarValue := os.Getenv(envVar)
	if envVarValue == "" {
		fmt.Fprintf(os.Stderr, "%s not set\n", envVar)
		os.Exit(1)
	}

	return envVarValue
}

// ConfigDefault is like Config but falls back instead of exiting.
func ConfigDefault(envVar, fallback string) string {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	if envVarValue := os.Getenv(envVar); envVarValue != "" {
		return envVarValue
	}

	return fallback
}
