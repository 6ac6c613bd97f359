package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Server configuration
	AppPort string `yaml:"APP_PORT"`

	// External recipe API; empty means the built-in TheMealDB URL
	MealDBBaseURL string `yaml:"MEALDB_BASE_URL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Mirror keys that should also be reachable via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		if config.JWTSecret == "" {
			return os.Getenv("JWT_SECRET")
		}
		return config.JWTSecret
	case "APP_PORT":
		return config.AppPort
	case "MEALDB_BASE_URL":
		if config.MealDBBaseURL == "" {
			return os.Getenv("MEALDB_BASE_URL")
		}
		return config.MealDBBaseURL
	default:
		return ""
	}
}
