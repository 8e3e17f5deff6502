package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

type Config struct {
	// Server configuration
	Port string `yaml:"PORT"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Open Food Facts configuration
	OpenFoodFactsBaseURL string `yaml:"OPENFOODFACTS_BASE_URL"`

	// USDA FoodData Central configuration
	USDABaseURL string `yaml:"USDA_BASE_URL"`
	USDAAPIKey  string `yaml:"USDA_API_KEY"`

	// Edamam configuration
	EdamamBaseURL string `yaml:"EDAMAM_BASE_URL"`
	EdamamAppID   string `yaml:"EDAMAM_APP_ID"`
	EdamamAppKey  string `yaml:"EDAMAM_APP_KEY"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
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
}

func GetConfig(key string) string {
	switch key {
	case "PORT":
		return config.Port
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
	case "OPENFOODFACTS_BASE_URL":
		return config.OpenFoodFactsBaseURL
	case "USDA_BASE_URL":
		return config.USDABaseURL
	case "USDA_API_KEY":
		return config.USDAAPIKey
	case "EDAMAM_BASE_URL":
		return config.EdamamBaseURL
	case "EDAMAM_APP_ID":
		return config.EdamamAppID
	case "EDAMAM_APP_KEY":
		return config.EdamamAppKey
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
