package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
}

func EnvMongoURI() string {
	if uri := os.Getenv("MONGOURI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

func EnvDatabaseName() string {
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return "ecommerce"
}

func EnvJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func EnvPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "4000"
}

// EnvRabbitMQURL is empty when event publishing is disabled.
func EnvRabbitMQURL() string {
	return os.Getenv("RABBITMQ_URL")
}
