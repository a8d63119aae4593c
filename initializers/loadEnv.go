package initializers

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if _, ok := os.LookupEnv("DB_DSN"); !ok {
			log.Println("No .env file found, relying on environment variables.")
		}
	}
}
