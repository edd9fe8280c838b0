package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	MongoURI          string
	DatabaseName      string
	AccessTokenSecret string
	PaymentSecretKey  string
	Origin            string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	Timeout           time.Duration
}

func LoadConfig() (Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("loading .env file: %w", err)
	}

	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.vuuhbip.mongodb.net/?retryWrites=true&w=majority",
			os.Getenv("DB_USER"), os.Getenv("DB_PASS"),
		)
	}

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return Config{
		Port:              getEnv("PORT", "5000"),
		MongoURI:          uri,
		DatabaseName:      getEnv("DATABASE_NAME", "sportsDB"),
		AccessTokenSecret: secret,
		PaymentSecretKey:  os.Getenv("PAYMENT_SECRET_KEY"),
		Origin:            getEnv("ORIGIN", "*"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          smtpPort,
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		Timeout:           10 * time.Second,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
