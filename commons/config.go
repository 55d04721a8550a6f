// SPDX-License-Identifier: GPL-3.0-only

package commons

import "strings"

// Config is the process configuration, read from the environment.
type Config struct {
	StoreBackend      string
	StorePath         string
	DBPath            string
	PostgresDSN       string
	MySQLDSN          string
	RecipientProfile  string
	FingerprintScheme string
	MaxMessages       int
	Username          string
	Password          string
	Sender            string
	JWTSecret         string
	AMQPURL           string
	AMQPExchange      string
	Port              string
}

func LoadConfig() Config {
	port := GetEnv("PORT", ":8080")
	if port[0] != ':' {
		port = ":" + port
	}
	return Config{
		StoreBackend:      strings.ToLower(GetEnv("STORE_BACKEND", "json")),
		StorePath:         GetEnv("STORE_PATH", "storedMessages.json"),
		DBPath:            GetEnv("DB_PATH", "quickchat.db"),
		PostgresDSN:       GetEnv("POSTGRES_DSN"),
		MySQLDSN:          GetEnv("MYSQL_DSN"),
		RecipientProfile:  strings.ToLower(GetEnv("RECIPIENT_PROFILE", "international")),
		FingerprintScheme: strings.ToLower(GetEnv("FINGERPRINT_SCHEME", "words")),
		MaxMessages:       GetEnvInt("MAX_MESSAGES", 10),
		Username:          GetEnv("APP_USERNAME", "nate_"),
		Password:          GetEnv("APP_PASSWORD"),
		Sender:            GetEnv("APP_SENDER"),
		JWTSecret:         GetEnv("JWT_SECRET"),
		AMQPURL:           GetEnv("AMQP_URL"),
		AMQPExchange:      GetEnv("AMQP_EXCHANGE", "quickchat"),
		Port:              port,
	}
}
