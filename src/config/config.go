package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string

	// Assigned to a called ticket when the caller does not pick a counter or
	// operator explicitly.
	GuichePadraoID    uint = 1
	AtendentePadraoID uint = 1

	SenhaInicialAtendente = "mudar123"
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "painel_senhas")
	ServerPort = getEnv("SERVER_PORT", "5000")

	GuichePadraoID = getEnvUint("GUICHE_PADRAO", 1)
	AtendentePadraoID = getEnvUint("ATENDENTE_PADRAO", 1)
	SenhaInicialAtendente = getEnv("ATENDENTE_SENHA_INICIAL", "mudar123")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvUint(key string, fallback uint) uint {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using %d", key, value, fallback)
		return fallback
	}
	return uint(parsed)
}
