package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinTokenDuration = 24 * time.Hour
	MaxTokenDuration = 7 * 24 * time.Hour
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string

	BlogsTable     string
	MigrationsPath string
}

type Server struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string
}

type Logging struct {
	Level  string
	Format string
}

type Config struct {
	Server        Server
	DB            DB
	Logging       Logging
	JWTSecretKey  string
	TokenDuration time.Duration
	BcryptCost    int
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue string) []string {
	var list []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

// clampTokenDuration keeps session tokens between one day and one week.
func clampTokenDuration(d time.Duration) time.Duration {
	if d < MinTokenDuration {
		return MinTokenDuration
	}
	if d > MaxTokenDuration {
		return MaxTokenDuration
	}
	return d
}

func LoadDB() DB {
	return DB{
		DbHOST:         getEnv("DB_HOST", "localhost"),
		DbPORT:         getEnv("DB_PORT", "5432"),
		DbUSER:         getEnv("DB_USER", "postgres"),
		DbPASSWORD:     getEnv("DB_PASSWORD", "password"),
		DbNAME:         getEnv("DB_NAME", "blog"),
		DbSSLMODE:      getEnv("DB_SSLMODE", "disable"),
		BlogsTable:     getEnv("BLOGS_TABLE", "blogs"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_create_tables.sql"),
	}
}

func LoadServer() Server {
	return Server{
		Port:         getEnvAsInt("SERVER_PORT", 8080),
		ReadTimeout:  parseDuration(getEnv("READ_TIMEOUT", "15s"), 15*time.Second),
		WriteTimeout: parseDuration(getEnv("WRITE_TIMEOUT", "15s"), 15*time.Second),
		IdleTimeout:  parseDuration(getEnv("IDLE_TIMEOUT", "60s"), 60*time.Second),
		CORSOrigins:  getEnvAsList("CORS_ORIGINS", "http://localhost:5173,http://localhost:5174"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		Server: LoadServer(),
		DB:     LoadDB(),
		Logging: Logging{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
		JWTSecretKey:  getEnv("JWT_SECRET_KEY", ""),
		TokenDuration: clampTokenDuration(parseDuration(getEnv("TOKEN_DURATION", "24h"), MinTokenDuration)),
		BcryptCost:    getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}
