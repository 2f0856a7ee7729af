package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string
	BaseURL string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	RedisAddr string

	JWTSecret     string
	AdminPassword string

	KonnectAPIKey         string
	KonnectReceiverWallet string
	KonnectBaseURL        string
	EURToTNDRate          float64

	GoogleMapsAPIKey string

	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	FromEmail string
}

const (
	konnectSandboxURL    = "https://api.preprod.konnect.network/api/v2"
	konnectProductionURL = "https://api.konnect.network/api/v2"
)

func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("Fichier .env absent, lecture directe des variables d'environnement")
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	baseURL := strings.TrimSpace(os.Getenv("APP_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost" + appAddr
	}

	konnectURL := konnectSandboxURL
	if strings.EqualFold(strings.TrimSpace(os.Getenv("KONNECT_ENV")), "production") {
		konnectURL = konnectProductionURL
	}

	rate := 3.5
	if v := strings.TrimSpace(os.Getenv("EUR_TO_TND_RATE")); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			rate = parsed
		}
	}

	smtpPort := 587
	if v := strings.TrimSpace(os.Getenv("SMTP_PORT")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			smtpPort = parsed
		}
	}

	return Env{
		AppAddr: appAddr,
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),
		BaseURL: baseURL,

		DBUser: getenvDefault("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: getenvDefault("DB_HOST", "127.0.0.1:3306"),
		DBName: getenvDefault("DB_NAME", "navetteclub"),

		RedisAddr: getenvDefault("REDIS_ADDR", "127.0.0.1:6379"),

		JWTSecret:     getenvDefault("JWT_SECRET", "super-secret-key-change-me"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		KonnectAPIKey:         strings.TrimSpace(os.Getenv("KONNECT_API_KEY")),
		KonnectReceiverWallet: strings.TrimSpace(os.Getenv("KONNECT_RECEIVER_WALLET")),
		KonnectBaseURL:        konnectURL,
		EURToTNDRate:          rate,

		GoogleMapsAPIKey: strings.TrimSpace(os.Getenv("GOOGLE_MAPS_API_KEY")),

		SMTPHost:  strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:  smtpPort,
		SMTPUser:  strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass:  os.Getenv("SMTP_PASS"),
		FromEmail: getenvDefault("FROM_EMAIL", "contact@navetteclub.com"),
	}
}

func getenvDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
