package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/swift-aid/admin-console/logging"
)

// Config holds the project config values
type Config struct {
	Environment string
	APIBaseURL  string
	ProxyPort   string
	MapboxToken string
	SessionFile string
}

// New sets up all config related services
func New() *Config {

	// .env is optional, production environments set real env vars
	_ = godotenv.Load()

	environment := getEnv("ENVIRONMENT", "development")

	//setup zap logger and replace default logger
	_ = zap.ReplaceGlobals(logging.New(environment))

	return &Config{
		Environment: environment,
		APIBaseURL:  getEnv("API_BASE_URL", "https://swift-aid-backend.onrender.com"),
		ProxyPort:   getEnv("PROXY_PORT", "5173"),
		MapboxToken: os.Getenv("MAPBOX_ACCESS_TOKEN"),
		SessionFile: os.Getenv("SESSION_FILE"),
	}

}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
