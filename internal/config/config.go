package config

import (
	"github.com/joho/godotenv"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	dbDriver = env.String("DB_DRIVER", false,
		"sqlite", "Database driver [sqlite, postgres]")
	dbDSN = env.String("DB_DSN", false,
		"catalog.db", "Database connection string")
	uploadPath = env.String("UPLOAD_PATH", false,
		"./static/uploads", "Directory uploaded images are written to")
	publicBaseURL = env.String("PUBLIC_BASE_URL", false,
		"http://localhost:9090", "Externally reachable base URL used in returned image links")
	corsOrigins = env.String("CORS_ALLOWED_ORIGINS", false,
		"*", "Comma-separated list of allowed CORS origins")
)

// StaticPrefix is the path uploaded images are served under. The on-disk
// uploads directory mirrors it.
const StaticPrefix = "/static/uploads"

type Config struct {
	BindAddress   string
	LogLevel      string
	DBDriver      string
	DBDSN         string
	UploadPath    string
	PublicBaseURL string
	CORSOrigins   string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	// .env is a dev convenience; absence is not an error
	godotenv.Load()

	if err := env.Parse(); err != nil {
		return nil, err
	}

	return &Config{
		BindAddress:   *bindAddress,
		LogLevel:      *logLevel,
		DBDriver:      *dbDriver,
		DBDSN:         *dbDSN,
		UploadPath:    *uploadPath,
		PublicBaseURL: *publicBaseURL,
		CORSOrigins:   *corsOrigins,
	}, nil
}
