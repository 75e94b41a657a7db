package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings the application needs to run.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"` // seeds reference data and the superadmin account
	Address               string `env:"ADDRESS" envDefault:":8080"`
	JwtSecret             string `env:"JWT_SECRET,required"`
	JwtExpiryHours        int    `env:"JWT_EXPIRY_HOURS" envDefault:"24"`
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"` // comma separated, * = all
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"`
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"` // 0 disables rate limiting
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	// SMTP for password reset mails
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"noreply@leoni.com"`

	// Superadmin bootstrap account (INITMODE only)
	SuperadminEmail    string `env:"SUPERADMIN_EMAIL" envDefault:"superadmin@leoni.com"`
	SuperadminPassword string `env:"SUPERADMIN_PASSWORD"`

	// TLS/HTTPS
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"`
	TLSKeyFile  string `env:"TLS_KEY_FILE"`
}

// getEnvPath returns the env file path for the current environment,
// walking up from the working directory until config/env is found.
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt here, the logger is not initialized yet
		fmt.Printf("cannot determine working directory: %v\n", err)
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads env files and parses them into a Configuration.
// Explicit paths win; without any, the file for GO_ENV is located by
// walking up to the config/env directory. Returns nil when the file is
// missing or invalid.
func NewConfig(files ...string) *Configuration {
	if len(files) == 0 {
		envPath := getEnvPath()
		if envPath == "" {
			fmt.Printf("config/env directory not found\n")
			return nil
		}
		files = []string{envPath}
	}

	err := godotenv.Load(files...)
	if err != nil {
		fmt.Printf("cannot load env files %v: %v\n", files, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("config parse error: %+v\n", err)
		return nil
	}

	return &cfg
}
