package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	AllowedOrigins    []string

	// Contact details printed on exported schedule reports.
	HospitalName    string
	HospitalAddress string
	HospitalPhone   string
	HRPhone         string
	HREmail         string
	ReportLogoPath  string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "duty-scheduler")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("HOSPITAL_NAME", "G.Ya. Remishevskaya Republican Clinical Hospital")
	viper.SetDefault("HOSPITAL_ADDRESS", "23 Lenin Ave.")
	viper.SetDefault("HOSPITAL_PHONE", "+7 390 224-82-54")
	viper.SetDefault("HR_PHONE", "8 (3902) 248-263")
	viper.SetDefault("HR_EMAIL", "kadry@gospital.ru")
	viper.SetDefault("REPORT_LOGO_PATH", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 1
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}

	jwtIssuer := viper.GetString("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "duty-scheduler"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", jwtIssuer)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.JWTSecret = jwtSecret
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = jwtIssuer
	cfg.AllowedOrigins = viper.GetStringSlice("ALLOWED_ORIGINS")
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
		log.Printf("Warning: ALLOWED_ORIGINS not set. Defaulting to %v.\n", cfg.AllowedOrigins)
	}

	cfg.HospitalName = viper.GetString("HOSPITAL_NAME")
	cfg.HospitalAddress = viper.GetString("HOSPITAL_ADDRESS")
	cfg.HospitalPhone = viper.GetString("HOSPITAL_PHONE")
	cfg.HRPhone = viper.GetString("HR_PHONE")
	cfg.HREmail = viper.GetString("HR_EMAIL")
	cfg.ReportLogoPath = viper.GetString("REPORT_LOGO_PATH")

	return cfg, nil
}
