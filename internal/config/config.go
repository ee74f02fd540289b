package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	AWS      AWSConfig
	Tables   TableConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Cognito  CognitoConfig
	Email    EmailConfig
	Payment  PaymentConfig
	Frontend FrontendConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// AWSConfig holds SDK client settings.
type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// TableConfig names the DynamoDB tables.
type TableConfig struct {
	Users  string
	Orders string
	Codes  string
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters: the first-party signing
// secret, token lifetime, reset-code lifetime and hashing cost.
type AuthConfig struct {
	JWTSecret        string
	TokenTTLHours    int
	ResetCodeTTLMin  int
	BcryptCost       int
	CodeStoreBackend string
}

// CognitoConfig identifies the federated user pool.
type CognitoConfig struct {
	Region       string
	UserPoolID   string
	ClientID     string
	ClientSecret string
}

// Issuer returns the expected issuer claim for pool-signed tokens.
func (c CognitoConfig) Issuer() string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", c.Region, c.UserPoolID)
}

// EmailConfig covers both SMTP customer mail and the SES restaurant inbox.
type EmailConfig struct {
	SMTPHost        string
	SMTPPort        int
	FromName        string
	FromAddress     string
	Password        string
	RestaurantInbox string
}

// PaymentConfig holds the Razorpay credentials.
type PaymentConfig struct {
	RazorpayKeyID     string
	RazorpayKeySecret string
}

// FrontendConfig holds browser-facing settings.
type FrontendConfig struct {
	CORSOrigin string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "spice-and-soul-backend"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "3000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "ap-south-1"),
			Endpoint:        os.Getenv("AWS_ENDPOINT"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
		Tables: TableConfig{
			Users:  getEnv("DYNAMODB_TABLE_USERS", "spice-soul-users"),
			Orders: getEnv("DYNAMODB_TABLE_ORDERS", "spice-soul-orders"),
			Codes:  getEnv("DYNAMODB_TABLE_CODES", "spice-soul-reset-codes"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", "dev-secret"),
			TokenTTLHours:    getEnvAsInt("JWT_EXPIRY_HOURS", 24),
			ResetCodeTTLMin:  getEnvAsInt("RESET_CODE_TTL_MINUTES", 60),
			BcryptCost:       getEnvAsInt("AUTH_BCRYPT_COST", 10),
			CodeStoreBackend: getEnv("CODE_STORE", "dynamodb"),
		},
		Cognito: CognitoConfig{
			Region:       getEnv("COGNITO_REGION", getEnv("AWS_REGION", "ap-south-1")),
			UserPoolID:   os.Getenv("COGNITO_USER_POOL_ID"),
			ClientID:     os.Getenv("COGNITO_CLIENT_ID"),
			ClientSecret: os.Getenv("COGNITO_CLIENT_SECRET"),
		},
		Email: EmailConfig{
			SMTPHost:        getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:        getEnvAsInt("SMTP_PORT", 587),
			FromName:        getEnv("EMAIL_FROM_NAME", "Spice & Soul"),
			FromAddress:     os.Getenv("EMAIL_USER"),
			Password:        os.Getenv("EMAIL_PASSWORD"),
			RestaurantInbox: getEnv("RESERVATION_INBOX", os.Getenv("EMAIL_USER")),
		},
		Payment: PaymentConfig{
			RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		},
		Frontend: FrontendConfig{
			CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// TokenTTL returns the first-party token lifetime.
func (a AuthConfig) TokenTTL() time.Duration {
	if a.TokenTTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(a.TokenTTLHours) * time.Hour
}

// ResetCodeTTL returns the verification code lifetime.
func (a AuthConfig) ResetCodeTTL() time.Duration {
	if a.ResetCodeTTLMin <= 0 {
		return time.Hour
	}
	return time.Duration(a.ResetCodeTTLMin) * time.Minute
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
