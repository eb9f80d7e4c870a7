package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Messaging MessagingConfig
	NATS      NATSConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Services  ServicesConfig
	Booking   BookingConfig
	Pricing   PricingConfig
	Notifier  NotifierConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// MessagingConfig selects the broker used for notification events
type MessagingConfig struct {
	Driver string // "nats" or "nsq"
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress      string
	LookupdAddresses []string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// ServicesConfig contains the third-party lookup endpoints
type ServicesConfig struct {
	FareAPIURL       string
	FareAPIKey       string
	WeatherAPIURL    string
	WeatherAPIKey    string
	LookupTimeout    int // in seconds
	LookupMaxRetries int
}

// BookingConfig contains booking service specific configuration
type BookingConfig struct {
	DefaultLeadTime int // minutes added to now when a booking has no schedule
	CabReadyDelay   int // seconds between booking creation and the cab-ready notification
}

// PricingConfig contains payment service specific configuration
type PricingConfig struct {
	Timezone string // location used to read the booking's local hour
}

// NotifierConfig contains subscriber loop configuration
type NotifierConfig struct {
	BatchSize   int
	FetchWait   int // in seconds
	PullBackoff int // in seconds
}

// RateLimitConfig contains the anonymous auth endpoints rate limit
type RateLimitConfig struct {
	Limit  int
	Period int // in seconds
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains zap logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
