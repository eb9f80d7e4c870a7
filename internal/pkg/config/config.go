package config

import (
	"log"
	"strings"

	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig reads configPath (an env-format file) when running locally and
// overlays the process environment on top of it.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("MESSAGING_DRIVER", "nats")
	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NSQD_ADDRESS", "localhost:4150")

	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("JWT_ISSUER", "cabbooking")

	v.SetDefault("FARE_API_URL", "https://taxi-fare-calculator.p.rapidapi.com")
	v.SetDefault("WEATHER_API_URL", "https://weatherapi-com.p.rapidapi.com")
	v.SetDefault("LOOKUP_TIMEOUT", 10)
	v.SetDefault("LOOKUP_MAX_RETRIES", 0)

	v.SetDefault("BOOKING_DEFAULT_LEAD_TIME", 10)
	v.SetDefault("BOOKING_CAB_READY_DELAY", 180)

	v.SetDefault("PRICING_TIMEZONE", "UTC")

	v.SetDefault("NOTIFIER_BATCH_SIZE", 10)
	v.SetDefault("NOTIFIER_FETCH_WAIT", 5)
	v.SetDefault("NOTIFIER_PULL_BACKOFF", 5)

	v.SetDefault("RATE_LIMIT_LIMIT", 20)
	v.SetDefault("RATE_LIMIT_PERIOD", 60)

	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Messaging config
	configs.Messaging.Driver = strings.ToLower(v.GetString("MESSAGING_DRIVER"))
	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NSQ.NSQDAddress = v.GetString("NSQD_ADDRESS")
	configs.NSQ.LookupdAddresses = splitList(v.GetString("NSQ_LOOKUPD_ADDRESSES"))

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// Third-party lookups
	configs.Services.FareAPIURL = v.GetString("FARE_API_URL")
	configs.Services.FareAPIKey = v.GetString("FARE_API_KEY")
	configs.Services.WeatherAPIURL = v.GetString("WEATHER_API_URL")
	configs.Services.WeatherAPIKey = v.GetString("WEATHER_API_KEY")
	configs.Services.LookupTimeout = v.GetInt("LOOKUP_TIMEOUT")
	configs.Services.LookupMaxRetries = v.GetInt("LOOKUP_MAX_RETRIES")

	// Booking config
	configs.Booking.DefaultLeadTime = v.GetInt("BOOKING_DEFAULT_LEAD_TIME")
	configs.Booking.CabReadyDelay = v.GetInt("BOOKING_CAB_READY_DELAY")

	// Pricing config
	configs.Pricing.Timezone = v.GetString("PRICING_TIMEZONE")

	// Notifier config
	configs.Notifier.BatchSize = v.GetInt("NOTIFIER_BATCH_SIZE")
	configs.Notifier.FetchWait = v.GetInt("NOTIFIER_FETCH_WAIT")
	configs.Notifier.PullBackoff = v.GetInt("NOTIFIER_PULL_BACKOFF")

	// Rate limit config
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_LIMIT")
	configs.RateLimit.Period = v.GetInt("RATE_LIMIT_PERIOD")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
