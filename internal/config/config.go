package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Redis  RedisConfig  `mapstructure:"redis"  validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// RedisConfig contains the settings for the Redis key-value store backing
// user and task persistence.
type RedisConfig struct {
	// URL is a redis connection URL, e.g. redis://localhost:6379/0.
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret is the symmetric HMAC signing key. It is fixed for the
	// process lifetime; key rotation is out of scope.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the access token TTL in minutes.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// BcryptCost is the bcrypt work factor for password hashing. Zero
	// selects the library default.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"omitempty,gte=4,lte=31"`
}

// CORSConfig contains the cross-origin settings for the HTTP surface.
// The wildcard default is a debug posture; production deployments should
// pin the origins list.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
