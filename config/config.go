package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Upstream UpstreamConfig
	Session  SessionConfig
}

type AppConfig struct {
	Port string
	Env  string
	// StaticDir holds the built front-end pages served behind the guard.
	StaticDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// UpstreamConfig holds base URLs for the backend microservices the portal
// fronts. Hosts and API versioning are owned by the backends.
type UpstreamConfig struct {
	UsersURL       string
	BookingsURL    string
	InventoryURL   string
	OrdersURL      string
	DeliveriesURL  string
	RequestTimeout time.Duration
}

type SessionConfig struct {
	// Cookie names probed for the session token, in order.
	TokenCookies []string
	RoleCookie   string
	// TTL for server-held per-user state (wizard, cart, view cache).
	StateTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	requestTimeout, err := time.ParseDuration(viper.GetString("UPSTREAM_TIMEOUT"))
	if err != nil {
		requestTimeout = 10 * time.Second
	}

	stateTTL, err := time.ParseDuration(viper.GetString("SESSION_STATE_TTL"))
	if err != nil {
		stateTTL = 30 * time.Minute
	}

	tokenCookies := viper.GetStringSlice("SESSION_TOKEN_COOKIES")
	if len(tokenCookies) == 0 {
		tokenCookies = []string{"access_token", "jwt", "token"}
	}

	roleCookie := viper.GetString("SESSION_ROLE_COOKIE")
	if roleCookie == "" {
		roleCookie = "role"
	}

	staticDir := viper.GetString("APP_STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web"
	}

	config := &Config{
		App: AppConfig{
			Port:      viper.GetString("APP_PORT"),
			Env:       viper.GetString("APP_ENV"),
			StaticDir: staticDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Upstream: UpstreamConfig{
			UsersURL:       viper.GetString("USERS_SERVICE_URL"),
			BookingsURL:    viper.GetString("BOOKINGS_SERVICE_URL"),
			InventoryURL:   viper.GetString("INVENTORY_SERVICE_URL"),
			OrdersURL:      viper.GetString("ORDERS_SERVICE_URL"),
			DeliveriesURL:  viper.GetString("DELIVERIES_SERVICE_URL"),
			RequestTimeout: requestTimeout,
		},
		Session: SessionConfig{
			TokenCookies: tokenCookies,
			RoleCookie:   roleCookie,
			StateTTL:     stateTTL,
		},
	}

	return config, nil
}
