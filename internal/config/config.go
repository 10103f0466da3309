package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the inspection backend, the live relay, result notifications and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Analyses run image processing on the backend, hence the generous default.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxUploadBytes limits the size of an uploaded image
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"20971520" yaml:"maxUploadBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"pcbinspect" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Backend points at the inspection backend
	Backend struct {
		// BaseURL is the root of the backend HTTP API
		BaseURL string `env:"BACKEND_BASE_URL" env-default:"http://localhost:8000" yaml:"baseURL"`
		// StreamURL overrides the WebSocket root; derived from BaseURL when empty
		StreamURL string `env:"BACKEND_STREAM_URL" yaml:"streamURL"`
		// Timeout bounds a single backend request
		Timeout time.Duration `env:"BACKEND_TIMEOUT" env-default:"1m" yaml:"timeout"`
		// HandshakeTimeout bounds the WebSocket handshake of a live stream
		HandshakeTimeout time.Duration `env:"BACKEND_HANDSHAKE_TIMEOUT" env-default:"10s" yaml:"handshakeTimeout"`
	} `yaml:"backend"`

	// Relay configures the live frame relay
	Relay struct {
		// MinPCBFrameBytes is the size below which a PCB frame means "no PCB"
		MinPCBFrameBytes int `env:"RELAY_MIN_PCB_FRAME_BYTES" env-default:"100" yaml:"minPCBFrameBytes"`
		// FPSInterval is the frame rate sampling period
		FPSInterval time.Duration `env:"RELAY_FPS_INTERVAL" env-default:"1s" yaml:"fpsInterval"`
		// ReconnectDelay enables redialing a dropped stream after the delay; zero disables it
		ReconnectDelay time.Duration `env:"RELAY_RECONNECT_DELAY" env-default:"0s" yaml:"reconnectDelay"`
	} `yaml:"relay"`

	// Sync configures the background result synchronisation
	Sync struct {
		// MaxAttempts is the maximum number of attempts for a sync job
		MaxAttempts int `env:"SYNC_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// UniquePeriod deduplicates sync jobs of the same PCB within the period
		UniquePeriod time.Duration `env:"SYNC_UNIQUE_PERIOD" env-default:"30s" yaml:"uniquePeriod"`
		// MaxWorkers is the number of concurrent sync workers
		MaxWorkers int `env:"SYNC_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
		// SnoozeDelay postpones a sync while the backend is unavailable
		SnoozeDelay time.Duration `env:"SYNC_SNOOZE_DELAY" env-default:"15s" yaml:"snoozeDelay"`
		// OnStart enqueues a sync for every backend PCB when serve starts
		OnStart bool `env:"SYNC_ON_START" env-default:"false" yaml:"onStart"`
	} `yaml:"sync"`

	// MQTT configures result notifications; disabled when Broker is empty
	MQTT struct {
		// Broker is the broker URL, e.g. tcp://localhost:1883
		Broker string `env:"MQTT_BROKER" yaml:"broker"`
		// ClientID identifies this gateway to the broker
		ClientID string `env:"MQTT_CLIENT_ID" env-default:"pcbinspect" yaml:"clientID"`
		// Username for broker authentication
		Username string `env:"MQTT_USERNAME" yaml:"username"`
		// Password for broker authentication
		Password string `env:"MQTT_PASSWORD" yaml:"password"`
		// TopicPrefix is prepended to every published topic
		TopicPrefix string `env:"MQTT_TOPIC_PREFIX" env-default:"pcbinspect" yaml:"topicPrefix"`
		// QoS is the MQTT quality of service used for publishing
		QoS byte `env:"MQTT_QOS" env-default:"1" yaml:"qos"`
		// Timeout bounds connecting and publishing
		Timeout time.Duration `env:"MQTT_TIMEOUT" env-default:"5s" yaml:"timeout"`
	} `yaml:"mqtt"`

	// JWT holds the RS256 key pair used for operator tokens
	JWT struct {
		// PublicKey verifies bearer tokens on the API (PEM)
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens issued by the jwt command (PEM)
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from the environment only.
func Load(configPath string) (*Config, error) {
	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
