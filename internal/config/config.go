package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env       Env
	Server    ServerConfig
	Upload    UploadConfig
	Hosts     HostsConfig
	Settings  SettingsConfig
	Transport TransportConfig
	NATS      NATSConfig
	Metrics   MetricsConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host           string `envconfig:"SERVER_HOST" default:"localhost"`
	Port           string `envconfig:"SERVER_PORT" default:"8080"`
	MaxUploadBytes int64  `envconfig:"SERVER_MAX_UPLOAD_BYTES" default:"1074790400"` // 1GiB + 1MiB of form overhead
}

type UploadConfig struct {
	BaseThreshold int64 `envconfig:"UPLOAD_BASE_THRESHOLD" default:"10485760"` // 10MB
}

// HostsConfig holds the endpoints of the supported file hosts
type HostsConfig struct {
	BuzzHeavierURL       string `envconfig:"HOSTS_BUZZHEAVIER_URL" default:"https://w.buzzheavier.com"`
	BuzzHeavierPublicURL string `envconfig:"HOSTS_BUZZHEAVIER_PUBLIC_URL" default:"https://buzzheavier.com"`
	CatboxURL            string `envconfig:"HOSTS_CATBOX_URL" default:"https://catbox.moe/user/api.php"`
	LitterboxURL         string `envconfig:"HOSTS_LITTERBOX_URL" default:"https://litterbox.catbox.moe/resources/internals/api.php"`
}

// SettingsConfig mirrors the user facing settings of the uploader
type SettingsConfig struct {
	Enabled            bool   `envconfig:"SETTINGS_ENABLED" default:"true"`
	FileProvider       string `envconfig:"SETTINGS_FILE_PROVIDER" default:"catbox"`
	LitterboxTimeLimit string `envconfig:"SETTINGS_LITTERBOX_TIMELIMIT" default:"24h"`
	CatboxUserHash     string `envconfig:"SETTINGS_CATBOX_USERHASH"`
}

type TransportConfig struct {
	Timeout   time.Duration `envconfig:"TRANSPORT_TIMEOUT" default:"30m"`
	UserAgent string        `envconfig:"TRANSPORT_USER_AGENT" default:"SendYourFiles/1.0"`
}

type NATSConfig struct {
	Enabled    bool   `envconfig:"NATS_ENABLED" default:"false"`
	URL        string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	Name       string `envconfig:"NATS_CLIENT_NAME" default:"sendyourfiles"`
	StreamName string `envconfig:"NATS_STREAM_NAME" default:"UPLOADS"`
	Subject    string `envconfig:"NATS_SUBJECT" default:"uploads.completed"`
}

type MetricsConfig struct {
	Namespace string `envconfig:"METRICS_NAMESPACE" default:"sendyourfiles"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
