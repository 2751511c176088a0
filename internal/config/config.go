package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis    `yaml:"redis"`
	Peer     Peer     `yaml:"peer"`
	Identity Identity `yaml:"identity"`
	Oracle   Oracle   `yaml:"oracle"`
}

type Redis struct {
	Host        string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password    string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB          int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	DialTimeout time.Duration `yaml:"dial-timeout" env-default:"5s"`
}

// Peer configures the direct player-to-player connection.
type Peer struct {
	ListenAddr        string        `yaml:"listen-addr" env:"PEER_LISTEN_ADDR" env-default:":9191"`
	PublicURL         string        `yaml:"public-url" env:"PEER_PUBLIC_URL" env-default:"ws://localhost:9191"`
	ConnectTimeout    time.Duration `yaml:"connect-timeout" env-default:"10s"`
	WriteTimeout      time.Duration `yaml:"write-timeout" env-default:"5s"`
	PingPeriod        time.Duration `yaml:"ping-period" env-default:"5s"`
	SendBuffer        int           `yaml:"send-buffer" env-default:"16"`
	ReconnectAttempts int           `yaml:"reconnect-attempts" env-default:"1"`
}

// Identity configures registration of the short game code.
type Identity struct {
	Length          int           `yaml:"length" env-default:"5"`
	MaxAttempts     int           `yaml:"max-attempts" env-default:"5"`
	RetryDelay      time.Duration `yaml:"retry-delay" env-default:"500ms"`
	TTL             time.Duration `yaml:"ttl" env-default:"30s"`
	RefreshInterval time.Duration `yaml:"refresh-interval" env-default:"10s"`
	RestoreDelay    time.Duration `yaml:"restore-delay" env-default:"2s"`
	RestoreAttempts int           `yaml:"restore-attempts" env-default:"5"`
}

type Oracle struct {
	// Kind is "local" for the built-in engine or "http" for a remote oracle.
	Kind       string        `yaml:"kind" env:"ORACLE_KIND" env-default:"local"`
	URL        string        `yaml:"url" env:"ORACLE_URL"`
	Timeout    time.Duration `yaml:"timeout" env-default:"8s"`
	ThinkDelay time.Duration `yaml:"think-delay" env-default:"600ms"`
	Difficulty string        `yaml:"difficulty" env-default:"casual"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
