package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	TMDB     TMDB     `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Server   Server   `json:"server" yaml:"server" mapstructure:"server"`
	Storage  Storage  `json:"storage" yaml:"storage" mapstructure:"storage"`
	Metadata Metadata `json:"metadata" yaml:"metadata" mapstructure:"metadata"`
	Download Download `json:"download" yaml:"download" mapstructure:"download"`
}

// TMDB configures the metadata provider. An empty APIKey leaves metadata lookups unconfigured.
type TMDB struct {
	Server      string        `json:"server" yaml:"server" mapstructure:"server"`
	APIKey      string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff"`
	MaxRetries  int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
	// AdminKey guards every write endpoint. Empty rejects all admin requests.
	AdminKey string `json:"adminKey" yaml:"adminKey" mapstructure:"adminKey"`
	// PublicURL is the site origin used for sitemap locations
	PublicURL string `json:"publicURL" yaml:"publicURL" mapstructure:"publicURL"`
}

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Storage struct {
	Driver   string `json:"driver" yaml:"driver" mapstructure:"driver"`
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
	Mongo    Mongo  `json:"mongo" yaml:"mongo" mapstructure:"mongo"`
}

type Mongo struct {
	URI      string `json:"uri" yaml:"uri" mapstructure:"uri"`
	Database string `json:"database" yaml:"database" mapstructure:"database"`
}

// Metadata configures the curated-list cache. Lists are kept in memory unless RedisAddr is set.
type Metadata struct {
	ListTTL   time.Duration `json:"listTTL" yaml:"listTTL" mapstructure:"listTTL"`
	RedisAddr string        `json:"redisAddr" yaml:"redisAddr" mapstructure:"redisAddr"`
}

type Download struct {
	// ResolveByNumber matches episodes by season and episode number instead of list position
	ResolveByNumber bool `json:"resolveByNumber" yaml:"resolveByNumber" mapstructure:"resolveByNumber"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
