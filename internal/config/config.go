// Package config loads service configuration from YAML with .env and
// environment variable overrides.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName    = "origin-classifier"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8071
	defaultConcurrency    = 10
	defaultBatchLimit     = 100
	defaultEmbeddingURL   = "http://embedder:8090"
	defaultEmbedRPS       = 50
	defaultDBDriver       = "sqlite"
	defaultDBPath         = "origin-classifier.db"
	defaultDBHost         = "localhost"
	defaultDBPort         = 5432
	defaultDBUser         = "postgres"
	defaultDBName         = "origin_classifier"
	defaultDBSSLMode      = "disable"
	defaultDBMaxConns     = 25
	defaultDBMaxIdleConns = 5
	defaultESURL          = "http://localhost:9200"
	defaultESIndex        = "classified_products"
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
)

// Config holds all configuration for the origin classification service.
type Config struct {
	Service       ServiceConfig       `yaml:"service"`
	Logging       LoggingConfig       `yaml:"logging"`
	Database      DatabaseConfig      `yaml:"database"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Embedding     EmbeddingConfig     `yaml:"embedding"`
	Sourcing      SourcingConfig      `yaml:"sourcing"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Port        int    `env:"CLASSIFIER_PORT"        yaml:"port"`
	Debug       bool   `env:"APP_DEBUG"              yaml:"debug"`
	Concurrency int    `env:"CLASSIFIER_CONCURRENCY" yaml:"concurrency"`
	BatchLimit  int    `yaml:"batch_limit"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL"  yaml:"level"`
	Format      string `env:"LOG_FORMAT" yaml:"format"`
	Development bool   `yaml:"development"`
}

// DatabaseConfig holds database configuration. Driver selects sqlite
// (default, file-backed) or postgres.
type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER"         yaml:"driver"`
	Path            string        `env:"DB_PATH"           yaml:"path"`
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// ElasticsearchConfig holds the optional classified-product index settings.
type ElasticsearchConfig struct {
	Enabled  bool   `env:"ES_ENABLED"        yaml:"enabled"`
	URL      string `env:"ELASTICSEARCH_URL" yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Index    string `yaml:"index"`
}

// EmbeddingConfig holds the embedding sidecar settings.
type EmbeddingConfig struct {
	URL string `env:"EMBEDDING_URL" yaml:"url"`
	RPS int    `env:"EMBEDDING_RPS" yaml:"rps"`
}

// SourcingConfig holds sourcing advisor settings.
type SourcingConfig struct {
	ProfilesPath string `env:"SOURCING_PROFILES" yaml:"profiles_path"`
}

// Load loads configuration from the specified path. A missing file yields
// the defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setLoggingDefaults(&cfg.Logging)
	setDatabaseDefaults(&cfg.Database)
	setElasticsearchDefaults(&cfg.Elasticsearch)
	setEmbeddingDefaults(&cfg.Embedding)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.BatchLimit == 0 {
		s.BatchLimit = defaultBatchLimit
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = defaultDBDriver
	}
	if d.Path == "" {
		d.Path = defaultDBPath
	}
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setElasticsearchDefaults(e *ElasticsearchConfig) {
	if e.URL == "" {
		e.URL = defaultESURL
	}
	if e.Index == "" {
		e.Index = defaultESIndex
	}
}

func setEmbeddingDefaults(e *EmbeddingConfig) {
	if e.URL == "" {
		e.URL = defaultEmbeddingURL
	}
	if e.RPS == 0 {
		e.RPS = defaultEmbedRPS
	}
}
