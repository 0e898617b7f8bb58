package config

import (
	"github.com/ajitpratap0/medallion/pkg/compression"
	"github.com/ajitpratap0/medallion/pkg/errors"
	"github.com/ajitpratap0/medallion/pkg/fake"
	"github.com/ajitpratap0/medallion/pkg/storage"
)

// Config is the complete medallion configuration
type Config struct {
	Storage    StorageConfig    `mapstructure:"storage" yaml:"storage"`
	Generation GenerationConfig `mapstructure:"generation" yaml:"generation"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics" yaml:"metrics"`
	Tracing    TracingConfig    `mapstructure:"tracing" yaml:"tracing"`
}

// StorageConfig selects the object store
type StorageConfig struct {
	// Backend is one of s3, gcs, file, memory
	Backend      string    `mapstructure:"backend" yaml:"backend"`
	Endpoint     string    `mapstructure:"endpoint" yaml:"endpoint"`
	Region       string    `mapstructure:"region" yaml:"region"`
	AccessKey    string    `mapstructure:"access_key" yaml:"access_key"`
	SecretKey    string    `mapstructure:"secret_key" yaml:"secret_key"`
	UsePathStyle bool      `mapstructure:"use_path_style" yaml:"use_path_style"`
	Root         string    `mapstructure:"root" yaml:"root"`
	GCS          GCSConfig `mapstructure:"gcs" yaml:"gcs"`
}

// GCSConfig configures the gcs backend
type GCSConfig struct {
	Project         string `mapstructure:"project" yaml:"project"`
	CredentialsFile string `mapstructure:"credentials_file" yaml:"credentials_file"`
	Endpoint        string `mapstructure:"endpoint" yaml:"endpoint"`
}

// GenerationConfig controls the random source
type GenerationConfig struct {
	Locale string `mapstructure:"locale" yaml:"locale"`
	// Seed 0 draws a random seed per run
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// OutputConfig controls payload encoding
type OutputConfig struct {
	// Compression applies to JSON and CSV payloads only
	Compression string `mapstructure:"compression" yaml:"compression"`
	// Dir is where `generate` writes local files
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// LoggingConfig mirrors logger.Config
type LoggingConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Encoding    string `mapstructure:"encoding" yaml:"encoding"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// MetricsConfig controls run metrics
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// PushgatewayURL receives the metrics at the end of each command
	PushgatewayURL string `mapstructure:"pushgateway_url" yaml:"pushgateway_url"`
	Job            string `mapstructure:"job" yaml:"job"`
}

// TracingConfig controls span export
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
}

// Default returns the configuration for a local MinIO
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:      string(storage.BackendS3),
			Endpoint:     "http://localhost:9000",
			Region:       storage.DefaultRegion,
			AccessKey:    "minioadmin",
			SecretKey:    "minioadmin",
			UsePathStyle: true,
			Root:         "./lake",
		},
		Generation: GenerationConfig{
			Locale: fake.LocalePtBR,
		},
		Output: OutputConfig{
			Compression: string(compression.None),
			Dir:         "./out",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
		Metrics: MetricsConfig{
			Job: "medallion",
		},
		Tracing: TracingConfig{
			ServiceName: "medallion",
		},
	}
}

// Validate checks every enumerated value
func (c *Config) Validate() error {
	backend, err := storage.ParseBackend(c.Storage.Backend)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "invalid storage.backend")
	}
	if backend == storage.BackendFile && c.Storage.Root == "" {
		return errors.New(errors.ErrorTypeConfig, "storage.root is required for the file backend")
	}
	if backend == storage.BackendGCS && c.Storage.GCS.Project == "" {
		return errors.New(errors.ErrorTypeConfig, "storage.gcs.project is required for the gcs backend")
	}
	if _, err := compression.Parse(c.Output.Compression); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "invalid output.compression")
	}
	if _, err := fake.New(c.Generation.Locale, nil); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "invalid generation.locale")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "":
	default:
		return errors.Newf(errors.ErrorTypeConfig, "invalid logging.level %q", c.Logging.Level)
	}
	if c.Metrics.Enabled && c.Metrics.PushgatewayURL != "" && c.Metrics.Job == "" {
		return errors.New(errors.ErrorTypeConfig, "metrics.job is required with a pushgateway")
	}
	return nil
}

// StorageSettings converts the storage section for storage.New
func (c *Config) StorageSettings() (storage.Config, error) {
	backend, err := storage.ParseBackend(c.Storage.Backend)
	if err != nil {
		return storage.Config{}, errors.Wrap(err, errors.ErrorTypeConfig, "invalid storage.backend")
	}
	return storage.Config{
		Backend:            backend,
		Endpoint:           c.Storage.Endpoint,
		Region:             c.Storage.Region,
		AccessKey:          c.Storage.AccessKey,
		SecretKey:          c.Storage.SecretKey,
		UsePathStyle:       c.Storage.UsePathStyle,
		GCSProject:         c.Storage.GCS.Project,
		GCSCredentialsFile: c.Storage.GCS.CredentialsFile,
		GCSEndpoint:        c.Storage.GCS.Endpoint,
		Root:               c.Storage.Root,
	}, nil
}
