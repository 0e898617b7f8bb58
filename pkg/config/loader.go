package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/medallion/pkg/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MEDALLION"

// Load reads defaults, then the YAML file at path (if any), then
// MEDALLION_* environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Seed viper with the defaults so every key is known to AutomaticEnv
	defaults, err := yaml.Marshal(Default())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, "encode defaults")
	}
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeInternal, "load defaults")
	}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the --config flag
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "read config file").
				WithDetail("path", path)
		}
		content := substituteEnvVars(string(data))
		if err := v.MergeConfig(strings.NewReader(content)); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConfig, "parse config file").
				WithDetail("path", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "encode config")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "write config file").
			WithDetail("path", path)
	}
	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	var b strings.Builder
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		b.WriteString(content[:start])
		b.WriteString(os.Getenv(content[start+2 : end]))
		content = content[end+1:]
	}
	b.WriteString(content)
	return b.String()
}
