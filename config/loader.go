package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	ApplyDefaults(&Config)
	return nil
}

// ApplyDefaults fills zero-valued fields with built-in defaults.
func ApplyDefaults(cfg *AppConfig) {
	if cfg.Server.XMLPort == 0 {
		cfg.Server.XMLPort = 8080
	}
	if cfg.Server.DocxPort == 0 {
		cfg.Server.DocxPort = 8081
	}
	if cfg.Limits.MaxUploadBytes == 0 {
		cfg.Limits.MaxUploadBytes = 10 << 20
	}
	if cfg.Limits.MaxDepth == 0 {
		cfg.Limits.MaxDepth = 200
	}
	if cfg.Convert.DefaultRootElement == "" {
		cfg.Convert.DefaultRootElement = "root"
	}
}
