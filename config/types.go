package config

// ServerConfig contains the listen ports for the two services
type ServerConfig struct {
	XMLPort  int `yaml:"xmlPort" validate:"gte=0"`
	DocxPort int `yaml:"docxPort" validate:"gte=0"`
}

// LimitsConfig bounds per-request resource usage
type LimitsConfig struct {
	MaxUploadBytes int64 `yaml:"maxUploadBytes" validate:"gte=0"`
	MaxDepth       int   `yaml:"maxDepth" validate:"gte=0"`
}

// ConvertConfig contains conversion defaults
type ConvertConfig struct {
	DefaultRootElement string `yaml:"defaultRootElement"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Limits  LimitsConfig  `yaml:"limits"`
	Convert ConvertConfig `yaml:"convert"`
}
