package config

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	ServiceName string      `yaml:"service_name"`
	LogLevel    string      `yaml:"log_level"`
	Demo        *DemoConfig `yaml:"demo"`
}

// DemoConfig drives the scripted demo harness.
type DemoConfig struct {
	Orders   int   `yaml:"orders"`
	MinPrice int64 `yaml:"min_price"`
	MaxPrice int64 `yaml:"max_price"`
	MaxQty   int64 `yaml:"max_qty"`
	Seed     int64 `yaml:"seed"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")
	zap.S().Debugf("CONFIG_FILE=%v", filePath)

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
