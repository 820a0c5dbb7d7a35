package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// envPattern находит подстановки вида ${VAR} и ${VAR:-default}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandEnvWithDefaults подставляет переменные окружения; пустая переменная заменяется значением по умолчанию
func expandEnvWithDefaults(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		matches := envPattern.FindStringSubmatch(match)
		if len(matches) < 2 {
			return match
		}

		if value := os.Getenv(matches[1]); value != "" {
			return value
		}
		if len(matches) > 2 {
			return matches[2]
		}
		return ""
	})
}

// InitConfig читает конфигурационный файл и возвращает экземпляр конфигурации.
// Строковые значения проходят подстановку переменных окружения, затем приводятся к bool или int.
func InitConfig[C any](configFile string) (*C, error) {
	v := viper.New()
	ext := strings.TrimLeft(filepath.Ext(configFile), ".")

	v.SetConfigFile(configFile)
	v.SetConfigType(ext)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig: %w", err)
	}

	for _, k := range v.AllKeys() {
		value := v.GetString(k)
		if value == "" {
			continue
		}
		expanded := expandEnvWithDefaults(value)

		if expanded == "true" || expanded == "false" {
			v.Set(k, expanded == "true")
		} else if intValue, err := strconv.Atoi(expanded); err == nil {
			v.Set(k, intValue)
		} else {
			v.Set(k, expanded)
		}
	}

	cfg := new(C)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("v.Unmarshal: %w", err)
	}

	return cfg, nil
}

// Validate проверяет обязательные секции и выставляет значения по умолчанию
func (c *Config) Validate() error {
	if c.Logger == nil {
		c.Logger = &ConfigLogger{Level: "info"}
	}
	if c.Server == nil {
		return fmt.Errorf("config: server section is required")
	}
	if c.Gateway == nil {
		c.Gateway = &ConfigGateway{CORSAllowedOrigins: "*"}
	}
	if c.Storage == nil {
		c.Storage = &ConfigStorage{Driver: StorageMemory}
	}

	switch c.Storage.Driver {
	case "":
		c.Storage.Driver = StorageMemory
	case StorageMemory:
	case StorageFile:
		if c.Storage.FileDir == "" {
			return fmt.Errorf("config: storage.file_dir is required for driver %q", StorageFile)
		}
	case StorageSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("config: storage.sqlite_path is required for driver %q", StorageSQLite)
		}
	case StorageRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("config: storage.redis_addr is required for driver %q", StorageRedis)
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}
