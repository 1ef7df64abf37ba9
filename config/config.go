package config

import (
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Storage StorageConfig
}

type AppConfig struct {
	Env string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StorageConfig struct {
	DataDir       string
	InventoryFile string
	SalesFile     string
	UsersFile     string
	MovementsFile string
}

func LoadEnv() *Config {
	// Basic config loading
	// In a real scenario, use structured config loader like viper or koanf
	return &Config{
		App: AppConfig{
			Env: getEnv("APP_ENV", "dev"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", true),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Storage: StorageConfig{
			DataDir:       getEnv("POS_DATA_DIR", "."),
			InventoryFile: getEnv("POS_INVENTORY_FILE", "inventario_tortilleria.json"),
			SalesFile:     getEnv("POS_SALES_FILE", "ventas_tortilleria.json"),
			UsersFile:     getEnv("POS_USERS_FILE", "usuarios_tortilleria.json"),
			MovementsFile: getEnv("POS_MOVEMENTS_FILE", "movimientos_tortilleria.json"),
		},
	}
}

// InventoryPath returns the inventory file path rooted at DataDir.
func (s StorageConfig) InventoryPath() string {
	return filepath.Join(s.DataDir, s.InventoryFile)
}

func (s StorageConfig) SalesPath() string {
	return filepath.Join(s.DataDir, s.SalesFile)
}

func (s StorageConfig) UsersPath() string {
	return filepath.Join(s.DataDir, s.UsersFile)
}

func (s StorageConfig) MovementsPath() string {
	return filepath.Join(s.DataDir, s.MovementsFile)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
