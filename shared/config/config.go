package config

import (
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	BackendFS     = "fs"
	BackendSqlite = "sqlite"
)

type Config struct {
	Public Public
}

type Public struct {
	Http    Http    `yaml:"http" validate:"required"`
	Storage Storage `yaml:"storage" validate:"required"`
	Log     Log     `yaml:"log"`
}

type Http struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CorsOrigins     []string      `yaml:"cors_origins"`
	RateLimit       RateLimit     `yaml:"rate_limit"`
}

// RateLimit is applied per client ip to the /v1 api. Zero rps disables it.
type RateLimit struct {
	Rps   float64 `yaml:"rps" validate:"gte=0"`
	Burst int     `yaml:"burst" validate:"gte=0"`
}

type Storage struct {
	Backend    string `yaml:"backend" validate:"required,oneof=fs sqlite"`
	DataDir    string `yaml:"data_dir" validate:"required_if=Backend fs"`
	SqlitePath string `yaml:"sqlite_path" validate:"required_if=Backend sqlite"`
	ExportDir  string `yaml:"export_dir" validate:"required"`
}

type Log struct {
	Level string `yaml:"level"`
	Json  bool   `yaml:"json"`
}

func (c *Config) ShutdownTimeout() time.Duration {
	if c.Public.Http.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return c.Public.Http.ShutdownTimeout
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&public); err != nil {
		panic("invalid config: " + err.Error())
	}

	return &Config{public}
}
