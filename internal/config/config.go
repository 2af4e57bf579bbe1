package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMySQL  = "mysql"
)

type Config struct {
	Storage Storage `yaml:"storage"`
}

type Storage struct {
	Backend    string `yaml:"backend"`
	SQLitePath string `yaml:"sqlite_path"`
	RedisAddr  string `yaml:"redis_addr"`
	MySQLDSN   string `yaml:"mysql_dsn"`
}

// Default is the configuration used when no file is present: a sqlite
// database under the user's home directory.
func Default() Config {
	path := "shopcart.db"
	if home, err := os.UserHomeDir(); err == nil {
		path = filepath.Join(home, ".shopcart", "shopcart.db")
	}
	return Config{
		Storage: Storage{
			Backend:    BackendSQLite,
			SQLitePath: path,
			RedisAddr:  "localhost:6379",
			MySQLDSN:   "root:root@tcp(localhost:3306)/shopcart?parseTime=true",
		},
	}
}

// DefaultPath is where the CLI looks for its config file.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".shopcart", "config.yaml")
	}
	return "shopcart.yaml"
}

// Load reads the YAML file at path over the defaults. An absent file yields
// the defaults; fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendRedis, BackendMySQL:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
}
