package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUsername string `yaml:"db_username" conf:"default:presensi"`
	DBPassword string `yaml:"db_password" conf:"default:presensi,noprint"`
	DBHost     string `yaml:"db_host" conf:"default:localhost"`
	DBPort     string `yaml:"db_port" conf:"default:5432"`
	DBName     string `yaml:"db_name" conf:"default:presensi"`
	DisableTLS bool   `yaml:"disable_tls" conf:"default:true"`

	HTTPPort  string `yaml:"http_port" conf:"default::5001"`
	BaseUrl   string `yaml:"base_url" conf:"default:http://localhost:5001"`
	RedisAddr string `yaml:"redis_addr" conf:"default:localhost:6379"`

	JWTKey string `yaml:"jwt_key" conf:"noprint"`

	AllowedOrigins []string `yaml:"allowed_origins"`

	// Configuration tiers for the check-in payload: which optional
	// inputs are mandatory on this deployment.
	RequireLocation bool `yaml:"require_location" conf:"default:true"`
	RequireEvidence bool `yaml:"require_evidence" conf:"default:false"`

	MediaBasePath string `yaml:"media_base_path" conf:"default:media"`
}

func NewConfig() (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.JWTKey == "" {
		return nil, errors.New("missing jwt_key configuration")
	}

	return &c, nil
}

// DSN builds the postgres connection string for pgdriver.
func (c *Config) DSN() string {
	sslmode := "require"
	if c.DisableTLS {
		sslmode = "disable"
	}
	return "postgres://" + c.DBUsername + ":" + c.DBPassword +
		"@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName +
		"?sslmode=" + sslmode
}
