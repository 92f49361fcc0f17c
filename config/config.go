package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		DBName   string `yaml:"dbname"`
		Port     string `yaml:"port"`
		SSLMode  string `yaml:"sslmode"`
	} `yaml:"database"`
	Auth struct {
		Secret          string `yaml:"secret"`
		Issuer          string `yaml:"issuer"`
		Audience        string `yaml:"audience"`
		TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
	} `yaml:"auth"`
	LiveKit struct {
		URL                 string `yaml:"url"`
		APIKey              string `yaml:"api_key"`
		APISecret           string `yaml:"api_secret"`
		RoomTokenTTLMinutes int    `yaml:"room_token_ttl_minutes"`
	} `yaml:"livekit"`
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
}

// GlobalConfig is the global configuration instance
var GlobalConfig Config

// DSN generates the PostgreSQL DSN from database config
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Database.Host,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.Port,
		c.Database.SSLMode,
	)
}

// LoadConfig reads and parses the YAML configuration file into GlobalConfig.
// Secrets may come from the environment instead of the file: JWT_SECRET,
// LIVEKIT_URL, LIVEKIT_API_KEY and LIVEKIT_API_SECRET override their YAML
// counterparts when set.
func LoadConfig(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, &GlobalConfig); err != nil {
		return err
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		GlobalConfig.Auth.Secret = v
	}
	if v := os.Getenv("LIVEKIT_URL"); v != "" {
		GlobalConfig.LiveKit.URL = v
	}
	if v := os.Getenv("LIVEKIT_API_KEY"); v != "" {
		GlobalConfig.LiveKit.APIKey = v
	}
	if v := os.Getenv("LIVEKIT_API_SECRET"); v != "" {
		GlobalConfig.LiveKit.APISecret = v
	}

	// Defaults observed by the token issuers when unset
	if GlobalConfig.Auth.TokenTTLMinutes == 0 {
		GlobalConfig.Auth.TokenTTLMinutes = 30
	}
	if GlobalConfig.LiveKit.RoomTokenTTLMinutes == 0 {
		GlobalConfig.LiveKit.RoomTokenTTLMinutes = 15
	}

	return validate(&GlobalConfig)
}

func validate(c *Config) error {
	required := map[string]string{
		"database.host":      c.Database.Host,
		"database.user":      c.Database.User,
		"database.password":  c.Database.Password,
		"database.dbname":    c.Database.DBName,
		"database.port":      c.Database.Port,
		"database.sslmode":   c.Database.SSLMode,
		"auth.secret":        c.Auth.Secret,
		"auth.issuer":        c.Auth.Issuer,
		"auth.audience":      c.Auth.Audience,
		"livekit.url":        c.LiveKit.URL,
		"livekit.api_key":    c.LiveKit.APIKey,
		"livekit.api_secret": c.LiveKit.APISecret,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required in config.yaml", key)
		}
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	return nil
}
