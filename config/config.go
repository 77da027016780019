package config

import (
	"os"
	"sync"

	"portfolio/logutils"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Postgres struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		DBName   string `yaml:"dbname"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SSLMode  string `yaml:"sslmode"`
		TimeZone string `yaml:"TimeZone"`
	} `yaml:"postgres"`
	Cloudinary struct {
		CloudName string `yaml:"cloudName"`
		APIKey    string `yaml:"apiKey"`
		APISecret string `yaml:"apiSecret"`
		Folder    string `yaml:"folder"`
	} `yaml:"cloudinary"`
	SMTP struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		SSL      bool   `yaml:"ssl"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
		Operator string `yaml:"operator"`
	} `yaml:"smtp"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

// initConfig reads the configuration file and layers environment overrides on
// top, so credentials never have to live in the file itself.
// The file path defaults to ./etc/config.yaml and can be moved with CONFIG_PATH.
func initConfig() *Config {
	config := &Config{}
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./etc/config.yaml"
	}

	err := readConfig(configPath, config)
	if err != nil {
		logutils.Log.Error("init config", err)
		panic(err)
	}
	applyEnvOverrides(config)
	applyDefaults(config)
	return config
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return err
	}
	return nil
}

// Environment variables win over file values for everything secret.
func applyEnvOverrides(config *Config) {
	overrides := map[string]*string{
		"POSTGRES_PASSWORD":     &config.Postgres.Password,
		"CLOUDINARY_CLOUD_NAME": &config.Cloudinary.CloudName,
		"CLOUDINARY_API_KEY":    &config.Cloudinary.APIKey,
		"CLOUDINARY_API_SECRET": &config.Cloudinary.APISecret,
		"SMTP_PASSWORD":         &config.SMTP.Password,
	}
	for key, dst := range overrides {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}

func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = "7000"
	}
	if config.Cloudinary.Folder == "" {
		config.Cloudinary.Folder = "projects"
	}
}
