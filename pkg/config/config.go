package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. DATAEXTRACT_STRICT.
const EnvPrefix = "DATAEXTRACT"

// Config holds the CLI configuration
type Config struct {
	Strict  bool      `mapstructure:"strict"`
	Output  string    `mapstructure:"output"`
	LogFile string    `mapstructure:"log_file"`
	Verbose bool      `mapstructure:"verbose"`
	SMB     SMBConfig `mapstructure:"smb"`
}

// SMBConfig selects a remote share to read inputs from. Empty Host means local
// files; Host without Share makes the CLI list the host's shares.
type SMBConfig struct {
	Host     string `mapstructure:"host"`
	Share    string `mapstructure:"share"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Domain   string `mapstructure:"domain"`
	Hash     string `mapstructure:"hash"`
}

// Remote reports whether inputs come from an SMB share.
func (c *Config) Remote() bool {
	return c.SMB.Host != ""
}

// New returns a viper instance with defaults and environment lookup set up.
// Flags are bound by the caller before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("strict", false)
	v.SetDefault("output", "")
	v.SetDefault("log_file", "")
	v.SetDefault("verbose", false)
	v.SetDefault("smb.host", "")
	v.SetDefault("smb.share", "")
	v.SetDefault("smb.username", "")
	v.SetDefault("smb.password", "")
	v.SetDefault("smb.domain", "")
	v.SetDefault("smb.hash", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile (or dataextract.yaml from the working directory or
// ~/.dataextract when configFile is empty) and unmarshals the merged result.
// A missing default file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("dataextract")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".dataextract"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
