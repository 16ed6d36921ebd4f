// Package config implements configuration for the just-bash executable
// using https://github.com/spf13/viper.
package config

import (
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Contains all the keys for just-bash's shared config
const (
	FindIgnoreKey   = "find.ignore"
	ExecDisabledKey = "exec.disabled"
	LogLevelKey     = "loglevel"
)

// Init initializes the config package. It loads just-bash's defaults, sets
// up viper, and configures the logger's level.
func Init() error {
	viper.SetDefault(FindIgnoreKey, []string{})
	viper.SetDefault(ExecDisabledKey, false)
	viper.SetDefault(LogLevelKey, "info")

	// Tell viper that the config can be read from JUST_BASH_<entry>
	// environment variables
	viper.SetEnvPrefix("JUST_BASH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read-in the (optional) config file
	cdir, err := os.UserConfigDir()
	if err == nil {
		viper.SetConfigName("just-bash")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(filepath.Join(cdir, "just-bash"))
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return err
			}
		}
	}

	level, err := log.ParseLevel(viper.GetString(LogLevelKey))
	if err != nil {
		return err
	}
	log.SetLevel(level)

	return nil
}

// FindIgnore returns the traversal ignore patterns for the find command.
func FindIgnore() []string {
	return viper.GetStringSlice(FindIgnoreKey)
}

// ExecDisabled reports whether the host's command-execution capability
// should be withheld from command contexts.
func ExecDisabled() bool {
	return viper.GetBool(ExecDisabledKey)
}
