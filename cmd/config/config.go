package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/photocat/gcsel/pkg/session"
)

var (
	cfgFile string
	verbose bool
)

// InitConfig wires viper to the gcsel config file and environment.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "gcsel")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("GCSEL")

	// Set defaults
	viper.SetDefault("target", "avg_conc")
	viper.SetDefault("suffix", ".csv")
	viper.SetDefault("depth", 2)
	viper.SetDefault("starting_dir", "")
	viper.SetDefault("history_db", filepath.Join(os.Getenv("HOME"), ".local", "share", "gcsel", "history.db"))

	// A missing config file is fine; defaults and env cover everything.
	_ = viper.ReadInConfig()
}

// NewLogger returns the process logger. Warn level unless --verbose.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// SessionConfig builds the default matching parameters from configuration.
func SessionConfig() session.Config {
	return session.Config{
		Target:      viper.GetString("target"),
		Suffix:      viper.GetString("suffix"),
		Depth:       viper.GetInt("depth"),
		StartingDir: viper.GetString("starting_dir"),
	}
}

// HistoryDBPath returns the configured selection history database location.
func HistoryDBPath() string {
	return viper.GetString("history_db")
}

// AddGlobalFlags registers the persistent flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gcsel/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
