package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	ttlcache "TTLCache"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string

	rootCmd = &cobra.Command{
		Use:           "ttlcache",
		Short:         "Run a scripted workload against a TTL cache and report what happened",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return loadConfig()
		},
		RunE: execute,
	}
)

func loadConfig() error {
	viper.SetEnvPrefix("ttlcache")
	viper.AutomaticEnv()

	if configFile == "" {
		return nil
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Warn("Configuration file not found", "path", configFile)
			return nil
		}
		return fmt.Errorf("read config %s: %w", configFile, err)
	}
	log.Debug("Using configuration file", "path", viper.ConfigFileUsed())
	return nil
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if viper.GetBool("debug") {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "ttlcache",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

func execute(*cobra.Command, []string) error {
	logger := newLogger()

	cache, err := ttlcache.NewBuilder[string, string]().
		Capacity(viper.GetInt("capacity")).
		Duration(viper.GetDuration("ttl")).
		Logger(logger).
		Build()
	if err != nil {
		return fmt.Errorf("build cache: %w", err)
	}

	cfg := workloadConfig{
		Keys: viper.GetInt("keys"),
		Wait: viper.GetDuration("wait"),
	}
	stats := runWorkload(cache, cfg, logger, time.Sleep)
	logger.Info("Done", "stats", stats.String())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("ttlcache failed", "err", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.Flags().IntP("capacity", "c", 8, "maximum number of entries")
	rootCmd.Flags().DurationP("ttl", "t", 250*time.Millisecond, "time-to-live for inserted entries")
	rootCmd.Flags().IntP("keys", "k", 12, "number of distinct keys to insert")
	rootCmd.Flags().DurationP("wait", "w", 500*time.Millisecond, "pause before the second read pass")
	rootCmd.Flags().Bool("debug", false, "log evictions and expirations")

	_ = viper.BindPFlag("capacity", rootCmd.Flags().Lookup("capacity"))
	_ = viper.BindPFlag("ttl", rootCmd.Flags().Lookup("ttl"))
	_ = viper.BindPFlag("keys", rootCmd.Flags().Lookup("keys"))
	_ = viper.BindPFlag("wait", rootCmd.Flags().Lookup("wait"))
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))
}
