// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the metamap-client CLI.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/metamap-client/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// envKeyReplacer maps config keys such as metamap.temp_dir to
// METAMAP_CLIENT_METAMAP_TEMP_DIR.
var envKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// rootCmd is the base command for the metamap-client CLI.
var rootCmd = &cobra.Command{
	Use:   "metamap-client",
	Short: "Run MetaMap and parse the concepts it finds",
	Long: `metamap-client drives a local MetaMap installation. It stages sentences
or an input file, runs MetaMap with fielded (MMI) output, and prints the
recognized UMLS concepts as a table, MMI lines, JSON, or YAML.

Settings are read from flags, METAMAP_CLIENT_* environment variables, and
metamap-client.yaml in the working directory or ~/.config/metamap-client/.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(os.Stderr, logging.ParseLevel(viper.GetString("log.level")), viper.GetBool("log.json"))
		if f := viper.ConfigFileUsed(); f != "" {
			slog.Debug("using config file", "path", f)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./metamap-client.yaml or ~/.config/metamap-client/metamap-client.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("log-json"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("metamap-client")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "metamap-client"))
		}
	}

	viper.SetEnvPrefix("METAMAP_CLIENT")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
