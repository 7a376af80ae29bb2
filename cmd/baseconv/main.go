// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the baseconv CLI: one-shot conversion,
// an interactive terminal session, and the web converter server.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/base-converter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// envKeyReplacer maps nested keys to env names: serve.addr -> BASECONV_SERVE_ADDR.
var envKeyReplacer = strings.NewReplacer(".", "_")

// rootCmd is the base command for the baseconv CLI.
var rootCmd = &cobra.Command{
	Use:   "baseconv",
	Short: "Convert numbers between binary, octal, decimal and hexadecimal",
	Long: `baseconv re-renders an integer typed in one base into binary, octal,
decimal and hexadecimal.

Use convert for a one-shot conversion, interactive for a terminal session
that updates every field after each edit, and serve to host the web
converter page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./baseconv.yaml or ~/.config/baseconv/config.yaml)")
}

func initConfig() {
	setConfigDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("baseconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "baseconv"))
		}
	}

	viper.SetEnvPrefix("BASECONV")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setConfigDefaults registers every key of types.Config so that env
// overrides and Unmarshal see them even without a config file.
func setConfigDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault("serve.addr", d.Serve.Addr)
	v.SetDefault("serve.site_url", d.Serve.SiteURL)
	v.SetDefault("serve.allow_all_origins", d.Serve.AllowAllOrigins)
	v.SetDefault("serve.shutdown_timeout", d.Serve.ShutdownTimeout)
	v.SetDefault("output.format", string(d.Output.Format))
	v.SetDefault("output.prefix", d.Output.Prefix)
}

// loadConfig decodes the merged flag, env, file and default settings.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// execute runs rootCmd and reports a failure once on its error stream.
func execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute())
}
