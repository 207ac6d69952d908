// Package main is the entry point for the hotelmerger CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	verbose bool
)

// rootCmd runs a one-shot merge and prints the result.
var rootCmd = &cobra.Command{
	Use:   "hotelmerger <hotel-ids> <destination-ids>",
	Short: "Merge hotel records from multiple suppliers into clean profiles",
	Long: `hotelmerger pulls hotel records from every configured supplier,
normalizes them into one shape, merges records that describe the same
hotel and prints the result.

Both arguments are comma-separated ID lists. Pass "none" to leave a
dimension unfiltered:

  hotelmerger iJhz,SjyX 5432
  hotelmerger none none`,
	Args: cobra.ExactArgs(2),
	RunE: runMerge,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./hotelmerger.yaml or ~/.config/hotelmerger/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hotelmerger")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hotelmerger"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
