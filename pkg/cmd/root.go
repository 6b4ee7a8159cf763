package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var RootCmd = &cobra.Command{
	Use:   "crypto-list",
	Short: "crypto price chart service",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	RootCmd.PersistentFlags().String("config", "", "config file")
	RootCmd.PersistentFlags().String("exchange", "", "market data exchange (kraken or binance)")
}

func Execute() {
	viper.SetEnvPrefix("CRYPTO_LIST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.WithError(err).Error("failed to load .env")
		}
	}

	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("command failed")
	}
}
