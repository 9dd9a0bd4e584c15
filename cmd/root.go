package cmd

import (
	"fmt"
	"os"

	"fulfillment-portal/config"
	"fulfillment-portal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	envFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fulfillment-portal",
	Short: "Shipment request pricing and submission for the fulfillment client portal",
	Long: `Prices shipment lines against per-client prep, box and pallet pricing tables,
checks requested quantities against the client's inventory and records
shipment requests for review.

Run "fulfillment-portal serve" to start the HTTP API or
"fulfillment-portal quote" to price a line from a YAML pricing sheet.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.RunE = serveCmd.RunE

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, optional)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded outside production")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	cobra.CheckErr(viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")))
}

// initConfig reads in the .env file, config file and ENV variables if set.
func initConfig() {
	config.LoadEnv(envFile)
	if err := config.Init(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	initLogging()
}

func initLogging() {
	logfile := logging.LogFile(viper.GetString("log.dir"))
	if err := logging.InitLog(logfile, viper.GetString("log.level")); err != nil {
		log.Warnf("file logging disabled: %v", err)
	}
}
