package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qpost/go-qpost-server/global"
)

var configFile string

func check(e error) {
	if e != nil {
		fmt.Printf("%v\n", e.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "qpostctl",
	Short:   "qpostctl administers the qpost mail store",
	Long:    `qpostctl administers the qpost mail store: inspect or clear the persisted mail collection and list the configured user directory.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		check(global.LoadConfig(configFile))
	},
	Run: func(cmd *cobra.Command, args []string) {
		// empty
	},
}

func main() {
	Execute()
}

func Execute() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "conf.yaml", "Configuration file path")
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}
