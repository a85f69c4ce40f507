package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"iconview/internal/config"
	"iconview/internal/log"
)

var (
	version = "dev"

	cfgFile string
	debug   bool
	cfg     *config.Config
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "iconview",
		Short:   "Browse and preview icon indexes",
		Long:    `Iconview browses a precomputed icon index (icon_db.json) and previews the image files it points at.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				log.Warnf("could not load config: %v; using defaults", err)
				cfg = config.New()
			}
			if debug {
				cfg.Behavior.Debug = true
			}
			log.SetDebug(cfg.Behavior.Debug)
		},
		// No Run function - default behavior is to show help
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/iconview/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(guiCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(thumbsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
