// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackchuka/toasts/internal/config"
	"github.com/jackchuka/toasts/internal/logging"
	"github.com/jackchuka/toasts/tui"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "toasts",
	Short: "Toast notifications demo for the terminal",
	Long: `
  ╔╦╗╔═╗╔═╗╔═╗╔╦╗╔═╗
   ║ ║ ║╠═╣╚═╗ ║ ╚═╗
   ╩ ╚═╝╩ ╩╚═╝ ╩ ╚═╝

  Stacked toast notifications in the bottom-right corner.
  Press the button to show a toast, hover the stack to hold
  it, click it to restart the timers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(logging.Config{
			FilePath: cfg.Log.File,
			Level:    logging.ParseLevel(cfg.Log.Level),
			Format:   logging.ParseFormat(cfg.Log.Format),
		}); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer logging.Shutdown()

		logging.Get().Info("starting", "config", cfgFile, "hide_timeout", cfg.Toast.HideTimeout)

		return tui.Run(cfg)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/toasts/config.yaml)")
	rootCmd.Flags().Duration("timeout", 0, "auto-hide timeout (overrides config file)")
	rootCmd.Flags().String("log-file", "", "write logs to this file (overrides config file)")
	rootCmd.Flags().String("log-level", "", "debug, info, warn or error (overrides config file)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over the config file
	if d, _ := rootCmd.Flags().GetDuration("timeout"); d > 0 {
		cfg.Toast.HideTimeout = d
	}
	if f, _ := rootCmd.Flags().GetString("log-file"); f != "" {
		cfg.Log.File = config.ExpandHome(f)
	}
	if l, _ := rootCmd.Flags().GetString("log-level"); l != "" {
		cfg.Log.Level = l
	}
}
