package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tuntap",
	Short: "Create and inspect TUN/TAP devices",
	Long: `Tuntap creates virtual network interfaces on Linux.

A TUN device is a layer 3 interface exchanging raw IP packets with
user space; a TAP device is a layer 2 interface exchanging Ethernet
frames and can be bridged. The open command creates a device, optionally
configures the link, and holds it until interrupted.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// GetLogger returns the configured logger
func GetLogger() *zap.Logger {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return logger
}
