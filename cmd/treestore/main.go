package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treestore-io/treestore/config"
	"github.com/treestore-io/treestore/internal/util"
	"github.com/treestore-io/treestore/persist"
)

func rootCmd() *cobra.Command {
	var (
		verbose    int
		configPath string
	)

	r := &cobra.Command{
		Use:   "treestore",
		Short: "Inspect and manage tree snapshots.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose < 1 {
				verbose = 1
			}
			if verbose > 5 {
				verbose = 5
			}
			logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
			util.InitializeLogger(logLvls[verbose-1])
		},
	}
	r.PersistentFlags().IntVarP(&verbose, "verbose", "v", 3, "Log verbosity level between 1 (error) and 5 (trace)")
	r.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	r.AddCommand(infoCmd(), dumpCmd(), copyCmd(), listCmd(&configPath))

	return r
}

// loadConfig merges the optional config file over defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.NewConfig(nil), nil
	}
	return config.NewConfigFromFile(path)
}

// openStore picks the snapshot store backend from config.
func openStore(cfg *config.Config) (persist.Store, error) {
	switch cfg.Store {
	case config.OptBadgerStore:
		return persist.OpenBadgerStore(cfg.BadgerDir)
	default:
		return persist.NewFileStore(cfg.SnapshotDir), nil
	}
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
