package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/treestore-io/treestore/namespace"
	"github.com/treestore-io/treestore/persist"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info snapshot-file",
		Short: "Print a snapshot's envelope metadata.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			info, err := namespace.InspectSnapshot(data)
			if err != nil {
				return err
			}
			fmt.Printf("id:       %s\n", info.ID)
			fmt.Printf("version:  %d\n", info.Version)
			fmt.Printf("saved at: %s\n", info.SavedAt.Format(time.RFC3339Nano))
			fmt.Printf("nodes:    %d\n", info.Nodes)
			return nil
		},
	}
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump snapshot-file",
		Short: "Print every node path in a snapshot with its payload size.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := persist.Load(args[0])
			if err != nil {
				return err
			}
			return tree.Walk(func(path string, node *namespace.Node) error {
				fmt.Printf("/%s\t%d bytes\t%d children\n", path, len(node.Data()), node.NumChildren())
				return nil
			})
		},
	}
}

func copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy src-snapshot dst-snapshot",
		Short: "Load a snapshot and re-save it to a new destination.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := persist.Load(args[0])
			if err != nil {
				return err
			}
			return persist.Save(args[1], tree)
		},
	}
}

func listCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots in the configured store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close() // nolint:errcheck

			names, err := store.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}
