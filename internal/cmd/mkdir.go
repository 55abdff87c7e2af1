package cmd

import (
	"context"
	"fmt"

	"glance/pkg/types"

	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a gallery folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := types.ParsePath(args[0])
		if err != nil {
			return err
		}
		if path.IsRoot() {
			return fmt.Errorf("folder name cannot be empty")
		}

		if err := client.CreateFolder(context.Background(), path.Parent(), path[len(path)-1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s.\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
}
