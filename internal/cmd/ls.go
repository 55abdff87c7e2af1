package cmd

import (
	"context"
	"fmt"

	"glance/pkg/types"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List folders and media at a gallery path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := types.Path{}
		if len(args) == 1 {
			var err error
			path, err = types.ParsePath(args[0])
			if err != nil {
				return err
			}
		}

		ctx := context.Background()
		out := cmd.OutOrStdout()

		if path.IsTrash() {
			listing, err := client.TrashContent(ctx)
			if err != nil {
				return err
			}
			for _, item := range listing.Files {
				fmt.Fprintln(out, item.Filename)
			}
			fmt.Fprintf(out, "%d item(s) in trash\n", listing.Count)
			return nil
		}

		listing, err := client.Folders(ctx, path)
		if err != nil {
			return err
		}
		for _, folder := range listing.Folders {
			fmt.Fprintf(out, "%s/ (%d items)\n", folder.Name, folder.Count)
		}
		for _, item := range listing.Files {
			fmt.Fprintln(out, item.Filename)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
