package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "Inspect and manage the gallery trash",
}

var trashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trashed items",
	RunE: func(cmd *cobra.Command, args []string) error {
		listing, err := client.TrashContent(context.Background())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, item := range listing.Files {
			if item.OriginalPathFromMetadata != "" {
				fmt.Fprintf(out, "%s (from %s)\n", item.Filename, item.OriginalPathFromMetadata)
			} else {
				fmt.Fprintln(out, item.Filename)
			}
		}
		fmt.Fprintf(out, "%d item(s) in trash\n", listing.Count)
		return nil
	},
}

var trashEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Permanently delete everything in the trash",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt(cmd, "Permanently delete ALL items in the trash? This action cannot be undone.") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		if err := client.EmptyTrash(context.Background()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Trash emptied successfully.")
		return nil
	},
}

var trashRestoreAllCmd = &cobra.Command{
	Use:   "restore-all",
	Short: "Restore every trashed item to its original location",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt(cmd, "Restore ALL items from the trash to their original locations?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
		if err := client.RestoreAll(context.Background()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All items restored.")
		return nil
	},
}

var assumeYes bool

func confirmPrompt(cmd *cobra.Command, question string) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	trashCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip confirmation prompts")
	trashCmd.AddCommand(trashListCmd, trashEmptyCmd, trashRestoreAllCmd)
	rootCmd.AddCommand(trashCmd)
}
