package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"glance/pkg/types"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store gallery credentials",
	Long: `Prompts for a username and password, verifies them against the
server, and stores them for later commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(cmd.InOrStdin())

		fmt.Fprint(cmd.OutOrStdout(), "Username: ")
		user, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		pass, err := reader.ReadString('\n')
		if err != nil {
			return err
		}

		if err := sess.Set(strings.TrimSpace(user), strings.TrimSpace(pass)); err != nil {
			return err
		}

		// verify against the server before declaring success
		if _, err := client.Folders(context.Background(), types.Path{}); err != nil {
			if clearErr := sess.Clear(); clearErr != nil {
				fmt.Fprintf(os.Stderr, "⚠️ clearing credentials: %v\n", clearErr)
			}
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Logged in.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
