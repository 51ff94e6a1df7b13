package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Replace the local log with the server's copy",
	Long: `Pull your account's task list from the server and replace the local
snapshot with it. The server is the source of truth; there is no merge.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg := openStore()
		defer store.Flush()

		client, sess, err := sessionClient(store, cfg)
		if err != nil {
			return err
		}
		tasks, err := client.ListTasks()
		if err != nil {
			return fmt.Errorf("fetching tasks: %w", err)
		}
		store.Replace(tasks)
		fmt.Printf("Synced %d record(s) for %s\n", len(tasks), sess.Username)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
