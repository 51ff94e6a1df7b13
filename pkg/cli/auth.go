package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"farmlog/pkg/apiclient"
)

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create an account on the server and log in",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg := openStore()
		client := apiclient.New(cfg.ServerURL, "")
		if err := client.Register(args[0], args[1]); err != nil {
			return fmt.Errorf("registering: %w", err)
		}
		// register logs you straight in
		token, err := client.Login(args[0], args[1])
		if err != nil {
			return fmt.Errorf("logging in after register: %w", err)
		}
		if err := store.SaveSession(token, args[0]); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Registered and logged in as %s\n", args[0])
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in to the server",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg := openStore()
		token, err := apiclient.New(cfg.ServerURL, "").Login(args[0], args[1])
		if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}
		if err := store.SaveSession(token, args[0]); err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Logged in as %s\n", args[0])
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session (local task log is kept)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := openStore()
		if err := store.ClearSession(); err != nil {
			return fmt.Errorf("clearing session: %w", err)
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd)
}
