// Package cli implements the farmlog command line client: local task
// logging and views over the snapshot store, plus the authenticated
// mirror to the server.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"farmlog/pkg/apiclient"
	"farmlog/pkg/localstore"
)

var rootCmd = &cobra.Command{
	Use:   "farmlog",
	Short: "Record and browse farm activity logs",
	Long: `farmlog records farm activities (maintenance, irrigation, fertigation,
pesticide or herbicide application, plantation) against a field, keeps
them available offline, and mirrors them to your account on the server.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openStore opens the local snapshot store from the configured data dir.
func openStore() (*localstore.Store, Config) {
	cfg := loadConfig()
	return localstore.Open(cfg.DataDir), cfg
}

// sessionClient returns a client for the stored session, or an error when
// no one is logged in.
func sessionClient(store *localstore.Store, cfg Config) (*apiclient.Client, localstore.Session, error) {
	sess, ok := store.LoadSession()
	if !ok {
		return nil, localstore.Session{}, fmt.Errorf("not logged in (run: farmlog login <username> <password>)")
	}
	return apiclient.New(cfg.ServerURL, sess.Token), sess, nil
}
