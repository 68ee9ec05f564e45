package commands

import (
	"fmt"

	"ebs/internal/store"
	"ebs/internal/tracker"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync tasks and time from the configured Bugzilla tracker",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := tracker.NewClient(cfg.Tracker)
		return withStore(func(st *store.Store) error {
			syncer := &tracker.Syncer{Store: st}
			actions, err := syncer.Sync(client, cfg.Tracker.ParseSearchArgs())
			if err != nil {
				return err
			}
			for _, a := range actions {
				fmt.Println(a)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
