package commands

import (
	"fmt"

	"ebs/internal/store"

	"github.com/spf13/cobra"
)

var addEstimatorCmd = &cobra.Command{
	Use:   "add-estimator",
	Short: "Add an estimator",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		return withStore(func(st *store.Store) error {
			_, err := st.AddEstimator(name)
			return err
		})
	},
}

var rmEstimatorCmd = &cobra.Command{
	Use:   "rm-estimator",
	Short: "Remove an estimator and all its tasks and events",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		return withStore(func(st *store.Store) error {
			if err := st.RemoveEstimator(name); err != nil {
				return err
			}
			fmt.Printf("Removed estimator '%s'.\n", name)
			return nil
		})
	},
}

func init() {
	addEstimatorCmd.Flags().String("name", "", "name of the new estimator")
	_ = addEstimatorCmd.MarkFlagRequired("name")

	rmEstimatorCmd.Flags().String("name", "", "name of the estimator to remove")
	_ = rmEstimatorCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(addEstimatorCmd, rmEstimatorCmd)
}
