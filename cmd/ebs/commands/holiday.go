package commands

import (
	"fmt"
	"sort"

	"ebs/internal/calendar"
	"ebs/internal/store"

	"github.com/spf13/cobra"
)

var addHolidayCmd = &cobra.Command{
	Use:   "add-holiday",
	Short: "Add a store-wide holiday",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		date, err := dateFlag(dateStr)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			st.AddHoliday(date)
			return nil
		})
	},
}

var rmHolidayCmd = &cobra.Command{
	Use:   "rm-holiday",
	Short: "Remove a holiday",
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		date, err := dateFlag(dateStr)
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			st.RemoveHoliday(date)
			return nil
		})
	},
}

var lsHolidayCmd = &cobra.Command{
	Use:   "ls-holidays",
	Short: "List holidays",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			holidays := append([]calendar.Date(nil), st.Holidays...)
			sort.Slice(holidays, func(i, j int) bool {
				return holidays[i].Before(holidays[j])
			})
			for _, h := range holidays {
				fmt.Println(h)
			}
			return nil
		})
	},
}

func init() {
	addHolidayCmd.Flags().String("date", "", "date of the holiday (YYYY-MM-DD)")
	_ = addHolidayCmd.MarkFlagRequired("date")

	rmHolidayCmd.Flags().String("date", "", "date of the holiday (YYYY-MM-DD)")
	_ = rmHolidayCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(addHolidayCmd, rmHolidayCmd, lsHolidayCmd)
}
