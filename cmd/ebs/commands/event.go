package commands

import (
	"fmt"
	"sort"

	"ebs/internal/calendar"
	"ebs/internal/estimator"
	"ebs/internal/store"

	"github.com/spf13/cobra"
)

var addEventCmd = &cobra.Command{
	Use:   "add-event",
	Short: "Add an event",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("estimator")
		dateStr, _ := cmd.Flags().GetString("date")
		cost, _ := cmd.Flags().GetFloat64("cost")
		description, _ := cmd.Flags().GetString("description")

		date, err := dateFlag(dateStr)
		if err != nil {
			return err
		}
		if cost > cfg.HoursPerDay {
			return fmt.Errorf("event cannot have cost greater than one day (%.1f hours)", cfg.HoursPerDay)
		}

		return withStore(func(st *store.Store) error {
			e, err := st.GetEstimator(name)
			if err != nil {
				return err
			}
			e.Events = append(e.Events, &estimator.Event{
				Date:        date,
				Cost:        cost,
				Description: description,
			})
			return nil
		})
	},
}

var lsEventCmd = &cobra.Command{
	Use:   "ls-events",
	Short: "List upcoming events by estimator",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store.Store) error {
			for _, e := range st.Estimators {
				fmt.Println(e.Name)
				events := e.EventsFrom(calendar.Today())
				sort.Slice(events, func(i, j int) bool {
					return events[i].Date.Before(events[j].Date)
				})
				for _, ev := range events {
					desc := ""
					if ev.Description != "" {
						desc = fmt.Sprintf("(%s)", ev.Description)
					}
					fmt.Printf("  %s %4.2fh %s\n", ev.Date, ev.Cost, desc)
				}
				if len(events) == 0 {
					fmt.Println("  No events")
				}
			}
			return nil
		})
	},
}

func init() {
	addEventCmd.Flags().String("estimator", "", "estimator occupied by the event")
	addEventCmd.Flags().String("date", "", "date of the event (YYYY-MM-DD)")
	addEventCmd.Flags().Float64("cost", 0, "cost of the event in hours")
	addEventCmd.Flags().String("description", "", "description of the event")
	_ = addEventCmd.MarkFlagRequired("estimator")
	_ = addEventCmd.MarkFlagRequired("date")
	_ = addEventCmd.MarkFlagRequired("cost")

	rootCmd.AddCommand(addEventCmd, lsEventCmd)
}
