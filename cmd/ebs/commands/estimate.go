package commands

import (
	"fmt"
	"time"

	"ebs/internal/calendar"
	"ebs/internal/simulation"
	"ebs/internal/store"
	"ebs/internal/visuals"

	"github.com/spf13/cobra"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Project ship dates using Monte Carlo simulations",
	RunE: func(cmd *cobra.Command, args []string) error {
		exponent, _ := cmd.Flags().GetInt("exponent")
		priority, _ := cmd.Flags().GetInt("priority")
		maxAgeDays, _ := cmd.Flags().GetInt("max-age")
		xlsxPath, _ := cmd.Flags().GetString("xlsx")

		return withStore(func(st *store.Store) error {
			results, err := simulation.RunProjections(st.Estimators, simulation.Config{
				Exponent:    exponent,
				Priority:    priority,
				MaxAge:      time.Duration(maxAgeDays) * 24 * time.Hour,
				HoursPerDay: cfg.HoursPerDay,
				WorkDays:    cfg.WorkDays,
				Holidays:    st.Holidays,
			})
			if err != nil {
				return err
			}

			for _, res := range results {
				fmt.Println(res.Estimator)
				if res.Skipped != "" {
					fmt.Println("  " + res.Skipped)
					continue
				}
				for _, row := range res.Rows {
					fmt.Printf("  %2.0f%% : %s\n", row.Percentile, row.Date)
				}
			}

			if xlsxPath != "" {
				if err := visuals.WriteProjectionWorkbook(xlsxPath, results); err != nil {
					return err
				}
				fmt.Printf("Wrote report to %s\n", xlsxPath)
			}
			return nil
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Calculate velocity statistics for each estimator",
	RunE: func(cmd *cobra.Command, args []string) error {
		maxAgeDays, _ := cmd.Flags().GetInt("max-age")
		maxAge := time.Duration(maxAgeDays) * 24 * time.Hour

		return withStore(func(st *store.Store) error {
			today := calendar.Today()
			for _, e := range st.Estimators {
				fmt.Println(e.Name)
				vs, err := e.ComputeVelocityStats(maxAge, today)
				if err != nil {
					fmt.Println("  " + err.Error())
					continue
				}
				fmt.Printf("  n: %d, min: %.2f, max: %.2f, mean: %.2f, stddev: %.2f\n",
					vs.N, vs.Min, vs.Max, vs.Mean, vs.Stddev)
			}
			return nil
		})
	},
}

func init() {
	estimateCmd.Flags().IntP("exponent", "e", 2, "perform 10^N rounds of simulation (N >= 2)")
	estimateCmd.Flags().Int("priority", 0, "exclude pending tasks with a priority greater than this")
	estimateCmd.Flags().Int("max-age", 0, "only use estimates at most this many days old")
	estimateCmd.Flags().String("xlsx", "", "also write the report to an xlsx workbook")

	statsCmd.Flags().Int("max-age", 0, "only use estimates at most this many days old")

	rootCmd.AddCommand(estimateCmd, statsCmd)
}
