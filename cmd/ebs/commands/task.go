package commands

import (
	"fmt"
	"strings"

	"ebs/internal/estimator"
	"ebs/internal/store"

	"github.com/spf13/cobra"
)

var addTaskCmd = &cobra.Command{
	Use:   "add-task",
	Short: "Add a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("estimator")
		id, _ := cmd.Flags().GetString("id")
		description, _ := cmd.Flags().GetString("description")
		priority, _ := cmd.Flags().GetInt("priority")
		estimate, _ := cmd.Flags().GetFloat64("estimate")
		actual, _ := cmd.Flags().GetFloat64("actual")
		dateStr, _ := cmd.Flags().GetString("date")

		date, err := dateFlag(dateStr)
		if err != nil {
			return err
		}
		if estimate < 0 {
			return fmt.Errorf("estimate must not be negative")
		}

		return withStore(func(st *store.Store) error {
			if id != "" && st.TaskExists(id) {
				return fmt.Errorf("task exists: %s", id)
			}
			e, err := st.GetEstimator(name)
			if err != nil {
				return err
			}
			e.Tasks = append(e.Tasks, &estimator.Task{
				ID:          id,
				Description: description,
				Priority:    priority,
				Estimate:    estimate,
				Actual:      actual,
				Date:        date,
			})
			return nil
		})
	},
}

var updateTaskCmd = &cobra.Command{
	Use:   "update-task",
	Short: "Update fields of an existing task",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")

		return withStore(func(st *store.Store) error {
			_, task, err := st.GetTask(id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("description") {
				task.Description, _ = cmd.Flags().GetString("description")
			}
			if cmd.Flags().Changed("priority") {
				task.Priority, _ = cmd.Flags().GetInt("priority")
			}
			if cmd.Flags().Changed("estimate") {
				task.Estimate, _ = cmd.Flags().GetFloat64("estimate")
			}
			if cmd.Flags().Changed("actual") {
				task.Actual, _ = cmd.Flags().GetFloat64("actual")
			}
			if cmd.Flags().Changed("date") {
				dateStr, _ := cmd.Flags().GetString("date")
				date, err := dateFlag(dateStr)
				if err != nil {
					return err
				}
				task.Date = date
			}
			return nil
		})
	},
}

var rmTaskCmd = &cobra.Command{
	Use:   "rm-task",
	Short: "Remove a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")
		return withStore(func(st *store.Store) error {
			return st.RemoveTask(id)
		})
	},
}

var lsTaskCmd = &cobra.Command{
	Use:   "ls-tasks",
	Short: "List tasks",
	Long: `List tasks. For each matching task, the beginning of the line shows 'C' if
the task is complete, followed by the integer priority of the task, if set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		estimators, _ := cmd.Flags().GetStringArray("estimator")
		ids, _ := cmd.Flags().GetStringArray("id")
		descriptions, _ := cmd.Flags().GetStringArray("description")
		priority, _ := cmd.Flags().GetInt("priority")

		complete, err := tristate(cmd, "complete", "incomplete")
		if err != nil {
			return err
		}
		estimated, err := tristate(cmd, "estimated", "unestimated")
		if err != nil {
			return err
		}

		include := func(e *estimator.Estimator, t *estimator.Task) bool {
			if len(estimators) > 0 && !contains(estimators, e.Name) {
				return false
			}
			if len(ids) > 0 && !contains(ids, t.ID) {
				return false
			}
			if len(descriptions) > 0 && !matchesAny(t.Description, descriptions) {
				return false
			}
			if cmd.Flags().Changed("priority") && t.Priority > priority {
				return false
			}
			if complete != nil && t.Completed() != *complete {
				return false
			}
			if estimated != nil && (t.Estimate > 0) != *estimated {
				return false
			}
			return true
		}

		return withStore(func(st *store.Store) error {
			st.Tasks(func(e *estimator.Estimator, t *estimator.Task) bool {
				if include(e, t) {
					marker := " "
					if t.Completed() {
						marker = "C"
					}
					prio := " "
					if t.Priority > 0 {
						prio = fmt.Sprintf("%d", t.Priority)
					}
					fmt.Printf("%s%s %s: %s\n", marker, prio, t.ID, t.Description)
				}
				return true
			})
			return nil
		})
	},
}

// tristate resolves a pair of mutually exclusive boolean flags into
// true/false/unset.
func tristate(cmd *cobra.Command, trueFlag, falseFlag string) (*bool, error) {
	trueSet := cmd.Flags().Changed(trueFlag)
	falseSet := cmd.Flags().Changed(falseFlag)
	if trueSet && falseSet {
		return nil, fmt.Errorf("--%s and --%s are mutually exclusive", trueFlag, falseFlag)
	}
	if trueSet {
		v := true
		return &v, nil
	}
	if falseSet {
		v := false
		return &v, nil
	}
	return nil, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func matchesAny(description string, substrings []string) bool {
	lower := strings.ToLower(description)
	for _, s := range substrings {
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

func init() {
	addTaskCmd.Flags().String("estimator", "", "estimator (assignee) of the task")
	addTaskCmd.Flags().String("id", "", "unique identifier for the task")
	addTaskCmd.Flags().String("description", "", "description of the task")
	addTaskCmd.Flags().Int("priority", 0, "priority of the task (1 is highest)")
	addTaskCmd.Flags().Float64("estimate", 0, "estimated cost of the task in hours")
	addTaskCmd.Flags().Float64("actual", 0, "actual cost of the task in hours")
	addTaskCmd.Flags().String("date", "", "date of the estimate (YYYY-MM-DD)")
	_ = addTaskCmd.MarkFlagRequired("estimator")
	_ = addTaskCmd.MarkFlagRequired("estimate")

	updateTaskCmd.Flags().String("id", "", "identifier of the task to update")
	updateTaskCmd.Flags().String("description", "", "new description")
	updateTaskCmd.Flags().Int("priority", 0, "new priority")
	updateTaskCmd.Flags().Float64("estimate", 0, "new estimated cost in hours")
	updateTaskCmd.Flags().Float64("actual", 0, "new actual cost in hours")
	updateTaskCmd.Flags().String("date", "", "new estimate date (YYYY-MM-DD)")
	_ = updateTaskCmd.MarkFlagRequired("id")

	rmTaskCmd.Flags().String("id", "", "identifier of the task to remove")
	_ = rmTaskCmd.MarkFlagRequired("id")

	lsTaskCmd.Flags().StringArray("estimator", nil, "limit to the given estimator")
	lsTaskCmd.Flags().StringArray("id", nil, "limit to the given task id")
	lsTaskCmd.Flags().StringArray("description", nil, "limit to tasks with any of the substrings in description (ignores case)")
	lsTaskCmd.Flags().Int("priority", 0, "limit to tasks with the given priority (or higher)")
	lsTaskCmd.Flags().Bool("complete", false, "limit to completed tasks")
	lsTaskCmd.Flags().Bool("incomplete", false, "limit to incomplete tasks")
	lsTaskCmd.Flags().Bool("estimated", false, "limit to tasks with estimates")
	lsTaskCmd.Flags().Bool("unestimated", false, "limit to tasks without estimates")

	rootCmd.AddCommand(addTaskCmd, updateTaskCmd, rmTaskCmd, lsTaskCmd)
}
