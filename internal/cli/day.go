package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDayCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show a day's tasks, score and feedback",
		Long: `Show the tasks of a date (default today) with the day's efficiency
score. Viewing a day refreshes its performance record.

Examples:
  flowx day
  flowx day yesterday
  flowx day 2025-03-10`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := rt.container
			expr := "today"
			if len(args) == 1 {
				expr = args[0]
			}
			date, err := rt.resolveDate(expr)
			if err != nil {
				return err
			}

			out, err := c.TaskUseCase.Day(cmd.Context(), date)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			kind := "day off"
			if out.WorkDay {
				kind = "work day"
			}
			fmt.Fprintf(w, "%s (%s)\n", out.Date, kind)
			printTasks(w, out.Tasks)
			fmt.Fprintf(w, "Score: %d%%  done %d  late %d  missed %d  pending %d\n",
				out.Score, out.Breakdown.Done, out.Breakdown.Late, out.Breakdown.Missed, out.Breakdown.Pending)
			if out.Feedback != "" {
				fmt.Fprintln(w, out.Feedback)
			}
			return nil
		},
	}
}

func newHistoryCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the performance ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := rt.container.TaskUseCase.Performance(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !out.Summary.HasData {
				fmt.Fprintln(w, "No performance data yet")
				return nil
			}
			printRecords(w, out.Records)
			fmt.Fprintf(w, "Peak %d%%  average %d%%  over %d days, %d tasks\n",
				out.Summary.Peak, out.Summary.Average, out.Summary.Count, out.Summary.TotalTasks)
			return nil
		},
	}
}
