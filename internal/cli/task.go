package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowx/internal/lifecycle"
	"flowx/internal/model"
	"flowx/internal/task"
)

func newTaskCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long:  `Schedule, list, complete and fail tasks.`,
	}
	cmd.AddCommand(
		newTaskAddCmd(rt),
		newTaskListCmd(rt),
		newTaskShowCmd(rt),
		newTaskResolveCmd(rt, "done", "Mark a task as done", lifecycle.MarkDone),
		newTaskResolveCmd(rt, "fail", "Mark a task as not completed", lifecycle.MarkFailed),
	)
	return cmd
}

func newTaskAddCmd(rt *runtime) *cobra.Command {
	var (
		date          string
		start         string
		duration      int
		priority      string
		notes         string
		alert         string
		allowConflict bool
	)

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Schedule a task",
		Long: `Schedule a task on a date. A start time inside your working hours is
refused unless --allow-conflict is given.

Examples:
  flowx task add "Gym" --date 2025-03-10 --start 18:30 --duration 60 --priority High
  flowx task add "Groceries" --date "next saturday" --start 10:00
  flowx task add "Call bank" --start 12:00 --alert before-completion --allow-conflict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := rt.container
			day, err := rt.resolveDate(date)
			if err != nil {
				return err
			}

			out, err := c.TaskUseCase.Create(cmd.Context(), task.CreateInput{
				Name:          args[0],
				Date:          day,
				StartTime:     model.TimeOfDay(start),
				Duration:      duration,
				Priority:      model.Priority(priority),
				Notes:         notes,
				AlertTime:     model.AlertMode(alert),
				AllowConflict: allowConflict,
			})
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Task created: %s\n", out.Task.ID)
			if out.Conflict != nil {
				fmt.Fprintf(w, "Note: starts inside working hours %s-%s\n", out.Conflict.Start, out.Conflict.End)
			}
			if out.CalendarLink != "" {
				fmt.Fprintf(w, "Calendar: %s\n", out.CalendarLink)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "today", "date as YYYY-MM-DD, today, tomorrow, \"in N days\" or \"next <weekday>\"")
	cmd.Flags().StringVarP(&start, "start", "s", "", "start time as HH:MM")
	cmd.Flags().IntVar(&duration, "duration", 30, "duration in minutes")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(model.PriorityMedium), "priority (Low, Medium, High)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().StringVar(&alert, "alert", string(model.AlertAtStart), "alert mode (at-start, before-completion)")
	cmd.Flags().BoolVar(&allowConflict, "allow-conflict", false, "accept a start time inside working hours")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newTaskListCmd(rt *runtime) *cobra.Command {
	var (
		date   string
		status string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List tasks",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := task.ListInput{Status: model.Status(status)}
			if date != "" {
				day, err := rt.resolveDate(date)
				if err != nil {
					return err
				}
				input.Date = day
			}
			tasks, err := rt.container.TaskUseCase.List(cmd.Context(), input)
			if err != nil {
				return err
			}
			printTasks(cmd.OutOrStdout(), tasks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "only tasks on this date")
	cmd.Flags().StringVar(&status, "status", "", "only tasks in this status")
	return cmd
}

func newTaskShowCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show a task and its countdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			t, err := rt.container.TaskUseCase.Get(ctx, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printTask(w, t)

			if !model.IsTerminal(t.Status) {
				state, err := rt.container.TaskUseCase.Countdown(ctx, t.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "Countdown:  %s\n", state.Label)
			}
			return nil
		},
	}
}

func newTaskResolveCmd(rt *runtime, use, short string, event lifecycle.Event) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [task-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := rt.container.TaskUseCase.UpdateStatus(cmd.Context(), task.UpdateStatusInput{
				ID:    args[0],
				Event: event,
			})
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %s: %s\n", t.ID, t.Status)
			return nil
		},
	}
}
