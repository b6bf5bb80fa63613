package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"flowx/internal/model"
)

func printTasks(out io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks")
		return
	}
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSTART\tMIN\tPRIORITY\tSTATUS\tNAME")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			t.ID, t.Date, t.StartTime, t.Duration, t.Priority, t.Status, t.Name)
	}
	_ = w.Flush()
}

func printTask(out io.Writer, t model.Task) {
	fmt.Fprintf(out, "ID:         %s\n", t.ID)
	fmt.Fprintf(out, "Name:       %s\n", t.Name)
	fmt.Fprintf(out, "When:       %s %s (%d min)\n", t.Date, t.StartTime, t.Duration)
	fmt.Fprintf(out, "Priority:   %s\n", t.Priority)
	fmt.Fprintf(out, "Status:     %s\n", t.Status)
	fmt.Fprintf(out, "Alert:      %s\n", t.AlertTime)
	if t.Notes != "" {
		fmt.Fprintf(out, "Notes:      %s\n", t.Notes)
	}
	if t.VoiceReminder != "" {
		fmt.Fprintf(out, "Reminder:   %s\n", t.VoiceReminder)
	}
}

func printRecords(out io.Writer, records []model.PerformanceRecord) {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSCORE\tDONE\tTOTAL")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%d%%\t%d\t%d\n", r.Date, r.Score, r.CompletedTasks, r.TotalTasks)
	}
	_ = w.Flush()
}

func printProfile(out io.Writer, p model.UserProfile) {
	days := make([]string, 0, len(p.WorkingDays))
	for _, d := range p.WorkingDays {
		days = append(days, string(d))
	}
	fmt.Fprintf(out, "User:        %s\n", p.Username)
	fmt.Fprintf(out, "Profession:  %s\n", p.DisplayProfession())
	fmt.Fprintf(out, "Work days:   %s\n", strings.Join(days, ", "))
	fmt.Fprintf(out, "Hours:       %s-%s\n", p.RegularHours.Start, p.RegularHours.End)
	for _, e := range p.ExtraHours {
		fmt.Fprintf(out, "Extra:       %s %s-%s\n", e.Day, e.Start, e.End)
	}
	if !p.OnboardingComplete {
		fmt.Fprintln(out, "Onboarding:  pending")
	}
}
