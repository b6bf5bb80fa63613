package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"flowx/internal/model"
	"flowx/internal/profile"
)

func newLoginCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Start a session, creating the profile on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.container.ProfileUseCase.Login(cmd.Context(), profile.LoginInput{Username: args[0]})
			if err != nil {
				return fmt.Errorf("failed to log in: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", p.Username)
			if !p.OnboardingComplete {
				fmt.Fprintln(cmd.OutOrStdout(), "Run `flowx onboard` to set your working hours.")
			}
			return nil
		},
	}
}

func newLogoutCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.container.ProfileUseCase.Logout(cmd.Context()); err != nil {
				return fmt.Errorf("failed to log out: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.container.ProfileUseCase.Current(cmd.Context())
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newOnboardCmd(rt *runtime) *cobra.Command {
	var (
		professionName string
		customName     string
		days           []string
		hours          string
		extras         []string
	)

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Answer the onboarding questionnaire",
		Long: `Set profession, working days and working hours. Flags left out keep
the current value.

Examples:
  flowx onboard --profession Employee --days Monday,Tuesday,Wednesday --hours 09:00-17:00
  flowx onboard --profession Other --custom Nurse --extra "Saturday 10:00-12:00"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := profile.OnboardingInput{
				Profession:       model.Profession(professionName),
				CustomProfession: customName,
			}
			if cmd.Flags().Changed("days") {
				input.WorkingDays = make([]model.DayOfWeek, 0, len(days))
				for _, d := range days {
					input.WorkingDays = append(input.WorkingDays, model.DayOfWeek(strings.TrimSpace(d)))
				}
			}
			if hours != "" {
				start, end, err := parseWindow(hours)
				if err != nil {
					return err
				}
				input.RegularHours = model.WorkingHours{Start: start, End: end}
			}
			if cmd.Flags().Changed("extra") {
				input.ExtraHours = make([]profile.ExtraHourInput, 0, len(extras))
				for _, raw := range extras {
					day, window, ok := strings.Cut(strings.TrimSpace(raw), " ")
					if !ok {
						return fmt.Errorf("extra hours %q: want \"<Day> HH:MM-HH:MM\"", raw)
					}
					start, end, err := parseWindow(window)
					if err != nil {
						return err
					}
					input.ExtraHours = append(input.ExtraHours, profile.ExtraHourInput{
						Day:   model.DayOfWeek(day),
						Start: start,
						End:   end,
					})
				}
			}

			p, err := rt.container.ProfileUseCase.CompleteOnboarding(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to save onboarding: %w", err)
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringVar(&professionName, "profession", "", "profession (Student, Employee, Doctor, Worker, Freelancer, Business Owner, Other)")
	cmd.Flags().StringVar(&customName, "custom", "", "custom profession, used with --profession Other")
	cmd.Flags().StringSliceVar(&days, "days", nil, "working days, comma separated")
	cmd.Flags().StringVar(&hours, "hours", "", "regular hours as HH:MM-HH:MM")
	cmd.Flags().StringArrayVar(&extras, "extra", nil, "extra hours as \"<Day> HH:MM-HH:MM\", repeatable")
	return cmd
}

func newSuggestCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest off-hours tasks for your profession",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := rt.container.TaskUseCase.Suggestions(cmd.Context())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No suggestions right now")
				return nil
			}
			for _, n := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", n)
			}
			return nil
		},
	}
}

func parseWindow(raw string) (model.TimeOfDay, model.TimeOfDay, error) {
	s, e, ok := strings.Cut(raw, "-")
	if !ok {
		return "", "", fmt.Errorf("hours %q: want HH:MM-HH:MM", raw)
	}
	start, err := model.ParseTimeOfDay(strings.TrimSpace(s))
	if err != nil {
		return "", "", err
	}
	end, err := model.ParseTimeOfDay(strings.TrimSpace(e))
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}
