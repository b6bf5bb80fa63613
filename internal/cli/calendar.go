package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"flowx/pkg/gcalendar"
)

func newCalendarCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Google Calendar mirroring",
	}
	cmd.AddCommand(newCalendarAuthCmd(rt))
	return cmd
}

func newCalendarAuthCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize desktop-app credentials and cache the token",
		Long: `Run once per machine when google_calendar.credentials_path points at an
OAuth desktop app file. Open the printed URL, sign in, and paste the code
back. The token is written to google_calendar.token_path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gc := rt.container.Config.GoogleCalendar
			if gc.CredentialsPath == "" {
				return gcalendar.ErrMissingCredentials
			}
			data, err := os.ReadFile(gc.CredentialsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file: %w", err)
			}
			flow, err := gcalendar.NewAuthFlow(data)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Open this URL and sign in:")
			fmt.Fprintln(w)
			fmt.Fprintln(w, flow.URL(uuid.NewString()))
			fmt.Fprintln(w)
			fmt.Fprint(w, "Authorization code: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil || code == "" {
				return errors.New("no authorization code entered")
			}

			tokenPath := gc.TokenPath
			if tokenPath == "" {
				tokenPath = "token.json"
			}
			if err := flow.Exchange(cmd.Context(), code, tokenPath); err != nil {
				return err
			}
			fmt.Fprintf(w, "\nToken saved to %s\n", tokenPath)
			if !gc.Enabled {
				fmt.Fprintln(w, "Set google_calendar.enabled to true to start mirroring tasks.")
			}
			return nil
		},
	}
}
