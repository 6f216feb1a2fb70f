package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"clinictrack/internal/auth"
	"clinictrack/internal/config"
	"clinictrack/internal/db"
	"clinictrack/internal/models"
	"clinictrack/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login [role]",
	Short: "Sign in as faculty, clinic staff, or a student",
	Long: `Sign in under one of three roles: faculty, clinic, or student.
Opens an interactive form by default; pass --email and --password for
non-interactive sign-in.

Examples:
  clinictrack login clinic
  clinictrack login faculty --email faculty@klh.edu.in --password faculty123`,
	Args: cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		role := strings.ToLower(strings.TrimSpace(args[0]))
		if !models.ValidRole(role) {
			fmt.Printf("Error: unknown role '%s'. Use faculty, clinic, or student.\n", args[0])
			return
		}

		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		noUI, _ := cmd.Flags().GetBool("no-ui")

		if email == "" || password == "" {
			if noUI {
				fmt.Println("Error: --email and --password are required with --no-ui")
				return
			}
			if err := tui.RunLoginTUI(role); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		cfg := config.Load()
		session, err := auth.Authenticate(auth.NewStaticProvider(), email, password, role, cfg.Domain)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := db.SaveSession(session); err != nil {
			fmt.Printf("Error saving session: %v\n", err)
			return
		}

		fmt.Printf("✅ Welcome %s! Logged in as %s\n", session.Name, session.Role)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session, err := db.CurrentSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("Not logged in.")
			return
		}

		if err := db.ClearSession(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("👋 Logged out successfully")
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current login session",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		session, err := db.CurrentSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("Not logged in.")
			return
		}

		fmt.Printf("%s <%s>\n", session.Name, session.Email)
		fmt.Printf("Role: %s\n", session.Role)
		fmt.Printf("Logged in at: %s\n", session.LoginTime.Format("02 Jan 2006 15:04"))
	}),
}

func init() {
	loginCmd.Flags().StringP("email", "e", "", "Institutional email address")
	loginCmd.Flags().StringP("password", "p", "", "Password")
	loginCmd.Flags().Bool("no-ui", false, "Sign in without the interactive form")
}
