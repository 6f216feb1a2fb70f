package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"clinictrack/internal/db"
	"clinictrack/internal/models"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "clinictrack",
	Short: "A CLI campus clinic visit tracker",
	Long: `clinictrack records and reviews campus clinic visits from the terminal.
Clinic staff log student entry and exit, faculty and students look up and
export visit records. All data stays in a local database.`,
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// withDB wraps a command function to initialize the database first
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initDB()
		fn(cmd, args)
	}
}

// requireSession returns the current login session, or nil after printing
// a hint. When role is non-empty the session must also hold that role.
func requireSession(role string) *models.Session {
	session, err := db.CurrentSession()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}
	if session == nil {
		fmt.Println("Not logged in. Use 'clinictrack login <role>' first.")
		return nil
	}
	if role != "" && session.Role != role {
		fmt.Printf("This command needs a %s session; you are logged in as %s.\n", role, session.Role)
		return nil
	}
	return session
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("clinictrack %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(visitCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}
