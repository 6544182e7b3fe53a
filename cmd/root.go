package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursely/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "coursely",
	Short: "Terminal course platform",
	Long:  "Coursely — take courses, pass final quizzes and earn certificates, all in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COURSELY_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner ID (overrides COURSELY_USER env var)")

	rootCmd.AddCommand(coursesCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COURSELY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the learner ID from --user, COURSELY_USER, or the
// single-user default.
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("COURSELY_USER"); u != "" {
		return u
	}
	return "local"
}
