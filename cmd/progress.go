package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursely/internal/catalog"
	"github.com/abhisek/coursely/internal/progress"
	"github.com/abhisek/coursely/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show course progress and quiz results",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		userID := resolveUserID(cmd)

		enrollments, err := st.EnrollmentRepo().ListForUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("list enrollments: %w", err)
		}
		if len(enrollments) == 0 {
			fmt.Println("No enrollments yet. Run `coursely` to browse courses.")
			return nil
		}

		tracker := progress.NewTracker(st.ProgressRepo())

		for _, enr := range enrollments {
			course, err := catalog.CourseByID(enr.CourseID)
			if err != nil {
				// Enrollment for a course no longer in the catalog.
				fmt.Printf("%s (removed from catalog)\n\n", enr.CourseID)
				continue
			}

			lessonIDs := make([]string, len(course.Lessons))
			for i, l := range course.Lessons {
				lessonIDs[i] = l.ID
			}
			snap, err := tracker.Recompute(ctx, enr.EnrollmentID, lessonIDs)
			if err != nil {
				return fmt.Errorf("compute progress for %s: %w", course.ID, err)
			}

			fmt.Println(course.Title)
			fmt.Printf("  %s %.0f%% (%d/%d lessons)\n",
				renderBar(snap.Percentage(), 24), snap.Percentage(),
				snap.CompletedLessons, snap.TotalLessons)

			if course.Quiz != nil {
				best, err := st.AttemptRepo().BestAttempt(ctx, course.Quiz.ID, userID)
				if err != nil {
					return fmt.Errorf("load attempts for %s: %w", course.ID, err)
				}
				used, err := st.AttemptRepo().PriorAttempts(ctx, course.Quiz.ID, userID)
				if err != nil {
					return fmt.Errorf("count attempts for %s: %w", course.ID, err)
				}
				switch {
				case best == nil:
					fmt.Printf("  quiz: not attempted (%d used)\n", used)
				case best.Passed:
					fmt.Printf("  quiz: passed with %d (%d attempts used)\n", best.Score, used)
				default:
					fmt.Printf("  quiz: best score %d, not passed (%d attempts used)\n", best.Score, used)
				}
			}

			cert, err := st.CertificateRepo().ForUserCourse(ctx, userID, course.ID)
			if err != nil {
				return fmt.Errorf("load certificate for %s: %w", course.ID, err)
			}
			if cert != nil {
				fmt.Printf("  certificate: %s (issued %s)\n", cert.Number, cert.IssuedAt.Format("2006-01-02"))
			}
			fmt.Println()
		}
		return nil
	},
}

// renderBar draws a simple text progress bar for CLI output.
func renderBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
