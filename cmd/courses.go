package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursely/internal/catalog"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse the course catalog",
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all courses (optionally filtered by category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		var courses []catalog.Course
		if category != "" {
			courses = catalog.ByCategory(catalog.Category(category))
			if len(courses) == 0 {
				return fmt.Errorf("no courses found for category %q", category)
			}
		} else {
			courses = catalog.Courses()
		}

		var lastCategory catalog.Category
		for _, course := range courses {
			if course.Category != lastCategory {
				if lastCategory != "" {
					fmt.Println()
				}
				fmt.Println(catalog.CategoryDisplayName(course.Category))
				fmt.Println(strings.Repeat("-", 40))
				lastCategory = course.Category
			}

			price := "free"
			if course.PriceCents > 0 {
				price = fmt.Sprintf("$%d.%02d", course.PriceCents/100, course.PriceCents%100)
			}
			quiz := ""
			if course.Quiz != nil {
				quiz = ", final quiz"
			}
			fmt.Printf("  %-24s %s (%d lessons%s, %s)\n",
				course.ID, course.Title, len(course.Lessons), quiz, price)
		}
		return nil
	},
}

var coursesShowCmd = &cobra.Command{
	Use:   "show <course-id>",
	Short: "Show a course's lessons and quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		course, err := catalog.CourseByID(args[0])
		if err != nil {
			return err
		}

		fmt.Println(course.Title)
		fmt.Println(strings.Repeat("=", len(course.Title)))
		fmt.Println(course.Description)
		fmt.Println()

		fmt.Println("Lessons:")
		for i, lesson := range course.Lessons {
			access := ""
			if lesson.Free {
				access = " [free]"
			}
			fmt.Printf("  %2d. %s (%d min)%s\n", i+1, lesson.Title, lesson.DurationMins, access)
		}

		if q := course.Quiz; q != nil {
			fmt.Println()
			fmt.Printf("Final quiz: %s\n", q.Title)
			fmt.Printf("  %d questions, passing score %d\n", len(q.Questions), q.PassingScore)
			if q.TimeLimitMinutes > 0 {
				fmt.Printf("  time limit %d minutes\n", q.TimeLimitMinutes)
			}
			if q.MaxAttempts > 0 {
				fmt.Printf("  up to %d attempts\n", q.MaxAttempts)
			}
		}
		return nil
	},
}

func init() {
	coursesListCmd.Flags().String("category", "", "Filter by category")
	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesShowCmd)
}
