package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/coursely/ent"
	"github.com/abhisek/coursely/ent/lessonprogress"
)

// ProgressRepo persists per-lesson completion records.
type ProgressRepo struct {
	client *ent.Client
}

// FetchProgress returns the set of completed lesson IDs for an enrollment.
func (r *ProgressRepo) FetchProgress(ctx context.Context, enrollmentID string) (map[string]bool, error) {
	rows, err := r.client.LessonProgress.Query().
		Where(lessonprogress.EnrollmentID(enrollmentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lesson progress: %w", err)
	}

	completed := make(map[string]bool, len(rows))
	for _, row := range rows {
		if row.Completed {
			completed[row.LessonID] = true
		}
	}
	return completed, nil
}

// MarkCompleted records a lesson as completed. A lesson already marked
// completed stays completed; rows are never deleted.
func (r *ProgressRepo) MarkCompleted(ctx context.Context, enrollmentID, lessonID string) error {
	exists, err := r.client.LessonProgress.Query().
		Where(
			lessonprogress.EnrollmentID(enrollmentID),
			lessonprogress.LessonID(lessonID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check lesson progress: %w", err)
	}
	if exists {
		return nil
	}

	_, err = r.client.LessonProgress.Create().
		SetEnrollmentID(enrollmentID).
		SetLessonID(lessonID).
		SetCompleted(true).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		// A racing writer may have inserted the row between the
		// existence check and the create; that is still a success.
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("save lesson progress: %w", err)
	}
	return nil
}
