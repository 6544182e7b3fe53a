package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/coursely/ent"
	entenrollment "github.com/abhisek/coursely/ent/enrollment"
)

// EnrollmentRepo persists course enrollments.
type EnrollmentRepo struct {
	client *ent.Client
}

// EnrollmentRecord is an enrollment row surfaced to callers.
type EnrollmentRecord struct {
	EnrollmentID string
	UserID       string
	CourseID     string
	Paid         bool
	EnrolledAt   time.Time
}

func toEnrollmentRecord(row *ent.Enrollment) EnrollmentRecord {
	return EnrollmentRecord{
		EnrollmentID: row.EnrollmentID,
		UserID:       row.UserID,
		CourseID:     row.CourseID,
		Paid:         row.Paid,
		EnrolledAt:   row.EnrolledAt,
	}
}

// Enroll creates an enrollment for the user in a course. Enrolling in a
// course the user is already enrolled in returns the existing record;
// the paid flag is upgraded but never downgraded.
func (r *EnrollmentRepo) Enroll(ctx context.Context, userID, courseID string, paid bool) (EnrollmentRecord, error) {
	existing, err := r.ForUserCourse(ctx, userID, courseID)
	if err != nil {
		return EnrollmentRecord{}, err
	}
	if existing != nil {
		if paid && !existing.Paid {
			return r.markPaid(ctx, existing.EnrollmentID)
		}
		return *existing, nil
	}

	row, err := r.client.Enrollment.Create().
		SetEnrollmentID(uuid.NewString()).
		SetUserID(userID).
		SetCourseID(courseID).
		SetPaid(paid).
		SetEnrolledAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// A racing enroll inserted first; surface that row instead.
			existing, lookupErr := r.ForUserCourse(ctx, userID, courseID)
			if lookupErr == nil && existing != nil {
				return *existing, nil
			}
		}
		return EnrollmentRecord{}, fmt.Errorf("save enrollment: %w", err)
	}
	return toEnrollmentRecord(row), nil
}

func (r *EnrollmentRepo) markPaid(ctx context.Context, enrollmentID string) (EnrollmentRecord, error) {
	_, err := r.client.Enrollment.Update().
		Where(entenrollment.EnrollmentID(enrollmentID)).
		SetPaid(true).
		Save(ctx)
	if err != nil {
		return EnrollmentRecord{}, fmt.Errorf("mark enrollment paid: %w", err)
	}
	row, err := r.client.Enrollment.Query().
		Where(entenrollment.EnrollmentID(enrollmentID)).
		Only(ctx)
	if err != nil {
		return EnrollmentRecord{}, fmt.Errorf("reload enrollment: %w", err)
	}
	return toEnrollmentRecord(row), nil
}

// ForUserCourse returns the user's enrollment in a course, or nil if the
// user is not enrolled.
func (r *EnrollmentRepo) ForUserCourse(ctx context.Context, userID, courseID string) (*EnrollmentRecord, error) {
	row, err := r.client.Enrollment.Query().
		Where(
			entenrollment.UserID(userID),
			entenrollment.CourseID(courseID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query enrollment: %w", err)
	}
	rec := toEnrollmentRecord(row)
	return &rec, nil
}

// ListForUser returns all of a user's enrollments, oldest first.
func (r *EnrollmentRepo) ListForUser(ctx context.Context, userID string) ([]EnrollmentRecord, error) {
	rows, err := r.client.Enrollment.Query().
		Where(entenrollment.UserID(userID)).
		Order(ent.Asc(entenrollment.FieldEnrolledAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query enrollments: %w", err)
	}

	records := make([]EnrollmentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, toEnrollmentRecord(row))
	}
	return records, nil
}
