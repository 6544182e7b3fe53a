package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/coursely/ent"
	entcertificate "github.com/abhisek/coursely/ent/certificate"
	"github.com/abhisek/coursely/internal/certificate"
)

// CertificateRepo issues and looks up completion certificates. The
// unique (user, course) index makes Issue idempotent at the database
// level: a second issuance for the same pair returns the first row.
type CertificateRepo struct {
	client *ent.Client
}

func toCertificate(row *ent.Certificate) certificate.Certificate {
	return certificate.Certificate{
		ID:         fmt.Sprintf("%d", row.ID),
		UserID:     row.UserID,
		CourseID:   row.CourseID,
		Number:     row.CertificateNumber,
		IssuedAt:   row.IssuedAt,
		FinalScore: row.FinalScore,
		QuizScore:  row.QuizScore,
		Status:     row.Status,
	}
}

// newCertificateNumber produces a human-readable certificate number.
func newCertificateNumber() string {
	return "CRS-" + strings.ToUpper(uuid.NewString()[:8])
}

// Issue creates a certificate for the user and course, or returns the
// existing one if already issued.
func (r *CertificateRepo) Issue(ctx context.Context, userID, courseID string, finalScore, quizScore int) (certificate.Certificate, error) {
	existing, err := r.ForUserCourse(ctx, userID, courseID)
	if err != nil {
		return certificate.Certificate{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	row, err := r.client.Certificate.Create().
		SetUserID(userID).
		SetCourseID(courseID).
		SetCertificateNumber(newCertificateNumber()).
		SetFinalScore(finalScore).
		SetQuizScore(quizScore).
		SetStatus("issued").
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, lookupErr := r.ForUserCourse(ctx, userID, courseID)
			if lookupErr == nil && existing != nil {
				return *existing, nil
			}
		}
		return certificate.Certificate{}, fmt.Errorf("save certificate: %w", err)
	}
	return toCertificate(row), nil
}

// ForUserCourse returns the certificate for a user and course, or nil if
// none has been issued.
func (r *CertificateRepo) ForUserCourse(ctx context.Context, userID, courseID string) (*certificate.Certificate, error) {
	row, err := r.client.Certificate.Query().
		Where(
			entcertificate.UserID(userID),
			entcertificate.CourseID(courseID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query certificate: %w", err)
	}
	cert := toCertificate(row)
	return &cert, nil
}

// ListForUser returns all certificates earned by a user, newest first.
func (r *CertificateRepo) ListForUser(ctx context.Context, userID string) ([]certificate.Certificate, error) {
	rows, err := r.client.Certificate.Query().
		Where(entcertificate.UserID(userID)).
		Order(ent.Desc(entcertificate.FieldIssuedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query certificates: %w", err)
	}

	certs := make([]certificate.Certificate, 0, len(rows))
	for _, row := range rows {
		certs = append(certs, toCertificate(row))
	}
	return certs, nil
}
