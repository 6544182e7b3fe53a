// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/coursely/ent/answerevent"
	"github.com/abhisek/coursely/ent/attempt"
	"github.com/abhisek/coursely/ent/certificate"
	"github.com/abhisek/coursely/ent/enrollment"
	"github.com/abhisek/coursely/ent/lessonprogress"
	"github.com/abhisek/coursely/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescAttemptID is the schema descriptor for attempt_id field.
	answereventDescAttemptID := answereventFields[0].Descriptor()
	// answerevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	answerevent.AttemptIDValidator = answereventDescAttemptID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescOptionID is the schema descriptor for option_id field.
	answereventDescOptionID := answereventFields[2].Descriptor()
	// answerevent.OptionIDValidator is a validator for the "option_id" field. It is called by the builders before save.
	answerevent.OptionIDValidator = answereventDescOptionID.Validators[0].(func(string) error)
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescAttemptID is the schema descriptor for attempt_id field.
	attemptDescAttemptID := attemptFields[0].Descriptor()
	// attempt.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attempt.AttemptIDValidator = attemptDescAttemptID.Validators[0].(func(string) error)
	// attemptDescQuizID is the schema descriptor for quiz_id field.
	attemptDescQuizID := attemptFields[1].Descriptor()
	// attempt.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	attempt.QuizIDValidator = attemptDescQuizID.Validators[0].(func(string) error)
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[2].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescAttemptNumber is the schema descriptor for attempt_number field.
	attemptDescAttemptNumber := attemptFields[3].Descriptor()
	// attempt.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	attempt.AttemptNumberValidator = attemptDescAttemptNumber.Validators[0].(func(int) error)
	// attemptDescStatus is the schema descriptor for status field.
	attemptDescStatus := attemptFields[4].Descriptor()
	// attempt.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	attempt.StatusValidator = attemptDescStatus.Validators[0].(func(string) error)
	// attemptDescStartedAt is the schema descriptor for started_at field.
	attemptDescStartedAt := attemptFields[5].Descriptor()
	// attempt.DefaultStartedAt holds the default value on creation for the started_at field.
	attempt.DefaultStartedAt = attemptDescStartedAt.Default.(func() time.Time)
	// attemptDescScore is the schema descriptor for score field.
	attemptDescScore := attemptFields[7].Descriptor()
	// attempt.DefaultScore holds the default value on creation for the score field.
	attempt.DefaultScore = attemptDescScore.Default.(int)
	// attemptDescPassed is the schema descriptor for passed field.
	attemptDescPassed := attemptFields[8].Descriptor()
	// attempt.DefaultPassed holds the default value on creation for the passed field.
	attempt.DefaultPassed = attemptDescPassed.Default.(bool)
	certificateFields := schema.Certificate{}.Fields()
	_ = certificateFields
	// certificateDescUserID is the schema descriptor for user_id field.
	certificateDescUserID := certificateFields[0].Descriptor()
	// certificate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	certificate.UserIDValidator = certificateDescUserID.Validators[0].(func(string) error)
	// certificateDescCourseID is the schema descriptor for course_id field.
	certificateDescCourseID := certificateFields[1].Descriptor()
	// certificate.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	certificate.CourseIDValidator = certificateDescCourseID.Validators[0].(func(string) error)
	// certificateDescCertificateNumber is the schema descriptor for certificate_number field.
	certificateDescCertificateNumber := certificateFields[2].Descriptor()
	// certificate.CertificateNumberValidator is a validator for the "certificate_number" field. It is called by the builders before save.
	certificate.CertificateNumberValidator = certificateDescCertificateNumber.Validators[0].(func(string) error)
	// certificateDescIssuedAt is the schema descriptor for issued_at field.
	certificateDescIssuedAt := certificateFields[3].Descriptor()
	// certificate.DefaultIssuedAt holds the default value on creation for the issued_at field.
	certificate.DefaultIssuedAt = certificateDescIssuedAt.Default.(func() time.Time)
	// certificateDescFinalScore is the schema descriptor for final_score field.
	certificateDescFinalScore := certificateFields[4].Descriptor()
	// certificate.DefaultFinalScore holds the default value on creation for the final_score field.
	certificate.DefaultFinalScore = certificateDescFinalScore.Default.(int)
	// certificateDescQuizScore is the schema descriptor for quiz_score field.
	certificateDescQuizScore := certificateFields[5].Descriptor()
	// certificate.DefaultQuizScore holds the default value on creation for the quiz_score field.
	certificate.DefaultQuizScore = certificateDescQuizScore.Default.(int)
	// certificateDescStatus is the schema descriptor for status field.
	certificateDescStatus := certificateFields[6].Descriptor()
	// certificate.DefaultStatus holds the default value on creation for the status field.
	certificate.DefaultStatus = certificateDescStatus.Default.(string)
	enrollmentFields := schema.Enrollment{}.Fields()
	_ = enrollmentFields
	// enrollmentDescEnrollmentID is the schema descriptor for enrollment_id field.
	enrollmentDescEnrollmentID := enrollmentFields[0].Descriptor()
	// enrollment.EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	enrollment.EnrollmentIDValidator = enrollmentDescEnrollmentID.Validators[0].(func(string) error)
	// enrollmentDescUserID is the schema descriptor for user_id field.
	enrollmentDescUserID := enrollmentFields[1].Descriptor()
	// enrollment.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	enrollment.UserIDValidator = enrollmentDescUserID.Validators[0].(func(string) error)
	// enrollmentDescCourseID is the schema descriptor for course_id field.
	enrollmentDescCourseID := enrollmentFields[2].Descriptor()
	// enrollment.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	enrollment.CourseIDValidator = enrollmentDescCourseID.Validators[0].(func(string) error)
	// enrollmentDescPaid is the schema descriptor for paid field.
	enrollmentDescPaid := enrollmentFields[3].Descriptor()
	// enrollment.DefaultPaid holds the default value on creation for the paid field.
	enrollment.DefaultPaid = enrollmentDescPaid.Default.(bool)
	// enrollmentDescEnrolledAt is the schema descriptor for enrolled_at field.
	enrollmentDescEnrolledAt := enrollmentFields[4].Descriptor()
	// enrollment.DefaultEnrolledAt holds the default value on creation for the enrolled_at field.
	enrollment.DefaultEnrolledAt = enrollmentDescEnrolledAt.Default.(func() time.Time)
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescEnrollmentID is the schema descriptor for enrollment_id field.
	lessonprogressDescEnrollmentID := lessonprogressFields[0].Descriptor()
	// lessonprogress.EnrollmentIDValidator is a validator for the "enrollment_id" field. It is called by the builders before save.
	lessonprogress.EnrollmentIDValidator = lessonprogressDescEnrollmentID.Validators[0].(func(string) error)
	// lessonprogressDescLessonID is the schema descriptor for lesson_id field.
	lessonprogressDescLessonID := lessonprogressFields[1].Descriptor()
	// lessonprogress.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonprogress.LessonIDValidator = lessonprogressDescLessonID.Validators[0].(func(string) error)
	// lessonprogressDescCompleted is the schema descriptor for completed field.
	lessonprogressDescCompleted := lessonprogressFields[2].Descriptor()
	// lessonprogress.DefaultCompleted holds the default value on creation for the completed field.
	lessonprogress.DefaultCompleted = lessonprogressDescCompleted.Default.(bool)
}
