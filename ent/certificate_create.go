// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursely/ent/certificate"
)

// CertificateCreate is the builder for creating a Certificate entity.
type CertificateCreate struct {
	config
	mutation *CertificateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CertificateCreate) SetUserID(v string) *CertificateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *CertificateCreate) SetCourseID(v string) *CertificateCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetCertificateNumber sets the "certificate_number" field.
func (_c *CertificateCreate) SetCertificateNumber(v string) *CertificateCreate {
	_c.mutation.SetCertificateNumber(v)
	return _c
}

// SetIssuedAt sets the "issued_at" field.
func (_c *CertificateCreate) SetIssuedAt(v time.Time) *CertificateCreate {
	_c.mutation.SetIssuedAt(v)
	return _c
}

// SetNillableIssuedAt sets the "issued_at" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableIssuedAt(v *time.Time) *CertificateCreate {
	if v != nil {
		_c.SetIssuedAt(*v)
	}
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *CertificateCreate) SetFinalScore(v int) *CertificateCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableFinalScore(v *int) *CertificateCreate {
	if v != nil {
		_c.SetFinalScore(*v)
	}
	return _c
}

// SetQuizScore sets the "quiz_score" field.
func (_c *CertificateCreate) SetQuizScore(v int) *CertificateCreate {
	_c.mutation.SetQuizScore(v)
	return _c
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableQuizScore(v *int) *CertificateCreate {
	if v != nil {
		_c.SetQuizScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CertificateCreate) SetStatus(v string) *CertificateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CertificateCreate) SetNillableStatus(v *string) *CertificateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// Mutation returns the CertificateMutation object of the builder.
func (_c *CertificateCreate) Mutation() *CertificateMutation {
	return _c.mutation
}

// Save creates the Certificate in the database.
func (_c *CertificateCreate) Save(ctx context.Context) (*Certificate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CertificateCreate) SaveX(ctx context.Context) *Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CertificateCreate) defaults() {
	if _, ok := _c.mutation.IssuedAt(); !ok {
		v := certificate.DefaultIssuedAt()
		_c.mutation.SetIssuedAt(v)
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		v := certificate.DefaultFinalScore
		_c.mutation.SetFinalScore(v)
	}
	if _, ok := _c.mutation.QuizScore(); !ok {
		v := certificate.DefaultQuizScore
		_c.mutation.SetQuizScore(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := certificate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CertificateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Certificate.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := certificate.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Certificate.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Certificate.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := certificate.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Certificate.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CertificateNumber(); !ok {
		return &ValidationError{Name: "certificate_number", err: errors.New(`ent: missing required field "Certificate.certificate_number"`)}
	}
	if v, ok := _c.mutation.CertificateNumber(); ok {
		if err := certificate.CertificateNumberValidator(v); err != nil {
			return &ValidationError{Name: "certificate_number", err: fmt.Errorf(`ent: validator failed for field "Certificate.certificate_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssuedAt(); !ok {
		return &ValidationError{Name: "issued_at", err: errors.New(`ent: missing required field "Certificate.issued_at"`)}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "Certificate.final_score"`)}
	}
	if _, ok := _c.mutation.QuizScore(); !ok {
		return &ValidationError{Name: "quiz_score", err: errors.New(`ent: missing required field "Certificate.quiz_score"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Certificate.status"`)}
	}
	return nil
}

func (_c *CertificateCreate) sqlSave(ctx context.Context) (*Certificate, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CertificateCreate) createSpec() (*Certificate, *sqlgraph.CreateSpec) {
	var (
		_node = &Certificate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(certificate.Table, sqlgraph.NewFieldSpec(certificate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(certificate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(certificate.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.CertificateNumber(); ok {
		_spec.SetField(certificate.FieldCertificateNumber, field.TypeString, value)
		_node.CertificateNumber = value
	}
	if value, ok := _c.mutation.IssuedAt(); ok {
		_spec.SetField(certificate.FieldIssuedAt, field.TypeTime, value)
		_node.IssuedAt = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(certificate.FieldFinalScore, field.TypeInt, value)
		_node.FinalScore = value
	}
	if value, ok := _c.mutation.QuizScore(); ok {
		_spec.SetField(certificate.FieldQuizScore, field.TypeInt, value)
		_node.QuizScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(certificate.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	return _node, _spec
}

// CertificateCreateBulk is the builder for creating many Certificate entities in bulk.
type CertificateCreateBulk struct {
	config
	err      error
	builders []*CertificateCreate
}

// Save creates the Certificate entities in the database.
func (_c *CertificateCreateBulk) Save(ctx context.Context) ([]*Certificate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Certificate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CertificateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CertificateCreateBulk) SaveX(ctx context.Context) []*Certificate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CertificateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CertificateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
