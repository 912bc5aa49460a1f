// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingua/ent/predicate"
	"github.com/abhisek/lingua/ent/rewardevent"
)

// RewardEventUpdate is the builder for updating RewardEvent entities.
type RewardEventUpdate struct {
	config
	hooks    []Hook
	mutation *RewardEventMutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdate) Where(ps ...predicate.RewardEvent) *RewardEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RewardEventUpdate) SetSessionID(v string) *RewardEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableSessionID(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *RewardEventUpdate) SetLessonID(v string) *RewardEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableLessonID(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *RewardEventUpdate) SetReward(v float64) *RewardEventUpdate {
	_u.mutation.ResetReward()
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableReward(v *float64) *RewardEventUpdate {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// AddReward adds value to the "reward" field.
func (_u *RewardEventUpdate) AddReward(v float64) *RewardEventUpdate {
	_u.mutation.AddReward(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *RewardEventUpdate) SetAccuracy(v float64) *RewardEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableAccuracy(v *float64) *RewardEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *RewardEventUpdate) AddAccuracy(v float64) *RewardEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetCreditRatio sets the "credit_ratio" field.
func (_u *RewardEventUpdate) SetCreditRatio(v float64) *RewardEventUpdate {
	_u.mutation.ResetCreditRatio()
	_u.mutation.SetCreditRatio(v)
	return _u
}

// SetNillableCreditRatio sets the "credit_ratio" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableCreditRatio(v *float64) *RewardEventUpdate {
	if v != nil {
		_u.SetCreditRatio(*v)
	}
	return _u
}

// AddCreditRatio adds value to the "credit_ratio" field.
func (_u *RewardEventUpdate) AddCreditRatio(v float64) *RewardEventUpdate {
	_u.mutation.AddCreditRatio(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *RewardEventUpdate) SetXpAwarded(v int) *RewardEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableXpAwarded(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *RewardEventUpdate) AddXpAwarded(v int) *RewardEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetFirstAttempt sets the "first_attempt" field.
func (_u *RewardEventUpdate) SetFirstAttempt(v bool) *RewardEventUpdate {
	_u.mutation.SetFirstAttempt(v)
	return _u
}

// SetNillableFirstAttempt sets the "first_attempt" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableFirstAttempt(v *bool) *RewardEventUpdate {
	if v != nil {
		_u.SetFirstAttempt(*v)
	}
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdate) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RewardEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RewardEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := rewardevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := rewardevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(rewardevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(rewardevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(rewardevent.FieldReward, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReward(); ok {
		_spec.AddField(rewardevent.FieldReward, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(rewardevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(rewardevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreditRatio(); ok {
		_spec.SetField(rewardevent.FieldCreditRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditRatio(); ok {
		_spec.AddField(rewardevent.FieldCreditRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(rewardevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(rewardevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstAttempt(); ok {
		_spec.SetField(rewardevent.FieldFirstAttempt, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RewardEventUpdateOne is the builder for updating a single RewardEvent entity.
type RewardEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RewardEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RewardEventUpdateOne) SetSessionID(v string) *RewardEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableSessionID(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *RewardEventUpdateOne) SetLessonID(v string) *RewardEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableLessonID(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *RewardEventUpdateOne) SetReward(v float64) *RewardEventUpdateOne {
	_u.mutation.ResetReward()
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableReward(v *float64) *RewardEventUpdateOne {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// AddReward adds value to the "reward" field.
func (_u *RewardEventUpdateOne) AddReward(v float64) *RewardEventUpdateOne {
	_u.mutation.AddReward(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *RewardEventUpdateOne) SetAccuracy(v float64) *RewardEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableAccuracy(v *float64) *RewardEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *RewardEventUpdateOne) AddAccuracy(v float64) *RewardEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetCreditRatio sets the "credit_ratio" field.
func (_u *RewardEventUpdateOne) SetCreditRatio(v float64) *RewardEventUpdateOne {
	_u.mutation.ResetCreditRatio()
	_u.mutation.SetCreditRatio(v)
	return _u
}

// SetNillableCreditRatio sets the "credit_ratio" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableCreditRatio(v *float64) *RewardEventUpdateOne {
	if v != nil {
		_u.SetCreditRatio(*v)
	}
	return _u
}

// AddCreditRatio adds value to the "credit_ratio" field.
func (_u *RewardEventUpdateOne) AddCreditRatio(v float64) *RewardEventUpdateOne {
	_u.mutation.AddCreditRatio(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *RewardEventUpdateOne) SetXpAwarded(v int) *RewardEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableXpAwarded(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *RewardEventUpdateOne) AddXpAwarded(v int) *RewardEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetFirstAttempt sets the "first_attempt" field.
func (_u *RewardEventUpdateOne) SetFirstAttempt(v bool) *RewardEventUpdateOne {
	_u.mutation.SetFirstAttempt(v)
	return _u
}

// SetNillableFirstAttempt sets the "first_attempt" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableFirstAttempt(v *bool) *RewardEventUpdateOne {
	if v != nil {
		_u.SetFirstAttempt(*v)
	}
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdateOne) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdateOne) Where(ps ...predicate.RewardEvent) *RewardEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RewardEventUpdateOne) Select(field string, fields ...string) *RewardEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RewardEvent entity.
func (_u *RewardEventUpdateOne) Save(ctx context.Context) (*RewardEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdateOne) SaveX(ctx context.Context) *RewardEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RewardEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := rewardevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := rewardevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdateOne) sqlSave(ctx context.Context) (_node *RewardEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RewardEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rewardevent.FieldID)
		for _, f := range fields {
			if !rewardevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rewardevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(rewardevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(rewardevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(rewardevent.FieldReward, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReward(); ok {
		_spec.AddField(rewardevent.FieldReward, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(rewardevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(rewardevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreditRatio(); ok {
		_spec.SetField(rewardevent.FieldCreditRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCreditRatio(); ok {
		_spec.AddField(rewardevent.FieldCreditRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(rewardevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(rewardevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstAttempt(); ok {
		_spec.SetField(rewardevent.FieldFirstAttempt, field.TypeBool, value)
	}
	_node = &RewardEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
