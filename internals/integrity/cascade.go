package integrity

import (
	"fmt"

	"github.com/google/uuid"
)

// Store is the slice of the persistence layer the executor consumes. Every
// call is scoped to one school; soft-deleted rows are invisible to all of
// them. A GORM-backed implementation lives in store_gorm.go, tests use an
// in-memory fake.
type Store interface {
	// Exists reports whether a live row with the given id exists in-school.
	Exists(ent Entity, schoolID, id uuid.UUID) (bool, error)

	// FindRefIDs returns ids of live rows whose refColumn holds any of the
	// parent ids.
	FindRefIDs(ent Entity, refColumn string, schoolID uuid.UUID, parentIDs []uuid.UUID) ([]uuid.UUID, error)

	// DeleteWhereRef soft-deletes live rows whose refColumn holds any of the
	// parent ids, returning the number of rows affected.
	DeleteWhereRef(ent Entity, refColumn string, schoolID uuid.UUID, parentIDs []uuid.UUID) (int64, error)

	// NullifyRef clears refColumn on live rows pointing at any of the parent
	// ids, returning the number of rows affected.
	NullifyRef(ent Entity, refColumn string, schoolID uuid.UUID, parentIDs []uuid.UUID) (int64, error)

	// DeleteByID soft-deletes one live row, returning rows affected.
	DeleteByID(ent Entity, schoolID, id uuid.UUID) (int64, error)
}

// Engine executes the registered cascade rules. It holds no connection; the
// caller passes a Store bound to its own transaction so the whole delete and
// every repair either commit together or not at all.
type Engine struct {
	reg *Registry
}

func NewEngine(reg *Registry) *Engine {
	return &Engine{reg: reg}
}

// Registry returns the rule table the engine runs.
func (e *Engine) Registry() *Registry { return e.reg }

// Delete resolves the target row in-school, soft-deletes it and repairs every
// registered dependent. Returns ErrNotFound (and performs zero writes) when
// the filter matches nothing, so a second delete with the same filter is a
// no-op. Any failing step aborts the whole operation; partial repair is
// never reported as success.
func (e *Engine) Delete(st Store, entityType string, schoolID, id uuid.UUID) error {
	ent, ok := e.reg.EntityOf(entityType)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, entityType)
	}

	alive, err := st.Exists(ent, schoolID, id)
	if err != nil {
		return err
	}
	if !alive {
		return ErrNotFound
	}

	n, err := st.DeleteByID(ent, schoolID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		// Lost the race against a concurrent delete of the same row.
		return ErrNotFound
	}

	return e.repair(st, entityType, schoolID, []uuid.UUID{id})
}

// repair applies the cascade rules for rows of parentType that were just
// deleted.
//
// Ordering: for a delete rule the dependent ids are collected, the dependent
// rows are removed, and only then the dependent's own rules run with the
// collected ids. Parent operations come before grandchild repairs, junctions
// before leaf session columns.
func (e *Engine) repair(st Store, parentType string, schoolID uuid.UUID, parentIDs []uuid.UUID) error {
	if len(parentIDs) == 0 {
		return nil
	}

	for _, rule := range e.reg.RulesFor(parentType) {
		dep, ok := e.reg.EntityOf(rule.Dependent)
		if !ok {
			return fmt.Errorf("%w: %s (dependent of %s)", ErrUnknownEntity, rule.Dependent, parentType)
		}

		switch rule.Action {
		case ActionDelete:
			depIDs, err := st.FindRefIDs(dep, rule.RefColumn, schoolID, parentIDs)
			if err != nil {
				return fmt.Errorf("cascade %s->%s: %w", parentType, rule.Dependent, err)
			}
			if len(depIDs) == 0 {
				continue
			}
			if _, err := st.DeleteWhereRef(dep, rule.RefColumn, schoolID, parentIDs); err != nil {
				return fmt.Errorf("cascade %s->%s: %w", parentType, rule.Dependent, err)
			}
			if err := e.repair(st, rule.Dependent, schoolID, depIDs); err != nil {
				return err
			}

		case ActionNullify:
			if _, err := st.NullifyRef(dep, rule.RefColumn, schoolID, parentIDs); err != nil {
				return fmt.Errorf("nullify %s->%s.%s: %w", parentType, rule.Dependent, rule.RefColumn, err)
			}
		}
	}

	return nil
}
