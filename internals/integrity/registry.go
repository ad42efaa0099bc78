// Package integrity maintains referential consistency across school-scoped
// collections. The store enforces no foreign keys and no cross-table cascade
// triggers, so every repair performed on delete is registered here as an
// explicit rule and executed by one generic executor.
package integrity

// Action is the repair applied to a dependent collection when its parent row
// is deleted.
type Action int

const (
	// ActionDelete soft-deletes dependent rows outright (junctions and other
	// rows that are meaningless without their parent).
	ActionDelete Action = iota

	// ActionNullify clears the dependent's reference column, leaving the row
	// alive with the broken link surfaced to the caller.
	ActionNullify
)

// Entity describes one collection: its table and the column names the
// executor needs to scope, resolve and soft-delete rows.
type Entity struct {
	Type          string // entity type name, e.g. "field"
	Table         string // table name, e.g. "fields"
	IDColumn      string // primary key column, e.g. "field_id"
	SchoolColumn  string // tenant column, e.g. "field_school_id"
	DeletedColumn string // soft-delete column, e.g. "field_deleted_at"
}

// Rule registers one dependent relationship of a parent entity type.
// RefColumn is the column on the dependent's table that holds the parent id.
type Rule struct {
	Parent    string
	Dependent string
	RefColumn string
	Action    Action
}

// Registry holds all entity descriptors and cascade rules. Rules are fixed at
// design time; nothing here is data-driven.
type Registry struct {
	entities map[string]Entity
	byParent map[string][]Rule
}

func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[string]Entity),
		byParent: make(map[string][]Rule),
	}
}

// RegisterEntity adds an entity descriptor. Registering the same type twice
// overwrites the previous descriptor.
func (r *Registry) RegisterEntity(e Entity) {
	r.entities[e.Type] = e
}

// RegisterRule adds a cascade rule. Rules for the same parent run in
// registration order.
func (r *Registry) RegisterRule(rule Rule) {
	r.byParent[rule.Parent] = append(r.byParent[rule.Parent], rule)
}

// EntityOf returns the descriptor for an entity type.
func (r *Registry) EntityOf(entityType string) (Entity, bool) {
	e, ok := r.entities[entityType]
	return e, ok
}

// RulesFor returns the cascade rules registered for a parent type, in order.
func (r *Registry) RulesFor(parentType string) []Rule {
	return r.byParent[parentType]
}

// HasRules reports whether a parent type has any registered dependents.
func (r *Registry) HasRules(parentType string) bool {
	return len(r.byParent[parentType]) > 0
}

// Entity type names. Matching the wire-level entity naming used by the
// request layer.
const (
	TypeSchool             = "school"
	TypeUser               = "user"
	TypeTeacher            = "teacher"
	TypeField              = "field"
	TypeTeacherField       = "teacher_field"
	TypeSchedule           = "schedule"
	TypeLevel              = "level"
	TypeGroup              = "group"
	TypeGroupCoordinator   = "group_coordinator"
	TypeTeacherCoordinator = "teacher_coordinator"
	TypeSubject            = "subject"
	TypeSession            = "session"
)

// DefaultRegistry builds the full cascade table for the scheduling domain.
//
// Deleting a Schedule is deliberately absent: levels referencing a schedule
// block its deletion at the controller, they are not cascaded. Structurally
// similar Level deletion IS cascaded. The asymmetry is intentional.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	for _, e := range []Entity{
		{TypeSchool, "schools", "school_id", "school_id", "school_deleted_at"},
		{TypeUser, "users", "user_id", "user_school_id", "user_deleted_at"},
		{TypeTeacher, "teachers", "teacher_id", "teacher_school_id", "teacher_deleted_at"},
		{TypeField, "fields", "field_id", "field_school_id", "field_deleted_at"},
		{TypeTeacherField, "teacher_fields", "teacher_field_id", "teacher_field_school_id", "teacher_field_deleted_at"},
		{TypeSchedule, "schedules", "schedule_id", "schedule_school_id", "schedule_deleted_at"},
		{TypeLevel, "levels", "level_id", "level_school_id", "level_deleted_at"},
		{TypeGroup, "groups", "group_id", "group_school_id", "group_deleted_at"},
		{TypeGroupCoordinator, "group_coordinators", "group_coordinator_id", "group_coordinator_school_id", "group_coordinator_deleted_at"},
		{TypeTeacherCoordinator, "teacher_coordinators", "teacher_coordinator_id", "teacher_coordinator_school_id", "teacher_coordinator_deleted_at"},
		{TypeSubject, "subjects", "subject_id", "subject_school_id", "subject_deleted_at"},
		{TypeSession, "sessions", "session_id", "session_school_id", "session_deleted_at"},
	} {
		r.RegisterEntity(e)
	}

	// Field: junctions go, subjects survive with the link cleared. Sessions
	// holding a removed junction are repaired by the teacher_field rules
	// during recursion.
	r.RegisterRule(Rule{TypeField, TypeTeacherField, "teacher_field_field_id", ActionDelete})
	r.RegisterRule(Rule{TypeField, TypeSubject, "subject_field_id", ActionNullify})

	// Level: groups, subjects and sessions are meaningless without it.
	r.RegisterRule(Rule{TypeLevel, TypeGroup, "group_level_id", ActionDelete})
	r.RegisterRule(Rule{TypeLevel, TypeSubject, "subject_level_id", ActionDelete})
	r.RegisterRule(Rule{TypeLevel, TypeSession, "session_level_id", ActionDelete})

	// Group: sessions belong to exactly one group (the column is NOT NULL)
	// and coordinator assignments go with it; session refs to the removed
	// assignments are repaired by the group_coordinator rules during
	// recursion.
	r.RegisterRule(Rule{TypeGroup, TypeSession, "session_group_id", ActionDelete})
	r.RegisterRule(Rule{TypeGroup, TypeGroupCoordinator, "group_coordinator_group_id", ActionDelete})

	// Teacher: both junction kinds, by teacher.
	r.RegisterRule(Rule{TypeTeacher, TypeTeacherField, "teacher_field_teacher_id", ActionDelete})
	r.RegisterRule(Rule{TypeTeacher, TypeTeacherCoordinator, "teacher_coordinator_teacher_id", ActionDelete})

	// User: the teacher record (transitively its junctions), plus every
	// assignment where the user acts as coordinator.
	r.RegisterRule(Rule{TypeUser, TypeTeacher, "teacher_user_id", ActionDelete})
	r.RegisterRule(Rule{TypeUser, TypeGroupCoordinator, "group_coordinator_coordinator_id", ActionDelete})
	r.RegisterRule(Rule{TypeUser, TypeTeacherCoordinator, "teacher_coordinator_coordinator_id", ActionDelete})

	// Junction removals leave sessions alive with the slot unassigned.
	r.RegisterRule(Rule{TypeSubject, TypeSession, "session_subject_id", ActionNullify})
	r.RegisterRule(Rule{TypeTeacherField, TypeSession, "session_teacher_field_id", ActionNullify})
	r.RegisterRule(Rule{TypeTeacherCoordinator, TypeSession, "session_teacher_coordinator_id", ActionNullify})
	r.RegisterRule(Rule{TypeGroupCoordinator, TypeSession, "session_group_coordinator_id", ActionNullify})

	return r
}
