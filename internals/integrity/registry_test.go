package integrity_test

import (
	"testing"

	"sekolahku_backend/internals/integrity"
)

func TestNewRegistry(t *testing.T) {
	r := integrity.NewRegistry()
	if r == nil {
		t.Fatal("expected non-nil Registry")
	}
	if r.HasRules("field") {
		t.Error("empty registry should have no rules")
	}
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := integrity.NewRegistry()

	r.RegisterEntity(integrity.Entity{
		Type:          "field",
		Table:         "fields",
		IDColumn:      "field_id",
		SchoolColumn:  "field_school_id",
		DeletedColumn: "field_deleted_at",
	})
	r.RegisterRule(integrity.Rule{
		Parent:    "field",
		Dependent: "teacher_field",
		RefColumn: "teacher_field_field_id",
		Action:    integrity.ActionDelete,
	})

	ent, ok := r.EntityOf("field")
	if !ok {
		t.Fatal("expected field descriptor")
	}
	if ent.Table != "fields" {
		t.Errorf("expected table 'fields', got %q", ent.Table)
	}

	rules := r.RulesFor("field")
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if rules[0].RefColumn != "teacher_field_field_id" {
		t.Errorf("unexpected ref column %q", rules[0].RefColumn)
	}
	if _, ok := r.EntityOf("nope"); ok {
		t.Error("unknown type should not resolve")
	}
}

// ruleKey flattens a rule for comparison against the expected cascade table.
type ruleKey struct {
	dependent string
	refColumn string
	action    integrity.Action
}

func rulesOf(t *testing.T, r *integrity.Registry, parent string) map[ruleKey]bool {
	t.Helper()
	out := map[ruleKey]bool{}
	for _, rule := range r.RulesFor(parent) {
		out[ruleKey{rule.Dependent, rule.RefColumn, rule.Action}] = true
	}
	return out
}

func TestDefaultRegistry_CascadeTable(t *testing.T) {
	r := integrity.DefaultRegistry()

	cases := []struct {
		parent string
		want   []ruleKey
	}{
		{integrity.TypeField, []ruleKey{
			{integrity.TypeTeacherField, "teacher_field_field_id", integrity.ActionDelete},
			{integrity.TypeSubject, "subject_field_id", integrity.ActionNullify},
		}},
		{integrity.TypeLevel, []ruleKey{
			{integrity.TypeGroup, "group_level_id", integrity.ActionDelete},
			{integrity.TypeSubject, "subject_level_id", integrity.ActionDelete},
			{integrity.TypeSession, "session_level_id", integrity.ActionDelete},
		}},
		{integrity.TypeGroup, []ruleKey{
			{integrity.TypeSession, "session_group_id", integrity.ActionDelete},
			{integrity.TypeGroupCoordinator, "group_coordinator_group_id", integrity.ActionDelete},
		}},
		{integrity.TypeTeacher, []ruleKey{
			{integrity.TypeTeacherField, "teacher_field_teacher_id", integrity.ActionDelete},
			{integrity.TypeTeacherCoordinator, "teacher_coordinator_teacher_id", integrity.ActionDelete},
		}},
		{integrity.TypeUser, []ruleKey{
			{integrity.TypeTeacher, "teacher_user_id", integrity.ActionDelete},
			{integrity.TypeGroupCoordinator, "group_coordinator_coordinator_id", integrity.ActionDelete},
			{integrity.TypeTeacherCoordinator, "teacher_coordinator_coordinator_id", integrity.ActionDelete},
		}},
		{integrity.TypeSubject, []ruleKey{
			{integrity.TypeSession, "session_subject_id", integrity.ActionNullify},
		}},
		{integrity.TypeTeacherField, []ruleKey{
			{integrity.TypeSession, "session_teacher_field_id", integrity.ActionNullify},
		}},
		{integrity.TypeTeacherCoordinator, []ruleKey{
			{integrity.TypeSession, "session_teacher_coordinator_id", integrity.ActionNullify},
		}},
		{integrity.TypeGroupCoordinator, []ruleKey{
			{integrity.TypeSession, "session_group_coordinator_id", integrity.ActionNullify},
		}},
	}

	for _, tc := range cases {
		got := rulesOf(t, r, tc.parent)
		if len(got) != len(tc.want) {
			t.Errorf("%s: expected %d rules, got %d", tc.parent, len(tc.want), len(got))
		}
		for _, w := range tc.want {
			if !got[w] {
				t.Errorf("%s: missing rule %+v", tc.parent, w)
			}
		}
	}
}

// Deleting a schedule is blocked at the controller while levels reference it,
// not cascaded. The registry must stay empty for it.
func TestDefaultRegistry_ScheduleHasNoRules(t *testing.T) {
	r := integrity.DefaultRegistry()
	if r.HasRules(integrity.TypeSchedule) {
		t.Error("schedule deletion must not cascade")
	}
	if _, ok := r.EntityOf(integrity.TypeSchedule); !ok {
		t.Error("schedule descriptor must still be registered")
	}
}

func TestDefaultRegistry_AllDependentsResolvable(t *testing.T) {
	r := integrity.DefaultRegistry()
	for _, parent := range []string{
		integrity.TypeSchool, integrity.TypeUser, integrity.TypeTeacher,
		integrity.TypeField, integrity.TypeTeacherField, integrity.TypeSchedule,
		integrity.TypeLevel, integrity.TypeGroup, integrity.TypeGroupCoordinator,
		integrity.TypeTeacherCoordinator, integrity.TypeSubject, integrity.TypeSession,
	} {
		for _, rule := range r.RulesFor(parent) {
			if _, ok := r.EntityOf(rule.Dependent); !ok {
				t.Errorf("rule %s -> %s references unregistered entity", parent, rule.Dependent)
			}
		}
	}
}
