package roster

import (
	"errors"
	"testing"
)

func TestCreate(t *testing.T) {
	r := New()
	u, err := r.Create("maya", "maya@school.edu", RoleStudent)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == "" {
		t.Error("created user has empty id")
	}
	if u.Role != RoleStudent {
		t.Errorf("got role %q, want student", u.Role)
	}
	if u.CreatedAt.IsZero() {
		t.Error("created user has zero timestamp")
	}

	got, ok := r.User(u.ID)
	if !ok {
		t.Fatal("created user not found by id")
	}
	if got.Username != "maya" {
		t.Errorf("got username %q, want maya", got.Username)
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	r := New()
	a, _ := r.Create("a", "", RoleStudent)
	b, _ := r.Create("b", "", RoleStudent)
	if a.ID == b.ID {
		t.Errorf("two created users share id %q", a.ID)
	}
}

func TestCreate_Invalid(t *testing.T) {
	r := New()
	if _, err := r.Create("", "", RoleStudent); err == nil {
		t.Error("empty username accepted")
	}
	if _, err := r.Create("x", "", Role("wizard")); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("got %v, want ErrUnknownRole", err)
	}
	if r.Len() != 0 {
		t.Errorf("failed creates changed roster size: got %d", r.Len())
	}
}

func TestAdd_Duplicate(t *testing.T) {
	r := New()
	u, _ := r.Create("maya", "", RoleStudent)
	err := r.Add(User{ID: u.ID, Username: "other", Role: RoleTeacher})
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("got %v, want ErrDuplicateID", err)
	}
}

func TestUsers_Sorted(t *testing.T) {
	r := New()
	for _, name := range []string{"zoe", "amir", "maya"} {
		if _, err := r.Create(name, "", RoleStudent); err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
	}

	users := r.Users()
	if len(users) != 3 {
		t.Fatalf("got %d users, want 3", len(users))
	}
	want := []string{"amir", "maya", "zoe"}
	for i, name := range want {
		if users[i].Username != name {
			t.Errorf("position %d: got %q, want %q", i, users[i].Username, name)
		}
	}
}

func TestByRole(t *testing.T) {
	r := New()
	r.Create("student1", "", RoleStudent)
	r.Create("teacher1", "", RoleTeacher)
	r.Create("student2", "", RoleStudent)

	students := r.ByRole(RoleStudent)
	if len(students) != 2 {
		t.Errorf("got %d students, want 2", len(students))
	}
	teachers := r.ByRole(RoleTeacher)
	if len(teachers) != 1 {
		t.Errorf("got %d teachers, want 1", len(teachers))
	}
}

func TestRoleCapabilities(t *testing.T) {
	tests := []struct {
		role       Role
		rollup     bool
		reset      bool
	}{
		{RoleStudent, false, false},
		{RoleTeacher, true, false},
		{RoleAdmin, true, true},
	}
	for _, tt := range tests {
		if got := tt.role.CanViewRollup(); got != tt.rollup {
			t.Errorf("%s.CanViewRollup() = %v, want %v", tt.role, got, tt.rollup)
		}
		if got := tt.role.CanResetProgress(); got != tt.reset {
			t.Errorf("%s.CanResetProgress() = %v, want %v", tt.role, got, tt.reset)
		}
	}
}

func TestParseRole(t *testing.T) {
	if _, ok := ParseRole("teacher"); !ok {
		t.Error("teacher not parsed")
	}
	if _, ok := ParseRole("wizard"); ok {
		t.Error("wizard parsed as a role")
	}
}
