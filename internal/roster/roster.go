package roster

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateID is returned when adding a user id that already exists.
	ErrDuplicateID = errors.New("duplicate user id")
	// ErrUnknownRole is returned for a role outside the defined set.
	ErrUnknownRole = errors.New("unknown role")
)

// Roster holds the registered users, keyed by id.
type Roster struct {
	ids  []string
	byID map[string]*User
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{byID: make(map[string]*User)}
}

// Create mints a new user with a generated id and registers it.
func (r *Roster) Create(username, email string, role Role) (User, error) {
	if username == "" {
		return User{}, fmt.Errorf("create user: empty username")
	}
	if _, ok := ParseRole(string(role)); !ok {
		return User{}, fmt.Errorf("create user %q: role %q: %w", username, role, ErrUnknownRole)
	}
	u := User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	r.byID[u.ID] = &u
	r.ids = append(r.ids, u.ID)
	return u, nil
}

// Add registers a fully-formed user, preserving its id. Used when
// restoring from a snapshot.
func (r *Roster) Add(u User) error {
	if u.ID == "" {
		return fmt.Errorf("add user %q: empty id", u.Username)
	}
	if _, ok := r.byID[u.ID]; ok {
		return fmt.Errorf("user %q: %w", u.ID, ErrDuplicateID)
	}
	if _, ok := ParseRole(string(u.Role)); !ok {
		return fmt.Errorf("user %q: role %q: %w", u.ID, u.Role, ErrUnknownRole)
	}
	stored := u
	r.byID[u.ID] = &stored
	r.ids = append(r.ids, u.ID)
	return nil
}

// User returns a user by id.
func (r *Roster) User(id string) (User, bool) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, false
	}
	return *u, true
}

// HasUser reports whether a user id is registered.
func (r *Roster) HasUser(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Users returns all users ordered by username, then id for ties.
func (r *Roster) Users() []User {
	out := make([]User, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, *r.byID[id])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Username != out[j].Username {
			return out[i].Username < out[j].Username
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ByRole returns the users holding a role, in Users() order.
func (r *Roster) ByRole(role Role) []User {
	var out []User
	for _, u := range r.Users() {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// Len returns the number of registered users.
func (r *Roster) Len() int {
	return len(r.ids)
}
