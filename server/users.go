package server

import (
	"sync"

	"github.com/poiesic/docvault/core"
)

// UserDirectory resolves usernames to identities. Identity is trusted
// as-is: knowing a username is enough to log in as that user.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[string]core.User
}

// NewUserDirectory creates a directory seeded with the default departmental
// accounts.
func NewUserDirectory() *UserDirectory {
	d := &UserDirectory{users: make(map[string]core.User)}
	d.Add(core.User{Id: 1, Username: "eng_user", Department: "Engineering"})
	d.Add(core.User{Id: 2, Username: "fin_user", Department: "Financial"})
	d.Add(core.User{Id: 3, Username: "admin", Department: core.DepartmentAdmin})
	return d
}

// Add registers a user, replacing any existing entry for the username.
func (d *UserDirectory) Add(user core.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.Username] = user
}

// Lookup returns the user for a username.
func (d *UserDirectory) Lookup(username string) (core.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.users[username]
	return user, ok
}
