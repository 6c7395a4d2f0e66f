// Package directory loads and queries the static user directory.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// fetchTimeout bounds the one-time directory fetch at startup.
const fetchTimeout = 10 * time.Second

// User is a single directory record. Passwords are stored and compared as
// plaintext; the directory is a static non-secret file, not a security
// boundary.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}

// Directory is the read-only user list, populated once at startup.
// Record order is preserved.
type Directory struct {
	users []User
}

// New builds a directory from already-loaded records. Used by tests and by
// Load.
func New(users []User) *Directory {
	return &Directory{users: users}
}

// Load reads the directory from source, which is either a local file path
// or an http(s) URL. It is called once before any store operation.
func Load(ctx context.Context, source string) (*Directory, error) {
	var data []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("load user directory: %w", err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse user directory: %w", err)
	}
	return New(users), nil
}

// Lookup finds a user by exact username.
func (d *Directory) Lookup(username string) (User, bool) {
	for _, u := range d.users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// Exists reports whether a username is present in the directory.
func (d *Directory) Exists(username string) bool {
	_, ok := d.Lookup(username)
	return ok
}

// Users returns a copy of the directory records in load order.
func (d *Directory) Users() []User {
	out := make([]User, len(d.users))
	copy(out, d.users)
	return out
}

// Len returns the number of directory records.
func (d *Directory) Len() int {
	return len(d.users)
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
