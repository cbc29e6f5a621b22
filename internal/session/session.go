// Package session holds the process-wide authenticated session: an opaque
// bearer token plus the user profile it was issued for. Components that need
// credentials receive the session explicitly instead of reading a shared
// store ad hoc.
package session

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ericwalterlaw/cryptish/internal/model"
)

// Session is the credential pair attached to authenticated requests.
type Session struct {
	Token     string     `json:"token"`
	User      model.User `json:"user"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsAuthenticated is the single authorization predicate consulted before
// calling authenticated endpoints.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// load reads a session from a JSON file. Returns an empty (unauthenticated)
// session if the file doesn't exist.
func load(filePath string) (Session, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// save writes the session to a JSON file readable only by the owner.
func save(filePath string, s Session) error {
	s.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0600)
}
