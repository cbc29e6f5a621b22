package session

import "sync"

// Store owns the session lifecycle with concurrency safety: init on load,
// replace on login, clear on logout.
type Store struct {
	mu       sync.Mutex
	session  Session
	filePath string
}

// NewStore creates a Store, loading any persisted session from disk. An
// empty filePath keeps the session in memory only.
func NewStore(filePath string) (*Store, error) {
	st := &Store{filePath: filePath}
	if filePath != "" {
		s, err := load(filePath)
		if err != nil {
			return nil, err
		}
		st.session = s
	}
	return st, nil
}

// Current returns a copy of the session.
func (st *Store) Current() Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.session
}

// Set replaces the session, typically after a successful login.
func (st *Store) Set(s Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.session = s
	return st.persist()
}

// Clear drops the session on logout.
func (st *Store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.session = Session{}
	return st.persist()
}

func (st *Store) persist() error {
	if st.filePath == "" {
		return nil
	}
	return save(st.filePath, st.session)
}
