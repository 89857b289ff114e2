package timetable

// Store holds the authoritative session list for the active cycle view.
// Mutations follow functional-update discipline: every change replaces
// the backing slice with a fresh copy, so snapshots handed out earlier
// never change under the caller.
//
// The store does not validate. The PlacementController is the only
// component that should call its mutators, and only after the validator
// has accepted the change.
type Store struct {
	sessions []Session
}

// NewStore creates a store seeded with the given sessions.
func NewStore(initial []Session) *Store {
	return &Store{sessions: append([]Session(nil), initial...)}
}

// Sessions returns a snapshot of the current session list.
func (st *Store) Sessions() []Session {
	return append([]Session(nil), st.sessions...)
}

// Len returns the number of held sessions.
func (st *Store) Len() int { return len(st.sessions) }

// Get returns the session with the given ID.
func (st *Store) Get(id string) (Session, bool) {
	for _, s := range st.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// Add appends a new session.
func (st *Store) Add(s Session) {
	next := make([]Session, 0, len(st.sessions)+1)
	next = append(next, st.sessions...)
	next = append(next, s)
	st.sessions = next
}

// Move rewrites the slot of the identified session, preserving its
// identity and content. Unknown IDs are a silent no-op.
func (st *Store) Move(id, newDay, newStartTime string) bool {
	return st.replace(id, func(s Session) Session {
		return s.at(newDay, newStartTime)
	})
}

// Update replaces the stored session matching s.ID with s.
// Unknown IDs are a silent no-op.
func (st *Store) Update(s Session) bool {
	return st.replace(s.ID, func(Session) Session { return s })
}

// Remove drops the identified session. Unknown IDs are a silent no-op.
func (st *Store) Remove(id string) bool {
	for i, s := range st.sessions {
		if s.ID == id {
			next := make([]Session, 0, len(st.sessions)-1)
			next = append(next, st.sessions[:i]...)
			next = append(next, st.sessions[i+1:]...)
			st.sessions = next
			return true
		}
	}
	return false
}

func (st *Store) replace(id string, fn func(Session) Session) bool {
	for i, s := range st.sessions {
		if s.ID == id {
			next := append([]Session(nil), st.sessions...)
			next[i] = fn(s)
			st.sessions = next
			return true
		}
	}
	return false
}
