package timetable

import "github.com/google/uuid"

// State is the controller's interaction state.
type State int

const (
	// Idle means no placement attempt is in progress.
	Idle State = iota
	// Dragging means a session has been picked up for relocation.
	Dragging
	// ModalOpen means the add/edit form is open over a draft.
	ModalOpen
)

// ModalMode distinguishes the add and edit flows.
type ModalMode int

const (
	// ModalAdd creates a new session in a clicked empty cell.
	ModalAdd ModalMode = iota
	// ModalEdit rewrites the content of an existing session.
	ModalEdit
)

// CommitOp names the mutation handed to the persistence collaborator.
type CommitOp int

const (
	CommitAdd CommitOp = iota
	CommitMove
	CommitUpdate
	CommitRemove
)

// Commit describes one accepted, applied mutation.
type Commit struct {
	Op      CommitOp
	Session Session
}

// CommitFunc receives every accepted mutation after the store has
// applied it. Durable storage and rollback-on-failure live behind it.
type CommitFunc func(Commit)

type modal struct {
	mode       ModalMode
	draft      Session
	targetDay  string
	targetTime string
}

// Controller orchestrates user-initiated placement changes. It is the
// only component that calls the store's mutators, and every mutation
// passes the validator first. All methods are synchronous; a rejected
// attempt leaves the store untouched.
type Controller struct {
	grid      *Grid
	validator *Validator
	store     *Store
	onCommit  CommitFunc

	state   State
	dragged *Session
	modal   *modal

	newID func() string
}

// NewController wires a controller over a grid and a store. onCommit
// may be nil when no persistence collaborator is attached.
func NewController(grid *Grid, store *Store, onCommit CommitFunc) *Controller {
	return &Controller{
		grid:      grid,
		validator: NewValidator(grid),
		store:     store,
		onCommit:  onCommit,
		state:     Idle,
		newID:     uuid.NewString,
	}
}

// State returns the current interaction state.
func (c *Controller) State() State { return c.state }

// Store exposes the controlled store for read-only consumers.
func (c *Controller) Store() *Store { return c.store }

// DraggedID returns the ID of the session being dragged, or "".
func (c *Controller) DraggedID() string {
	if c.dragged == nil {
		return ""
	}
	return c.dragged.ID
}

// ── drag / drop relocation ──

// BeginDrag records the dragged session. Returns false when the ID is
// unknown or another placement attempt is already in progress.
func (c *Controller) BeginDrag(sessionID string) bool {
	if c.state != Idle {
		return false
	}
	s, ok := c.store.Get(sessionID)
	if !ok {
		return false
	}
	c.dragged = &s
	c.state = Dragging
	return true
}

// CancelDrag abandons the drag with no effect.
func (c *Controller) CancelDrag() {
	c.dragged = nil
	c.state = Idle
}

// Drop attempts to relocate the dragged session to the target cell.
// On acceptance the store is mutated and the commit is emitted; on any
// conflict the original placement stays untouched. The controller
// returns to Idle either way.
func (c *Controller) Drop(day, startTime string) CheckResult {
	if c.state != Dragging || c.dragged == nil {
		return CheckResult{Code: InvalidSlot, Reason: ReasonInvalidSlot}
	}
	dragged := *c.dragged
	c.dragged = nil
	c.state = Idle

	candidate := dragged.at(day, startTime)
	res := c.validator.Check(candidate, c.store.Sessions(), dragged.ID)
	if !res.OK() {
		return res
	}

	c.store.Move(dragged.ID, day, startTime)
	c.emit(Commit{Op: CommitMove, Session: candidate})
	return res
}

// ── add / edit modal flow ──

// OpenAdd opens the form over a blank draft for the clicked empty cell.
// Career and slot are fixed by the click, not by form input.
func (c *Controller) OpenAdd(day, startTime, careerID, cycleID string) bool {
	if c.state != Idle {
		return false
	}
	c.modal = &modal{
		mode: ModalAdd,
		draft: Session{
			CareerID: careerID,
			CycleID:  cycleID,
			ColorTag: "color-blue",
		},
		targetDay:  day,
		targetTime: startTime,
	}
	c.state = ModalOpen
	return true
}

// OpenEdit opens the form over a copy of an existing session.
func (c *Controller) OpenEdit(sessionID string) bool {
	if c.state != Idle {
		return false
	}
	s, ok := c.store.Get(sessionID)
	if !ok {
		return false
	}
	c.modal = &modal{mode: ModalEdit, draft: s}
	c.state = ModalOpen
	return true
}

// Draft returns the current modal draft.
func (c *Controller) Draft() (Session, bool) {
	if c.modal == nil {
		return Session{}, false
	}
	return c.modal.draft, true
}

// SetDraft replaces the editable content of the open draft. Identity,
// career/cycle scope and slot are preserved from the modal context.
func (c *Controller) SetDraft(draft Session) bool {
	if c.state != ModalOpen || c.modal == nil {
		return false
	}
	prev := c.modal.draft
	draft.ID = prev.ID
	draft.CareerID = prev.CareerID
	draft.CycleID = prev.CycleID
	draft.Day = prev.Day
	draft.StartTime = prev.StartTime
	c.modal.draft = draft
	return true
}

// SaveModal validates and commits the open draft. Required-field
// validation runs before the conflict check. Any rejection keeps the
// modal open and leaves the store untouched.
func (c *Controller) SaveModal() CheckResult {
	if c.state != ModalOpen || c.modal == nil {
		return CheckResult{Code: InvalidSlot, Reason: ReasonInvalidSlot}
	}

	m := c.modal
	candidate := m.draft
	if m.mode == ModalAdd {
		candidate.Day = m.targetDay
		candidate.StartTime = m.targetTime
	}

	if candidate.SubjectID == "" || candidate.RoomID == "" {
		return CheckResult{Code: MissingFields, Reason: ReasonMissingFields}
	}

	excludeID := ""
	if m.mode == ModalEdit {
		excludeID = candidate.ID
	}
	res := c.validator.Check(candidate, c.store.Sessions(), excludeID)
	if !res.OK() {
		return res
	}

	switch m.mode {
	case ModalAdd:
		candidate.ID = c.newID()
		c.store.Add(candidate)
		c.emit(Commit{Op: CommitAdd, Session: candidate})
	case ModalEdit:
		c.store.Update(candidate)
		c.emit(Commit{Op: CommitUpdate, Session: candidate})
	}

	c.modal = nil
	c.state = Idle
	return res
}

// CloseModal discards the draft with no effect.
func (c *Controller) CloseModal() {
	c.modal = nil
	c.state = Idle
}

// ── removal ──

// Remove drops a session from the schedule. Unknown IDs are a no-op.
func (c *Controller) Remove(sessionID string) bool {
	if c.state != Idle {
		return false
	}
	s, ok := c.store.Get(sessionID)
	if !ok {
		return false
	}
	c.store.Remove(sessionID)
	c.emit(Commit{Op: CommitRemove, Session: s})
	return true
}

func (c *Controller) emit(commit Commit) {
	if c.onCommit != nil {
		c.onCommit(commit)
	}
}
