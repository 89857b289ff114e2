package timetable

import "fmt"

// ConflictCode classifies the outcome of a placement check.
type ConflictCode int

const (
	// Accepted means the placement may be committed.
	Accepted ConflictCode = iota
	// CareerSlotTaken means the career already has a session in the slot.
	CareerSlotTaken
	// RoomTaken means the room is already occupied in the slot.
	RoomTaken
	// MissingFields means a required field is empty.
	MissingFields
	// InvalidSlot means (day, startTime) is not a slot of the grid.
	InvalidSlot
)

// String names the code for logs and tests.
func (c ConflictCode) String() string {
	switch c {
	case Accepted:
		return "accepted"
	case CareerSlotTaken:
		return "career_slot_taken"
	case RoomTaken:
		return "room_taken"
	case MissingFields:
		return "missing_fields"
	case InvalidSlot:
		return "invalid_slot"
	default:
		return "unknown"
	}
}

// CheckResult is the typed outcome of a validation. Rejections carry a
// human-readable reason the UI surfaces verbatim, and the ID of the
// session that blocks the placement when one exists.
type CheckResult struct {
	Code          ConflictCode
	Reason        string
	ConflictingID string
}

// OK reports whether the placement was accepted.
func (r CheckResult) OK() bool { return r.Code == Accepted }

// Rejection reason strings. Surfaced verbatim by callers.
const (
	ReasonCareerSlotTaken = "This time slot is already occupied for this career."
	ReasonMissingFields   = "Missing required fields."
	ReasonInvalidSlot     = "The selected slot is not part of the grid."
)

// ReasonRoomTaken builds the room rejection reason, naming the room.
func ReasonRoomTaken(roomName string) string {
	return fmt.Sprintf("Room %s is already occupied.", roomName)
}

// Validator decides whether a candidate placement may be committed.
// It is a pure function of its inputs: the same arguments always
// produce the same result.
type Validator struct {
	grid *Grid
}

// NewValidator creates a validator bound to a grid.
func NewValidator(grid *Grid) *Validator {
	return &Validator{grid: grid}
}

// Check validates a candidate against the existing sessions.
// excludeID lets a session being moved or edited skip its own prior
// placement. The career-slot rule is evaluated before the room rule and
// the first conflict found is reported.
func (v *Validator) Check(candidate Session, existing []Session, excludeID string) CheckResult {
	if !v.grid.Contains(candidate.Day, candidate.StartTime) {
		return CheckResult{Code: InvalidSlot, Reason: ReasonInvalidSlot}
	}

	key := candidate.CellKey()

	for _, s := range existing {
		if s.ID == excludeID || s.CellKey() != key {
			continue
		}
		if s.CareerID == candidate.CareerID {
			return CheckResult{
				Code:          CareerSlotTaken,
				Reason:        ReasonCareerSlotTaken,
				ConflictingID: s.ID,
			}
		}
	}

	for _, s := range existing {
		if s.ID == excludeID || s.CellKey() != key {
			continue
		}
		if s.RoomID == candidate.RoomID {
			name := candidate.RoomName
			if name == "" {
				name = s.RoomName
			}
			return CheckResult{
				Code:          RoomTaken,
				Reason:        ReasonRoomTaken(name),
				ConflictingID: s.ID,
			}
		}
	}

	return CheckResult{Code: Accepted}
}
