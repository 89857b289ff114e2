package timetable

import "testing"

func session(id, careerID, roomID, roomName, day, startTime string) Session {
	return Session{
		ID:        id,
		CareerID:  careerID,
		CycleID:   "cycle-1",
		SubjectID: "subj-" + id,
		RoomID:    roomID,
		RoomName:  roomName,
		Day:       day,
		StartTime: startTime,
	}
}

func TestCheckAcceptsEmptySlot(t *testing.T) {
	v := NewValidator(testGrid())

	res := v.Check(session("s1", "car-1", "room-1", "R1", "Monday", "07:00"), nil, "")
	if !res.OK() {
		t.Fatalf("expected acceptance, got %v: %s", res.Code, res.Reason)
	}
}

func TestCheckCareerSlotConflict(t *testing.T) {
	v := NewValidator(testGrid())
	existing := []Session{session("s1", "car-1", "room-1", "R1", "Monday", "07:00")}

	res := v.Check(session("s2", "car-1", "room-2", "R2", "Monday", "07:00"), existing, "")
	if res.Code != CareerSlotTaken {
		t.Fatalf("expected CareerSlotTaken, got %v", res.Code)
	}
	if res.Reason != "This time slot is already occupied for this career." {
		t.Errorf("unexpected reason: %q", res.Reason)
	}
	if res.ConflictingID != "s1" {
		t.Errorf("expected conflicting ID s1, got %q", res.ConflictingID)
	}
}

func TestCheckRoomConflictAcrossCareers(t *testing.T) {
	v := NewValidator(testGrid())
	existing := []Session{session("s1", "car-1", "room-1", "R1", "Monday", "07:00")}

	res := v.Check(session("s2", "car-2", "room-1", "R1", "Monday", "07:00"), existing, "")
	if res.Code != RoomTaken {
		t.Fatalf("expected RoomTaken, got %v", res.Code)
	}
	if res.Reason != "Room R1 is already occupied." {
		t.Errorf("unexpected reason: %q", res.Reason)
	}
}

func TestCheckRoomReasonNamesExistingRoom(t *testing.T) {
	v := NewValidator(testGrid())
	existing := []Session{session("s1", "car-1", "room-1", "Lab West", "Monday", "07:00")}

	res := v.Check(session("s2", "car-2", "room-1", "", "Monday", "07:00"), existing, "")
	if res.Reason != "Room Lab West is already occupied." {
		t.Errorf("reason should carry the occupying session's room label, got %q", res.Reason)
	}
}

func TestCheckCareerConflictWinsOverRoom(t *testing.T) {
	// Same career and same room in the target slot: the career check
	// runs first and its reason is the one reported.
	v := NewValidator(testGrid())
	existing := []Session{session("s1", "car-1", "room-1", "R1", "Monday", "07:00")}

	res := v.Check(session("s2", "car-1", "room-1", "R1", "Monday", "07:00"), existing, "")
	if res.Code != CareerSlotTaken {
		t.Fatalf("expected CareerSlotTaken to be reported first, got %v", res.Code)
	}
}

func TestCheckDifferentCareerDifferentRoomAccepted(t *testing.T) {
	v := NewValidator(testGrid())
	existing := []Session{session("s1", "car-1", "room-1", "R1", "Monday", "07:00")}

	res := v.Check(session("s2", "car-2", "room-2", "R2", "Monday", "07:00"), existing, "")
	if !res.OK() {
		t.Fatalf("distinct career and room must coexist in a slot, got %v: %s", res.Code, res.Reason)
	}
}

func TestCheckExcludeIDSkipsSelf(t *testing.T) {
	v := NewValidator(testGrid())
	s1 := session("s1", "car-1", "room-1", "R1", "Monday", "07:00")
	existing := []Session{s1}

	// Re-validating a session against its own current placement must
	// not report it as its own conflict.
	res := v.Check(s1, existing, "s1")
	if !res.OK() {
		t.Fatalf("session conflicted with itself: %v: %s", res.Code, res.Reason)
	}
}

func TestCheckRejectsSlotOutsideGrid(t *testing.T) {
	v := NewValidator(testGrid())

	res := v.Check(session("s1", "car-1", "room-1", "R1", "Sunday", "07:00"), nil, "")
	if res.Code != InvalidSlot {
		t.Fatalf("expected InvalidSlot, got %v", res.Code)
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	v := NewValidator(testGrid())
	existing := []Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
		session("s2", "car-2", "room-2", "R2", "Monday", "07:00"),
	}
	candidate := session("s3", "car-1", "room-3", "R3", "Monday", "07:00")

	first := v.Check(candidate, existing, "")
	second := v.Check(candidate, existing, "")
	if first != second {
		t.Errorf("repeated checks diverged: %+v vs %+v", first, second)
	}
	if len(existing) != 2 {
		t.Errorf("check mutated the existing set")
	}
}
