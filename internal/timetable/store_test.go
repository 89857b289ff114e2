package timetable

import "testing"

func TestStoreAddAndGet(t *testing.T) {
	st := NewStore(nil)
	st.Add(session("s1", "car-1", "room-1", "R1", "Monday", "07:00"))

	if st.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", st.Len())
	}
	got, ok := st.Get("s1")
	if !ok || got.RoomName != "R1" {
		t.Errorf("Get returned %+v, ok=%v", got, ok)
	}
}

func TestStoreMoveRewritesSlotOnly(t *testing.T) {
	st := NewStore([]Session{session("s1", "car-1", "room-1", "R1", "Monday", "07:00")})

	if !st.Move("s1", "Tuesday", "09:00") {
		t.Fatal("Move reported no-op for a known ID")
	}
	got, _ := st.Get("s1")
	if got.Day != "Tuesday" || got.StartTime != "09:00" {
		t.Errorf("slot not rewritten: %s %s", got.Day, got.StartTime)
	}
	if got.CareerID != "car-1" || got.RoomID != "room-1" {
		t.Errorf("Move changed session content: %+v", got)
	}
}

func TestStoreMoveUnknownIDIsNoOp(t *testing.T) {
	st := NewStore([]Session{session("s1", "car-1", "room-1", "R1", "Monday", "07:00")})

	if st.Move("missing", "Tuesday", "09:00") {
		t.Error("Move reported success for an unknown ID")
	}
	if st.Len() != 1 {
		t.Errorf("store size changed: %d", st.Len())
	}
}

func TestStoreUpdatePreservesIdentity(t *testing.T) {
	st := NewStore([]Session{session("s1", "car-1", "room-1", "R1", "Monday", "07:00")})

	edited, _ := st.Get("s1")
	edited.SubjectID = "subj-new"
	edited.RoomID = "room-9"
	if !st.Update(edited) {
		t.Fatal("Update reported no-op for a known ID")
	}
	got, _ := st.Get("s1")
	if got.SubjectID != "subj-new" || got.RoomID != "room-9" {
		t.Errorf("content not rewritten: %+v", got)
	}
	if got.Day != "Monday" || got.StartTime != "07:00" {
		t.Errorf("Update moved the session: %s %s", got.Day, got.StartTime)
	}
}

func TestStoreRemove(t *testing.T) {
	st := NewStore([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
		session("s2", "car-2", "room-2", "R2", "Tuesday", "08:00"),
	})

	if !st.Remove("s1") {
		t.Fatal("Remove reported no-op for a known ID")
	}
	if st.Len() != 1 {
		t.Fatalf("expected 1 session after removal, got %d", st.Len())
	}
	if _, ok := st.Get("s1"); ok {
		t.Error("removed session still retrievable")
	}
	if st.Remove("s1") {
		t.Error("second Remove of the same ID reported success")
	}
}

func TestStoreSnapshotsDoNotAlias(t *testing.T) {
	st := NewStore([]Session{session("s1", "car-1", "room-1", "R1", "Monday", "07:00")})

	before := st.Sessions()
	st.Move("s1", "Friday", "10:00")

	if before[0].Day != "Monday" {
		t.Error("earlier snapshot changed after a mutation")
	}
	before[0].CareerID = "tampered"
	got, _ := st.Get("s1")
	if got.CareerID != "car-1" {
		t.Error("mutating a snapshot changed the store")
	}
}
