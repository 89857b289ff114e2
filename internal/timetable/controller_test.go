package timetable

import "testing"

func newTestController(initial []Session) (*Controller, *[]Commit) {
	commits := &[]Commit{}
	st := NewStore(initial)
	c := NewController(testGrid(), st, func(cm Commit) {
		*commits = append(*commits, cm)
	})
	c.newID = func() string { return "generated-id" }
	return c, commits
}

func TestDropToEmptyCell(t *testing.T) {
	c, commits := newTestController([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
	})

	if !c.BeginDrag("s1") {
		t.Fatal("BeginDrag failed for a known ID")
	}
	res := c.Drop("Wednesday", "09:00")
	if !res.OK() {
		t.Fatalf("drop rejected: %v: %s", res.Code, res.Reason)
	}
	got, _ := c.Store().Get("s1")
	if got.Day != "Wednesday" || got.StartTime != "09:00" {
		t.Errorf("session not relocated: %s %s", got.Day, got.StartTime)
	}
	if c.State() != Idle {
		t.Error("controller not back to Idle after drop")
	}
	if len(*commits) != 1 || (*commits)[0].Op != CommitMove {
		t.Errorf("expected one move commit, got %+v", *commits)
	}
}

func TestDropOntoOwnCellIsAccepted(t *testing.T) {
	c, _ := newTestController([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
	})

	c.BeginDrag("s1")
	res := c.Drop("Monday", "07:00")
	if !res.OK() {
		t.Fatalf("dropping a session onto its own cell was rejected: %s", res.Reason)
	}
	got, _ := c.Store().Get("s1")
	if got.Day != "Monday" || got.StartTime != "07:00" {
		t.Errorf("placement changed: %s %s", got.Day, got.StartTime)
	}
}

func TestDropRejectedLeavesStoreUnchanged(t *testing.T) {
	initial := []Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
		session("s2", "car-1", "room-2", "R2", "Tuesday", "08:00"),
	}
	c, commits := newTestController(initial)

	c.BeginDrag("s2")
	res := c.Drop("Monday", "07:00")
	if res.Code != CareerSlotTaken {
		t.Fatalf("expected CareerSlotTaken, got %v", res.Code)
	}
	got, _ := c.Store().Get("s2")
	if got.Day != "Tuesday" || got.StartTime != "08:00" {
		t.Errorf("rejected drop moved the session: %s %s", got.Day, got.StartTime)
	}
	if c.State() != Idle {
		t.Error("controller stuck in Dragging after a rejected drop")
	}
	if len(*commits) != 0 {
		t.Errorf("rejected drop emitted commits: %+v", *commits)
	}
}

func TestCancelDrag(t *testing.T) {
	c, _ := newTestController([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
	})

	c.BeginDrag("s1")
	if c.DraggedID() != "s1" {
		t.Fatalf("DraggedID = %q", c.DraggedID())
	}
	c.CancelDrag()
	if c.State() != Idle || c.DraggedID() != "" {
		t.Error("cancel did not return the controller to Idle")
	}
}

func TestBeginDragUnknownID(t *testing.T) {
	c, _ := newTestController(nil)
	if c.BeginDrag("missing") {
		t.Error("BeginDrag accepted an unknown ID")
	}
	if c.State() != Idle {
		t.Error("state changed on failed BeginDrag")
	}
}

func TestAddFlowTakesSlotFromClickedCell(t *testing.T) {
	c, commits := newTestController(nil)

	if !c.OpenAdd("Thursday", "10:00", "car-1", "cycle-1") {
		t.Fatal("OpenAdd failed from Idle")
	}
	c.SetDraft(Session{
		SubjectID: "subj-1", SubjectName: "Algebra",
		RoomID: "room-1", RoomName: "R1",
		// day/time in the draft must be ignored in favor of the cell
		Day: "Monday", StartTime: "07:00",
	})
	res := c.SaveModal()
	if !res.OK() {
		t.Fatalf("save rejected: %v: %s", res.Code, res.Reason)
	}
	got, ok := c.Store().Get("generated-id")
	if !ok {
		t.Fatal("added session not in store")
	}
	if got.Day != "Thursday" || got.StartTime != "10:00" {
		t.Errorf("session placed at %s %s, want clicked cell", got.Day, got.StartTime)
	}
	if got.CareerID != "car-1" || got.CycleID != "cycle-1" {
		t.Errorf("career/cycle scope not taken from the click: %+v", got)
	}
	if len(*commits) != 1 || (*commits)[0].Op != CommitAdd {
		t.Errorf("expected one add commit, got %+v", *commits)
	}
}

func TestSaveMissingFieldsBeforeConflictCheck(t *testing.T) {
	// The occupied target cell must not be reported while required
	// fields are still missing.
	c, commits := newTestController([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
	})

	c.OpenAdd("Monday", "07:00", "car-1", "cycle-1")
	c.SetDraft(Session{SubjectID: "subj-2"}) // no room
	res := c.SaveModal()
	if res.Code != MissingFields {
		t.Fatalf("expected MissingFields, got %v", res.Code)
	}
	if res.Reason != "Missing required fields." {
		t.Errorf("unexpected reason: %q", res.Reason)
	}
	if c.State() != ModalOpen {
		t.Error("rejection closed the modal")
	}
	if c.Store().Len() != 1 || len(*commits) != 0 {
		t.Error("rejected save touched the store")
	}
}

func TestSaveConflictKeepsModalOpen(t *testing.T) {
	c, _ := newTestController([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
	})

	c.OpenAdd("Monday", "07:00", "car-1", "cycle-1")
	c.SetDraft(Session{SubjectID: "subj-2", RoomID: "room-2", RoomName: "R2"})
	res := c.SaveModal()
	if res.Code != CareerSlotTaken {
		t.Fatalf("expected CareerSlotTaken, got %v", res.Code)
	}
	if c.State() != ModalOpen {
		t.Error("conflict rejection closed the modal")
	}

	// The open draft can be corrected and saved without reopening.
	c.SetDraft(Session{SubjectID: "subj-2", RoomID: "room-2", RoomName: "R2"})
	c.CloseModal()
	c.OpenAdd("Tuesday", "07:00", "car-1", "cycle-1")
	c.SetDraft(Session{SubjectID: "subj-2", RoomID: "room-2", RoomName: "R2"})
	if res := c.SaveModal(); !res.OK() {
		t.Fatalf("corrected save rejected: %s", res.Reason)
	}
}

func TestEditFlowKeepsRecordSlot(t *testing.T) {
	c, commits := newTestController([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
	})

	if !c.OpenEdit("s1") {
		t.Fatal("OpenEdit failed for a known ID")
	}
	draft, ok := c.Draft()
	if !ok || draft.ID != "s1" {
		t.Fatalf("draft not seeded from the record: %+v", draft)
	}
	draft.SubjectID = "subj-new"
	draft.SubjectName = "Physics"
	draft.RoomID = "room-2"
	draft.RoomName = "R2"
	c.SetDraft(draft)

	res := c.SaveModal()
	if !res.OK() {
		t.Fatalf("edit save rejected: %v: %s", res.Code, res.Reason)
	}
	got, _ := c.Store().Get("s1")
	if got.SubjectID != "subj-new" || got.RoomID != "room-2" {
		t.Errorf("edit did not rewrite content: %+v", got)
	}
	if got.Day != "Monday" || got.StartTime != "07:00" {
		t.Errorf("edit moved the session: %s %s", got.Day, got.StartTime)
	}
	if len(*commits) != 1 || (*commits)[0].Op != CommitUpdate {
		t.Errorf("expected one update commit, got %+v", *commits)
	}
}

func TestEditExcludesSelfFromConflicts(t *testing.T) {
	c, _ := newTestController([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
	})

	c.OpenEdit("s1")
	draft, _ := c.Draft()
	draft.SectionCode = "B"
	c.SetDraft(draft)
	if res := c.SaveModal(); !res.OK() {
		t.Fatalf("edit conflicted with its own placement: %s", res.Reason)
	}
}

func TestRemoveEmitsCommit(t *testing.T) {
	c, commits := newTestController([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
	})

	if !c.Remove("s1") {
		t.Fatal("Remove failed for a known ID")
	}
	if c.Store().Len() != 0 {
		t.Error("session still in store")
	}
	if len(*commits) != 1 || (*commits)[0].Op != CommitRemove {
		t.Errorf("expected one remove commit, got %+v", *commits)
	}
	if c.Remove("s1") {
		t.Error("second Remove of the same ID reported success")
	}
}

func TestControllerRejectsOverlappingFlows(t *testing.T) {
	c, _ := newTestController([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
	})

	c.BeginDrag("s1")
	if c.OpenAdd("Tuesday", "08:00", "car-1", "cycle-1") {
		t.Error("modal opened while a drag was in progress")
	}
	if c.BeginDrag("s1") {
		t.Error("second drag started while one was in progress")
	}
	c.CancelDrag()

	c.OpenEdit("s1")
	if c.BeginDrag("s1") {
		t.Error("drag started while the modal was open")
	}
}

func TestRenderView(t *testing.T) {
	st := NewStore([]Session{
		session("s1", "car-1", "room-1", "R1", "Monday", "07:00"),
		session("s2", "car-2", "room-2", "R2", "Friday", "10:00"),
	})

	view := Render(testGrid(), st, "s1")
	if len(view.Rows) != 4 {
		t.Fatalf("expected 4 time rows, got %d", len(view.Rows))
	}
	if len(view.Rows[0]) != 5 {
		t.Fatalf("expected 5 day columns, got %d", len(view.Rows[0]))
	}

	first := view.Rows[0][0] // Monday 07:00
	if first.Session == nil || first.Session.ID != "s1" {
		t.Fatalf("Monday 07:00 not occupied by s1: %+v", first)
	}
	if !first.Dragging {
		t.Error("dragged session's cell not marked")
	}

	last := view.Rows[3][4] // Friday 10:00
	if last.Session == nil || last.Session.ID != "s2" {
		t.Fatalf("Friday 10:00 not occupied by s2: %+v", last)
	}
	if last.Dragging {
		t.Error("non-dragged cell marked as dragging")
	}

	empty := view.Rows[1][1]
	if empty.Session != nil {
		t.Errorf("expected empty cell, got %+v", empty.Session)
	}
}

func TestRenderOmitsOffGridSessions(t *testing.T) {
	st := NewStore([]Session{
		session("s1", "car-1", "room-1", "R1", "Sunday", "07:00"),
	})

	view := Render(testGrid(), st, "")
	for _, row := range view.Rows {
		for _, cell := range row {
			if cell.Session != nil {
				t.Fatalf("off-grid session rendered at %s %s", cell.Day, cell.StartTime)
			}
		}
	}
	if st.Len() != 1 {
		t.Error("render dropped the session from the store")
	}
}
