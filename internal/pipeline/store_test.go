package pipeline

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/thenoetrevino/admitdesk/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func testCards() []models.Application {
	return []models.Application{
		{ID: 1, StudentName: "Rashida Rahman", University: "Technical University of Berlin", Program: "Computer Science",
			Deadline: "2024-03-15", Priority: "high", Documents: []string{"Transcript", "SOP"}, MissingDocs: []string{"LOR", "IELTS"}, Stage: models.StageNew},
		{ID: 2, StudentName: "Md. Karim Ahmed", University: "University of Warsaw", Program: "Business Administration",
			Deadline: "2024-03-20", Priority: "medium", Documents: []string{"Transcript", "IELTS"}, MissingDocs: []string{"SOP", "LOR"}, Stage: models.StageNew},
		{ID: 3, StudentName: "Fatima Begum", University: "Charles University", Program: "Medicine",
			Deadline: "2024-03-10", Priority: "high", Documents: []string{"All Complete"}, MissingDocs: []string{}, Stage: models.StageQualified},
		{ID: 6, StudentName: "Rahman Ali", University: "University of Munich", Program: "Physics",
			Deadline: "Completed", Priority: "low", Documents: []string{"All Complete"}, MissingDocs: []string{}, Stage: models.StageEnrolled},
	}
}

func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(models.DefaultStages(), testCards())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return s
}

func cardIDs(t *testing.T, s *Store, stage models.StageID) []int {
	t.Helper()
	cards, err := s.CardsByStage(stage)
	if err != nil {
		t.Fatalf("CardsByStage(%q) failed: %v", stage, err)
	}
	ids := []int{}
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

// ============================================================================
// CONSTRUCTION AND QUERIES
// ============================================================================

func TestNewStore_GroupsCardsByStage(t *testing.T) {
	s := setupStore(t)

	if got := cardIDs(t, s, models.StageNew); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("new stage ids = %v, want [1 2]", got)
	}
	if got := cardIDs(t, s, models.StageApplied); len(got) != 0 {
		t.Errorf("applied stage ids = %v, want empty", got)
	}
	if s.Count() != 4 {
		t.Errorf("Count() = %d, want 4", s.Count())
	}
}

func TestNewStore_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		stages  []models.Stage
		cards   []models.Application
		wantErr error
	}{
		{
			name:    "unknown stage",
			stages:  models.DefaultStages(),
			cards:   []models.Application{{ID: 1, Stage: "graduated"}},
			wantErr: ErrStageNotFound,
		},
		{
			name:    "duplicate card",
			stages:  models.DefaultStages(),
			cards:   []models.Application{{ID: 1, Stage: models.StageNew}, {ID: 1, Stage: models.StageVisa}},
			wantErr: ErrDuplicateCard,
		},
		{
			name:    "duplicate stage",
			stages:  []models.Stage{{ID: "new"}, {ID: "new"}},
			wantErr: ErrDuplicateStage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.stages, tt.cards)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewStore() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCardsByStage_UnknownStage(t *testing.T) {
	s := setupStore(t)

	_, err := s.CardsByStage("graduated")
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("CardsByStage(unknown) error = %v, want ErrNotFound", err)
	}
}

func TestCardsByStage_ReturnsCopies(t *testing.T) {
	s := setupStore(t)

	cards, _ := s.CardsByStage(models.StageNew)
	cards[0].StudentName = "changed"
	cards[0].Documents[0] = "changed"

	card, err := s.Card(1)
	if err != nil {
		t.Fatalf("Card(1) failed: %v", err)
	}
	if card.StudentName != "Rashida Rahman" || card.Documents[0] != "Transcript" {
		t.Errorf("caller mutation leaked into the store: %+v", card)
	}
}

func TestCounts_StageOrder(t *testing.T) {
	s := setupStore(t)

	counts := s.Counts()
	want := []int{2, 1, 0, 0, 1}
	if len(counts) != len(want) {
		t.Fatalf("Counts() has %d stages, want %d", len(counts), len(want))
	}
	for i, c := range counts {
		if c.Count != want[i] {
			t.Errorf("stage %s count = %d, want %d", c.Stage.ID, c.Count, want[i])
		}
	}
	if counts[3].Stage.Title != "Visa Process" {
		t.Errorf("fourth stage title = %q, want Visa Process", counts[3].Stage.Title)
	}
}

// ============================================================================
// MOVE PROTOCOL
// ============================================================================

func TestCompleteMove_ConservesCards(t *testing.T) {
	for _, target := range []models.StageID{models.StageQualified, models.StageApplied, models.StageVisa, models.StageEnrolled} {
		t.Run(string(target), func(t *testing.T) {
			s := setupStore(t)
			before := s.Count()

			pm, err := s.BeginMove(2, models.StageNew)
			if err != nil {
				t.Fatalf("BeginMove failed: %v", err)
			}
			res, err := s.CompleteMove(pm, target)
			if err != nil {
				t.Fatalf("CompleteMove failed: %v", err)
			}

			if !res.Moved {
				t.Error("Expected Moved=true")
			}
			if s.Count() != before {
				t.Errorf("Count after move = %d, want %d", s.Count(), before)
			}

			total := 0
			for _, c := range s.Counts() {
				total += c.Count
			}
			if total != before {
				t.Errorf("sum of stage counts = %d, want %d", total, before)
			}
		})
	}
}

func TestCompleteMove_AppendsToTarget(t *testing.T) {
	s := setupStore(t)

	pm, _ := s.BeginMove(1, models.StageNew)
	res, err := s.CompleteMove(pm, models.StageQualified)
	if err != nil {
		t.Fatalf("CompleteMove failed: %v", err)
	}

	if got := cardIDs(t, s, models.StageNew); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("source ids = %v, want [2]", got)
	}
	if got := cardIDs(t, s, models.StageQualified); !reflect.DeepEqual(got, []int{3, 1}) {
		t.Errorf("target ids = %v, want [3 1]", got)
	}
	if res.Target != 1 {
		t.Errorf("Target index = %d, want 1", res.Target)
	}
	if res.From != models.StageNew || res.To != models.StageQualified {
		t.Errorf("result stages = %q -> %q", res.From, res.To)
	}
}

func TestCompleteMove_PreservesIdentity(t *testing.T) {
	s := setupStore(t)
	original, _ := s.Card(1)

	pm, _ := s.BeginMove(1, models.StageNew)
	if _, err := s.CompleteMove(pm, models.StageVisa); err != nil {
		t.Fatalf("CompleteMove failed: %v", err)
	}

	moved, err := s.Card(1)
	if err != nil {
		t.Fatalf("Card(1) failed: %v", err)
	}
	if moved.Stage != models.StageVisa {
		t.Errorf("Stage = %q, want %q", moved.Stage, models.StageVisa)
	}

	moved.Stage = original.Stage
	if !reflect.DeepEqual(moved, original) {
		t.Errorf("non-stage fields changed:\n got  %+v\n want %+v", moved, original)
	}
}

func TestCompleteMove_SelfDropIsNoop(t *testing.T) {
	s := setupStore(t)
	before := s.Snapshot()

	pm, err := s.BeginMove(3, models.StageQualified)
	if err != nil {
		t.Fatalf("BeginMove failed: %v", err)
	}
	res, err := s.CompleteMove(pm, models.StageQualified)
	if err != nil {
		t.Fatalf("self-drop returned error: %v", err)
	}

	if res.Moved {
		t.Error("self-drop reported Moved=true")
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("self-drop changed the board")
	}
	if _, ok := s.Pending(); ok {
		t.Error("gesture still pending after self-drop")
	}
}

func TestCompleteMove_UnknownCard(t *testing.T) {
	s := setupStore(t)
	before := s.Snapshot()

	pm, _ := s.BeginMove(1, models.StageNew)
	pm.CardID = 999
	_, err := s.CompleteMove(pm, models.StageApplied)

	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, ErrCardNotFound) {
		t.Errorf("error = %v, want ErrCardNotFound", err)
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("failed move changed the board")
	}
}

func TestCompleteMove_UnknownTarget(t *testing.T) {
	s := setupStore(t)
	before := s.Snapshot()

	pm, _ := s.BeginMove(1, models.StageNew)
	_, err := s.CompleteMove(pm, "graduated")

	if !errors.Is(err, ErrStageNotFound) {
		t.Errorf("error = %v, want ErrStageNotFound", err)
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("failed move changed the board")
	}
	if _, ok := s.Pending(); ok {
		t.Error("gesture should end after a drop attempt")
	}
}

func TestCompleteMove_StaleToken(t *testing.T) {
	s := setupStore(t)

	live, _ := s.BeginMove(1, models.StageNew)
	stale := PendingMove{Token: uuid.New(), CardID: 2, Source: models.StageNew}

	if _, err := s.CompleteMove(stale, models.StageApplied); !errors.Is(err, ErrStaleMove) {
		t.Errorf("error = %v, want ErrStaleMove", err)
	}

	// The live gesture survives a stale drop
	pm, ok := s.Pending()
	if !ok || pm.Token != live.Token {
		t.Fatal("live gesture was cleared by a stale drop")
	}
	if _, err := s.CompleteMove(live, models.StageApplied); err != nil {
		t.Errorf("live drop failed: %v", err)
	}
}

func TestCompleteMove_CardLeftSource(t *testing.T) {
	s := setupStore(t)
	before := s.Snapshot()

	pm, _ := s.BeginMove(1, models.StageNew)
	pm.Source = models.StageApplied

	_, err := s.CompleteMove(pm, models.StageVisa)
	if !errors.Is(err, ErrWrongSourceStage) || !errors.Is(err, ErrStaleMove) {
		t.Errorf("error = %v, want ErrWrongSourceStage", err)
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("failed move changed the board")
	}
}

func TestCompleteMove_AfterAbort(t *testing.T) {
	s := setupStore(t)
	before := s.Snapshot()

	pm, err := s.BeginMove(1, models.StageNew)
	if err != nil {
		t.Fatalf("BeginMove failed: %v", err)
	}
	if err := s.AbortMove(pm); err != nil {
		t.Fatalf("AbortMove failed: %v", err)
	}

	if _, err := s.CompleteMove(pm, models.StageEnrolled); !errors.Is(err, ErrNoPendingMove) {
		t.Errorf("drop after abort error = %v, want ErrNoPendingMove", err)
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("drop after abort changed the board")
	}
}

func TestCompleteMove_NoGesture(t *testing.T) {
	tests := []struct {
		name string
		pm   PendingMove
	}{
		{"zero value", PendingMove{}},
		{"never begun", PendingMove{Token: uuid.New(), CardID: 1, Source: models.StageNew}},
		{"never begun without token", PendingMove{CardID: 6, Source: models.StageEnrolled}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := setupStore(t)
			before := s.Snapshot()

			if _, err := s.CompleteMove(tt.pm, models.StageApplied); !errors.Is(err, ErrNoPendingMove) {
				t.Errorf("error = %v, want ErrNoPendingMove", err)
			}
			if !reflect.DeepEqual(s.Snapshot(), before) {
				t.Error("drop without a gesture changed the board")
			}
		})
	}
}

func TestCompleteMove_SecondDropOfSameGesture(t *testing.T) {
	s := setupStore(t)

	pm, _ := s.BeginMove(1, models.StageNew)
	if _, err := s.CompleteMove(pm, models.StageApplied); err != nil {
		t.Fatalf("first drop failed: %v", err)
	}
	after := s.Snapshot()

	if _, err := s.CompleteMove(pm, models.StageVisa); !errors.Is(err, ErrNoPendingMove) {
		t.Errorf("second drop error = %v, want ErrNoPendingMove", err)
	}
	if !reflect.DeepEqual(s.Snapshot(), after) {
		t.Error("second drop changed the board")
	}
}

func TestBeginMove_OneGestureAtATime(t *testing.T) {
	s := setupStore(t)

	if _, err := s.BeginMove(1, models.StageNew); err != nil {
		t.Fatalf("first BeginMove failed: %v", err)
	}
	if _, err := s.BeginMove(2, models.StageNew); !errors.Is(err, ErrMoveInProgress) {
		t.Errorf("second BeginMove error = %v, want ErrMoveInProgress", err)
	}
}

func TestBeginMove_Validation(t *testing.T) {
	s := setupStore(t)

	if _, err := s.BeginMove(42, models.StageNew); !errors.Is(err, ErrCardNotFound) {
		t.Errorf("unknown card error = %v", err)
	}
	if _, err := s.BeginMove(1, "graduated"); !errors.Is(err, ErrStageNotFound) {
		t.Errorf("unknown stage error = %v", err)
	}
	if _, err := s.BeginMove(1, models.StageVisa); !errors.Is(err, ErrWrongSourceStage) {
		t.Errorf("wrong source error = %v", err)
	}
	if _, ok := s.Pending(); ok {
		t.Error("failed BeginMove left a pending gesture")
	}
}

func TestAbortMove(t *testing.T) {
	s := setupStore(t)
	before := s.Snapshot()

	pm, _ := s.BeginMove(1, models.StageNew)
	if err := s.AbortMove(pm); err != nil {
		t.Fatalf("AbortMove failed: %v", err)
	}

	if _, ok := s.Pending(); ok {
		t.Error("gesture still pending after abort")
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("abort changed the board")
	}
	if err := s.AbortMove(pm); !errors.Is(err, ErrNoPendingMove) {
		t.Errorf("second abort error = %v, want ErrNoPendingMove", err)
	}

	// A new gesture can start after an abort
	if _, err := s.BeginMove(2, models.StageNew); err != nil {
		t.Errorf("BeginMove after abort failed: %v", err)
	}
	if err := s.AbortMove(PendingMove{Token: uuid.New()}); !errors.Is(err, ErrStaleMove) {
		t.Errorf("abort with foreign token error = %v, want ErrStaleMove", err)
	}
}

func TestMove_OneStep(t *testing.T) {
	s := setupStore(t)

	res, err := s.Move(6, models.StageNew)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if !res.Moved || res.From != models.StageEnrolled {
		t.Errorf("unexpected result: %+v", res)
	}
	if got := cardIDs(t, s, models.StageNew); !reflect.DeepEqual(got, []int{1, 2, 6}) {
		t.Errorf("new stage ids = %v, want [1 2 6]", got)
	}

	if _, err := s.Move(999, models.StageNew); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Move(unknown) error = %v", err)
	}
}

func TestUndo_RestoresFormerPosition(t *testing.T) {
	s := setupStore(t)
	before := s.Snapshot()

	res, err := s.Move(1, models.StageVisa)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if err := s.Undo(res); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}

	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Errorf("undo did not restore the board")
	}
	if card, _ := s.Card(1); card.Stage != models.StageNew {
		t.Errorf("card stage = %q, want new", card.Stage)
	}
}

func TestUndo_SelfDropAndStale(t *testing.T) {
	s := setupStore(t)

	res, err := s.Move(3, models.StageQualified)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if err := s.Undo(res); err != nil {
		t.Errorf("undo of self-drop error = %v", err)
	}

	moved, err := s.Move(3, models.StageApplied)
	if err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if _, err := s.Move(3, models.StageVisa); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if err := s.Undo(moved); !errors.Is(err, ErrStaleMove) {
		t.Errorf("undo after a later move error = %v, want ErrStaleMove", err)
	}
}
