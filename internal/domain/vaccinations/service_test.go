package vaccinations

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byUser map[string][]Record
	saves  int
}

func newTestRepo() *testRepo {
	return &testRepo{byUser: map[string][]Record{}}
}

func (r *testRepo) GetSchedule(ctx context.Context, userID string) ([]Record, bool, error) {
	s, ok := r.byUser[userID]
	if !ok {
		return nil, false, nil
	}
	out := make([]Record, len(s))
	copy(out, s)
	return out, true, nil
}

func (r *testRepo) SaveSchedule(ctx context.Context, userID string, schedule []Record) error {
	r.saves++
	cp := make([]Record, len(schedule))
	copy(cp, schedule)
	r.byUser[userID] = cp
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Schedule_LazyInitFromDefault(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	schedule, err := svc.Schedule(context.Background(), "mama-1")
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	if len(schedule) != len(DefaultSchedule()) {
		t.Fatalf("expected default schedule of %d, got %d", len(DefaultSchedule()), len(schedule))
	}
	if repo.saves != 1 {
		t.Fatalf("expected 1 save on first read, got %d", repo.saves)
	}
	for i, rec := range schedule {
		if rec.Status != StatusPending {
			t.Fatalf("expected pending status on seed, got %s at %d", rec.Status, i)
		}
		if rec.Order != i+1 {
			t.Fatalf("expected order %d, got %d", i+1, rec.Order)
		}
	}

	// Segunda lectura no vuelve a sembrar
	_, err = svc.Schedule(context.Background(), "mama-1")
	if err != nil {
		t.Fatalf("Schedule #2 error: %v", err)
	}
	if repo.saves != 1 {
		t.Fatalf("second read must not save, got %d saves", repo.saves)
	}
}

func TestService_SetStatus_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	schedule, err := svc.Schedule(context.Background(), "mama-1")
	if err != nil {
		t.Fatalf("Schedule error: %v", err)
	}
	id := schedule[0].ID

	rec, err := svc.SetStatus(context.Background(), "mama-1", id, StatusCompleted)
	if err != nil {
		t.Fatalf("SetStatus error: %v", err)
	}
	if rec.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s", rec.Status)
	}
	savesAfterToggle := repo.saves

	// Mismo estado otra vez: no escribe nada
	rec2, err := svc.SetStatus(context.Background(), "mama-1", id, StatusCompleted)
	if err != nil {
		t.Fatalf("SetStatus #2 error: %v", err)
	}
	if rec2.Status != StatusCompleted {
		t.Fatalf("expected completed after repeat, got %s", rec2.Status)
	}
	if repo.saves != savesAfterToggle {
		t.Fatalf("idempotent SetStatus must not save, got %d extra saves", repo.saves-savesAfterToggle)
	}

	// Solo cambia el registro tocado
	schedule, _ = svc.Schedule(context.Background(), "mama-1")
	for _, other := range schedule[1:] {
		if other.Status != StatusPending {
			t.Fatalf("untouched record changed: %s => %s", other.ID, other.Status)
		}
	}
}

func TestService_SetStatus_UnknownID(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.SetStatus(context.Background(), "mama-1", "no-such-id", StatusSkipped)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_SetStatus_InvalidStatus(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.SetStatus(context.Background(), "mama-1", "bcg-birth", Status("maybe"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDefaultSchedule_ReturnsFreshCopy(t *testing.T) {
	a := DefaultSchedule()
	a[0].Status = StatusCompleted

	b := DefaultSchedule()
	if b[0].Status != StatusPending {
		t.Fatalf("DefaultSchedule must not share state between calls")
	}
}
