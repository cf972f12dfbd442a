package persistence

import (
	"errors"
	"slices"
	"testing"

	"github.com/lixenwraith/arena-fighter/parameter"
)

func TestLedgerOrdersDescending(t *testing.T) {
	l := NewLedger(NewMemoryStore())
	for _, s := range []int{150, 20, 900, 150, 0} {
		if err := l.AppendScore(s); err != nil {
			t.Fatalf("AppendScore(%d): %v", s, err)
		}
	}

	got, err := l.TopScores(10)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{900, 150, 150, 20, 0}
	if !slices.Equal(got, want) {
		t.Errorf("TopScores = %v, want %v", got, want)
	}

	top, _ := l.TopScores(2)
	if !slices.Equal(top, []int{900, 150}) {
		t.Errorf("TopScores(2) = %v", top)
	}
	if none, _ := l.TopScores(0); len(none) != 0 {
		t.Errorf("TopScores(0) = %v", none)
	}
}

func TestLedgerCapacity(t *testing.T) {
	l := NewLedger(NewMemoryStore())
	for i := 1; i <= parameter.LedgerCapacity+20; i++ {
		if err := l.AppendScore(i); err != nil {
			t.Fatal(err)
		}
	}
	if l.Len() != parameter.LedgerCapacity {
		t.Fatalf("Len = %d, want %d", l.Len(), parameter.LedgerCapacity)
	}
	all, _ := l.TopScores(parameter.LedgerCapacity)
	if all[0] != parameter.LedgerCapacity+20 || all[len(all)-1] != 21 {
		t.Errorf("kept range [%d..%d]", all[0], all[len(all)-1])
	}

	// A score below the floor is dropped
	l.AppendScore(1)
	if low, _ := l.TopScores(parameter.LedgerCapacity); low[len(low)-1] != 21 {
		t.Errorf("lowest = %d after appending a losing score", low[len(low)-1])
	}
}

func TestLedgerSurvivesReopen(t *testing.T) {
	store := NewMemoryStore()
	NewLedger(store).AppendScore(42)
	NewLedger(store).AppendScore(7)

	got, err := NewLedger(store).TopScores(5)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{42, 7}) {
		t.Errorf("reopened ledger = %v", got)
	}
}

func TestLedgerStoreFailure(t *testing.T) {
	store := NewMemoryStore()
	l := NewLedger(store)
	l.AppendScore(10)

	store.SetFailing(true)
	if err := l.AppendScore(20); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("AppendScore err = %v, want ErrStoreUnavailable", err)
	}
	// The failed append leaves the cached list untouched
	store.SetFailing(false)
	got, _ := l.TopScores(5)
	if !slices.Equal(got, []int{10}) {
		t.Errorf("after failed append = %v", got)
	}

	cold := NewLedger(store)
	store.SetFailing(true)
	if _, err := cold.TopScores(5); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("TopScores err = %v", err)
	}
}

func TestLedgerDiscardsCorruptData(t *testing.T) {
	store := NewMemoryStore()
	store.Save(scoresObject, scoresProperty, []byte("scores: [not, numbers"))

	l := NewLedger(store)
	if err := l.AppendScore(5); err != nil {
		t.Fatal(err)
	}
	got, _ := l.TopScores(5)
	if !slices.Equal(got, []int{5}) {
		t.Errorf("got %v", got)
	}
}
