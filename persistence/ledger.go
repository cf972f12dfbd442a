package persistence

import (
	"fmt"
	"log"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/arena-fighter/parameter"
)

const (
	scoresObject   = "scores"
	scoresProperty = "ledger"
)

// ledgerFile is the encoded ledger document
type ledgerFile struct {
	Scores []int `yaml:"scores"`
}

// Ledger is the high-score list: descending, capped at LedgerCapacity
// The ledger is loaded lazily and cached; every append writes through
type Ledger struct {
	mu       sync.Mutex
	store    Store
	scores   []int
	loaded   bool
	capacity int
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store, capacity: parameter.LedgerCapacity}
}

func (l *Ledger) load() error {
	if l.loaded {
		return nil
	}
	data, ok, err := l.store.Load(scoresObject, scoresProperty)
	if err != nil {
		return err
	}
	var f ledgerFile
	if ok {
		if err := yaml.Unmarshal(data, &f); err != nil {
			// A corrupt ledger is replaced rather than blocking every future append
			log.Printf("[Ledger] discarding unreadable ledger: %v", err)
			f.Scores = nil
		}
	}
	l.scores = normalize(f.Scores, l.capacity)
	l.loaded = true
	return nil
}

// AppendScore inserts score keeping descending order and drops entries beyond capacity
func (l *Ledger) AppendScore(score int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.load(); err != nil {
		return fmt.Errorf("append score: %w", err)
	}

	next := normalize(append(slices.Clone(l.scores), score), l.capacity)
	data, err := yaml.Marshal(ledgerFile{Scores: next})
	if err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	if err := l.store.Save(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("append score: %w", err)
	}
	l.scores = next
	log.Printf("[Ledger] recorded %d (%d entries)", score, len(next))
	return nil
}

// TopScores returns up to n highest scores, best first
func (l *Ledger) TopScores(n int) ([]int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.load(); err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	if n <= 0 {
		return nil, nil
	}
	if n > len(l.scores) {
		n = len(l.scores)
	}
	return slices.Clone(l.scores[:n]), nil
}

// Len is the number of stored scores, 0 when the store is unreadable
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(); err != nil {
		return 0
	}
	return len(l.scores)
}

func normalize(scores []int, capacity int) []int {
	slices.SortFunc(scores, func(a, b int) int { return b - a })
	if len(scores) > capacity {
		scores = scores[:capacity]
	}
	return scores
}
