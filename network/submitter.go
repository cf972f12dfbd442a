package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/arena-fighter/core"
)

// Sentinel errors
var (
	ErrSubmitFailed = errors.New("score submission failed")
	ErrDisabled     = errors.New("score submission disabled")
	ErrBusy         = errors.New("too many submissions in flight")
)

// Submitter POSTs score submissions in the background
// Each Submit runs on its own goroutine; the returned channel receives exactly one result
type Submitter struct {
	config *Config
	client *http.Client

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	inFlight atomic.Int32
	sent     atomic.Uint64
	failed   atomic.Uint64

	// onResult observes every completed submission, called from the worker goroutine
	onResult func(sub ScoreSubmission, err error)
}

// NewSubmitter creates a submitter; a nil client uses http.DefaultClient
func NewSubmitter(cfg *Config, client *http.Client) *Submitter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if client == nil {
		client = http.DefaultClient
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Submitter{
		config: cfg,
		client: client,
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetResultHandler installs the completion observer; must be called before the first Submit
func (s *Submitter) SetResultHandler(fn func(ScoreSubmission, error)) {
	s.onResult = fn
}

// Submit starts a fire-and-forget POST and never blocks the caller
func (s *Submitter) Submit(sub ScoreSubmission) <-chan error {
	result := make(chan error, 1)

	if !s.config.Enabled() {
		result <- ErrDisabled
		close(result)
		return result
	}
	if limit := s.config.MaxInFlight; limit > 0 && int(s.inFlight.Load()) >= limit {
		s.finish(sub, fmt.Errorf("%w: %w", ErrSubmitFailed, ErrBusy), result)
		return result
	}

	s.inFlight.Add(1)
	s.wg.Add(1)
	core.Go(func() {
		defer s.wg.Done()
		defer s.inFlight.Add(-1)
		s.finish(sub, s.post(sub), result)
	})
	return result
}

func (s *Submitter) finish(sub ScoreSubmission, err error, result chan<- error) {
	if err != nil {
		s.failed.Add(1)
		log.Printf("[Network] submit %s failed: %v", sub.MatchID, err)
	} else {
		s.sent.Add(1)
		log.Printf("[Network] submitted %s score=%d", sub.MatchID, sub.Score)
	}
	if s.onResult != nil {
		s.onResult(sub, err)
	}
	result <- err
	close(result)
}

func (s *Submitter) post(sub ScoreSubmission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrSubmitFailed, err)
	}

	ctx := s.ctx
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", ErrSubmitFailed, resp.StatusCode)
	}
	return nil
}

// Close waits for in-flight submissions, each bounded by the timeout, then releases the context
func (s *Submitter) Close() {
	s.wg.Wait()
	s.cancel()
}

// Stats returns successful and failed submission counts
func (s *Submitter) Stats() (sent, failed uint64) {
	return s.sent.Load(), s.failed.Load()
}
