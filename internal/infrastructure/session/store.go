// Package session holds in-flight quote sessions in memory. A quote lives
// exactly as long as its session: nothing is written to disk or shared
// across sessions, matching the single-actor model of the quote builder.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/solucion-eventos/quotation-api/internal/api/metrics"
	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

const defaultSweepInterval = time.Minute

// Store is an in-memory ports.QuoteStore with TTL expiry. Reads and writes
// clone the quote so callers never share state with the map.
type Store struct {
	mu     sync.RWMutex
	quotes map[string]*domain.Quote
	log    zerolog.Logger

	sweepInterval time.Duration
	now           func() time.Time
}

func NewStore(log zerolog.Logger) *Store {
	return &Store{
		quotes:        make(map[string]*domain.Quote),
		log:           log,
		sweepInterval: defaultSweepInterval,
		now:           time.Now,
	}
}

func (s *Store) Create(_ context.Context, q *domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.ID] = q.Clone()
	metrics.SessionsActive.Set(float64(len(s.quotes)))
	return nil
}

// Get returns a copy of the quote, or domain.ErrQuoteNotFound when the id is
// unknown or the session has lapsed. Expired entries are removed eagerly so
// a stale id behaves identically before and after a sweep.
func (s *Store) Get(_ context.Context, id string) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[id]
	if !ok {
		return nil, domain.ErrQuoteNotFound
	}
	if q.Expired(s.now()) {
		delete(s.quotes, id)
		metrics.SessionsActive.Set(float64(len(s.quotes)))
		return nil, domain.ErrQuoteNotFound
	}
	return q.Clone(), nil
}

func (s *Store) Save(_ context.Context, q *domain.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[q.ID]; !ok {
		return domain.ErrQuoteNotFound
	}
	s.quotes[q.ID] = q.Clone()
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quotes, id)
	metrics.SessionsActive.Set(float64(len(s.quotes)))
	return nil
}

// StartSweeper launches the background expiry loop. It stops when ctx is
// cancelled.
func (s *Store) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Store) sweep() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := 0
	for id, q := range s.quotes {
		if q.Expired(now) {
			delete(s.quotes, id)
			expired++
		}
	}
	if expired > 0 {
		metrics.SessionsExpiredTotal.Add(float64(expired))
		metrics.SessionsActive.Set(float64(len(s.quotes)))
		s.log.Debug().Int("expired", expired).Int("remaining", len(s.quotes)).Msg("swept expired quote sessions")
	}
}

// Len reports the current number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quotes)
}
