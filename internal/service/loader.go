package service

import (
	"context"
	"errors"
	"sync"

	"gitcards/internal/stats"
	"gitcards/pkg/logger"
)

type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	return [...]string{"loading", "ready", "failed"}[s]
}

// * Result is the pipeline's observable three-state contract
type Result struct {
	State State
	Data  *stats.ProfileData
	Err   error
}

// * Loader runs at most one profile fetch at a time for a polling surface.
// * Loading a new account supersedes and cancels the in-flight one; a
// * superseded or cancelled run never touches the visible Result.
type Loader struct {
	service *ProfileService

	mu      sync.Mutex
	cancel  context.CancelFunc
	seq     int
	current Result
}

func NewLoader(service *ProfileService) *Loader {
	return &Loader{service: service}
}

func (l *Loader) Load(ctx context.Context, username string) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.seq++
	seq := l.seq
	l.current = Result{State: StateLoading}
	l.mu.Unlock()

	go func() {
		// * Release this run's context once it settles, not only when the
		// * next Load or Stop fires
		defer cancel()

		data, err := l.service.FetchProfileData(runCtx, username)

		l.mu.Lock()
		defer l.mu.Unlock()

		if seq != l.seq {
			// * Superseded by a newer load; discard silently
			return
		}

		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("Profile load for %s failed: %v", username, err)
			l.current = Result{State: StateFailed, Err: err}
			return
		}

		l.current = Result{State: StateReady, Data: data}
	}()
}

func (l *Loader) Result() Result {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// * Stop cancels any in-flight load
func (l *Loader) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
