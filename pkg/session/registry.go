package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/artem13815/resume-builder/pkg/metrics"
	"github.com/artem13815/resume-builder/pkg/view"
)

// Factory builds the view for a new session.
type Factory func(id uuid.UUID) *view.Controller

type entry struct {
	view     *view.Controller
	lastSeen time.Time
}

// Registry keeps one view per browser session and tears idle ones down.
type Registry struct {
	mu      sync.Mutex
	views   map[uuid.UUID]*entry
	factory Factory
	ttl     time.Duration
	now     func() time.Time
	logger  *log.Entry
}

func NewRegistry(factory Factory, ttl time.Duration, logger *log.Entry) *Registry {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Registry{
		views:   make(map[uuid.UUID]*entry),
		factory: factory,
		ttl:     ttl,
		now:     time.Now,
		logger:  logger.WithField("component", "sessions"),
	}
}

// Get returns the live view for id and refreshes its idle timer.
func (r *Registry) Get(id uuid.UUID) (*view.Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.views[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.view, true
}

// Create starts a new session with a fresh view on the landing page.
func (r *Registry) Create() (uuid.UUID, *view.Controller) {
	id := uuid.New()
	v := r.factory(id)
	r.mu.Lock()
	r.views[id] = &entry{view: v, lastSeen: r.now()}
	r.mu.Unlock()
	metrics.ActiveViews.Inc()
	r.logger.WithField("session", id.String()).Debug("session created")
	return id, v
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// Sweep closes every view idle for longer than the TTL and returns how many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)
	var expired []*view.Controller
	r.mu.Lock()
	for id, e := range r.views {
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, e.view)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()
	for _, v := range expired {
		v.Close()
	}
	if n := len(expired); n > 0 {
		metrics.ActiveViews.Sub(float64(n))
		r.logger.WithField("count", n).Info("expired idle sessions")
	}
	return len(expired)
}

// Run sweeps periodically until ctx is done, then closes all views.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.Close()
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close tears down every view, aborting pending submissions.
func (r *Registry) Close() {
	r.mu.Lock()
	views := r.views
	r.views = make(map[uuid.UUID]*entry)
	r.mu.Unlock()
	for _, e := range views {
		e.view.Close()
	}
	metrics.ActiveViews.Sub(float64(len(views)))
}
