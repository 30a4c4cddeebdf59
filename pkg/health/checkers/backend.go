package checkers

import (
	"context"
	"time"
)

// Pinger is anything that can tell whether a remote dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BackendChecker verifies the resume-generation backend is reachable.
type BackendChecker struct {
	backend Pinger
	timeout time.Duration
}

func NewBackendChecker(backend Pinger) *BackendChecker {
	return &BackendChecker{backend: backend, timeout: time.Second}
}

func (c *BackendChecker) Name() string { return "backend" }

func (c *BackendChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.backend.Ping(ctx)
}
