package view

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/artem13815/resume-builder/pkg/generator"
	"github.com/artem13815/resume-builder/pkg/metrics"
	"github.com/artem13815/resume-builder/pkg/resume"
)

var ErrClosed = errors.New("view closed")

// Notification is an error message shown to the user until dismissed or expired.
type Notification struct {
	Message  string
	RaisedAt time.Time
}

// Snapshot is a consistent copy of the view state.
type Snapshot struct {
	Form    resume.FormInput
	State   State
	Loading bool
	Error   string
	// ErrorExpiresIn is how long the current error stays visible; zero means until dismissed.
	ErrorExpiresIn time.Duration
}

type Option func(*Controller)

// WithErrorTTL sets how long a notification stays up. Zero keeps it until dismissed.
func WithErrorTTL(d time.Duration) Option {
	return func(c *Controller) { c.errorTTL = d }
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func WithLogger(l *log.Entry) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller drives the landing -> form -> result flow for one user.
// All methods are safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	backend  generator.Backend
	form     resume.FormInput
	state    State
	loading  bool
	notice   *Notification
	errorTTL time.Duration
	now      func() time.Time
	logger   *log.Entry

	// lifetime of the view; cancelled by Close
	ctx    context.Context
	cancel context.CancelFunc
}

func New(backend generator.Backend, opts ...Option) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		backend:  backend,
		state:    Landing{},
		errorTTL: 6 * time.Second,
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.NewEntry(log.StandardLogger())
	}
	return c
}

// UpdateField sets one form field. The last write per field wins.
func (c *Controller) UpdateField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	form, err := c.form.With(field, value)
	if err != nil {
		return err
	}
	c.form = form
	return nil
}

// OpenForm moves from the landing page to the form.
func (c *Controller) OpenForm() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := OpenForm(c.state)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// Submit sends the current form to the backend and waits for the answer.
// On success the view switches to the result screen; on failure the error
// message becomes the visible notification and the screen stays where it is.
// The request is aborted if the view is closed meanwhile, and a closed view
// is never updated.
func (c *Controller) Submit(ctx context.Context) error {
	in, err := c.beginSubmit()
	if err != nil {
		return err
	}
	return c.awaitSubmit(ctx, in)
}

// SubmitAsync is Submit without waiting: the view is already loading when it
// returns, and the outcome is delivered on the channel.
func (c *Controller) SubmitAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	in, err := c.beginSubmit()
	if err != nil {
		done <- err
		return done
	}
	go func() {
		done <- c.awaitSubmit(ctx, in)
	}()
	return done
}

func (c *Controller) beginSubmit() (resume.FormInput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx.Err() != nil {
		return resume.FormInput{}, ErrClosed
	}
	c.loading = true
	c.notice = nil
	if _, ok := c.state.(Result); ok {
		c.state = Form{}
	}
	return c.form, nil
}

func (c *Controller) awaitSubmit(ctx context.Context, in resume.FormInput) error {
	defer c.finishSubmit()

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.ctx, cancel)
	defer stop()

	start := time.Now()
	res, err := c.generate(reqCtx, in)
	metrics.SubmissionDuration.Observe(time.Since(start).Seconds())

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx.Err() != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeAbandoned).Inc()
		c.logger.Debug("submission finished after view was closed")
		return ErrClosed
	}
	if err != nil {
		metrics.Submissions.WithLabelValues(metrics.OutcomeFailure).Inc()
		c.logger.WithError(err).Warn("resume generation failed")
		c.notice = &Notification{Message: err.Error(), RaisedAt: c.now()}
		return err
	}
	metrics.Submissions.WithLabelValues(metrics.OutcomeSuccess).Inc()
	c.logger.WithField("temp_dir", res.TempDir).Info("resume generated")
	c.state = Complete(c.state, res)
	return nil
}

// generate calls the backend; a panic on that path becomes an ordinary failure.
func (c *Controller) generate(ctx context.Context, in resume.FormInput) (res resume.SubmissionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.WithField("panic", r).Error("resume backend panicked")
			err = errors.Errorf("resume generation crashed: %v", r)
		}
	}()
	return c.backend.Generate(ctx, in)
}

func (c *Controller) finishSubmit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctx.Err() != nil {
		return
	}
	c.loading = false
}

// GoBack returns to the landing page and drops the result.
// An in-flight submission is left running.
func (c *Controller) GoBack() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Back(c.state)
}

// Download resolves where the browser should go for the given artifact kind.
// Without a result it is a no-op: ok is false and no URL is returned.
func (c *Controller) Download(kind string) (url string, ok bool, err error) {
	format, err := resume.ParseFormat(kind)
	if err != nil {
		return "", false, err
	}
	c.mu.Lock()
	res, has := c.state.(Result)
	c.mu.Unlock()
	if !has {
		return "", false, nil
	}
	url, err = c.backend.DownloadURL(format, res.Payload.TempDir)
	if err != nil {
		return "", false, err
	}
	metrics.Downloads.WithLabelValues(string(format)).Inc()
	return url, true, nil
}

// ShowError raises a notification without touching the rest of the state.
func (c *Controller) ShowError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = &Notification{Message: message, RaisedAt: c.now()}
}

// DismissError clears the notification.
func (c *Controller) DismissError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = nil
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{
		Form:    c.form,
		State:   c.state,
		Loading: c.loading,
	}
	if c.notice == nil {
		return s
	}
	if c.errorTTL > 0 {
		left := c.errorTTL - c.now().Sub(c.notice.RaisedAt)
		if left <= 0 {
			c.notice = nil
			return s
		}
		s.ErrorExpiresIn = left
	}
	s.Error = c.notice.Message
	return s
}

// Close tears the view down and aborts a pending submission.
func (c *Controller) Close() {
	c.cancel()
}

// Done is closed once the view has been torn down.
func (c *Controller) Done() <-chan struct{} {
	return c.ctx.Done()
}
