package view

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-builder/pkg/generator/remote"
	"github.com/artem13815/resume-builder/pkg/metrics"
	"github.com/artem13815/resume-builder/pkg/resume"
)

type backendMock struct {
	mock.Mock
}

func (m *backendMock) Generate(ctx context.Context, in resume.FormInput) (resume.SubmissionResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(resume.SubmissionResult), args.Error(1)
}

func (m *backendMock) DownloadURL(format resume.Format, tempDir string) (string, error) {
	args := m.Called(format, tempDir)
	return args.String(0), args.Error(1)
}

func backendServer(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func filledController(backend *remote.Client, opts ...Option) *Controller {
	c := New(backend, opts...)
	_ = c.OpenForm()
	_ = c.UpdateField(resume.FieldName, "Ada")
	_ = c.UpdateField(resume.FieldEmail, "ada@example.com")
	_ = c.UpdateField(resume.FieldRawText, "Wrote the first program")
	return c
}

func TestUpdateField(t *testing.T) {
	c := New(&backendMock{})
	require.Nil(t, c.UpdateField(resume.FieldName, "A"))
	require.Nil(t, c.UpdateField(resume.FieldPhone, "555"))
	require.Nil(t, c.UpdateField(resume.FieldName, "Ad"))
	require.Nil(t, c.UpdateField(resume.FieldName, "Ada"))
	require.Nil(t, c.UpdateField(resume.FieldRawText, "text"))
	require.True(t, errors.Is(c.UpdateField("age", "36"), resume.ErrUnknownField))

	require.Equal(t, resume.FormInput{Name: "Ada", Phone: "555", RawText: "text"}, c.Snapshot().Form)
}

func TestScreens(t *testing.T) {
	c := New(&backendMock{})
	require.Equal(t, ScreenLanding, c.Snapshot().State.Screen())
	require.Nil(t, c.OpenForm())
	require.Equal(t, ScreenForm, c.Snapshot().State.Screen())
	require.True(t, errors.Is(c.OpenForm(), ErrInvalidTransition))
	c.GoBack()
	require.Equal(t, ScreenLanding, c.Snapshot().State.Screen())
}

func TestSubmit(t *testing.T) {
	t.Run(`empty skills and experience render placeholders`, func(t *testing.T) {
		srv := backendServer(t, http.StatusOK, `{"resume_json":{"summary":"s","skills":[],"experience":[]},"temp_dir":"d"}`)
		c := filledController(remote.New(srv.URL, 0, nil))

		require.Nil(t, c.Submit(context.TODO()))
		page := Render(c.Snapshot())
		require.Equal(t, ScreenResult, page.Screen)
		require.Equal(t, NoSkillsPlaceholder, page.SkillsEmpty)
		require.Empty(t, page.Skills)
		require.Equal(t, NoExperiencePlaceholder, page.ExperienceEmpty)
		require.Empty(t, page.Experience)
	})

	t.Run(`missing end date renders Present`, func(t *testing.T) {
		srv := backendServer(t, http.StatusOK, `{"resume_json":{"summary":"s","skills":["Go","Rust"],"experience":[
			{"role":"Engineer","company":"Acme","start_date":"2020-01","description":"Shipped"}]},"temp_dir":"d"}`)
		c := filledController(remote.New(srv.URL, 0, nil))

		require.Nil(t, c.Submit(context.TODO()))
		page := Render(c.Snapshot())
		require.Equal(t, []string{"Go", "Rust"}, page.Skills)
		require.Equal(t, "", page.SkillsEmpty)
		require.Len(t, page.Experience, 1)
		require.Equal(t, "2020-01 - Present", page.Experience[0].DateRange)
		require.Equal(t, "Engineer", page.Experience[0].Role)
	})

	t.Run(`non-success status raises generic error`, func(t *testing.T) {
		srv := backendServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
		c := filledController(remote.New(srv.URL, 0, nil))

		err := c.Submit(context.TODO())
		require.Equal(t, remote.ErrGenerateFailed, err)
		snap := c.Snapshot()
		require.False(t, snap.Loading)
		require.Equal(t, "Failed to generate resume", snap.Error)
		require.Equal(t, ScreenForm, snap.State.Screen())
	})

	t.Run(`transport failure surfaces its message`, func(t *testing.T) {
		b := &backendMock{}
		b.On("Generate", mock.Anything, mock.Anything).
			Return(resume.SubmissionResult{}, errors.New("connection reset by peer"))
		c := New(b)
		require.Nil(t, c.OpenForm())

		require.NotNil(t, c.Submit(context.TODO()))
		snap := c.Snapshot()
		require.False(t, snap.Loading)
		require.Contains(t, snap.Error, "connection reset by peer")
		require.Equal(t, ScreenForm, snap.State.Screen())
	})

	t.Run(`submit clears previous error`, func(t *testing.T) {
		b := &backendMock{}
		b.On("Generate", mock.Anything, mock.Anything).
			Return(resume.SubmissionResult{TempDir: "d"}, nil)
		c := New(b)
		require.Nil(t, c.OpenForm())
		c.ShowError("Name is required")

		require.Nil(t, c.Submit(context.TODO()))
		require.Equal(t, "", c.Snapshot().Error)
	})

	t.Run(`loading while in flight`, func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		b := &backendMock{}
		b.On("Generate", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) {
				close(started)
				<-release
			}).
			Return(resume.SubmissionResult{TempDir: "d"}, nil)
		c := New(b)
		require.Nil(t, c.OpenForm())

		done := make(chan error, 1)
		go func() { done <- c.Submit(context.TODO()) }()
		<-started
		require.True(t, c.Snapshot().Loading)
		close(release)
		require.Nil(t, <-done)
		require.False(t, c.Snapshot().Loading)
	})

	t.Run(`closing the view aborts the request and keeps state`, func(t *testing.T) {
		started := make(chan struct{})
		b := &backendMock{}
		b.On("Generate", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				close(started)
				<-args.Get(0).(context.Context).Done()
			}).
			Return(resume.SubmissionResult{TempDir: "late"}, nil)
		c := New(b)
		require.Nil(t, c.OpenForm())

		done := make(chan error, 1)
		go func() { done <- c.Submit(context.TODO()) }()
		<-started
		c.Close()
		require.Equal(t, ErrClosed, <-done)
		require.Equal(t, ScreenForm, c.Snapshot().State.Screen())
		require.Equal(t, ErrClosed, c.Submit(context.TODO()))
		b.AssertNumberOfCalls(t, "Generate", 1)
	})
}

func TestSubmitAsync(t *testing.T) {
	release := make(chan struct{})
	b := &backendMock{}
	b.On("Generate", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(resume.SubmissionResult{TempDir: "d", Summary: "done"}, nil)
	c := New(b)
	require.Nil(t, c.OpenForm())

	done := c.SubmitAsync(context.Background())
	// loading is visible before the backend answers
	require.True(t, c.Snapshot().Loading)
	close(release)
	require.Nil(t, <-done)

	snap := c.Snapshot()
	require.False(t, snap.Loading)
	require.Equal(t, Result{Payload: resume.SubmissionResult{TempDir: "d", Summary: "done"}}, snap.State)

	c.Close()
	require.Equal(t, ErrClosed, <-c.SubmitAsync(context.Background()))
}

func TestGoBackDuringSubmit(t *testing.T) {
	started := make(chan context.Context, 1)
	release := make(chan struct{})
	b := &backendMock{}
	b.On("Generate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			started <- args.Get(0).(context.Context)
			<-release
		}).
		Return(resume.SubmissionResult{TempDir: "late"}, nil)
	c := New(b)
	require.Nil(t, c.OpenForm())

	done := c.SubmitAsync(context.Background())
	reqCtx := <-started
	c.GoBack()

	snap := c.Snapshot()
	require.Equal(t, ScreenLanding, snap.State.Screen())
	require.True(t, snap.Loading)
	require.Nil(t, reqCtx.Err())

	close(release)
	require.Nil(t, <-done)
	snap = c.Snapshot()
	require.False(t, snap.Loading)
	require.Equal(t, ScreenResult, snap.State.Screen())
	require.Equal(t, "late", snap.State.(Result).Payload.TempDir)
}

func TestSubmitBackendPanic(t *testing.T) {
	panicking := func() *backendMock {
		b := &backendMock{}
		b.On("Generate", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { panic("nil map") }).
			Return(resume.SubmissionResult{}, nil)
		return b
	}

	t.Run(`sync`, func(t *testing.T) {
		c := New(panicking())
		require.Nil(t, c.OpenForm())

		var err error
		require.NotPanics(t, func() { err = c.Submit(context.Background()) })
		require.NotNil(t, err)
		snap := c.Snapshot()
		require.False(t, snap.Loading)
		require.Contains(t, snap.Error, "nil map")
		require.Equal(t, ScreenForm, snap.State.Screen())
	})

	t.Run(`async`, func(t *testing.T) {
		c := New(panicking())
		require.Nil(t, c.OpenForm())

		err := <-c.SubmitAsync(context.Background())
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "nil map")
		snap := c.Snapshot()
		require.False(t, snap.Loading)
		require.Equal(t, err.Error(), snap.Error)
		require.Equal(t, ScreenForm, snap.State.Screen())
	})
}

func TestResubmitFromResult(t *testing.T) {
	started := make(chan struct{}, 2)
	release := make(chan struct{})
	b := &backendMock{}
	b.On("Generate", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			started <- struct{}{}
			<-release
		}).
		Return(resume.SubmissionResult{TempDir: "d"}, nil)
	c := New(b)
	require.Nil(t, c.OpenForm())

	done := c.SubmitAsync(context.Background())
	<-started
	release <- struct{}{}
	require.Nil(t, <-done)
	require.Equal(t, ScreenResult, c.Snapshot().State.Screen())

	done = c.SubmitAsync(context.Background())
	<-started
	snap := c.Snapshot()
	require.True(t, snap.Loading)
	require.Equal(t, ScreenForm, snap.State.Screen())
	close(release)
	require.Nil(t, <-done)
	require.Equal(t, ScreenResult, c.Snapshot().State.Screen())
}

func TestGoBack(t *testing.T) {
	srv := backendServer(t, http.StatusOK, `{"resume_json":{"summary":"s"},"temp_dir":"d"}`)
	c := filledController(remote.New(srv.URL, 0, nil))
	require.Nil(t, c.Submit(context.TODO()))
	require.Equal(t, ScreenResult, c.Snapshot().State.Screen())

	c.GoBack()
	snap := c.Snapshot()
	require.Equal(t, ScreenLanding, snap.State.Screen())
	_, ok, err := c.Download("pdf")
	require.Nil(t, err)
	require.False(t, ok)
	// form input survives navigation
	require.Equal(t, "Ada", snap.Form.Name)
}

func TestDownload(t *testing.T) {
	t.Run(`no result is a no-op`, func(t *testing.T) {
		b := &backendMock{}
		c := New(b)
		url, ok, err := c.Download("pdf")
		require.Nil(t, err)
		require.False(t, ok)
		require.Equal(t, "", url)
		b.AssertNotCalled(t, "DownloadURL", mock.Anything, mock.Anything)
	})

	t.Run(`json after success`, func(t *testing.T) {
		srv := backendServer(t, http.StatusOK, `{"resume_json":{"summary":"s"},"temp_dir":"abc123"}`)
		c := filledController(remote.New(srv.URL, 0, nil))
		require.Nil(t, c.Submit(context.TODO()))
		before := testutil.ToFloat64(metrics.Downloads.WithLabelValues("json"))

		url, ok, err := c.Download("json")
		require.Nil(t, err)
		require.True(t, ok)
		require.Equal(t, srv.URL+"/download/json?temp_dir=abc123", url)
		require.Equal(t, before+1, testutil.ToFloat64(metrics.Downloads.WithLabelValues("json")))
	})

	t.Run(`unknown kind is rejected`, func(t *testing.T) {
		c := New(&backendMock{})
		_, ok, err := c.Download("docx")
		require.True(t, errors.Is(err, resume.ErrUnknownFormat))
		require.False(t, ok)
	})

	t.Run(`result without temp_dir`, func(t *testing.T) {
		srv := backendServer(t, http.StatusOK, `{"resume_json":{"summary":"s"}}`)
		c := filledController(remote.New(srv.URL, 0, nil))
		require.Nil(t, c.Submit(context.TODO()))

		_, ok, err := c.Download("md")
		require.Equal(t, resume.ErrMissingArtifact, err)
		require.False(t, ok)
	})
}

func TestErrorNotification(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := New(&backendMock{}, WithErrorTTL(6*time.Second), WithClock(func() time.Time { return now }))
	require.Nil(t, c.OpenForm())
	require.Nil(t, c.UpdateField(resume.FieldName, "Ada"))

	c.ShowError("boom")
	snap := c.Snapshot()
	require.Equal(t, "boom", snap.Error)
	require.Equal(t, 6*time.Second, snap.ErrorExpiresIn)

	now = now.Add(2 * time.Second)
	require.Equal(t, 4*time.Second, c.Snapshot().ErrorExpiresIn)

	now = now.Add(4 * time.Second)
	snap = c.Snapshot()
	require.Equal(t, "", snap.Error)
	require.Equal(t, ScreenForm, snap.State.Screen())
	require.Equal(t, "Ada", snap.Form.Name)

	c.ShowError("again")
	c.DismissError()
	require.Equal(t, "", c.Snapshot().Error)
}
