package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/artem13815/resume-builder/pkg/resume"
)

// ErrGenerateFailed is returned for any non-2xx answer from /generate.
// The status and body are logged, never shown to the user.
var ErrGenerateFailed = errors.New("Failed to generate resume")

// Client talks to the resume-generation backend over HTTP.
type Client struct {
	BaseURL string
	httpDo  *http.Client
	logger  *log.Entry
}

// New returns a client for the backend at baseURL. A zero timeout means the
// generate call is bounded only by its context.
func New(baseURL string, timeout time.Duration, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo: &http.Client{
			Timeout: timeout,
		},
		logger: logger.WithField("component", "backend"),
	}
}

// Generate posts the form to {base}/generate and decodes the structured resume.
func (c *Client) Generate(ctx context.Context, in resume.FormInput) (resume.SubmissionResult, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return resume.SubmissionResult{}, errors.Wrap(err, "encode form")
	}
	endpoint := c.BaseURL + "/generate"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return resume.SubmissionResult{}, errors.Wrap(err, "build generate request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return resume.SubmissionResult{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.WithFields(log.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Warn("backend rejected generate request")
		return resume.SubmissionResult{}, ErrGenerateFailed
	}
	var out resume.SubmissionResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return resume.SubmissionResult{}, errors.Wrap(err, "decode generate response")
	}
	return out, nil
}

// DownloadURL builds {base}/download/{format}?temp_dir={tempDir}.
func (c *Client) DownloadURL(format resume.Format, tempDir string) (string, error) {
	if _, err := resume.ParseFormat(string(format)); err != nil {
		return "", err
	}
	if tempDir == "" {
		return "", resume.ErrMissingArtifact
	}
	q := url.Values{}
	q.Set("temp_dir", tempDir)
	return fmt.Sprintf("%s/download/%s?%s", c.BaseURL, format, q.Encode()), nil
}

// Ping reports whether the backend answers HTTP at all. Anything below 500 counts.
func (c *Client) Ping(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/", nil)
	if err != nil {
		return errors.Wrap(err, "build ping request")
	}
	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "backend unreachable")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 500 {
		return errors.Errorf("backend http %d", resp.StatusCode)
	}
	return nil
}
