package generator

import (
	"context"

	"github.com/artem13815/resume-builder/pkg/resume"
)

// Backend is the remote resume-generation service as seen by the view.
// Concrete transports live in subpackages.
type Backend interface {
	// Generate turns the submitted form into a structured resume.
	Generate(ctx context.Context, in resume.FormInput) (resume.SubmissionResult, error)
	// DownloadURL is where the browser fetches a generated artifact.
	DownloadURL(format resume.Format, tempDir string) (string, error)
}
