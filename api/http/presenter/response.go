package presenter

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-builder/pkg/resume"
	"github.com/artem13815/resume-builder/pkg/view"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// ViewResponse is the JSON form of a view snapshot.
type ViewResponse struct {
	Screen  view.Screen              `json:"screen"`
	Form    resume.FormInput         `json:"form"`
	Loading bool                     `json:"loading"`
	Error   string                   `json:"error,omitempty"`
	Result  *resume.SubmissionResult `json:"result,omitempty"`
}

// StatusResponse is returned by the probes.
type StatusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

type DownloadResponse struct {
	URL string `json:"url"`
}

type FieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func NewViewResponse(s view.Snapshot) ViewResponse {
	out := ViewResponse{
		Screen:  s.State.Screen(),
		Form:    s.Form,
		Loading: s.Loading,
		Error:   s.Error,
	}
	if r, ok := s.State.(view.Result); ok {
		payload := r.Payload
		out.Result = &payload
	}
	return out
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
