package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/artem13815/resume-builder/api/http/middleware"
	"github.com/artem13815/resume-builder/api/http/presenter"
	"github.com/artem13815/resume-builder/pkg/resume"
	"github.com/artem13815/resume-builder/pkg/view"
)

// PagesHandler serves the three HTML screens and their form posts.
// Every post redirects back to "/" so a reload never resubmits.
type PagesHandler struct {
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	logger   *log.Entry
}

func NewPagesHandler(maxBytes int64, logger *log.Entry) *PagesHandler {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &PagesHandler{maxBytes: maxBytes, logger: logger}
}

// Index renders whichever screen the session is on.
func (h *PagesHandler) Index(c *fiber.Ctx) error {
	v := middleware.View(c)
	return presenter.HTML(c, http.StatusOK, view.Render(v.Snapshot()))
}

// Start is the landing page call-to-action.
func (h *PagesHandler) Start(c *fiber.Ctx) error {
	v := middleware.View(c)
	if err := v.OpenForm(); err != nil {
		h.logger.WithError(err).Debug("ignoring start")
	}
	return toIndex(c)
}

// Generate stores the posted form, validates it and starts the submission.
// The submission runs in the background for as long as the session lives.
func (h *PagesHandler) Generate(c *fiber.Ctx) error {
	v := middleware.View(c)
	snap := v.Snapshot()
	if snap.Loading || snap.State.Screen() != view.ScreenForm {
		return toIndex(c)
	}
	for _, field := range resume.Fields() {
		if err := v.UpdateField(field, c.FormValue(field)); err != nil {
			return err
		}
	}
	if err := v.Snapshot().Form.Validate(); err != nil {
		v.ShowError(err.Error())
		return toIndex(c)
	}
	v.SubmitAsync(context.Background())
	return toIndex(c)
}

// Import prefills the free-text field from an uploaded PDF or DOCX resume.
func (h *PagesHandler) Import(c *fiber.Ctx) error {
	v := middleware.View(c)
	if v.Snapshot().State.Screen() != view.ScreenForm {
		return toIndex(c)
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		v.ShowError("file is required (pdf or docx)")
		return toIndex(c)
	}
	file, err := fh.Open()
	if err != nil {
		v.ShowError("failed to open uploaded file")
		return toIndex(c)
	}
	defer file.Close()

	text, err := resume.ImportText(fh.Filename, file, h.maxBytes)
	if err != nil {
		h.logger.WithError(err).WithField("filename", fh.Filename).Warn("resume import failed")
		v.ShowError(importMessage(err))
		return toIndex(c)
	}
	if err := v.UpdateField(resume.FieldRawText, text); err != nil {
		return err
	}
	return toIndex(c)
}

// Back leaves the result screen for the landing page.
func (h *PagesHandler) Back(c *fiber.Ctx) error {
	middleware.View(c).GoBack()
	return toIndex(c)
}

func (h *PagesHandler) DismissError(c *fiber.Ctx) error {
	middleware.View(c).DismissError()
	return toIndex(c)
}

// Download sends the browser to the backend artifact. Without a result
// nothing happens (204), so the new tab stays empty.
func (h *PagesHandler) Download(c *fiber.Ctx) error {
	url, ok, err := middleware.View(c).Download(c.Params("kind"))
	switch {
	case errors.Is(err, resume.ErrUnknownFormat):
		return c.Status(http.StatusBadRequest).SendString("invalid file type")
	case errors.Is(err, resume.ErrMissingArtifact):
		return c.Status(http.StatusNotFound).SendString("generated file is not available")
	case err != nil:
		return err
	case !ok:
		return c.SendStatus(http.StatusNoContent)
	}
	return c.Redirect(url, http.StatusFound)
}

func toIndex(c *fiber.Ctx) error {
	return c.Redirect("/", http.StatusSeeOther)
}

func importMessage(err error) string {
	switch {
	case errors.Is(err, resume.ErrUnsupportedImport),
		errors.Is(err, resume.ErrEmptyImport),
		errors.Is(err, resume.ErrImportTooLarge):
		return err.Error()
	default:
		return "failed to read resume"
	}
}
