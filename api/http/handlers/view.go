package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/artem13815/resume-builder/api/http/middleware"
	"github.com/artem13815/resume-builder/api/http/presenter"
	"github.com/artem13815/resume-builder/pkg/resume"
	"github.com/artem13815/resume-builder/pkg/view"
)

// ViewHandler exposes the session's view as JSON.
type ViewHandler struct{}

func NewViewHandler() *ViewHandler { return &ViewHandler{} }

// Get returns the current view state.
// @Summary Current view
// @Tags    view
// @Produce json
// @Success 200 {object} presenter.ViewResponse
// @Router  /view [get]
func (h *ViewHandler) Get(c *fiber.Ctx) error {
	return snapshot(c, http.StatusOK)
}

// OpenForm moves from the landing screen to the form.
// @Summary Open the form
// @Tags    view
// @Produce json
// @Success 200 {object} presenter.ViewResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /view/form/open [post]
func (h *ViewHandler) OpenForm(c *fiber.Ctx) error {
	if err := middleware.View(c).OpenForm(); err != nil {
		return presenter.Error(c, http.StatusConflict, err.Error())
	}
	return snapshot(c, http.StatusOK)
}

// UpdateField sets one form field.
// @Summary Update a form field
// @Tags    view
// @Accept  json
// @Produce json
// @Param   body body presenter.FieldRequest true "field and value"
// @Success 200 {object} presenter.ViewResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /view/form [patch]
func (h *ViewHandler) UpdateField(c *fiber.Ctx) error {
	var req presenter.FieldRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid body")
	}
	if err := middleware.View(c).UpdateField(req.Field, req.Value); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return snapshot(c, http.StatusOK)
}

// Submit validates the form and waits for the backend to generate the resume.
// @Summary Generate the resume
// @Tags    view
// @Produce json
// @Success 200 {object} presenter.ViewResponse
// @Failure 400 {object} presenter.ErrorResponse "form is incomplete"
// @Failure 409 {object} presenter.ErrorResponse "a submission is already running"
// @Failure 502 {object} presenter.ViewResponse "backend failed; error holds the message"
// @Router  /view/submit [post]
func (h *ViewHandler) Submit(c *fiber.Ctx) error {
	v := middleware.View(c)
	snap := v.Snapshot()
	if snap.Loading {
		return presenter.Error(c, http.StatusConflict, "submission already in progress")
	}
	if err := snap.Form.Validate(); err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	err := v.Submit(c.UserContext())
	switch {
	case errors.Is(err, view.ErrClosed):
		return presenter.Error(c, http.StatusGone, err.Error())
	case err != nil:
		return snapshot(c, http.StatusBadGateway)
	}
	return snapshot(c, http.StatusOK)
}

// Back returns to the landing screen.
// @Summary Go back
// @Tags    view
// @Produce json
// @Success 200 {object} presenter.ViewResponse
// @Router  /view/back [post]
func (h *ViewHandler) Back(c *fiber.Ctx) error {
	middleware.View(c).GoBack()
	return snapshot(c, http.StatusOK)
}

// DismissError clears the error notification.
// @Summary Dismiss the error
// @Tags    view
// @Produce json
// @Success 200 {object} presenter.ViewResponse
// @Router  /view/error [delete]
func (h *ViewHandler) DismissError(c *fiber.Ctx) error {
	middleware.View(c).DismissError()
	return snapshot(c, http.StatusOK)
}

// Download returns the backend URL of a generated artifact.
// @Summary Artifact URL
// @Tags    view
// @Produce json
// @Param   kind path string true "pdf, md or json"
// @Success 200 {object} presenter.DownloadResponse
// @Success 204 "no result yet"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /view/download/{kind} [get]
func (h *ViewHandler) Download(c *fiber.Ctx) error {
	url, ok, err := middleware.View(c).Download(c.Params("kind"))
	switch {
	case errors.Is(err, resume.ErrUnknownFormat):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, resume.ErrMissingArtifact):
		return presenter.Error(c, http.StatusNotFound, err.Error())
	case err != nil:
		return err
	case !ok:
		return c.SendStatus(http.StatusNoContent)
	}
	return presenter.JSON(c, http.StatusOK, presenter.DownloadResponse{URL: url})
}

func snapshot(c *fiber.Ctx, status int) error {
	return presenter.JSON(c, status, presenter.NewViewResponse(middleware.View(c).Snapshot()))
}
