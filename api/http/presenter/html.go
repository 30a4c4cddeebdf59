package presenter

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-builder/pkg/view"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// HTML renders the page for the current screen.
func HTML(c *fiber.Ctx, status int, page view.Page) error {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "page.html", page); err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
