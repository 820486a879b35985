package controllers

import (
	"bytes"
	"io"
	"strings"

	"github.com/gofiber/fiber/v3"

	"shopping-helper-admin/config"
	"shopping-helper-admin/middleware"
	"shopping-helper-admin/views"
)

type AdminController struct {
	cfg *config.Config
}

func NewAdminController(cfg *config.Config) *AdminController {
	return &AdminController{cfg: cfg}
}

// Index renders the admin page
// @Summary Admin page
// @Description Loads every collection on first visit, or again with refresh=1
// @Tags Admin
// @Produce html
// @Param refresh query string false "Reload every collection"
// @Success 200
// @Router / [get]
func (ac *AdminController) Index(c fiber.Ctx) error {
	ws := middleware.WorkspaceFrom(c)

	if c.Query("refresh") != "" {
		ws.Load(c.Context())
	} else {
		ws.Mount(c.Context())
	}

	page := views.BuildPage(ac.cfg.AppName, ws)
	return renderHTML(c, func(w io.Writer) error {
		return views.RenderPage(w, page)
	})
}

func renderHTML(c fiber.Ctx, render func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func redirectHome(c fiber.Ctx) error {
	return c.Redirect().Status(fiber.StatusSeeOther).To("/")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
