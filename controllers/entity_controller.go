package controllers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"

	"shopping-helper-admin/crud"
	"shopping-helper-admin/middleware"
	"shopping-helper-admin/views"
	"shopping-helper-admin/workspace"
)

const busyMessage = "A request for this form is already in progress"

// EntityController serves the form posts and actions of one entity section.
// Every action ends with a redirect back to the admin page.
type EntityController[T any, F any] struct {
	entity crud.Entity[T, F]
	pick   func(*workspace.Workspace) *crud.Controller[T, F]
}

func NewEntityController[T any, F any](entity crud.Entity[T, F], pick func(*workspace.Workspace) *crud.Controller[T, F]) *EntityController[T, F] {
	return &EntityController[T, F]{entity: entity, pick: pick}
}

// Submit creates or updates a record from the posted form
// @Summary Submit entity form
// @Description Create a record in add mode or update the selected record in edit mode
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Produce html
// @Param entity path string true "stores, products or prices"
// @Success 303
// @Router /{entity} [post]
func (ec *EntityController[T, F]) Submit(c fiber.Ctx) error {
	ws := middleware.WorkspaceFrom(c)
	ctrl := ec.pick(ws)

	var form F
	if err := c.Bind().Form(&form); err != nil {
		ws.Banner.Set("Invalid form data")
		return redirectHome(c)
	}

	if err := ctrl.SubmitForm(c.Context(), form); errors.Is(err, crud.ErrBusy) {
		ws.Banner.Set(busyMessage)
	}
	return redirectHome(c)
}

// Cancel leaves edit mode without any request
// @Summary Cancel edit
// @Tags Admin
// @Param entity path string true "stores, products or prices"
// @Success 303
// @Router /{entity}/cancel [post]
func (ec *EntityController[T, F]) Cancel(c fiber.Ctx) error {
	ws := middleware.WorkspaceFrom(c)
	if err := ec.pick(ws).Cancel(); errors.Is(err, crud.ErrBusy) {
		ws.Banner.Set(busyMessage)
	}
	return redirectHome(c)
}

// Edit copies a record into the form
// @Summary Edit record
// @Tags Admin
// @Param entity path string true "stores, products or prices"
// @Param id path int true "Record ID"
// @Success 303
// @Router /{entity}/{id}/edit [get]
func (ec *EntityController[T, F]) Edit(c fiber.Ctx) error {
	ws := middleware.WorkspaceFrom(c)

	id, err := parseID(c)
	if err != nil {
		ws.Banner.Set("Invalid " + ec.entity.Name + " id")
		return redirectHome(c)
	}
	if err := ec.pick(ws).Select(id); err != nil {
		ws.Banner.Set(fmt.Sprintf("%s #%d not found", titleCase(ec.entity.Name), id))
	}
	return redirectHome(c)
}

// ConfirmDelete renders the delete prompt
// @Summary Delete prompt
// @Tags Admin
// @Produce html
// @Param entity path string true "stores, products or prices"
// @Param id path int true "Record ID"
// @Success 200
// @Router /{entity}/{id}/delete [get]
func (ec *EntityController[T, F]) ConfirmDelete(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		middleware.WorkspaceFrom(c).Banner.Set("Invalid " + ec.entity.Name + " id")
		return redirectHome(c)
	}
	return renderHTML(c, func(w io.Writer) error {
		return views.RenderConfirm(w, views.BuildConfirm(ec.entity, id))
	})
}

// Delete removes a record once the prompt was confirmed
// @Summary Delete record
// @Description Deletes only when the form carries confirm=yes
// @Tags Admin
// @Accept x-www-form-urlencoded
// @Param entity path string true "stores, products or prices"
// @Param id path int true "Record ID"
// @Param confirm formData string false "yes to confirm"
// @Success 303
// @Router /{entity}/{id}/delete [post]
func (ec *EntityController[T, F]) Delete(c fiber.Ctx) error {
	ws := middleware.WorkspaceFrom(c)

	id, err := parseID(c)
	if err != nil {
		ws.Banner.Set("Invalid " + ec.entity.Name + " id")
		return redirectHome(c)
	}

	confirmed := crud.ConfirmFunc(func(string) bool {
		return c.FormValue("confirm") == "yes"
	})
	_ = ec.pick(ws).Delete(c.Context(), id, confirmed)
	return redirectHome(c)
}

// Register mounts the entity routes under its collection path.
func (ec *EntityController[T, F]) Register(router fiber.Router) {
	path := ec.entity.Path
	router.Post(path, ec.Submit)
	router.Post(path+"/cancel", ec.Cancel)
	router.Get(path+"/:id/edit", ec.Edit)
	router.Get(path+"/:id/delete", ec.ConfirmDelete)
	router.Post(path+"/:id/delete", ec.Delete)
}

func parseID(c fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
