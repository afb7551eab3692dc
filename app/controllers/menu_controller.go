package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro/app/models"
	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/pkg/bind"
	"github.com/shashiranjanraj/bistro/pkg/cache"
	"github.com/shashiranjanraj/bistro/pkg/logger"
	"github.com/shashiranjanraj/bistro/pkg/response"
	"github.com/shashiranjanraj/bistro/pkg/storage"
	"github.com/shashiranjanraj/bistro/pkg/validate"
)

// menuCacheKey caches the full menu listing. The menu changes rarely and is
// the hottest read in the system. Every menu write drops the key.
const (
	menuCacheKey = "menu:all"
	menuCacheTTL = 5 * time.Minute
)

type MenuController struct {
	menu *repositories.MenuRepository
}

func NewMenuController(menu *repositories.MenuRepository) *MenuController {
	return &MenuController{menu: menu}
}

// List returns every menu item. Public.
func (c *MenuController) List(w http.ResponseWriter, r *http.Request) {
	var items []models.MenuItem
	if cache.Get(menuCacheKey, &items) {
		response.Success(w, items)
		return
	}

	items, err := c.menu.All(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu: list", "error", err)
		response.ServerError(w)
		return
	}

	if err := cache.Set(menuCacheKey, items, menuCacheTTL); err != nil {
		logger.WithCtx(r.Context()).Warn("menu: cache set", "error", err)
	}
	response.Success(w, items)
}

// Get returns a single menu item by id.
func (c *MenuController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	item, err := c.menu.FindByID(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu: get", "error", err)
		response.ServerError(w)
		return
	}
	if item == nil {
		response.NotFound(w)
		return
	}
	response.Success(w, item)
}

// Create adds a menu item. Admin only.
func (c *MenuController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.MenuItemInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	} else if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	item := &models.MenuItem{
		Name:     in.Name,
		Recipe:   in.Recipe,
		Image:    in.Image,
		Category: in.Category,
		Price:    in.Price,
	}

	id, err := c.menu.Create(r.Context(), item)
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu: create", "error", err)
		response.ServerError(w)
		return
	}

	c.invalidate(r)
	response.Created(w, map[string]interface{}{"insertedId": id})
}

// Patch applies a partial update to a menu item. Absent fields keep their
// stored values.
func (c *MenuController) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var patch models.MenuItemPatch
	if _, err := bind.JSON(r, &patch); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	modified, err := c.menu.Update(r.Context(), id, patch)
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu: patch", "error", err)
		response.ServerError(w)
		return
	}

	c.invalidate(r)
	response.Success(w, map[string]int64{"modifiedCount": modified})
}

// Delete removes a menu item. Admin only.
func (c *MenuController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	deleted, err := c.menu.Delete(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu: delete", "error", err)
		response.ServerError(w)
		return
	}

	c.invalidate(r)
	response.Success(w, map[string]int64{"deletedCount": deleted})
}

// UploadImage stores an image for a menu item on the configured disk and
// saves the public URL on the item. Admin only. Multipart field name: image.
func (c *MenuController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	item, err := c.menu.FindByID(r.Context(), id)
	if err != nil {
		logger.WithCtx(r.Context()).Error("menu: upload lookup", "error", err)
		response.ServerError(w)
		return
	}
	if item == nil {
		response.NotFound(w)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Missing image file")
		return
	}
	defer file.Close()

	path := fmt.Sprintf("menu/%s%s", id.Hex(), filepath.Ext(header.Filename))
	if err := storage.PutStream(path, io.LimitReader(file, 10<<20)); err != nil {
		logger.WithCtx(r.Context()).Error("menu: store image", "error", err)
		response.ServerError(w)
		return
	}

	url := storage.URL(path)
	patch := models.MenuItemPatch{Image: &url}
	if _, err := c.menu.Update(r.Context(), id, patch); err != nil {
		logger.WithCtx(r.Context()).Error("menu: save image url", "error", err)
		response.ServerError(w)
		return
	}

	c.invalidate(r)
	response.Success(w, map[string]string{"image": url})
}

func (c *MenuController) invalidate(r *http.Request) {
	if err := cache.Del(menuCacheKey); err != nil {
		logger.WithCtx(r.Context()).Warn("menu: cache invalidate", "error", err)
	}
}
