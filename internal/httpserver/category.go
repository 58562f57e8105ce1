package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/service"
	"github.com/ReemOthm/home-decor-backend/internal/transport"
	"github.com/ReemOthm/home-decor-backend/internal/util"
)

type CategoryHandler struct {
	Categories *service.CategoryService
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req transport.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	category, err := h.Categories.Create(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) List(c echo.Context) error {
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)

	categories, meta, err := h.Categories.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"data": categories, "meta": meta})
}

func (h *CategoryHandler) GetBySlug(c echo.Context) error {
	category, err := h.Categories.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Products(c echo.Context) error {
	products, err := h.Categories.Products(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid category id")
	}
	var req transport.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	category, err := h.Categories.Update(c.Request().Context(), id, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid category id")
	}
	if err := h.Categories.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
