package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	mwauth "github.com/ReemOthm/home-decor-backend/internal/middleware/auth"
	"github.com/ReemOthm/home-decor-backend/internal/service"
	"github.com/ReemOthm/home-decor-backend/internal/transport"
	"github.com/ReemOthm/home-decor-backend/internal/util"
)

type OrderHandler struct {
	Orders *service.OrderService
}

func (h *OrderHandler) Create(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	order, err := h.Orders.Create(c.Request().Context(), userID, req.Payment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) AttachProduct(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid order id")
	}
	var req transport.AttachProductRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if req.ProductID == uuid.Nil {
		return apperr.BadRequest("product_id is required")
	}

	order, err := h.Orders.AttachProduct(c.Request().Context(), userID, orderID, req.ProductID, mwauth.IsAdmin(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListAll(c echo.Context) error {
	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)

	orders, meta, err := h.Orders.ListAll(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"data": orders, "meta": meta})
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	orders, err := h.Orders.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid order id")
	}
	order, err := h.Orders.GetByID(c.Request().Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Update(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid order id")
	}
	var req transport.UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	order, err := h.Orders.Update(c.Request().Context(), orderID, service.OrderUpdate{
		Status:  req.Status,
		Payment: req.Payment,
		Amount:  req.Amount,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateMine(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid order id")
	}
	var req transport.UpdateMyOrderRequest
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	order, err := h.Orders.UpdateMine(c.Request().Context(), userID, orderID, req.Payment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid order id")
	}
	if err := h.Orders.Delete(c.Request().Context(), orderID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OrderHandler) DeleteMine(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return apperr.ErrInvalidToken
	}
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.BadRequest("invalid order id")
	}
	if err := h.Orders.DeleteMine(c.Request().Context(), userID, orderID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
