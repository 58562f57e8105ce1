package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/logging"
	"github.com/ReemOthm/home-decor-backend/internal/models"
	"github.com/ReemOthm/home-decor-backend/internal/repo"
	"github.com/ReemOthm/home-decor-backend/internal/util"
)

type OrderService struct {
	Repo *repo.Repo
}

func (s *OrderService) Create(ctx context.Context, userID uuid.UUID, payment models.PaymentMethod) (*models.Order, error) {
	if !models.ValidPayment(payment) {
		return nil, apperr.BadRequest("unknown payment method")
	}
	if _, err := s.Repo.UserByID(ctx, userID); err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:  userID,
		Status:  models.OrderPending,
		Payment: payment,
		Amount:  0,
	}
	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("order created", "order_id", order.ID, "user_id", userID)
	return order, nil
}

// AttachProduct links one unit of the product to the order. Out of stock is
// a conflict, not an internal error; the caller decides whether to retry.
func (s *OrderService) AttachProduct(ctx context.Context, userID, orderID, productID uuid.UUID, admin bool) (*models.Order, error) {
	order, err := s.Repo.OrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !admin && order.UserID != userID {
		return nil, apperr.NotFound("order does not exist")
	}

	order, err = s.Repo.AttachProduct(ctx, orderID, productID)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("product attached",
		"order_id", orderID, "product_id", productID, "amount", order.Amount)
	return order, nil
}

func (s *OrderService) ListAll(ctx context.Context, page, size int) ([]models.Order, util.Meta, error) {
	offset, limit := util.Calculate(page, size)
	orders, total, err := s.Repo.ListOrders(ctx, offset, limit)
	if err != nil {
		return nil, util.Meta{}, err
	}
	return orders, util.MetaFor(page, size, total), nil
}

func (s *OrderService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.Repo.OrdersByUser(ctx, userID)
}

func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	return s.Repo.OrderByID(ctx, orderID)
}

type OrderUpdate struct {
	Status  models.OrderStatus
	Payment models.PaymentMethod
	Amount  float64
}

func (s *OrderService) Update(ctx context.Context, orderID uuid.UUID, in OrderUpdate) (*models.Order, error) {
	if !models.ValidStatus(in.Status) {
		return nil, apperr.BadRequest("unknown order status")
	}
	if !models.ValidPayment(in.Payment) {
		return nil, apperr.BadRequest("unknown payment method")
	}
	if err := s.Repo.UpdateOrder(ctx, orderID, in.Status, in.Payment, in.Amount); err != nil {
		return nil, err
	}
	return s.Repo.OrderByID(ctx, orderID)
}

func (s *OrderService) UpdateMine(ctx context.Context, userID, orderID uuid.UUID, payment models.PaymentMethod) (*models.Order, error) {
	if !models.ValidPayment(payment) {
		return nil, apperr.BadRequest("unknown payment method")
	}
	if err := s.Repo.UpdateOrderOwned(ctx, userID, orderID, payment); err != nil {
		return nil, err
	}
	return s.Repo.OrderByID(ctx, orderID)
}

func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	return s.Repo.DeleteOrder(ctx, orderID)
}

func (s *OrderService) DeleteMine(ctx context.Context, userID, orderID uuid.UUID) error {
	return s.Repo.DeleteOrderOwned(ctx, userID, orderID)
}
