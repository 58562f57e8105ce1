package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/models"
)

func (r *Repo) CreateOrder(ctx context.Context, o *models.Order) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *Repo) OrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Products").
		Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order does not exist")
		}
		return nil, err
	}
	return &order, nil
}

func (r *Repo) ListOrders(ctx context.Context, offset, limit int) ([]models.Order, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Preload("Products").
		Order("created_at DESC").Offset(offset).Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *Repo) OrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Preload("Products").
		Where("user_id = ?", userID).Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// AttachProduct links a product to the order and takes one unit of stock.
// The decrement is a single conditional UPDATE guarded by quantity > 0, so
// two requests racing over the last unit cannot both win: the row lock
// serializes them and the loser sees zero affected rows.
//
// The order amount is set to the attached product's price, not accumulated.
// That mirrors the shipped behavior; see DESIGN.md before changing it.
func (r *Repo) AttachProduct(ctx context.Context, orderID, productID uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("order does not exist")
			}
			return err
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND quantity > 0", productID).
			UpdateColumn("quantity", gorm.Expr("quantity - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Product{}).
				Where("id = ?", productID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return apperr.NotFound("product does not exist")
			}
			return apperr.ErrOutOfStock
		}

		var product models.Product
		if err := tx.Where("id = ?", productID).First(&product).Error; err != nil {
			return err
		}
		if err := tx.Model(&order).Association("Products").Append(&product); err != nil {
			return err
		}
		order.Amount = product.Price
		return tx.Model(&order).Update("amount", order.Amount).Error
	})
	if err != nil {
		return nil, err
	}
	return r.OrderByID(ctx, orderID)
}

// UpdateOrder is the admin-scoped update: status, payment and amount.
func (r *Repo) UpdateOrder(ctx context.Context, orderID uuid.UUID, status models.OrderStatus, payment models.PaymentMethod, amount float64) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"status": status, "payment": payment, "amount": amount})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("order does not exist")
	}
	return nil
}

// UpdateOrderOwned is the owner-scoped update: payment method only.
func (r *Repo) UpdateOrderOwned(ctx context.Context, userID, orderID uuid.UUID, payment models.PaymentMethod) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Update("payment", payment)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("order does not exist")
	}
	return nil
}

func (r *Repo) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return r.deleteOrder(ctx, r.DB.WithContext(ctx).Where("id = ?", orderID))
}

func (r *Repo) DeleteOrderOwned(ctx context.Context, userID, orderID uuid.UUID) error {
	return r.deleteOrder(ctx, r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", orderID, userID))
}

func (r *Repo) deleteOrder(ctx context.Context, scope *gorm.DB) error {
	var order models.Order
	if err := scope.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order does not exist")
		}
		return err
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM order_products WHERE order_id = ?", order.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}
