package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/models"
)

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperr.Conflict("a user with this email already exists")
	}
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *Repo) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user does not exist")
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user does not exist")
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repo) ListUsers(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	if err := r.DB.WithContext(ctx).
		Order("created_at ASC").Offset(offset).Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *Repo) UpdateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Save(u).Error
}

// SetRefreshToken overwrites the stored refresh token. A nil token revokes.
// Passing a nil expiry keeps the stored one, so rotation does not extend
// the original window.
func (r *Repo) SetRefreshToken(ctx context.Context, userID uuid.UUID, token *string, expiresAt *time.Time) error {
	updates := map[string]any{"refresh_token": token}
	if token == nil || expiresAt != nil {
		updates["refresh_token_expires_at"] = expiresAt
	}
	res := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("user does not exist")
	}
	return nil
}

func (r *Repo) ToggleBan(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := r.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsBanned = !user.IsBanned
	if err := r.DB.WithContext(ctx).Model(user).
		Update("is_banned", user.IsBanned).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and everything they own.
func (r *Repo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orderIDs []uuid.UUID
		if err := tx.Model(&models.Order{}).
			Where("user_id = ?", userID).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Exec("DELETE FROM order_products WHERE order_id IN ?", orderIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", userID).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("user does not exist")
		}
		return nil
	})
}
