package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/hash"
	"github.com/ReemOthm/home-decor-backend/internal/logging"
	"github.com/ReemOthm/home-decor-backend/internal/models"
	"github.com/ReemOthm/home-decor-backend/internal/repo"
	"github.com/ReemOthm/home-decor-backend/internal/util"
)

type UserService struct {
	Repo *repo.Repo
}

type SignupInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
	BirthDate *time.Time
}

func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.FirstName == "" {
		return nil, apperr.BadRequest("username, email, password and first_name are required")
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: pwHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.Phone,
		Address:      in.Address,
		BirthDate:    in.BirthDate,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("user created", "user_id", user.ID)
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.Repo.UserByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, page, size int) ([]models.User, util.Meta, error) {
	offset, limit := util.Calculate(page, size)
	users, total, err := s.Repo.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, util.Meta{}, err
	}
	return users, util.MetaFor(page, size, total), nil
}

type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileUpdate) (*models.User, error) {
	user, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Phone != nil {
		user.PhoneNumber = *in.Phone
	}
	if in.Address != nil {
		user.Address = *in.Address
	}
	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ToggleBan(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.Repo.ToggleBan(ctx, userID)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("ban toggled", "user_id", userID, "banned", user.IsBanned)
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.Repo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("user deleted", "user_id", userID)
	return nil
}
