package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ReemOthm/home-decor-backend/internal/config"
	"github.com/ReemOthm/home-decor-backend/internal/hash"
	"github.com/ReemOthm/home-decor-backend/internal/models"
	"github.com/ReemOthm/home-decor-backend/internal/repo"
	"github.com/ReemOthm/home-decor-backend/internal/tokens"
)

const testPassword = "correct horse battery staple"

// newTestDB opens a private in-memory database per test. The pool is capped
// at one connection because every sqlite in-memory connection is its own
// database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func newTestTokens(t *testing.T) *tokens.Service {
	t.Helper()
	svc, err := tokens.NewService([]byte("unit-test-secret"), "home-decor", "home-decor-clients")
	require.NoError(t, err)
	return svc
}

func seedUser(t *testing.T, r *repo.Repo, email string, admin bool) *models.User {
	t.Helper()

	pwHash, err := hash.HashPassword(testPassword)
	require.NoError(t, err)

	user := &models.User{
		Username:     "tester",
		Email:        email,
		PasswordHash: pwHash,
		FirstName:    "Test",
		IsAdmin:      admin,
	}
	require.NoError(t, r.CreateUser(context.Background(), user))
	return user
}

func seedCategory(t *testing.T, r *repo.Repo, name, slug string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name, Slug: slug}
	require.NoError(t, r.CreateCategory(context.Background(), category))
	return category
}

func seedProduct(t *testing.T, r *repo.Repo, category *models.Category, name, slug string, quantity int, price float64) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:       name,
		Slug:       slug,
		Quantity:   quantity,
		Price:      price,
		CategoryID: category.ID,
	}
	require.NoError(t, r.CreateProduct(context.Background(), product))
	return product
}

func reloadUser(t *testing.T, r *repo.Repo, user *models.User) *models.User {
	t.Helper()
	fresh, err := r.UserByID(context.Background(), user.ID)
	require.NoError(t, err)
	return fresh
}
