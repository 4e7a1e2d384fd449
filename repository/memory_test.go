package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yashmaurya7/ecommerce-website/models"
)

func TestMemoryOrderRepositoryPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryOrderRepository()
	userID := primitive.NewObjectID()

	first, err := repo.Insert(context.Background(), &models.Order{User: userID, TotalPrice: 100})
	require.NoError(t, err)
	second, err := repo.Insert(context.Background(), &models.Order{User: userID, TotalPrice: 250})
	require.NoError(t, err)

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
}

func TestMemoryOrderRepositoryNotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	_, err := repo.FindByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Update(context.Background(), &models.Order{ID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryOrderRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryOrderRepository()

	order, err := repo.Insert(context.Background(), &models.Order{TotalPrice: 100})
	require.NoError(t, err)

	fetched, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	fetched.TotalPrice = 999

	again, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, again.TotalPrice)
}

func TestMemoryProductRepositoryUpdate(t *testing.T) {
	repo := NewMemoryProductRepository()

	product, err := repo.Insert(context.Background(), &models.Product{Name: "Widget", Price: 50, Stock: 10})
	require.NoError(t, err)

	product.Stock = 7
	require.NoError(t, repo.Update(context.Background(), product))

	fetched, err := repo.FindByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, fetched.Stock)
}

func TestMemoryUserRepositoryFindByEmail(t *testing.T) {
	repo := NewMemoryUserRepository()

	_, err := repo.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	user, err := repo.Insert(context.Background(), &models.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	found, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}
