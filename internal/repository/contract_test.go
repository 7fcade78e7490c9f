package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"taste-heaven/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The contract helpers below are run against every store implementation.

func runProductRepositoryContract(t *testing.T, repo ProductRepository) {
	t.Helper()
	ctx := context.Background()

	empty, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty, "an empty catalog is an empty slice, not nil")
	assert.Empty(t, empty)

	seed := []model.Product{
		{Name: "Paneer Tikka", Price: 180, Category: "Starters", Img: "Paneertikka.jpg"},
		{Name: "Crispy Corn", Price: 150.125, Img: "Crispy Corn.jpg"},
		{Name: "Butter Naan", Price: 40, Img: "Butter Naan.jpg", Description: "Soft leavened bread"},
	}
	require.NoError(t, repo.InsertMany(ctx, seed))

	for _, p := range seed {
		assert.NotEmpty(t, p.ID, "ids are assigned on insert")
		assert.False(t, p.CreatedAt.IsZero(), "creation time is assigned on insert")
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	first, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "Paneer Tikka", first[0].Name)
	assert.Equal(t, "Starters", first[0].Category)
	assert.Empty(t, first[1].Category)
	assert.Equal(t, "Crispy Corn", first[1].Name)
	assert.Equal(t, "Butter Naan", first[2].Name)
	assert.Equal(t, 150.125, first[1].Price)
	assert.Equal(t, 40.0, first[2].Price)
	assert.Equal(t, "Soft leavened bread", first[2].Description)

	second, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second, "listing is idempotent without intervening writes")
}

func runUserRepositoryContract(t *testing.T, repo UserRepository) {
	t.Helper()
	ctx := context.Background()

	missing, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	user := &model.User{Name: "Alice", Email: "a@x.com", PasswordHash: "$2a$10$hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	found, err := repo.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Alice", found.Name)
	assert.Equal(t, "$2a$10$hash", found.PasswordHash)

	dup := &model.User{Name: "Alice2", Email: "a@x.com", PasswordHash: "$2a$10$other"}
	err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicateKey)

	// Concurrent signups for one fresh email: the store lets exactly one through.
	const attempts = 8
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(ctx, &model.User{
				Name:         fmt.Sprintf("Racer %d", i),
				Email:        "race@x.com",
				PasswordHash: "$2a$10$race",
			})
			switch {
			case err == nil:
				succeeded.Add(1)
			case assert.ErrorIs(t, err, model.ErrDuplicateKey):
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(attempts-1), conflicts.Load())
}

func runOrderRepositoryContract(t *testing.T, repo OrderRepository) {
	t.Helper()
	ctx := context.Background()

	none, err := repo.ListByEmail(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	older := &model.Order{
		UserEmail:    "a@x.com",
		Items:        []model.OrderItem{{Name: "Naan", Price: 40, Qty: 2}},
		Total:        110,
		DeliveryType: model.DeliveryHome,
		Phone:        "999",
		Address:      "Street 1",
		CreatedAt:    base,
	}
	newer := &model.Order{
		UserEmail: "a@x.com",
		Items: []model.OrderItem{
			{Name: "Veg Biryani", Price: 200, Qty: 1},
			{Name: "Sweet Lassi", Price: 90, Qty: 3},
		},
		Total:     470,
		CreatedAt: base.Add(time.Minute),
	}
	other := &model.Order{
		UserEmail: "b@x.com",
		Items:     []model.OrderItem{{Name: "Rasgulla", Price: 100, Qty: 1}},
		Total:     100,
		CreatedAt: base.Add(2 * time.Minute),
	}

	for _, o := range []*model.Order{older, newer, other} {
		require.NoError(t, repo.Create(ctx, o))
		assert.NotEmpty(t, o.ID)
	}

	orders, err := repo.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, newer.ID, orders[0].ID, "newest order first")
	assert.Equal(t, older.ID, orders[1].ID)

	assert.Equal(t, 110.0, orders[1].Total)
	assert.Equal(t, []model.OrderItem{{Name: "Naan", Price: 40, Qty: 2}}, orders[1].Items)
	assert.Equal(t, model.DeliveryHome, orders[1].DeliveryType)
	assert.Equal(t, "999", orders[1].Phone)
	assert.Equal(t, "Street 1", orders[1].Address)
	assert.True(t, base.Equal(orders[1].CreatedAt))

	assert.Equal(t, newer.Items, orders[0].Items)
	assert.Empty(t, orders[0].DeliveryType)

	// Amounts are stored as sent: no rounding to cents and no fixed ceiling.
	precise := &model.Order{
		UserEmail: "c@x.com",
		Items:     []model.OrderItem{{Name: "Masala Chai", Price: 35.185, Qty: 3}},
		Total:     110.555,
		CreatedAt: base,
	}
	large := &model.Order{
		UserEmail: "c@x.com",
		Items:     []model.OrderItem{{Name: "Banquet", Price: 123456789.5, Qty: 1}},
		Total:     123456789.5,
		CreatedAt: base.Add(time.Minute),
	}
	require.NoError(t, repo.Create(ctx, precise))
	require.NoError(t, repo.Create(ctx, large))

	amounts, err := repo.ListByEmail(ctx, "c@x.com")
	require.NoError(t, err)
	require.Len(t, amounts, 2)
	assert.Equal(t, 123456789.5, amounts[0].Total)
	assert.Equal(t, 110.555, amounts[1].Total)
	assert.Equal(t, 35.185, amounts[1].Items[0].Price)
}

func runInquiryRepositoryContract(t *testing.T, repo InquiryRepository) {
	t.Helper()

	inquiry := &model.Inquiry{Name: "Bob", Email: "b@x.com", Message: "Do you cater weddings?"}
	require.NoError(t, repo.Create(context.Background(), inquiry))
	assert.NotEmpty(t, inquiry.ID)
	assert.False(t, inquiry.CreatedAt.IsZero())
}
