package catalog

import (
	"context"
	"errors"
	"testing"

	"taste-heaven/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) InsertMany(ctx context.Context, products []model.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	menu := []model.Product{
		{Name: "Paneer Tikka", Price: 180},
		{Name: "Crispy Corn", Price: 150},
	}
	menuLoader := &mockLoader{
		loadFunc: func(ctx context.Context, filePath string) ([]model.Product, error) {
			return menu, nil
		},
	}

	tests := []struct {
		name          string
		path          string
		loader        Loader
		setupMock     func(*MockProductRepository)
		expectedCount int
		expectError   bool
	}{
		{
			name:   "empty catalog is seeded",
			path:   "menu.gz",
			loader: menuLoader,
			setupMock: func(m *MockProductRepository) {
				m.On("Count", ctx).Return(int64(0), nil)
				m.On("InsertMany", ctx, menu).Return(nil)
			},
			expectedCount: 2,
		},
		{
			name:   "populated catalog is left alone",
			path:   "menu.gz",
			loader: menuLoader,
			setupMock: func(m *MockProductRepository) {
				m.On("Count", ctx).Return(int64(20), nil)
			},
			expectedCount: 0,
		},
		{
			name:          "no path configured",
			path:          "",
			loader:        menuLoader,
			setupMock:     func(m *MockProductRepository) {},
			expectedCount: 0,
		},
		{
			name:   "count fails",
			path:   "menu.gz",
			loader: menuLoader,
			setupMock: func(m *MockProductRepository) {
				m.On("Count", ctx).Return(int64(0), errors.New("db down"))
			},
			expectError: true,
		},
		{
			name: "load fails",
			path: "menu.gz",
			loader: &mockLoader{loadFunc: func(ctx context.Context, filePath string) ([]model.Product, error) {
				return nil, errors.New("corrupt")
			}},
			setupMock: func(m *MockProductRepository) {
				m.On("Count", ctx).Return(int64(0), nil)
			},
			expectError: true,
		},
		{
			name: "empty seed file",
			path: "menu.gz",
			loader: &mockLoader{loadFunc: func(ctx context.Context, filePath string) ([]model.Product, error) {
				return nil, nil
			}},
			setupMock: func(m *MockProductRepository) {
				m.On("Count", ctx).Return(int64(0), nil)
			},
			expectedCount: 0,
		},
		{
			name:   "insert fails",
			path:   "menu.gz",
			loader: menuLoader,
			setupMock: func(m *MockProductRepository) {
				m.On("Count", ctx).Return(int64(0), nil)
				m.On("InsertMany", ctx, menu).Return(errors.New("write failed"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockProductRepository)
			tt.setupMock(repo)
			seeder := NewSeeder(repo, tt.loader, zerolog.Nop())

			n, err := seeder.Seed(ctx, tt.path)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedCount, n)
			}

			repo.AssertExpectations(t)
			if !tt.expectError && tt.expectedCount == 0 {
				repo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
			}
		})
	}
}
