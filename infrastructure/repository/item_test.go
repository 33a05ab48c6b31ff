package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

var itemRowColumns = []string{"id", "name", "category", "condition", "price", "status", "timestamp"}

func TestItemRepository_ListItems(t *testing.T) {
	tests := []struct {
		name    string
		filters domain.ItemFilters
		query   string
		args    []driver.Value
	}{
		{
			name:    "sem filtros",
			filters: domain.ItemFilters{},
			query:   "SELECT id, name, category, condition, price, status, timestamp FROM items ORDER BY timestamp DESC",
		},
		{
			name:    "categoria All não filtra",
			filters: domain.ItemFilters{Category: domain.AllCategories, Search: "  "},
			query:   "SELECT id, name, category, condition, price, status, timestamp FROM items ORDER BY timestamp DESC",
		},
		{
			name:    "busca e categoria",
			filters: domain.ItemFilters{Search: "jacket", Category: "Clothes"},
			query:   "SELECT id, name, category, condition, price, status, timestamp FROM items WHERE name ILIKE $1 AND category = $2 ORDER BY timestamp DESC",
			args:    []driver.Value{"%jacket%", "Clothes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			rows := sqlmock.NewRows(itemRowColumns).
				AddRow("i1", "Denim Jacket", "Clothes", "Good", "350.00", "In Stock", int64(10))

			expectation := mock.ExpectQuery("^" + regexp.QuoteMeta(tt.query) + "$")
			if len(tt.args) > 0 {
				expectation.WithArgs(tt.args...)
			}
			expectation.WillReturnRows(rows)

			items, err := NewItemRepository(conn).ListItems(context.Background(), tt.filters)

			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, domain.ItemStatusInStock, items[0].Status)
			assert.True(t, items[0].Price.Equal(decimal.NewFromInt(350)))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestItemRepository_GetItem(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewItemRepository(conn)
	query := regexp.QuoteMeta("SELECT id, name, category, condition, price, status, timestamp FROM items WHERE id = $1")

	mock.ExpectQuery(query).WithArgs("i1").
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow("i1", "Lamp", "Home Items", "New", "80", "Reserved", int64(5)))
	mock.ExpectQuery(query).WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(itemRowColumns))

	item, err := repo.GetItem(context.Background(), "i1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, domain.ItemStatusReserved, item.Status)

	item, err = repo.GetItem(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_UpdateItemStatus(t *testing.T) {
	conn, mock := newMockConn(t)
	repo := NewItemRepository(conn)
	query := regexp.QuoteMeta("UPDATE items SET status = $1 WHERE id = $2")

	mock.ExpectExec(query).WithArgs("Sold", "i1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs("Sold", "ghost").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateItemStatus(context.Background(), "i1", domain.ItemStatusSold))
	assert.ErrorIs(t, repo.UpdateItemStatus(context.Background(), "ghost", domain.ItemStatusSold), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
