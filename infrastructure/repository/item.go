package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/sustain-inventory/inventory-api/infrastructure/database/postgres"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

const itemsTable = "items"

var itemColumns = []string{"id", "name", "category", "condition", "price", "status", "timestamp"}

type ItemRepository interface {
	ListItems(ctx context.Context, filters domain.ItemFilters) ([]domain.Item, error)
	ListItemsByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) error
	UpdateItem(ctx context.Context, item domain.Item) error
	UpdateItemStatus(ctx context.Context, id string, status domain.ItemStatus) error
	DeleteItem(ctx context.Context, id string) error
}

type itemRepository struct {
	conn *postgres.Connection
}

func NewItemRepository(conn *postgres.Connection) ItemRepository {
	return &itemRepository{
		conn: conn,
	}
}

func (r *itemRepository) ListItems(ctx context.Context, filters domain.ItemFilters) ([]domain.Item, error) {
	queryBuilder := squirrel.
		Select(itemColumns...).
		From(itemsTable).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	if search := strings.TrimSpace(filters.Search); search != "" {
		queryBuilder = queryBuilder.Where(squirrel.ILike{"name": "%" + search + "%"})
	}

	if filters.Category != "" && filters.Category != domain.AllCategories {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"category": filters.Category})
	}

	return r.queryItems(ctx, queryBuilder)
}

func (r *itemRepository) ListItemsByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.Item, error) {
	queryBuilder := squirrel.
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"status": status}).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryItems(ctx, queryBuilder)
}

func (r *itemRepository) queryItems(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]domain.Item, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar itens: %w", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Condition, &item.Price, &item.Status, &item.Timestamp); err != nil {
			return nil, fmt.Errorf("erro ao processar item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return items, nil
}

// GetItem devolve nil quando o item não existe
func (r *itemRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	query, args, err := squirrel.
		Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var item domain.Item
	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&item.ID, &item.Name, &item.Category, &item.Condition, &item.Price, &item.Status, &item.Timestamp)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar item: %w", err)
	}

	return &item, nil
}

func (r *itemRepository) CreateItem(ctx context.Context, item domain.Item) error {
	query, args, err := squirrel.
		Insert(itemsTable).
		Columns(itemColumns...).
		Values(item.ID, item.Name, item.Category, item.Condition, item.Price, item.Status, item.Timestamp).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir item: %w", err)
	}
	return nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	query, args, err := squirrel.
		Update(itemsTable).
		Set("name", item.Name).
		Set("category", item.Category).
		Set("condition", item.Condition).
		Set("price", item.Price).
		Set("status", item.Status).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return execAffectingOne(ctx, r.conn, query, args...)
}

func (r *itemRepository) UpdateItemStatus(ctx context.Context, id string, status domain.ItemStatus) error {
	query, args, err := squirrel.
		Update(itemsTable).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return execAffectingOne(ctx, r.conn, query, args...)
}

func (r *itemRepository) DeleteItem(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, itemsTable, id)
}
