package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sustain-inventory/inventory-api/infrastructure/database/postgres"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

const salesTable = "sales"

type SaleRepository interface {
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
	CreateSale(ctx context.Context, sale domain.Sale) error
	CreateSales(ctx context.Context, sales []domain.Sale) error
	DeleteSale(ctx context.Context, id string) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListSales devolve as vendas como foram gravadas, mais recentes primeiro.
// Colunas nulas ficam nil para a normalização preencher.
func (r *saleRepository) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("id", "amount", "timestamp", "date", "category").
		From(salesTable).
		OrderBy("timestamp DESC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}
	defer rows.Close()

	records := []domain.SaleRecord{}
	for rows.Next() {
		var (
			record    domain.SaleRecord
			amount    sql.NullString
			timestamp sql.NullInt64
			date      sql.NullString
			category  sql.NullString
		)
		if err := rows.Scan(&record.ID, &amount, &timestamp, &date, &category); err != nil {
			return nil, fmt.Errorf("erro ao processar venda: %w", err)
		}

		if amount.Valid {
			record.Amount = amount.String
		}
		if timestamp.Valid {
			record.Timestamp = &timestamp.Int64
		}
		if date.Valid {
			record.Date = &date.String
		}
		if category.Valid {
			record.Category = &category.String
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return records, nil
}

func (r *saleRepository) CreateSale(ctx context.Context, sale domain.Sale) error {
	return insertSale(ctx, r.conn, sale)
}

// CreateSales grava todas as vendas numa única transação
func (r *saleRepository) CreateSales(ctx context.Context, sales []domain.Sale) error {
	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, sale := range sales {
			if err := insertSale(ctx, q, sale); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *saleRepository) DeleteSale(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, salesTable, id)
}

func insertSale(ctx context.Context, q postgres.Queryer, sale domain.Sale) error {
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("id", "amount", "timestamp", "date", "category").
		Values(sale.ID, sale.Amount, sale.Timestamp, sale.Date, sale.Category).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir venda: %w", err)
	}
	return nil
}

// deleteByID remove um registro e devolve ErrNotFound quando nada foi apagado
func deleteByID(ctx context.Context, q postgres.Queryer, table, id string) error {
	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return execAffectingOne(ctx, q, query, args...)
}

func execAffectingOne(ctx context.Context, q postgres.Queryer, query string, args ...interface{}) error {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
