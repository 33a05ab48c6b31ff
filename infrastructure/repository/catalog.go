package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sustain-inventory/inventory-api/infrastructure/database/postgres"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

// Cada lista de catálogo (categorias, condições, status) tem a própria tabela
type CatalogRepository interface {
	ListEntries(ctx context.Context, kind domain.CatalogKind) ([]domain.CatalogEntry, error)
	AddEntry(ctx context.Context, kind domain.CatalogKind, entry domain.CatalogEntry) error
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) ListEntries(ctx context.Context, kind domain.CatalogKind) ([]domain.CatalogEntry, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("catálogo desconhecido: %q", kind)
	}

	query, args, err := squirrel.
		Select("id", "name").
		From(string(kind)).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar %s: %w", kind, err)
	}
	defer rows.Close()

	entries := []domain.CatalogEntry{}
	for rows.Next() {
		var entry domain.CatalogEntry
		if err := rows.Scan(&entry.ID, &entry.Name); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return entries, nil
}

func (r *catalogRepository) AddEntry(ctx context.Context, kind domain.CatalogKind, entry domain.CatalogEntry) error {
	if !kind.Valid() {
		return fmt.Errorf("catálogo desconhecido: %q", kind)
	}

	query, args, err := squirrel.
		Insert(string(kind)).
		Columns("id", "name").
		Values(entry.ID, entry.Name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir em %s: %w", kind, err)
	}
	return nil
}
