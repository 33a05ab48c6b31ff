package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/sustain-inventory/inventory-api/infrastructure/database/postgres"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

const forecastSnapshotsTable = "forecast_snapshots"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ForecastSnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot domain.ForecastSnapshot) error
	GetLatestSnapshot(ctx context.Context) (*domain.ForecastSnapshot, error)
}

type forecastSnapshotRepository struct {
	conn *postgres.Connection
}

func NewForecastSnapshotRepository(conn *postgres.Connection) ForecastSnapshotRepository {
	return &forecastSnapshotRepository{
		conn: conn,
	}
}

// As séries e o resultado ficam em colunas JSONB
func (r *forecastSnapshotRepository) SaveSnapshot(ctx context.Context, snapshot domain.ForecastSnapshot) error {
	dates, err := json.Marshal(snapshot.Dates)
	if err != nil {
		return fmt.Errorf("erro ao serializar datas: %w", err)
	}
	totals, err := json.Marshal(snapshot.Totals)
	if err != nil {
		return fmt.Errorf("erro ao serializar totais: %w", err)
	}
	result, err := json.Marshal(snapshot.Result)
	if err != nil {
		return fmt.Errorf("erro ao serializar previsão: %w", err)
	}

	query, args, err := squirrel.
		Insert(forecastSnapshotsTable).
		Columns("id", "generated_at", "dates", "totals", "result", "degraded").
		Values(snapshot.ID, snapshot.GeneratedAt, string(dates), string(totals), string(result), snapshot.Degraded).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir snapshot: %w", err)
	}
	return nil
}

// GetLatestSnapshot devolve nil quando nenhum snapshot foi gerado ainda
func (r *forecastSnapshotRepository) GetLatestSnapshot(ctx context.Context) (*domain.ForecastSnapshot, error) {
	query, args, err := squirrel.
		Select("id", "generated_at", "dates", "totals", "result", "degraded").
		From(forecastSnapshotsTable).
		OrderBy("generated_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var (
		snapshot              domain.ForecastSnapshot
		dates, totals, result []byte
	)
	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&snapshot.ID, &snapshot.GeneratedAt, &dates, &totals, &result, &snapshot.Degraded)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot: %w", err)
	}

	if err := json.Unmarshal(dates, &snapshot.Dates); err != nil {
		return nil, fmt.Errorf("erro ao decodificar datas: %w", err)
	}
	if err := json.Unmarshal(totals, &snapshot.Totals); err != nil {
		return nil, fmt.Errorf("erro ao decodificar totais: %w", err)
	}
	if err := json.Unmarshal(result, &snapshot.Result); err != nil {
		return nil, fmt.Errorf("erro ao decodificar previsão: %w", err)
	}
	snapshot.Result = snapshot.Result.WithDefaults()

	return &snapshot, nil
}
