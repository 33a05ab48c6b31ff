package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sustain-inventory/inventory-api/infrastructure/database/postgres"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

const reservationsTable = "reservations"

var reservationColumns = []string{
	"id", "item_id", "item_name", "reserved_by", "phone", "address",
	"delivery_date", "notes", "delivery_status", "delivered_at", "timestamp",
}

type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation domain.Reservation) error
	GetReservationByItemID(ctx context.Context, itemID string) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	MarkDelivered(ctx context.Context, id string, deliveredAt int64) error
	DeleteReservation(ctx context.Context, id string) error
}

type reservationRepository struct {
	conn *postgres.Connection
}

func NewReservationRepository(conn *postgres.Connection) ReservationRepository {
	return &reservationRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (domain.Reservation, error) {
	var (
		reservation  domain.Reservation
		deliveryDate sql.NullInt64
		deliveredAt  sql.NullInt64
	)
	err := row.Scan(
		&reservation.ID,
		&reservation.ItemID,
		&reservation.ItemName,
		&reservation.ReservedBy,
		&reservation.Phone,
		&reservation.Address,
		&deliveryDate,
		&reservation.Notes,
		&reservation.DeliveryStatus,
		&deliveredAt,
		&reservation.Timestamp,
	)
	if err != nil {
		return reservation, err
	}

	if deliveryDate.Valid {
		reservation.DeliveryDate = &deliveryDate.Int64
	}
	if deliveredAt.Valid {
		reservation.DeliveredAt = &deliveredAt.Int64
	}
	return reservation, nil
}

func (r *reservationRepository) CreateReservation(ctx context.Context, reservation domain.Reservation) error {
	query, args, err := squirrel.
		Insert(reservationsTable).
		Columns(reservationColumns...).
		Values(
			reservation.ID,
			reservation.ItemID,
			reservation.ItemName,
			reservation.ReservedBy,
			reservation.Phone,
			reservation.Address,
			reservation.DeliveryDate,
			reservation.Notes,
			reservation.DeliveryStatus,
			reservation.DeliveredAt,
			reservation.Timestamp,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir reserva: %w", err)
	}
	return nil
}

// GetReservationByItemID devolve a reserva mais recente do item, ou nil
func (r *reservationRepository) GetReservationByItemID(ctx context.Context, itemID string) (*domain.Reservation, error) {
	query, args, err := squirrel.
		Select(reservationColumns...).
		From(reservationsTable).
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("timestamp DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	reservation, err := scanReservation(r.conn.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar reserva: %w", err)
	}

	return &reservation, nil
}

func (r *reservationRepository) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	query, args, err := squirrel.
		Select(reservationColumns...).
		From(reservationsTable).
		OrderBy("timestamp DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar reservas: %w", err)
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar reserva: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return reservations, nil
}

func (r *reservationRepository) MarkDelivered(ctx context.Context, id string, deliveredAt int64) error {
	query, args, err := squirrel.
		Update(reservationsTable).
		Set("delivery_status", domain.DeliveryStatusDelivered).
		Set("delivered_at", deliveredAt).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	return execAffectingOne(ctx, r.conn, query, args...)
}

func (r *reservationRepository) DeleteReservation(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, reservationsTable, id)
}
