package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sustain-inventory/inventory-api/infrastructure/database/postgres"
	"github.com/sustain-inventory/inventory-api/internal/domain"
)

const contactsTable = "contacts"

type ContactRepository interface {
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	GetContactByPhone(ctx context.Context, phone string) (*domain.Contact, error)
	CreateContact(ctx context.Context, contact domain.Contact) error
}

type contactRepository struct {
	conn *postgres.Connection
}

func NewContactRepository(conn *postgres.Connection) ContactRepository {
	return &contactRepository{
		conn: conn,
	}
}

func (r *contactRepository) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	query, args, err := squirrel.
		Select("id", "name", "phone", "email", "address").
		From(contactsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar contatos: %w", err)
	}
	defer rows.Close()

	contacts := []domain.Contact{}
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.Email, &contact.Address); err != nil {
			return nil, fmt.Errorf("erro ao processar contato: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return contacts, nil
}

// GetContactByPhone devolve nil quando não há contato com o telefone
func (r *contactRepository) GetContactByPhone(ctx context.Context, phone string) (*domain.Contact, error) {
	query, args, err := squirrel.
		Select("id", "name", "phone", "email", "address").
		From(contactsTable).
		Where(squirrel.Eq{"phone": phone}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	var contact domain.Contact
	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&contact.ID, &contact.Name, &contact.Phone, &contact.Email, &contact.Address)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar contato: %w", err)
	}

	return &contact, nil
}

func (r *contactRepository) CreateContact(ctx context.Context, contact domain.Contact) error {
	query, args, err := squirrel.
		Insert(contactsTable).
		Columns("id", "name", "phone", "email", "address").
		Values(contact.ID, contact.Name, contact.Phone, contact.Email, contact.Address).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir contato: %w", err)
	}
	return nil
}
