package contact

import (
	"context"
	"strings"

	"github.com/sustain-inventory/inventory-api/infrastructure/repository"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/inventory"
	"github.com/sustain-inventory/inventory-api/pkg/apiErrors"
	"github.com/sustain-inventory/inventory-api/pkg/utils"
)

type Contacter interface {
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	AddContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error)
}

type Service struct {
	contactRepo repository.ContactRepository
}

func NewService(contactRepo repository.ContactRepository) *Service {
	return &Service{
		contactRepo: contactRepo,
	}
}

func (s *Service) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.contactRepo.ListContacts(ctx)
	if err != nil {
		return nil, inventory.NewDatabaseError(err)
	}
	return contacts, nil
}

// AddContact exige nome e telefone
func (s *Service) AddContact(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Phone = strings.TrimSpace(contact.Phone)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Address = strings.TrimSpace(contact.Address)

	if contact.Name == "" || contact.Phone == "" {
		return nil, inventory.NewValidationError("nome e telefone são obrigatórios")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, inventory.NewInventoryError(err, apiErrors.ErrInternalServer, "erro ao gerar id")
	}
	contact.ID = id

	if err := s.contactRepo.CreateContact(ctx, contact); err != nil {
		return nil, inventory.NewDatabaseError(err)
	}
	return &contact, nil
}
