package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sustain-inventory/inventory-api/infrastructure/repository/mocks"
	"github.com/sustain-inventory/inventory-api/internal/domain"
	"github.com/sustain-inventory/inventory-api/internal/usecases/inventory"
)

func TestService_AddContact(t *testing.T) {
	tests := []struct {
		name     string
		input    domain.Contact
		setup    func(repo *mocks.MockContactRepository)
		validate func(t *testing.T, contact *domain.Contact, err error)
	}{
		{
			name:  "contato válido",
			input: domain.Contact{Name: " Ana ", Phone: " 0917 ", Email: "ana@example.com"},
			setup: func(repo *mocks.MockContactRepository) {
				repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, contact *domain.Contact, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, contact.ID)
				assert.Equal(t, "Ana", contact.Name)
				assert.Equal(t, "0917", contact.Phone)
			},
		},
		{
			name:  "telefone obrigatório",
			input: domain.Contact{Name: "Ana", Phone: "  "},
			setup: func(repo *mocks.MockContactRepository) {},
			validate: func(t *testing.T, contact *domain.Contact, err error) {
				assert.ErrorIs(t, err, inventory.ErrMissingRequiredData)
				assert.Nil(t, contact)
			},
		},
		{
			name:  "erro no banco",
			input: domain.Contact{Name: "Ana", Phone: "0917"},
			setup: func(repo *mocks.MockContactRepository) {
				repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
			},
			validate: func(t *testing.T, contact *domain.Contact, err error) {
				assert.ErrorIs(t, err, inventory.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockContactRepository(ctrl)
			tt.setup(repo)

			contact, err := NewService(repo).AddContact(context.Background(), tt.input)

			tt.validate(t, contact, err)
		})
	}
}

func TestService_ListContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContactRepository(ctrl)
	repo.EXPECT().ListContacts(gomock.Any()).Return([]domain.Contact{{ID: "c1", Name: "Ana"}}, nil)

	contacts, err := NewService(repo).ListContacts(context.Background())

	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}
