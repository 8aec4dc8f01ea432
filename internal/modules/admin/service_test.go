package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"loonbedrijf/internal/database"
	"loonbedrijf/internal/domain"
	"loonbedrijf/internal/repository"
)

// Provisioning spans two tables in one transaction, so these tests run
// against an in-memory database instead of mocks.
func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Client{}))

	users := repository.NewUserRepository(db)
	clients := repository.NewClientRepository(db)
	return NewService(users, clients), db
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("creates login and client together", func(t *testing.T) {
		svc, db := setupService(t)

		client, password, err := svc.CreateCustomer(ctx, CreateCustomerRequest{
			Name:    "Jan de Vries",
			Email:   "Jan@MaatschapDeVries.nl",
			Company: "Maatschap De Vries",
			Phone:   "+31 6 12345678",
		})

		require.NoError(t, err)
		assert.Len(t, password, generatedPasswordLength)
		assert.Equal(t, "Maatschap De Vries", client.CompanyName)
		assert.Equal(t, "Jan de Vries", client.ContactPerson)

		var user domain.User
		require.NoError(t, db.Where("id = ?", client.UserID).First(&user).Error)
		assert.Equal(t, "jan@maatschapdevries.nl", user.Email)
		assert.Equal(t, domain.RolePortal, user.Role)

		// the returned password actually matches the stored hash
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, db := setupService(t)

		_, _, err := svc.CreateCustomer(ctx, CreateCustomerRequest{
			Name: "Jan", Email: "jan@maatschapdevries.nl", Company: "De Vries",
		})
		require.NoError(t, err)

		_, _, err = svc.CreateCustomer(ctx, CreateCustomerRequest{
			Name: "Janneke", Email: "JAN@maatschapdevries.nl", Company: "Ander Bedrijf",
		})
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)

		var count int64
		db.Model(&domain.Client{}).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("passwords differ between customers", func(t *testing.T) {
		svc, _ := setupService(t)

		_, p1, err := svc.CreateCustomer(ctx, CreateCustomerRequest{
			Name: "A", Email: "a@example.nl", Company: "Bedrijf A",
		})
		require.NoError(t, err)
		_, p2, err := svc.CreateCustomer(ctx, CreateCustomerRequest{
			Name: "B", Email: "b@example.nl", Company: "Bedrijf B",
		})
		require.NoError(t, err)

		assert.NotEqual(t, p1, p2)
	})
}

func TestListCustomers(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	for _, c := range []CreateCustomerRequest{
		{Name: "Jan de Vries", Email: "jan@devries.nl", Company: "Maatschap De Vries"},
		{Name: "Sanne Bakker", Email: "sanne@westland.nl", Company: "Gemeente Westland"},
	} {
		_, _, err := svc.CreateCustomer(ctx, c)
		require.NoError(t, err)
	}

	all, err := svc.ListCustomers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	hits, err := svc.ListCustomers(ctx, "westland")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Gemeente Westland", hits[0].CompanyName)
}

func TestUpdateCustomer(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupService(t)

	created, _, err := svc.CreateCustomer(ctx, CreateCustomerRequest{
		Name: "Jan", Email: "jan@devries.nl", Company: "Oude Naam",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCustomer(ctx, created.ID, UpdateCustomerRequest{
		Company:       "Nieuwe Naam BV",
		ContactPerson: "Jan de Vries",
		Phone:         "+31 6 87654321",
		Address:       "Polderweg 12, Monster",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nieuwe Naam BV", updated.CompanyName)

	_, err = svc.UpdateCustomer(ctx, "bestaat-niet", UpdateCustomerRequest{
		Company: "X", ContactPerson: "Y",
	})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
