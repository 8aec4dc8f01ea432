package admin

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"loonbedrijf/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const generatedPasswordLength = 12

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Service provisions and manages portal customers. Creating a customer
// creates both the login and the client row; the generated password is
// returned exactly once.
type Service struct {
	users   UserRepositoryInterface
	clients ClientRepositoryInterface
}

func NewService(users UserRepositoryInterface, clients ClientRepositoryInterface) *Service {
	return &Service{users: users, clients: clients}
}

// CreateCustomer provisions a portal login plus the linked client row in
// one transaction, so a failed client insert never leaves a dangling user.
func (s *Service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*domain.Client, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailAlreadyExists
	}

	password, err := generatePassword(generatedPasswordLength)
	if err != nil {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RolePortal,
		Name:         req.Name,
	}
	client := &domain.Client{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		CompanyName:   req.Company,
		ContactPerson: req.Name,
		Phone:         req.Phone,
	}

	err = s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(client).Error
	})
	if err != nil {
		return nil, "", err
	}

	return client, password, nil
}

func (s *Service) ListCustomers(ctx context.Context, search string) ([]domain.Client, error) {
	return s.clients.List(ctx, search)
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	client.CompanyName = req.Company
	client.ContactPerson = req.ContactPerson
	client.Phone = req.Phone
	client.Address = req.Address

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func generatePassword(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = passwordAlphabet[n.Int64()]
	}
	return string(b), nil
}
