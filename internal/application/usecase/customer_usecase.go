package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joacochifte/business-dashboard/internal/application/dto"
	"github.com/joacochifte/business-dashboard/internal/domain"
	"github.com/joacochifte/business-dashboard/internal/domain/entity"
	"github.com/joacochifte/business-dashboard/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente. El email, si viene, debe ser único.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Email != "" {
		existing, _ := uc.repo.GetByEmail(in.Email)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	customer, err := entity.NewCustomer(uuid.New().String(), in.Name, in.Email, in.Phone, in.BirthDate, now)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza los datos del cliente (las estadísticas de compra no se tocan aquí).
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Email != nil && *in.Email != customer.Email {
		if *in.Email != "" {
			existing, _ := uc.repo.GetByEmail(*in.Email)
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.BirthDate != nil {
		customer.BirthDate = in.BirthDate
	}
	if in.Active != nil {
		customer.Active = *in.Active
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente. Las ventas existentes conservan la referencia por id.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// GetByID obtiene un cliente con sus estadísticas.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes paginados.
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerListResponse{Items: make([]dto.CustomerResponse, 0, len(list))}
	for _, c := range list {
		out.Items = append(out.Items, *toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		BirthDate:          c.BirthDate,
		Active:             c.Active,
		TotalPurchases:     c.TotalPurchases,
		TotalLifetimeValue: c.TotalLifetimeValue,
		LastPurchaseDate:   c.LastPurchaseDate,
		CreatedAt:          c.CreatedAt,
	}
}
