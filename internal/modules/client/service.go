package client

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"shootsuite/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, accountID, id string) (*domain.Client, error)
	List(ctx context.Context, accountID, search string, limit, offset int) ([]domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, accountID, id string) error
}

type Service struct {
	clients ClientRepository
}

func NewService(clients ClientRepository) *Service {
	return &Service{clients: clients}
}

func (s *Service) Create(ctx context.Context, accountID string, req CreateClientRequest) (*domain.Client, error) {
	c := &domain.Client{
		AccountID: accountID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Address:   req.Address,
		Notes:     req.Notes,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, accountID, id string) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context, accountID string, q ListClientsQuery) ([]domain.Client, error) {
	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.clients.List(ctx, accountID, q.Search, limit, q.Offset)
}

func (s *Service) Update(ctx context.Context, accountID, id string, req UpdateClientRequest) (*domain.Client, error) {
	existing, err := s.Get(ctx, accountID, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Company = req.Company
	existing.Address = req.Address
	existing.Notes = req.Notes

	if err := s.clients.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, accountID, id string) error {
	if err := s.clients.Delete(ctx, accountID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
