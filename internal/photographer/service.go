package photographer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, email, password, name string) (*Photographer, error) {
	if email == "" || password == "" || name == "" {
		return nil, errors.New("email, password and name are required")
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &Photographer{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*Photographer, error) {
	p, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Photographer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, city, category string) ([]Photographer, error) {
	return s.repo.List(ctx, city, category)
}

func (s *Service) UpdateProfile(ctx context.Context, id string, patch UpdateProfilePayload) (*Photographer, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != "" {
		p.Name = patch.Name
	}
	p.Bio = patch.Bio
	p.City = patch.City
	p.Categories = patch.Categories
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
