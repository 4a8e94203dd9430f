// Package service implements the business logic of the diskwento service.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpanganiban/diskwento-system/internal/assistant"
	"github.com/rpanganiban/diskwento-system/internal/model"
	"github.com/rpanganiban/diskwento-system/internal/repository"
	"github.com/rpanganiban/diskwento-system/internal/validation"
)

// ErrInvalidCredentials is returned when the login or password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidRating is returned for a rating with no name or an unknown
// status.
var ErrInvalidRating = errors.New("invalid rating")

// ErrEmptyMessage is returned for a blank chat message.
var ErrEmptyMessage = errors.New("empty message")

// Repository describes the data access contract used by the service.
type Repository interface {
	Close() error
	CreateUser(ctx context.Context, login string, passwordHash []byte) (int64, error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	SaveCalculation(ctx context.Context, userID int64, calc model.Calculation) error
	GetCalculationsByUser(ctx context.Context, userID int64) ([]model.Calculation, error)
	DeleteCalculation(ctx context.Context, userID int64, id uuid.UUID) error
	DeleteAllCalculations(ctx context.Context, userID int64) error
	CreateRating(ctx context.Context, userID int64, rating model.EstablishmentRating) error
	GetRatingsByUser(ctx context.Context, userID int64) ([]model.EstablishmentRating, error)
	DeleteRating(ctx context.Context, userID int64, id uuid.UUID) error
}

// Assistant describes the generative language client used for chat and
// receipt analysis.
type Assistant interface {
	Chat(ctx context.Context, question string) (string, error)
	AnalyzeReceipt(ctx context.Context, imageBase64, mimeType string) (string, error)
}

// Service holds the business logic of the diskwento service.
type Service struct {
	repo      Repository
	assistant Assistant
}

// NewService creates a service with the given repository and assistant
// client.
func NewService(repo Repository, assistantClient Assistant) *Service {
	return &Service{
		repo:      repo,
		assistant: assistantClient,
	}
}

// Close releases the service resources.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}

// RegisterUser registers a new user.
func (s *Service) RegisterUser(ctx context.Context, login, password string) (int64, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.CreateUser(ctx, login, hashed)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AuthenticateUser checks the login and password and returns the user id.
func (s *Service) AuthenticateUser(ctx context.Context, login, password string) (int64, error) {
	u, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrInvalidCredentials
		}
		return 0, err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return 0, ErrInvalidCredentials
	}

	return u.ID, nil
}

// SaveCalculation stores a computed breakdown in the user's history.
// Older entries beyond the history limit are dropped by the repository.
func (s *Service) SaveCalculation(ctx context.Context, userID int64, category string, inputs, result json.RawMessage) (*model.Calculation, error) {
	if !validation.IsKnownCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", validation.ErrInvalidReceipt, category)
	}

	calc := model.Calculation{
		ID:        uuid.New(),
		Category:  category,
		Inputs:    inputs,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.SaveCalculation(ctx, userID, calc); err != nil {
		return nil, err
	}
	return &calc, nil
}

// GetHistory returns the user's saved calculations, newest first.
func (s *Service) GetHistory(ctx context.Context, userID int64) ([]model.Calculation, error) {
	return s.repo.GetCalculationsByUser(ctx, userID)
}

// DeleteCalculation removes one saved calculation.
func (s *Service) DeleteCalculation(ctx context.Context, userID int64, id uuid.UUID) error {
	return s.repo.DeleteCalculation(ctx, userID, id)
}

// DeleteAllCalculations clears the user's history.
func (s *Service) DeleteAllCalculations(ctx context.Context, userID int64) error {
	return s.repo.DeleteAllCalculations(ctx, userID)
}

// RateEstablishment records whether an establishment honors the discount.
func (s *Service) RateEstablishment(ctx context.Context, userID int64, name, branch string, status model.RatingStatus, notes string) (*model.EstablishmentRating, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRating)
	}
	if status != model.RatingSafe && status != model.RatingUnsafe {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRating, status)
	}

	rating := model.EstablishmentRating{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Branch:    strings.TrimSpace(branch),
		Status:    status,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateRating(ctx, userID, rating); err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetRatings returns the user's establishment ratings, newest first.
func (s *Service) GetRatings(ctx context.Context, userID int64) ([]model.EstablishmentRating, error) {
	return s.repo.GetRatingsByUser(ctx, userID)
}

// DeleteRating removes one establishment rating.
func (s *Service) DeleteRating(ctx context.Context, userID int64, id uuid.UUID) error {
	return s.repo.DeleteRating(ctx, userID, id)
}

// Chat relays a free-text question to the assistant.
func (s *Service) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	if s.assistant == nil {
		return "", assistant.ErrNotConfigured
	}
	return s.assistant.Chat(ctx, message)
}

// AnalyzeReceipt relays a receipt photo to the assistant and returns the
// sanitized extraction. The model's output never reaches the engine
// without passing the same validation as manual input.
func (s *Service) AnalyzeReceipt(ctx context.Context, imageBase64, mimeType string) (*model.ReceiptData, error) {
	if s.assistant == nil {
		return nil, assistant.ErrNotConfigured
	}

	text, err := s.assistant.AnalyzeReceipt(ctx, imageBase64, mimeType)
	if err != nil {
		return nil, err
	}

	raw, err := assistant.ParseReceipt(text)
	if err != nil {
		return nil, err
	}

	return validation.SanitizeReceipt(*raw)
}
