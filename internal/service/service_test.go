package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpanganiban/diskwento-system/internal/assistant"
	"github.com/rpanganiban/diskwento-system/internal/model"
	"github.com/rpanganiban/diskwento-system/internal/repository"
	"github.com/rpanganiban/diskwento-system/internal/validation"
)

type stubRepo struct {
	createUserID  int64
	createUserErr error

	getUser    *model.User
	getUserErr error

	savedCalc   *model.Calculation
	savedUserID int64

	savedRating *model.EstablishmentRating
}

func (s *stubRepo) Close() error { return nil }

func (s *stubRepo) CreateUser(ctx context.Context, login string, passwordHash []byte) (int64, error) {
	return s.createUserID, s.createUserErr
}

func (s *stubRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	return s.getUser, s.getUserErr
}

func (s *stubRepo) SaveCalculation(ctx context.Context, userID int64, calc model.Calculation) error {
	s.savedUserID = userID
	s.savedCalc = &calc
	return nil
}

func (s *stubRepo) GetCalculationsByUser(ctx context.Context, userID int64) ([]model.Calculation, error) {
	return nil, nil
}

func (s *stubRepo) DeleteCalculation(ctx context.Context, userID int64, id uuid.UUID) error {
	return nil
}

func (s *stubRepo) DeleteAllCalculations(ctx context.Context, userID int64) error {
	return nil
}

func (s *stubRepo) CreateRating(ctx context.Context, userID int64, rating model.EstablishmentRating) error {
	s.savedRating = &rating
	return nil
}

func (s *stubRepo) GetRatingsByUser(ctx context.Context, userID int64) ([]model.EstablishmentRating, error) {
	return nil, nil
}

func (s *stubRepo) DeleteRating(ctx context.Context, userID int64, id uuid.UUID) error {
	return nil
}

type stubAssistant struct {
	chatReply    string
	receiptReply string
	err          error
}

func (s *stubAssistant) Chat(ctx context.Context, question string) (string, error) {
	return s.chatReply, s.err
}

func (s *stubAssistant) AnalyzeReceipt(ctx context.Context, imageBase64, mimeType string) (string, error) {
	return s.receiptReply, s.err
}

func TestRegisterUser_PropagatesDuplicateError(t *testing.T) {
	repo := &stubRepo{
		createUserErr: repository.ErrUserExists,
	}
	svc := NewService(repo, nil)

	_, err := svc.RegisterUser(context.Background(), "login", "pass")
	if !errors.Is(err, repository.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthenticateUser_WrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo := &stubRepo{
		getUser: &model.User{
			ID:           1,
			Login:        "user",
			PasswordHash: hashed,
		},
	}
	svc := NewService(repo, nil)

	_, err = svc.AuthenticateUser(context.Background(), "user", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUser_UnknownUser(t *testing.T) {
	repo := &stubRepo{
		getUserErr: repository.ErrUserNotFound,
	}
	svc := NewService(repo, nil)

	_, err := svc.AuthenticateUser(context.Background(), "nobody", "pass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticateUser_Success(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	repo := &stubRepo{
		getUser: &model.User{
			ID:           7,
			Login:        "user",
			PasswordHash: hashed,
		},
	}
	svc := NewService(repo, nil)

	id, err := svc.AuthenticateUser(context.Background(), "user", "correct")
	if err != nil {
		t.Fatalf("AuthenticateUser error: %v", err)
	}
	if id != 7 {
		t.Fatalf("user id = %d, want 7", id)
	}
}

func TestSaveCalculation_AssignsIDAndTime(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nil)

	inputs := json.RawMessage(`{"bill":1250}`)
	result := json.RawMessage(`{"amount_payable":1130.95}`)

	calc, err := svc.SaveCalculation(context.Background(), 3, "dining", inputs, result)
	if err != nil {
		t.Fatalf("SaveCalculation error: %v", err)
	}
	if calc.ID == uuid.Nil {
		t.Fatalf("expected a generated id")
	}
	if calc.CreatedAt.IsZero() {
		t.Fatalf("expected a creation timestamp")
	}
	if repo.savedUserID != 3 {
		t.Fatalf("saved user id = %d, want 3", repo.savedUserID)
	}
	if repo.savedCalc == nil || repo.savedCalc.Category != "dining" {
		t.Fatalf("unexpected saved calculation: %+v", repo.savedCalc)
	}
}

func TestSaveCalculation_UnknownCategory(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)

	_, err := svc.SaveCalculation(context.Background(), 1, "casino", nil, nil)
	if !errors.Is(err, validation.ErrInvalidReceipt) {
		t.Fatalf("expected invalid category error, got %v", err)
	}
}

func TestRateEstablishment_Validation(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)

	if _, err := svc.RateEstablishment(context.Background(), 1, "  ", "", model.RatingSafe, ""); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating for blank name, got %v", err)
	}
	if _, err := svc.RateEstablishment(context.Background(), 1, "Kainan", "", "meh", ""); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("expected ErrInvalidRating for unknown status, got %v", err)
	}
}

func TestRateEstablishment_Success(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, nil)

	rating, err := svc.RateEstablishment(context.Background(), 1, " Kainan sa Kanto ", "Cubao", model.RatingUnsafe, "refused discount")
	if err != nil {
		t.Fatalf("RateEstablishment error: %v", err)
	}
	if rating.Name != "Kainan sa Kanto" {
		t.Fatalf("name = %q, want trimmed", rating.Name)
	}
	if repo.savedRating == nil || repo.savedRating.Status != model.RatingUnsafe {
		t.Fatalf("unexpected saved rating: %+v", repo.savedRating)
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	svc := NewService(&stubRepo{}, &stubAssistant{})

	_, err := svc.Chat(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestChat_NoAssistant(t *testing.T) {
	svc := NewService(&stubRepo{}, nil)

	_, err := svc.Chat(context.Background(), "hello")
	if !errors.Is(err, assistant.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestAnalyzeReceipt_SanitizesOutput(t *testing.T) {
	reply := "```json\n{\"category\":\"dining\",\"total_amount\":1250,\"service_charge\":-5,\"split_method\":\"exclusive\",\"exclusive_amount\":2000}\n```"
	svc := NewService(&stubRepo{}, &stubAssistant{receiptReply: reply})

	data, err := svc.AnalyzeReceipt(context.Background(), "aGVsbG8=", "image/jpeg")
	if err != nil {
		t.Fatalf("AnalyzeReceipt error: %v", err)
	}
	if data.Category != "dining" || data.TotalAmount != 1250 {
		t.Fatalf("unexpected receipt data: %+v", data)
	}
	if data.ServiceCharge != nil {
		t.Fatalf("negative service charge must be dropped")
	}
	if data.SplitMethod != "prorated" {
		t.Fatalf("out-of-range exclusive amount must degrade to prorated, got %q", data.SplitMethod)
	}
}

func TestAnalyzeReceipt_RejectsUnknownCategory(t *testing.T) {
	reply := "```json\n{\"category\":\"casino\",\"total_amount\":1250}\n```"
	svc := NewService(&stubRepo{}, &stubAssistant{receiptReply: reply})

	_, err := svc.AnalyzeReceipt(context.Background(), "aGVsbG8=", "image/jpeg")
	if !errors.Is(err, validation.ErrInvalidReceipt) {
		t.Fatalf("expected ErrInvalidReceipt, got %v", err)
	}
}
