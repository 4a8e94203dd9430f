package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rpanganiban/diskwento-system/internal/assistant"
	"github.com/rpanganiban/diskwento-system/internal/engine"
	"github.com/rpanganiban/diskwento-system/internal/middleware"
	"github.com/rpanganiban/diskwento-system/internal/model"
	"github.com/rpanganiban/diskwento-system/internal/repository"
	"github.com/rpanganiban/diskwento-system/internal/service"
)

type stubService struct {
	registerUserID int64
	registerErr    error

	authUserID int64
	authErr    error

	savedCalc *model.Calculation
	saveErr   error

	history    []model.Calculation
	historyErr error

	deleteErr error

	rating    *model.EstablishmentRating
	ratingErr error

	ratings    []model.EstablishmentRating
	ratingsErr error

	chatReply string
	chatErr   error

	receiptData *model.ReceiptData
	receiptErr  error
}

func (s *stubService) RegisterUser(ctx context.Context, login, password string) (int64, error) {
	return s.registerUserID, s.registerErr
}

func (s *stubService) AuthenticateUser(ctx context.Context, login, password string) (int64, error) {
	return s.authUserID, s.authErr
}

func (s *stubService) SaveCalculation(ctx context.Context, userID int64, category string, inputs, result json.RawMessage) (*model.Calculation, error) {
	return s.savedCalc, s.saveErr
}

func (s *stubService) GetHistory(ctx context.Context, userID int64) ([]model.Calculation, error) {
	return s.history, s.historyErr
}

func (s *stubService) DeleteCalculation(ctx context.Context, userID int64, id uuid.UUID) error {
	return s.deleteErr
}

func (s *stubService) DeleteAllCalculations(ctx context.Context, userID int64) error {
	return s.deleteErr
}

func (s *stubService) RateEstablishment(ctx context.Context, userID int64, name, branch string, status model.RatingStatus, notes string) (*model.EstablishmentRating, error) {
	return s.rating, s.ratingErr
}

func (s *stubService) GetRatings(ctx context.Context, userID int64) ([]model.EstablishmentRating, error) {
	return s.ratings, s.ratingsErr
}

func (s *stubService) DeleteRating(ctx context.Context, userID int64, id uuid.UUID) error {
	return s.deleteErr
}

func (s *stubService) Chat(ctx context.Context, message string) (string, error) {
	return s.chatReply, s.chatErr
}

func (s *stubService) AnalyzeReceipt(ctx context.Context, imageBase64, mimeType string) (*model.ReceiptData, error) {
	return s.receiptData, s.receiptErr
}

func newTestHandler(t *testing.T, svc Service) *Handler {
	t.Helper()

	logger, err := zap.NewDevelopment()
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	auth := middleware.NewAuthMiddleware("test-secret")

	return NewHandler(svc, logger, auth)
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegister_Success(t *testing.T) {
	svc := &stubService{registerUserID: 42}
	h := newTestHandler(t, svc)

	rec := postJSON(t, h.SetupRouter(), "/api/user/register", credentialsRequest{
		Login:    "user",
		Password: "pass",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Fatalf("expected auth cookie to be set")
	}
}

func TestRegister_Conflict(t *testing.T) {
	svc := &stubService{registerErr: repository.ErrUserExists}
	h := newTestHandler(t, svc)

	rec := postJSON(t, h.SetupRouter(), "/api/user/register", credentialsRequest{
		Login:    "user",
		Password: "pass",
	})

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &stubService{authErr: service.ErrInvalidCredentials}
	h := newTestHandler(t, svc)

	rec := postJSON(t, h.SetupRouter(), "/api/user/login", credentialsRequest{
		Login:    "user",
		Password: "wrong",
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestCalculateDining(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	rec := postJSON(t, h.SetupRouter(), "/api/calculate/dining", engine.DiningInput{
		Bill:  1250,
		Party: engine.Party{Eligible: 1, Regular: 2},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var b engine.Breakdown
	if err := json.NewDecoder(rec.Body).Decode(&b); err != nil {
		t.Fatalf("decode breakdown: %v", err)
	}
	if math.Abs(b.AmountPayable-1130.9523809523807) > 0.0001 {
		t.Fatalf("amount payable = %v, want ~1130.9524", b.AmountPayable)
	}
	if b.MethodUsed != engine.SplitProrated {
		t.Fatalf("method used = %q, want prorated", b.MethodUsed)
	}
}

func TestCalculateDining_InvalidAmount(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	rec := postJSON(t, h.SetupRouter(), "/api/calculate/dining", engine.DiningInput{Bill: -5})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCalculateTransport_UnknownMode(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	rec := postJSON(t, h.SetupRouter(), "/api/calculate/transport", transportRequest{
		Mode: "submarine",
		Fare: 100,
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCalculateTransport_Land(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	rec := postJSON(t, h.SetupRouter(), "/api/calculate/transport", transportRequest{
		Mode: "land",
		Fare: 100,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var b engine.Breakdown
	if err := json.NewDecoder(rec.Body).Decode(&b); err != nil {
		t.Fatalf("decode breakdown: %v", err)
	}
	if math.Abs(b.AmountPayable-80) > 0.0001 {
		t.Fatalf("amount payable = %v, want 80", b.AmountPayable)
	}
}

func TestAudit_Shortchanged(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	rec := postJSON(t, h.SetupRouter(), "/api/audit", auditRequest{
		Bill:   430,
		Paid:   380,
		People: 1,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var res engine.AuditResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode audit result: %v", err)
	}
	if res.Status != engine.AuditShortchanged {
		t.Fatalf("status = %q, want shortchanged", res.Status)
	}
}

func TestGetCity(t *testing.T) {
	h := newTestHandler(t, &stubService{})
	router := h.SetupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/cities/makati", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/cities/atlantis", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetFlashcards(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/flashcards", nil)
	rec := httptest.NewRecorder()
	h.SetupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestComplaintLetter_UnknownViolation(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	rec := postJSON(t, h.SetupRouter(), "/api/letters/complaint", complaintRequest{
		Merchant:  "Kainan",
		Violation: "rude_waiter",
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHistory_RequiresAuth(t *testing.T) {
	h := newTestHandler(t, &stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/history/", nil)
	rec := httptest.NewRecorder()
	h.SetupRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestSaveCalculation_WithAuth(t *testing.T) {
	saved := &model.Calculation{
		ID:        uuid.New(),
		Category:  "dining",
		Inputs:    json.RawMessage(`{"bill":1250}`),
		Result:    json.RawMessage(`{"amount_payable":1130.95}`),
		CreatedAt: time.Now(),
	}
	h := newTestHandler(t, &stubService{savedCalc: saved})
	router := h.SetupRouter()

	cookieRec := httptest.NewRecorder()
	h.authMiddleware.SetAuthCookie(cookieRec, 7)
	cookie := cookieRec.Result().Cookies()[0]

	body, _ := json.Marshal(saveCalculationRequest{
		Category: "dining",
		Inputs:   saved.Inputs,
		Result:   saved.Result,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/history/", bytes.NewReader(body))
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
}

func TestChat_NotConfigured(t *testing.T) {
	h := newTestHandler(t, &stubService{chatErr: assistant.ErrNotConfigured})

	rec := postJSON(t, h.SetupRouter(), "/api/assistant/chat", chatRequest{Message: "hello"})

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestAnalyzeReceipt(t *testing.T) {
	sc := 125.0
	h := newTestHandler(t, &stubService{
		receiptData: &model.ReceiptData{
			Category:      "dining",
			TotalAmount:   1250,
			ServiceCharge: &sc,
			SplitMethod:   "prorated",
		},
	})

	rec := postJSON(t, h.SetupRouter(), "/api/assistant/receipt", receiptRequest{
		Image: "aGVsbG8=",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var data model.ReceiptData
	if err := json.NewDecoder(rec.Body).Decode(&data); err != nil {
		t.Fatalf("decode receipt data: %v", err)
	}
	if data.Category != "dining" || data.TotalAmount != 1250 {
		t.Fatalf("unexpected receipt data: %+v", data)
	}
}
