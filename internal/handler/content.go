package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rpanganiban/diskwento-system/internal/cities"
	"github.com/rpanganiban/diskwento-system/internal/legal"
)

// GetCities returns the city benefits catalog.
func (h *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, cities.All())
}

// GetCity returns one city's benefits.
func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	city, ok := cities.ByID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	h.writeJSON(w, http.StatusOK, city)
}

// GetFlashcards returns the statutory rights reference cards.
func (h *Handler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, legal.Flashcards())
}

type complaintRequest struct {
	Merchant  string `json:"merchant"`
	Date      string `json:"date"`
	Violation string `json:"violation"`
	Details   string `json:"details"`
}

type letterResponse struct {
	Letter string `json:"letter"`
}

// ComplaintLetter generates a formal complaint letter for a discount
// violation.
func (h *Handler) ComplaintLetter(w http.ResponseWriter, r *http.Request) {
	var req complaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	letter, err := legal.ComplaintLetter(legal.ComplaintInput{
		Merchant:  req.Merchant,
		Date:      req.Date,
		Violation: legal.ViolationKind(req.Violation),
		Details:   req.Details,
	})
	if err != nil {
		if errors.Is(err, legal.ErrUnknownViolation) {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		h.logger.Error("complaint letter error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, letterResponse{Letter: letter})
}

type authorizationRequest struct {
	PrincipalName  string `json:"principal_name"`
	PrincipalID    string `json:"principal_id"`
	Representative string `json:"representative"`
	Relation       string `json:"relation"`
	Purpose        string `json:"purpose"`
	Date           string `json:"date"`
}

// AuthorizationLetter generates a letter authorizing a representative to
// claim privileges for the principal.
func (h *Handler) AuthorizationLetter(w http.ResponseWriter, r *http.Request) {
	var req authorizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
	}

	letter, err := legal.AuthorizationLetter(legal.AuthorizationInput{
		PrincipalName:  req.PrincipalName,
		PrincipalID:    req.PrincipalID,
		Representative: req.Representative,
		Relation:       req.Relation,
		Purpose:        legal.Purpose(req.Purpose),
		Date:           date,
	})
	if err != nil {
		if errors.Is(err, legal.ErrUnknownPurpose) {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		h.logger.Error("authorization letter error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, letterResponse{Letter: letter})
}
