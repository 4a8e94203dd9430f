package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rpanganiban/diskwento-system/internal/engine"
)

// Calculation endpoints are pure: they call the engine directly and never
// touch storage. Saving a result to history is a separate, authenticated
// request.

func (h *Handler) calculationError(w http.ResponseWriter, err error) {
	if errors.Is(err, engine.ErrInvalidAmount) {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	h.logger.Error("calculation error", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// CalculateDining computes the discount breakdown for a restaurant bill.
func (h *Handler) CalculateDining(w http.ResponseWriter, r *http.Request) {
	var in engine.DiningInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	b, err := engine.Dining(in)
	if err != nil {
		h.calculationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, b)
}

type takeoutRequest struct {
	Bill      float64 `json:"bill"`
	MEMCPrice float64 `json:"memc_price"`
	Eligible  int     `json:"eligible"`
}

// CalculateTakeout applies the most-expensive-meal-combination rule to a
// takeout or delivery order.
func (h *Handler) CalculateTakeout(w http.ResponseWriter, r *http.Request) {
	var req takeoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	b, err := engine.Takeout(req.Bill, req.MEMCPrice, req.Eligible)
	if err != nil {
		h.calculationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, b)
}

type medicineRequest struct {
	Amount float64 `json:"amount"`
}

// CalculateMedicine computes the discount for a medicine purchase.
func (h *Handler) CalculateMedicine(w http.ResponseWriter, r *http.Request) {
	var req medicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	b, err := engine.Medicine(req.Amount)
	if err != nil {
		h.calculationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, b)
}

type groceryRequest struct {
	Bill         float64 `json:"bill"`
	RemainingCap float64 `json:"remaining_cap"`
}

// CalculateGrocery computes the 5% BNPC discount against the weekly cap.
func (h *Handler) CalculateGrocery(w http.ResponseWriter, r *http.Request) {
	var req groceryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	b, err := engine.Grocery(req.Bill, req.RemainingCap)
	if err != nil {
		h.calculationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, b)
}

type groceryCartRequest struct {
	Items     []engine.GroceryItem `json:"items"`
	WeeklyCap float64              `json:"weekly_cap"`
	Booklets  int                  `json:"booklets"`
}

// CalculateGroceryCart computes the BNPC discount for an itemized cart.
func (h *Handler) CalculateGroceryCart(w http.ResponseWriter, r *http.Request) {
	var req groceryCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if req.WeeklyCap == 0 {
		req.WeeklyCap = engine.DefaultWeeklyCap
	}

	b, err := engine.GroceryCart(req.Items, req.WeeklyCap, req.Booklets)
	if err != nil {
		h.calculationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, b)
}

type utilityRequest struct {
	Kind        string  `json:"kind"`
	Consumption float64 `json:"consumption"`
	Bill        float64 `json:"bill"`
}

// CalculateUtility computes the 5% utility discount with the consumption
// eligibility check.
func (h *Handler) CalculateUtility(w http.ResponseWriter, r *http.Request) {
	var req utilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	b, err := engine.Utility(engine.UtilityKind(req.Kind), req.Consumption, req.Bill)
	if err != nil {
		h.calculationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, b)
}

type transportRequest struct {
	Mode         string  `json:"mode"`
	Fare         float64 `json:"fare"`
	TaxesAndFees float64 `json:"taxes_and_fees"`
}

// CalculateTransport computes the fare discount for air, sea and land
// travel.
func (h *Handler) CalculateTransport(w http.ResponseWriter, r *http.Request) {
	var req transportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var (
		b   *engine.Breakdown
		err error
	)
	switch req.Mode {
	case "air", "sea":
		b, err = engine.AirSeaFare(req.Fare, req.TaxesAndFees)
	case "land":
		b, err = engine.LandFare(req.Fare)
	default:
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.calculationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, b)
}

type auditRequest struct {
	Bill   float64 `json:"bill"`
	Paid   float64 `json:"paid"`
	People int     `json:"people"`
}

// Audit checks a paid amount against the statutory expectation and flags
// shortchanging.
func (h *Handler) Audit(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	res, err := engine.Audit(req.Bill, req.Paid, req.People)
	if err != nil {
		h.calculationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

type serviceChargeRateRequest struct {
	Subtotal float64 `json:"subtotal"`
	Charge   float64 `json:"charge"`
}

type serviceChargeRateResponse struct {
	RateOnGross float64 `json:"rate_on_gross"`
	RateOnNet   float64 `json:"rate_on_net"`
}

// ServiceChargeRate reverse-engineers the service charge rate from a
// receipt's subtotal and charge amount.
func (h *Handler) ServiceChargeRate(w http.ResponseWriter, r *http.Request) {
	var req serviceChargeRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	onGross, onNet, err := engine.ServiceChargeRates(req.Subtotal, req.Charge)
	if err != nil {
		h.calculationError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, serviceChargeRateResponse{
		RateOnGross: onGross,
		RateOnNet:   onNet,
	})
}
