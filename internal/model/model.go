// Package model contains the domain entities of the diskwento service.
package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User is a registered account. History and establishment ratings are
// keyed to it.
type User struct {
	ID           int64
	Login        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Calculation is one saved engine computation: the category, the raw input
// the user (or the receipt relay) supplied, and the resulting breakdown.
// Inputs and Result are stored verbatim; the engine never reads them back.
type Calculation struct {
	ID        uuid.UUID       `json:"id"`
	Category  string          `json:"category"`
	Inputs    json.RawMessage `json:"inputs"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

// RatingStatus marks whether an establishment honors the discount.
type RatingStatus string

const (
	RatingSafe   RatingStatus = "safe"
	RatingUnsafe RatingStatus = "unsafe"
)

// EstablishmentRating is a user's note on how an establishment treats
// PWD/senior discounts.
type EstablishmentRating struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Branch    string       `json:"branch,omitempty"`
	Status    RatingStatus `json:"status"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// ReceiptData is the structured object the receipt-analysis relay extracts
// from a photo. It is untrusted input and must pass the same validation as
// manually typed values before reaching the engine.
type ReceiptData struct {
	Category        string   `json:"category"`
	TotalAmount     float64  `json:"total_amount"`
	ServiceCharge   *float64 `json:"service_charge,omitempty"`
	SplitMethod     string   `json:"split_method,omitempty"`
	ExclusiveAmount *float64 `json:"exclusive_amount,omitempty"`
}
