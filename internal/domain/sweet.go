package domain

import (
	"math"
	"time"
)

// MaxStock is the largest quantity a single sweet may hold (INTEGER column).
const MaxStock = math.MaxInt32

// Sweet is a sellable catalog item.
type Sweet struct {
	ID        int64
	Name      string
	Category  string
	Price     float64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Take removes n units from stock. The sweet is left untouched on error.
func (s *Sweet) Take(n int) error {
	if n <= 0 {
		return NewValidationError("quantity", "must be positive")
	}
	if n > s.Quantity {
		return &StockError{SweetID: s.ID, Requested: n, Available: s.Quantity}
	}
	s.Quantity -= n
	return nil
}

// Put adds n units to stock. The sweet is left untouched on error.
func (s *Sweet) Put(n int) error {
	if n <= 0 {
		return NewValidationError("quantity", "must be positive")
	}
	if n > MaxStock-s.Quantity {
		return NewValidationError("quantity", "restock would exceed maximum stock")
	}
	s.Quantity += n
	return nil
}
