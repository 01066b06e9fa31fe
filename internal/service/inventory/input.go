package inventory

import "github.com/heartmarshall/sweetshop-backend/internal/domain"

// StockInput is the quantity moved by a purchase or restock.
type StockInput struct {
	SweetID  int64
	Quantity int
}

// Validate validates the stock input.
func (i StockInput) Validate() error {
	var errs []domain.FieldError

	if i.SweetID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be positive"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
