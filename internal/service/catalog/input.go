package catalog

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/sweetshop-backend/internal/domain"
)

const (
	maxNameLen     = 200
	maxCategoryLen = 100
	maxPrice       = 9_999_999_999.99 // NUMERIC(12,2)
)

// SweetInput holds the full set of writable sweet fields.
type SweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int
}

func (i *SweetInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Category = strings.TrimSpace(i.Category)
}

// Validate validates the sweet input.
func (i SweetInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	} else if utf8.RuneCountInString(i.Category) > maxCategoryLen {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long"})
	}

	switch {
	case math.IsNaN(i.Price) || math.IsInf(i.Price, 0):
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be a finite number"})
	case i.Price < 0:
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be non-negative"})
	case i.Price > maxPrice:
		errs = append(errs, domain.FieldError{Field: "price", Message: "too large"})
	}

	if i.Quantity < 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be non-negative"})
	} else if i.Quantity > domain.MaxStock {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "too large"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i SweetInput) toSweet(id int64) *domain.Sweet {
	return &domain.Sweet{
		ID:       id,
		Name:     i.Name,
		Category: i.Category,
		Price:    math.Round(i.Price*100) / 100,
		Quantity: i.Quantity,
	}
}

// ListInput holds pagination parameters. Nil means "use the default".
type ListInput struct {
	Skip  *int
	Limit *int
}

// page validates the input and resolves it against the configured limits.
func (i ListInput) page(defaultLimit, maxLimit int) (domain.Page, error) {
	var errs []domain.FieldError

	p := domain.Page{Offset: 0, Limit: defaultLimit}

	if i.Skip != nil {
		if *i.Skip < 0 {
			errs = append(errs, domain.FieldError{Field: "skip", Message: "must be non-negative"})
		} else {
			p.Offset = *i.Skip
		}
	}

	if i.Limit != nil {
		switch {
		case *i.Limit < 0:
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
		case *i.Limit < 1:
			p.Limit = 1
		case *i.Limit > maxLimit:
			p.Limit = maxLimit
		default:
			p.Limit = *i.Limit
		}
	}

	if len(errs) > 0 {
		return domain.Page{}, domain.NewValidationErrors(errs)
	}
	return p, nil
}

// SearchInput holds optional search criteria. Blank strings are ignored.
type SearchInput struct {
	Name     *string
	Category *string
	MinPrice *float64
	MaxPrice *float64
}

// filter validates the input and converts it into a repository filter.
func (i SearchInput) filter() (domain.SweetFilter, error) {
	var errs []domain.FieldError

	f := domain.SweetFilter{
		Name:     nonBlank(i.Name),
		Category: nonBlank(i.Category),
		MinPrice: i.MinPrice,
		MaxPrice: i.MaxPrice,
	}

	bounds := []struct {
		field string
		v     *float64
	}{{"min_price", f.MinPrice}, {"max_price", f.MaxPrice}}
	for _, b := range bounds {
		if b.v != nil && (math.IsNaN(*b.v) || math.IsInf(*b.v, 0)) {
			errs = append(errs, domain.FieldError{Field: b.field, Message: "must be a finite number"})
		}
	}

	if len(errs) == 0 && f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		errs = append(errs, domain.FieldError{Field: "min_price", Message: "must not exceed max_price"})
	}

	if len(errs) > 0 {
		return domain.SweetFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
