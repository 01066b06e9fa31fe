package domain

// SweetFilter holds optional search criteria. Nil fields do not filter.
type SweetFilter struct {
	Name     *string
	Category *string
	MinPrice *float64
	MaxPrice *float64
}

// IsEmpty reports whether no criterion is set.
func (f SweetFilter) IsEmpty() bool {
	return f.Name == nil && f.Category == nil && f.MinPrice == nil && f.MaxPrice == nil
}

// Page is an offset/limit window over an ordered listing.
type Page struct {
	Offset int
	Limit  int
}
