package domain

// Pagination defaults and bounds shared by every list operation.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageParams is a validated limit/offset window.
type PageParams struct {
	Limit  int
	Offset int
}

// Validate checks the window bounds and returns field errors for each violation.
func (p PageParams) Validate() []FieldError {
	var errs []FieldError
	if p.Limit < 1 || p.Limit > MaxPageLimit {
		errs = append(errs, FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}
	if p.Offset < 0 {
		errs = append(errs, FieldError{Field: "offset", Message: "must be >= 0"})
	}
	return errs
}
