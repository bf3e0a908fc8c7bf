package shared

// Paging limits
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Page is embedded by query objects.
type Page struct {
	Limit  int `validate:"omitempty,gt=0,lte=200"`
	Offset int `validate:"omitempty,gte=0"`
}

// LimitOr returns the page limit or fallback when none was requested.
func (p Page) LimitOr(fallback int) int {
	if p.Limit <= 0 {
		return fallback
	}
	return p.Limit
}
