package service

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// ClampPage bounds limit to [1, MaxPageLimit] and offset to >= 0. A zero
// limit selects the default.
func ClampPage(limit, offset int) (int, int) {
	switch {
	case limit == 0:
		limit = DefaultPageLimit
	case limit < 1:
		limit = 1
	case limit > MaxPageLimit:
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
