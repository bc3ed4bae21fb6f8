package name

import "errors"

// Error kinds returned by name parsing and validation. Each is returned
// wrapped with fmt.Errorf("%w: ...", ErrX, ...) so callers can errors.Is
// against it.
var (
	ErrBadChar          = errors.New("name: invalid character")
	ErrWrongKingCount   = errors.New("name: must contain exactly two kings")
	ErrWrongOrder       = errors.New("name: attackers not listed in descending piece value")
	ErrCountOverflow    = errors.New("name: too many pieces of one type")
	ErrDefenderOverflow = errors.New("name: too many xiangqi defenders of one type")
)
