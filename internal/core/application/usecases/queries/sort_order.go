package queries

import (
	"fmt"
	"strings"

	"orderdesk/internal/pkg/errs"
)

// SortOrder orders client and restaurant listings by name.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder accepts "asc" and "desc" in any case; an empty value means ascending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortAscending:
		return SortAscending, nil
	case SortDescending:
		return SortDescending, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("sort order", fmt.Errorf("%q is neither asc nor desc", s))
	}
}

func (s SortOrder) Validate() error {
	if s != SortAscending && s != SortDescending {
		return errs.NewValueIsInvalidErrorWithCause("sort order", fmt.Errorf("%q is neither asc nor desc", string(s)))
	}
	return nil
}

func (s SortOrder) sql() string {
	if s == SortDescending {
		return "DESC"
	}
	return "ASC"
}
