package utils

import (
	"distro/internal/models"
	"strconv"
)

// ParseID accepts only positive decimal ids that fit a Postgres INTEGER.
func ParseID(s string) (int, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil || id <= 0 {
		return 0, models.ErrInvalidParams
	}

	return int(id), nil
}
