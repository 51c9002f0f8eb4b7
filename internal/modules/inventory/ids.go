package inventory

import (
	"strconv"
	"strings"
)

func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

// ParseID reads a numeric identifier typed by the actor.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	return id, err == nil
}

// FindStore returns the store with id among the candidates.
func FindStore(candidates []StoreDistance, id int64) (*Store, bool) {
	for _, c := range candidates {
		if c.ID == id {
			return c.Store, true
		}
	}
	return nil, false
}
