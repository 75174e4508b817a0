package category

import (
	"fmt"
	"strconv"

	"github.com/kailas-cloud/backoffice/internal/domain/category"
)

// Hash fields mirror the REST wire format so both backends hold the same shape.
const (
	fieldID          = "id"
	fieldDescription = "descricao"
)

// categoryToHash converts a domain Category to a map for HSET.
func categoryToHash(c category.Category) map[string]string {
	return map[string]string{
		fieldID:          c.ID(),
		fieldDescription: c.Description(),
	}
}

// categoryFromHash hydrates a domain Category from an HGETALL result map.
func categoryFromHash(m map[string]string) (category.Category, error) {
	id := m[fieldID]
	if id == "" {
		return category.Category{}, fmt.Errorf("category hash without %s", fieldID)
	}
	return category.Reconstruct(id, m[fieldDescription]), nil
}

// numericID orders server-issued ids; non-numeric ids sort last.
func numericID(id string) int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 1<<63 - 1
	}
	return n
}
