package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_Validate(t *testing.T) {
	p := ListParams{Page: 0, PerPage: 0, OrderBy: "yukarı"}
	p.Validate()

	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
	assert.Equal(t, "desc", p.OrderBy)

	p = ListParams{Page: 3, PerPage: 500, OrderBy: "asc"}
	p.Validate()

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
	assert.Equal(t, "asc", p.OrderBy)
}

func TestListParams_Offset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 20}
	assert.Equal(t, 40, p.Offset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 1, CalculateTotalPages(20, 20))
	assert.Equal(t, 2, CalculateTotalPages(21, 20))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}
