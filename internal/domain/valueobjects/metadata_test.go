package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntityMetadata(t *testing.T) {
	md := NewEntityMetadata("admin")
	assert.Equal(t, 1, md.Version)
	assert.Equal(t, "admin", md.CreatedBy)
	assert.Equal(t, "admin", md.UpdatedBy)
	assert.False(t, md.UpdatedAt.Before(md.CreatedAt))
}

func TestEntityMetadata_Touch(t *testing.T) {
	md := NewEntityMetadata("admin")

	next := md.Touch("ops")
	assert.Equal(t, 2, next.Version)
	assert.Equal(t, "ops", next.UpdatedBy)
	assert.Equal(t, "admin", next.CreatedBy)
	assert.False(t, next.UpdatedAt.Before(next.CreatedAt))

	// original value untouched
	assert.Equal(t, 1, md.Version)

	third := next.Touch("")
	assert.Equal(t, 3, third.Version)
	assert.Equal(t, "ops", third.UpdatedBy)
}
