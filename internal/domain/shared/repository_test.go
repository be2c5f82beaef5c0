package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	base := DefaultFilter()
	withStatus := base.With("status", "pending")

	assert.Empty(t, base.Filters, "With does not mutate the receiver")
	assert.Equal(t, "pending", withStatus.Filters["status"])

	assert.Equal(t, 5, base.WithLimit(5).Limit)
	assert.Equal(t, 0, base.Offset())
	assert.Equal(t, 0, base.WithPage(1, 20).Offset())
	assert.Equal(t, 40, base.WithPage(3, 20).Offset())
}
