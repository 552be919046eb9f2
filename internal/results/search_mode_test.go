package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchMode(t *testing.T) {
	assert.True(t, SearchModeLine.IsValid())
	assert.True(t, SearchModeByte.IsValid())
	assert.False(t, SearchMode("regex").IsValid())
	assert.Equal(t, "byte", SearchModeByte.String())
}
