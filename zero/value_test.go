package zero_test

import (
	"testing"

	"github.com/JohnScience/sorted-vec2/zero"
	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Parallel()

	type record struct {
		Key  int
		Name string
	}

	assert.Equal(t, 0, zero.Value[int]())
	assert.Empty(t, zero.Value[string]())
	assert.Equal(t, record{}, zero.Value[record]())
	assert.Nil(t, zero.Value[*record]())
	assert.Nil(t, zero.Value[[]int]())
	assert.NoError(t, zero.Value[error]())
}
