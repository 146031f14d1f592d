package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_model_operation_for_routed_patterns(t *testing.T) {
	// given/when
	op, ok := modelOperation("/v1/models/validate")
	// then
	assert.True(t, ok)
	assert.Equal(t, "validate", op)

	op, ok = modelOperation("/v1/models/analyze")
	assert.True(t, ok)
	assert.Equal(t, "analyze", op)

	op, ok = modelOperation("/v1/history")
	assert.True(t, ok)
	assert.Equal(t, "history", op)

	_, ok = modelOperation("/system/status")
	assert.False(t, ok)
}
