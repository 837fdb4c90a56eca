package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("weekDate", "out of range"), KindValidation},
		{"conflict", Conflict("already assigned"), KindConflict},
		{"not found", NotFound("branch slot", "slot-1"), KindNotFound},
		{"transport", Transport(errors.New("connection refused")), KindTransport},
		{"untyped defaults to transport", errors.New("boom"), KindTransport},
		{"wrapped keeps kind", fmt.Errorf("outer: %w", NotFound("room", "room-1")), KindNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "validation: weekDate: out of range", Validation("weekDate", "out of range").Error())
	assert.Equal(t, "not_found: branch slot slot-1 not found", NotFound("branch slot", "slot-1").Error())

	cause := errors.New("dial tcp: timeout")
	err := Transport(cause)
	assert.ErrorIs(t, err, cause)
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(Conflict("dup"), KindConflict))
	assert.False(t, IsKind(Conflict("dup"), KindValidation))
	assert.False(t, IsKind(nil, KindTransport))
}
