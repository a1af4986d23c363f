package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrorNotFound, ErrIDExhausted, ErrValidation, ErrIncomplete, ErrOutOfRange,
		ErrUnmatched, ErrInvalidDefinition, ErrUnsupportedOrUnreadable,
		ErrPersistFailed, ErrCorruptState, ErrQuotaExceeded,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinels_MatchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("write rl_blog: %w", fmt.Errorf("%w: %w", ErrPersistFailed, ErrQuotaExceeded))
	assert.ErrorIs(t, err, ErrPersistFailed)
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	assert.NotErrorIs(t, err, ErrorNotFound)
}
