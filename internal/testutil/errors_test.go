package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/hyprws/internal/errors"
)

func TestMockErrors_WrapCommandFailed(t *testing.T) {
	assert.ErrorIs(t, ErrMockQueryFailed, errors.ErrCommandFailed)
	assert.ErrorIs(t, ErrMockDispatchFailed, errors.ErrCommandFailed)
	assert.NotErrorIs(t, ErrMockQueryFailed, errors.ErrMalformedOutput)
}

func TestMockOutputs(t *testing.T) {
	assert.True(t, json.Valid([]byte(MockTwoWorkspaces)))
	assert.False(t, json.Valid([]byte(MockNoSocket)))
}
