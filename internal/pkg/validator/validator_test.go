package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type windowRequest struct {
	Window int `validate:"required,gt=0,even"`
}

type rideRequest struct {
	Title    string `validate:"required,max=255"`
	Polyline string `validate:"required"`
}

func TestValidate_Even(t *testing.T) {
	assert.NoError(t, Validate(windowRequest{Window: 80}))
	assert.NoError(t, Validate(windowRequest{Window: 2}))
	assert.Error(t, Validate(windowRequest{Window: 7}))
	assert.Error(t, Validate(windowRequest{Window: -4}))
	assert.Error(t, Validate(windowRequest{Window: 0}))
}

func TestDescribe(t *testing.T) {
	err := Validate(windowRequest{Window: 7})
	require.Error(t, err)
	assert.Equal(t, map[string]interface{}{"window": "even"}, Describe(err))

	err = Validate(rideRequest{})
	require.Error(t, err)
	details := Describe(err)
	assert.Equal(t, "required", details["title"])
	assert.Equal(t, "required", details["polyline"])
}
