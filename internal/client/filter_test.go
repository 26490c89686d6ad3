package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matjipduo/backend/internal/types"
)

func TestClampPriceMinWithinRange(t *testing.T) {
	out := ClampPriceMin(types.MenuFilter{}, 8000)
	require.NotNil(t, out.PriceMin)
	assert.Equal(t, 8000, *out.PriceMin)
}

func TestClampPriceMinStopsBelowUpperBound(t *testing.T) {
	max := 10000
	out := ClampPriceMin(types.MenuFilter{PriceMax: &max}, 10000)
	require.NotNil(t, out.PriceMin)
	assert.Equal(t, 10000-priceGap, *out.PriceMin)
}

func TestClampPriceMaxStopsAboveLowerBound(t *testing.T) {
	min := 10000
	out := ClampPriceMax(types.MenuFilter{PriceMin: &min}, 9000)
	require.NotNil(t, out.PriceMax)
	assert.Equal(t, 10000+priceGap, *out.PriceMax)
}

func TestClampPriceMaxDefaultsToFloor(t *testing.T) {
	// with no lower bound the floor anchors the clamp
	out := ClampPriceMax(types.MenuFilter{}, 0)
	require.NotNil(t, out.PriceMax)
	assert.Equal(t, PriceFloor+priceGap, *out.PriceMax)
}

func TestClampDoesNotMutateInput(t *testing.T) {
	in := types.MenuFilter{}
	_ = ClampPriceMin(in, 8000)
	assert.Nil(t, in.PriceMin)
}

func TestHandlesCanSitOneStepApart(t *testing.T) {
	// the clamp gap stays below the slider step so adjacent stops
	// remain reachable
	assert.Less(t, priceGap, PriceStep)
}
