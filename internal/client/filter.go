package client

import "github.com/matjipduo/backend/internal/types"

// Price slider bounds. The clamp gap must stay below the step or the
// two handles could never sit one step apart.
const (
	PriceFloor = 4000
	PriceCeil  = 50000
	PriceStep  = 2000

	priceGap = 1000
)

// ClampPriceMin returns a new filter with the lower price bound set,
// clamped so it never crosses within priceGap of the upper bound.
func ClampPriceMin(filter types.MenuFilter, value int) types.MenuFilter {
	upper := PriceCeil
	if filter.PriceMax != nil {
		upper = *filter.PriceMax
	}
	if value > upper-priceGap {
		value = upper - priceGap
	}
	out := filter
	out.PriceMin = &value
	return out
}

// ClampPriceMax returns a new filter with the upper price bound set,
// clamped so it never crosses within priceGap of the lower bound.
func ClampPriceMax(filter types.MenuFilter, value int) types.MenuFilter {
	lower := PriceFloor
	if filter.PriceMin != nil {
		lower = *filter.PriceMin
	}
	if value < lower+priceGap {
		value = lower + priceGap
	}
	out := filter
	out.PriceMax = &value
	return out
}
