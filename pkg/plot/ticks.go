package plot

import (
	"math"
	"strconv"
)

// niceTicks returns round tick values (steps of 1, 2, 2.5 or 5 × 10^k)
// inside [lo, hi], aiming for at most maxTicks of them.
func niceTicks(lo, hi float64, maxTicks int) (ticks []float64, step float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if !finite(lo) || !finite(hi) || lo == hi || maxTicks < 2 {
		return nil, 0
	}
	raw := (hi - lo) / float64(maxTicks-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch n := raw / mag; {
	case n <= 1:
		step = mag
	case n <= 2:
		step = 2 * mag
	case n <= 2.5:
		step = 2.5 * mag
	case n <= 5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	eps := step * 1e-9
	for v := math.Ceil(lo/step) * step; v <= hi+eps; v += step {
		// Snap accumulated error so 0.30000000000000004 prints as 0.3.
		v = math.Round(v/step) * step
		ticks = append(ticks, v)
	}
	return ticks, step
}

// formatTick prints v with just enough decimals for step.
func formatTick(v, step float64) string {
	decimals := 0
	if step > 0 && step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
		if math.Abs(step*math.Pow(10, float64(decimals))-math.Round(step*math.Pow(10, float64(decimals)))) > 1e-9 {
			decimals++
		}
	}
	if math.Abs(v) < step*1e-9 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// tickCount picks a tick budget for an axis length in pixels.
func tickCount(lengthPx, fontPx float64) int {
	n := int(lengthPx / (fontPx * 6))
	return min(max(n, 3), 9)
}
