package engine

import (
	"math"

	"github.com/akyairhashvil/dialtimer/internal/util"
)

// Snapper turns a dial angle into a remaining time on a fixed grid: whole
// seconds for totals under Threshold, whole minutes otherwise.
type Snapper struct {
	Threshold int // seconds
}

// Unit returns the snapping granularity in seconds for total.
func (s Snapper) Unit(total int) int {
	if total < s.Threshold {
		return 1
	}
	return 60
}

// Snap converts angle into seconds in [0,total].
func (s Snapper) Snap(angle float64, total int) int {
	if total <= 0 {
		return 0
	}
	raw := angle / 360 * float64(total)
	unit := float64(s.Unit(total))
	snapped := int(math.Round(raw/unit) * unit)
	return util.Clamp(snapped, 0, total)
}
