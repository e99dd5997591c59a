package engine

// Meter bounds and the neutral baseline every attempt starts from.
const (
	MeterMin      = 0
	MeterMax      = 100
	MeterBaseline = 50
)

// applyImpact adds a node's arrival impact to a meter with saturating
// clamping: a delta that would cross a bound truncates to the bound, it is
// never rejected and never wraps.
func applyImpact(current, impact int) int {
	v := current + impact
	if v < MeterMin {
		return MeterMin
	}
	if v > MeterMax {
		return MeterMax
	}
	return v
}
