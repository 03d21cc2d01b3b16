package report

// Direction tags which way an aggregate moved between two periods.
type Direction string

const (
	TrendUp      Direction = "up"
	TrendDown    Direction = "down"
	TrendNeutral Direction = "neutral"
)

// TrendResult is a signed percentage change plus its direction tag.
type TrendResult struct {
	ChangePct float64   `json:"change_pct"`
	Direction Direction `json:"direction"`
}

// Trend compares a current aggregate against a previous one. Growing from a
// zero baseline reports a flat +100% rather than dividing by zero; two zero
// periods are neutral.
func Trend(current, previous float64) TrendResult {
	switch {
	case previous > 0:
		change := (current - previous) / previous * 100
		dir := TrendNeutral
		if change > 0 {
			dir = TrendUp
		} else if change < 0 {
			dir = TrendDown
		}
		return TrendResult{ChangePct: change, Direction: dir}
	case current > 0:
		return TrendResult{ChangePct: 100, Direction: TrendUp}
	default:
		return TrendResult{ChangePct: 0, Direction: TrendNeutral}
	}
}
