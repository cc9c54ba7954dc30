package jobledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage expressed in [0,100].
type Percent float64

// DefaultTechnicianPercentage is the technician share applied to every job.
const DefaultTechnicianPercentage Percent = 35

var hundred = decimal.NewFromInt(100)

// ratio returns p as a fraction of 1.
func (p Percent) ratio() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(hundred)
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
