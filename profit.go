package jobledger

// TechnicianProfit returns the technician share of a job: percentage of what
// is left of total once parts are paid, rounded to the hundredth.
//
// Inputs are not validated, parts greater than total give a negative profit.
func TechnicianProfit(total, parts Money, percentage Percent) Money {
	return total.Sub(parts).Share(percentage).Round()
}
