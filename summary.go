package jobledger

import (
	"iter"
	"slices"
	"strings"
)

// Summary holds the running totals of a list of jobs.
//
// Totals are exact sums, use Rounded before displaying them.
type Summary struct {
	JobCount              int
	TotalSales            Money
	TotalParts            Money
	TotalTechnicianProfit Money
	// Payments breaks the totals down per payment method, sorted by method.
	Payments []PaymentTotal
}

// PaymentTotal holds the totals of the jobs paid with one method.
type PaymentTotal struct {
	Method           string
	JobCount         int
	Sales            Money
	TechnicianProfit Money
}

// Summarize computes the summary of jobs from scratch.
func Summarize(jobs iter.Seq[JobRecord]) Summary {
	var s Summary
	byMethod := make(map[string]*PaymentTotal)
	for r := range jobs {
		s.JobCount++
		s.TotalSales = s.TotalSales.Add(r.TotalAmount)
		s.TotalParts = s.TotalParts.Add(r.PartsCost)
		s.TotalTechnicianProfit = s.TotalTechnicianProfit.Add(r.TechnicianProfit)

		p, ok := byMethod[r.PaymentMethod]
		if !ok {
			p = &PaymentTotal{Method: r.PaymentMethod}
			byMethod[r.PaymentMethod] = p
		}
		p.JobCount++
		p.Sales = p.Sales.Add(r.TotalAmount)
		p.TechnicianProfit = p.TechnicianProfit.Add(r.TechnicianProfit)
	}
	for _, p := range byMethod {
		s.Payments = append(s.Payments, *p)
	}
	slices.SortFunc(s.Payments, func(a, b PaymentTotal) int { return strings.Compare(a.Method, b.Method) })
	return s
}

// Currency returns the currency of the totals, empty for an empty summary.
func (s Summary) Currency() string { return s.TotalSales.Currency() }

// Net returns what is left of the sales once parts are paid.
func (s Summary) Net() Money { return s.TotalSales.Sub(s.TotalParts) }

// Rounded returns a copy of s with every amount rounded to cents.
func (s Summary) Rounded() Summary {
	r := s
	r.TotalSales = s.TotalSales.Round()
	r.TotalParts = s.TotalParts.Round()
	r.TotalTechnicianProfit = s.TotalTechnicianProfit.Round()
	r.Payments = make([]PaymentTotal, len(s.Payments))
	for i, p := range s.Payments {
		p.Sales = p.Sales.Round()
		p.TechnicianProfit = p.TechnicianProfit.Round()
		r.Payments[i] = p
	}
	return r
}

// MarshalJSON writes the rounded totals as plain numbers.
func (s Summary) MarshalJSON() ([]byte, error) {
	r := s.Rounded()
	var w jsonObjectWriter
	w.Append("jobCount", r.JobCount)
	w.Optional("currency", r.Currency())
	w.Append("totalSales", r.TotalSales.Decimal())
	w.Append("totalParts", r.TotalParts.Decimal())
	w.Append("totalTechnicianProfit", r.TotalTechnicianProfit.Decimal())
	return w.MarshalJSON()
}
