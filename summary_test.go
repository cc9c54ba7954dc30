package jobledger

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(NewLedger().All())
	if s.JobCount != 0 || !s.TotalSales.IsZero() || !s.TotalParts.IsZero() || !s.TotalTechnicianProfit.IsZero() {
		t.Errorf("Summarize(empty) = %+v, want all zero", s)
	}
	if len(s.Payments) != 0 {
		t.Errorf("Payments = %v, want none", s.Payments)
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"jobCount":0,"totalSales":0,"totalParts":0,"totalTechnicianProfit":0}`; string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
}

func TestSummarize(t *testing.T) {
	p := testParser()
	jobs := []JobRecord{
		p.Parse("Close $500\nTech part $100\nPay cash"), // profit 140
		p.Parse("Close $200\nTech part $50"),            // profit 52.5, cc
		p.Parse("Close $100\nTech part $150\nPay cash"), // profit -17.5
	}
	s := Summarize(slices.Values(jobs))

	if s.JobCount != 3 {
		t.Errorf("JobCount = %d, want 3", s.JobCount)
	}
	if !s.TotalSales.Equal(USD(800)) {
		t.Errorf("TotalSales = %v, want $800", s.TotalSales)
	}
	if !s.TotalParts.Equal(USD(300)) {
		t.Errorf("TotalParts = %v, want $300", s.TotalParts)
	}
	if !s.TotalTechnicianProfit.Equal(USD(175)) {
		t.Errorf("TotalTechnicianProfit = %v, want $175", s.TotalTechnicianProfit)
	}
	if !s.Net().Equal(USD(500)) {
		t.Errorf("Net() = %v, want $500", s.Net())
	}

	if len(s.Payments) != 2 {
		t.Fatalf("Payments = %+v, want 2 methods", s.Payments)
	}
	cash, cc := s.Payments[0], s.Payments[1]
	if cash.Method != "cash" || cash.JobCount != 2 || !cash.Sales.Equal(USD(600)) || !cash.TechnicianProfit.Equal(USD(122.5)) {
		t.Errorf("cash = %+v", cash)
	}
	if cc.Method != "cc" || cc.JobCount != 1 || !cc.Sales.Equal(USD(200)) {
		t.Errorf("cc = %+v", cc)
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	p := testParser()
	jobs := []JobRecord{
		p.Parse("Close $333\nTech part $1"),
		p.Parse("Close $10\nTech part $3\nPay cash"),
		p.Parse("Close $77"),
	}
	a := Summarize(slices.Values(jobs))
	slices.Reverse(jobs)
	b := Summarize(slices.Values(jobs))
	if !a.TotalSales.Equal(b.TotalSales) || !a.TotalTechnicianProfit.Equal(b.TotalTechnicianProfit) {
		t.Errorf("summary depends on order: %+v != %+v", a, b)
	}
}

func TestSummary_NoIntermediateRounding(t *testing.T) {
	// profits are stored rounded, totals are their exact sum.
	jobs := []JobRecord{
		{TotalAmount: USD(0.004), TechnicianProfit: USD(0.01)},
		{TotalAmount: USD(0.004), TechnicianProfit: USD(0.01)},
	}
	s := Summarize(slices.Values(jobs))
	if !s.TotalSales.Equal(USD(0.008)) {
		t.Errorf("TotalSales = %v, want exact 0.008", s.TotalSales.Decimal())
	}
	if r := s.Rounded(); !r.TotalSales.Equal(USD(0.01)) {
		t.Errorf("Rounded().TotalSales = %v, want 0.01", r.TotalSales.Decimal())
	}
}

func TestSummary_RoundedToCentsInAnyCurrency(t *testing.T) {
	jpy := func(v float64) Money { return M(v, "JPY") }
	s := Summary{TotalSales: jpy(0.125), TotalParts: jpy(0), TotalTechnicianProfit: jpy(-17.5)}
	r := s.Rounded()
	if !r.TotalSales.Equal(jpy(0.13)) || !r.TotalTechnicianProfit.Equal(jpy(-17.5)) {
		t.Errorf("Rounded() = %v / %v, want 0.13 / -17.5", r.TotalSales.Decimal(), r.TotalTechnicianProfit.Decimal())
	}
}
