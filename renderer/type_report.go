package renderer

import (
	"strings"

	"github.com/etnz/jobledger"
)

// Report is the view of a session: its jobs and their totals.
// Amounts keep their Money type, so that templates print them with the
// currency format.
type Report struct {
	// Title of the report, empty for no title.
	Title   string
	Jobs    []Job
	Summary Summary
}

// Job is a row of the jobs table.
type Job struct {
	Ref        string
	Date       string
	JobID      string
	Zip        string
	Type       string
	Customer   string
	Total      jobledger.Money
	Parts      jobledger.Money
	Percentage jobledger.Percent
	Profit     jobledger.Money
	Payment    string
}

// Summary holds the rounded totals.
type Summary struct {
	Jobs     int
	Sales    jobledger.Money
	Parts    jobledger.Money
	Profit   jobledger.Money
	Net      jobledger.Money
	Payments []Payment
}

// Payment is a row of the payment method breakdown.
type Payment struct {
	Method string
	Jobs   int
	Sales  jobledger.Money
	Profit jobledger.Money
}

// cell escapes free text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// NewJob creates the table row of a job.
func NewJob(r jobledger.JobRecord) Job {
	return Job{
		Ref:        r.Ref(),
		Date:       r.Date.String(),
		JobID:      cell(r.JobID),
		Zip:        cell(r.ZipCode),
		Type:       cell(r.JobType),
		Customer:   cell(r.CustomerName),
		Total:      r.TotalAmount,
		Parts:      r.PartsCost,
		Percentage: r.TechnicianPercentage,
		Profit:     r.TechnicianProfit,
		Payment:    cell(r.PaymentMethod),
	}
}

// NewSummary creates the view of s, rounded.
func NewSummary(s jobledger.Summary) Summary {
	r := s.Rounded()
	v := Summary{
		Jobs:   r.JobCount,
		Sales:  r.TotalSales,
		Parts:  r.TotalParts,
		Profit: r.TotalTechnicianProfit,
		Net:    r.Net(),
	}
	for _, p := range r.Payments {
		v.Payments = append(v.Payments, Payment{
			Method: cell(p.Method),
			Jobs:   p.JobCount,
			Sales:  p.Sales,
			Profit: p.TechnicianProfit,
		})
	}
	return v
}

// NewReport creates the view of jobs and their summary.
func NewReport(title string, jobs []jobledger.JobRecord, s jobledger.Summary) *Report {
	r := &Report{
		Title:   title,
		Jobs:    make([]Job, 0, len(jobs)),
		Summary: NewSummary(s),
	}
	for _, j := range jobs {
		r.Jobs = append(r.Jobs, NewJob(j))
	}
	return r
}

// NewSessionReport creates the report of a whole session.
func NewSessionReport(title string, s *jobledger.Session) *Report {
	return NewReport(title, s.Jobs(), s.Summary())
}
