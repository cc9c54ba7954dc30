package jobledger

import (
	"github.com/etnz/jobledger/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// JobRecord is one job parsed from a closure text.
//
// A JobRecord is never edited once created: TechnicianProfit is computed by
// the parser from the record's own amounts and stored.
type JobRecord struct {
	// ID identifies the record in a Ledger. It is assigned by the caller
	// after parsing and carries no business meaning.
	ID   uuid.UUID
	Date date.Date

	TotalAmount          Money
	PartsCost            Money
	TechnicianPercentage Percent
	PaymentMethod        string

	ZipCode      string
	JobID        string
	CustomerName string
	JobType      string

	TechnicianProfit Money
}

// Ref returns a short reference for the record, the last 8 hex digits of its
// ID, unique enough to be typed in a session.
func (r JobRecord) Ref() string {
	if r.ID == uuid.Nil {
		return ""
	}
	s := r.ID.String()
	return s[len(s)-8:]
}

// Currency returns the currency of the record amounts.
func (r JobRecord) Currency() string { return r.TotalAmount.Currency() }

// MarshalJSON writes the record with its amounts as plain numbers.
func (r JobRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	if r.ID != uuid.Nil {
		w.Append("id", r.ID.String())
	}
	w.Append("date", r.Date)
	w.Optional("currency", r.Currency())
	w.Append("totalAmount", r.TotalAmount.Decimal())
	w.Append("partsCost", r.PartsCost.Decimal())
	w.Append("technicianPercentage", float64(r.TechnicianPercentage))
	w.Append("paymentMethod", r.PaymentMethod)
	w.Append("zipCode", r.ZipCode)
	w.Append("jobId", r.JobID)
	w.Append("customerName", r.CustomerName)
	w.Append("jobType", r.JobType)
	w.Append("technicianProfit", r.TechnicianProfit.Decimal())
	return w.MarshalJSON()
}
