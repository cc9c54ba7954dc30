package jobledger

import (
	"github.com/etnz/jobledger/date"
	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod is the payment method of a job whose closure text does
// not say how it was paid.
const DefaultPaymentMethod = "cc"

// Parser turns closure text into JobRecords.
//
// Its fields are the defaults of a record, they are used as is, the text never
// overrides Percentage.
type Parser struct {
	Percentage    Percent
	PaymentMethod string
	Currency      string
	// Today returns the entry date of records, date.Today if nil.
	Today func() date.Date
}

// NewParser returns a Parser with the standard defaults.
func NewParser() *Parser {
	return &Parser{
		Percentage:    DefaultTechnicianPercentage,
		PaymentMethod: DefaultPaymentMethod,
		Currency:      DefaultCurrency,
	}
}

var defaultParser = NewParser()

// ParseClosure parses text with the standard defaults.
//
// See Parser.Parse.
func ParseClosure(text string) JobRecord { return defaultParser.Parse(text) }

// setters assign the extracted value of a field to a record.
var setters = map[Field]func(p *Parser, r *JobRecord, v string){
	FieldTotalAmount: func(p *Parser, r *JobRecord, v string) {
		r.TotalAmount = p.money(v)
	},
	FieldPartsCost: func(p *Parser, r *JobRecord, v string) {
		r.PartsCost = p.money(v)
	},
	FieldPaymentMethod: func(_ *Parser, r *JobRecord, v string) { r.PaymentMethod = v },
	FieldZipCode:       func(_ *Parser, r *JobRecord, v string) { r.ZipCode = v },
	FieldJobID:         func(_ *Parser, r *JobRecord, v string) { r.JobID = v },
	FieldCustomerName:  func(_ *Parser, r *JobRecord, v string) { r.CustomerName = v },
	FieldJobType:       func(_ *Parser, r *JobRecord, v string) { r.JobType = v },
}

func (p *Parser) money(v string) Money {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return M(0, p.Currency)
	}
	return M(d, p.Currency)
}

func (p *Parser) today() date.Date {
	if p.Today == nil {
		return date.Today()
	}
	return p.Today()
}

// Parse returns the JobRecord described by text.
//
// Parse never fails: every field that cannot be found in text keeps its
// default value, so an empty text gives a record with zero amounts. The
// returned record has no ID.
func (p *Parser) Parse(text string) JobRecord {
	r := JobRecord{
		Date:                 p.today(),
		TotalAmount:          M(0, p.Currency),
		PartsCost:            M(0, p.Currency),
		TechnicianPercentage: p.Percentage,
		PaymentMethod:        p.PaymentMethod,
	}
	for _, f := range fields {
		if v, ok := Extract(f, text); ok {
			setters[f](p, &r, v)
		}
	}
	r.TechnicianProfit = TechnicianProfit(r.TotalAmount, r.PartsCost, r.TechnicianPercentage)
	return r
}
