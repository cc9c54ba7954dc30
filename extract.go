package jobledger

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names a value that can be extracted from closure text.
type Field string

const (
	FieldTotalAmount   Field = "totalAmount"
	FieldPartsCost     Field = "partsCost"
	FieldPaymentMethod Field = "paymentMethod"
	FieldZipCode       Field = "zipCode"
	FieldJobID         Field = "jobId"
	FieldCustomerName  Field = "customerName"
	FieldJobType       Field = "jobType"
)

// rule extracts a single field from text. Rules are independent from one
// another: the first match of the pattern wins, no match means absent.
type rule struct {
	pattern *regexp.Regexp
	// group is the submatch holding the value, 0 for the whole match.
	group int
	// normalize is applied to the captured value, if set.
	normalize func(string) string
}

func (r rule) extract(text string) (string, bool) {
	m := r.pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := m[r.group]
	if r.normalize != nil {
		v = r.normalize(v)
	}
	return v, true
}

// trimLine drops trailing blanks and the carriage return of CRLF text.
func trimLine(s string) string { return strings.TrimRight(s, " \t\r") }

// rules maps every field to its extraction rule.
//
// The zip code rule is not anchored to any label: the first standalone five
// digit number in the text is taken, even if it is an amount or a job number.
var rules = map[Field]rule{
	FieldTotalAmount:   {pattern: regexp.MustCompile(`(?i)Close\s+\$?(\d+)`), group: 1},
	FieldPartsCost:     {pattern: regexp.MustCompile(`(?i)Tech part\s+\$?(\d+)`), group: 1},
	FieldPaymentMethod: {pattern: regexp.MustCompile(`(?i)Pay\s+(\w+)`), group: 1, normalize: strings.ToLower},
	FieldZipCode:       {pattern: regexp.MustCompile(`\b\d{5}\b`)},
	FieldJobID:         {pattern: regexp.MustCompile(`(?i)job-(\d+)`), group: 1},
	FieldCustomerName:  {pattern: regexp.MustCompile(`Name:\s+([^\n]+)`), group: 1, normalize: trimLine},
	FieldJobType:       {pattern: regexp.MustCompile(`Job Type:\s+([^\n]+)`), group: 1, normalize: trimLine},
}

// fields is the display order of the extracted fields.
var fields = []Field{
	FieldJobID,
	FieldZipCode,
	FieldJobType,
	FieldCustomerName,
	FieldTotalAmount,
	FieldPartsCost,
	FieldPaymentMethod,
}

// Fields returns all the fields that can be extracted from closure text.
func Fields() []Field { return append([]Field(nil), fields...) }

// Extract returns the raw value of field found in text, and whether it was
// found at all. Unknown fields are never found.
func Extract(field Field, text string) (string, bool) {
	r, ok := rules[field]
	if !ok {
		return "", false
	}
	return r.extract(text)
}

// ExtractAmount returns the integer amount of a monetary field (totalAmount or
// partsCost) found in text.
func ExtractAmount(field Field, text string) (decimal.Decimal, bool) {
	v, ok := Extract(field, text)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		// not a number, e.g. ExtractAmount(FieldJobType, ...)
		return decimal.Zero, false
	}
	return d, true
}

func ExtractTotalAmount(text string) (decimal.Decimal, bool) {
	return ExtractAmount(FieldTotalAmount, text)
}

func ExtractPartsCost(text string) (decimal.Decimal, bool) {
	return ExtractAmount(FieldPartsCost, text)
}

func ExtractPaymentMethod(text string) (string, bool) { return Extract(FieldPaymentMethod, text) }
func ExtractZipCode(text string) (string, bool)       { return Extract(FieldZipCode, text) }
func ExtractJobID(text string) (string, bool)         { return Extract(FieldJobID, text) }
func ExtractCustomerName(text string) (string, bool)  { return Extract(FieldCustomerName, text) }
func ExtractJobType(text string) (string, bool)       { return Extract(FieldJobType, text) }
