package jobledger

import "github.com/etnz/jobledger/date"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// fixedDay returns a Today function always returning day.
func fixedDay(day string) func() date.Date {
	d := date.MustParse(day)
	return func() date.Date { return d }
}

// testParser returns a parser with the standard defaults and a fixed entry date.
func testParser() *Parser {
	p := NewParser()
	p.Today = fixedDay("2025-10-16")
	return p
}

const janeDoe = "Close $500\nTech part $100\nPay Cash\n90210\njob-4521\nName: Jane Doe\nJob Type: Rekey"
