package jobledger

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session owns the ledger of a single user and is the entry point of a UI
// shell: it parses closure texts, assigns IDs, and keeps the jobs.
//
// A Session is not safe for concurrent use.
type Session struct {
	parser *Parser
	ledger *Ledger
	newID  func() uuid.UUID
	log    zerolog.Logger
}

// NewSession creates an empty session parsing closures with p, or with the
// standard defaults if p is nil.
func NewSession(p *Parser) *Session {
	if p == nil {
		p = NewParser()
	}
	return &Session{
		parser: p,
		ledger: NewLedger(),
		newID:  newID,
		log:    zerolog.Nop(),
	}
}

// newID returns time ordered IDs.
func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// WithLogger sets the logger used to trace session changes.
func (s *Session) WithLogger(log zerolog.Logger) *Session {
	s.log = log
	return s
}

// Parser returns the parser used by the session.
func (s *Session) Parser() *Parser { return s.parser }

// Ledger returns the session's ledger.
func (s *Session) Ledger() *Ledger { return s.ledger }

// ParseClosure parses text with the session's defaults. The ledger is left
// untouched.
func (s *Session) ParseClosure(text string) JobRecord { return s.parser.Parse(text) }

// AddJob parses text and appends the resulting job to the ledger.
//
// Empty or blank text is ignored, the returned bool reports whether a job was
// added.
func (s *Session) AddJob(text string) (JobRecord, bool) {
	if strings.TrimSpace(text) == "" {
		s.log.Debug().Msg("ignore empty closure text")
		return JobRecord{}, false
	}
	r := s.parser.Parse(text)
	r.ID = s.newID()
	s.ledger.Append(r)
	s.log.Debug().
		Str("id", r.ID.String()).
		Str("job_id", r.JobID).
		Str("total", r.TotalAmount.String()).
		Str("tech_profit", r.TechnicianProfit.String()).
		Msg("job added")
	return r, true
}

// RemoveJob removes the job with this ID. Unknown IDs are ignored.
func (s *Session) RemoveJob(id uuid.UUID) {
	removed := s.ledger.Remove(id)
	s.log.Debug().Str("id", id.String()).Bool("removed", removed).Msg("remove job")
}

// FindJob returns the job whose ID or Ref is ref.
func (s *Session) FindJob(ref string) (JobRecord, bool) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	if ref == "" {
		return JobRecord{}, false
	}
	if id, err := uuid.Parse(ref); err == nil {
		return s.ledger.Job(id)
	}
	for r := range s.ledger.All() {
		if r.Ref() == ref {
			return r, true
		}
	}
	return JobRecord{}, false
}

// Jobs returns the jobs in insertion order.
func (s *Session) Jobs() []JobRecord { return s.ledger.List() }

// Summary returns the totals of all the jobs in the session.
func (s *Session) Summary() Summary { return Summarize(s.ledger.All()) }
