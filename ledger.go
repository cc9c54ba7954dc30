package jobledger

import (
	"iter"
	"slices"

	"github.com/google/uuid"
)

// Ledger represents the list of jobs of a session.
//
// In a Ledger jobs are kept in insertion order. A Ledger is not safe for
// concurrent use.
type Ledger struct {
	jobs []JobRecord
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{jobs: make([]JobRecord, 0)}
}

// Append appends jobs at the end of the ledger.
//
// The caller is responsible for giving each job a fresh ID.
func (l *Ledger) Append(jobs ...JobRecord) {
	l.jobs = append(l.jobs, jobs...)
}

// Remove removes the job with this ID, and reports whether there was one.
func (l *Ledger) Remove(id uuid.UUID) bool {
	i := slices.IndexFunc(l.jobs, func(r JobRecord) bool { return r.ID == id })
	if i < 0 {
		return false
	}
	l.jobs = slices.Delete(l.jobs, i, i+1)
	return true
}

// Job returns the job with this ID.
func (l *Ledger) Job(id uuid.UUID) (JobRecord, bool) {
	i := slices.IndexFunc(l.jobs, func(r JobRecord) bool { return r.ID == id })
	if i < 0 {
		return JobRecord{}, false
	}
	return l.jobs[i], true
}

// List returns a copy of the jobs in insertion order.
func (l *Ledger) List() []JobRecord { return slices.Clone(l.jobs) }

// All iterates over the jobs in insertion order.
func (l *Ledger) All() iter.Seq[JobRecord] { return slices.Values(l.jobs) }

// Len returns the number of jobs in the ledger.
func (l *Ledger) Len() int { return len(l.jobs) }
