// Package jobledger turns free-text job closure notes into job records,
// computes the technician profit of each job, and keeps a ledger of jobs with
// its running totals.
//
// The core functionalities include:
//   - Field extraction: independent pattern rules reading the closed amount,
//     the technician parts, the payment method, the zip code, the job number,
//     the customer name and the job type out of a closure text.
//   - Closure parsing: a JobRecord with defaults for every missing field,
//     and its technician profit computed once.
//   - Ledger: the ordered jobs of a session, with removal by ID.
//   - Summary: job count, sales, parts and technician profit totals.
//
// A Session ties them together for a UI shell such as the `jl` command-line
// tool. Nothing is persisted: a session lives in memory only.
package jobledger
