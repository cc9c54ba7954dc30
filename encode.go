package jobledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// closureSeparator is the line separating closure texts in a stream.
const closureSeparator = "---"

// EncodeJob writes a single job as a JSON line.
func EncodeJob(w io.Writer, r JobRecord) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("could not encode job %s: %w", r.JobID, err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("could not write job %s: %w", r.JobID, err)
	}
	return nil
}

// EncodeJobs writes jobs in JSONL format.
func EncodeJobs(w io.Writer, jobs []JobRecord) error {
	for _, r := range jobs {
		if err := EncodeJob(w, r); err != nil {
			return err
		}
	}
	return nil
}

// SplitClosures reads closure texts separated by lines holding only "---".
//
// Blocks are returned as read, including blank ones.
func SplitClosures(r io.Reader) ([]string, error) {
	var closures []string
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == closureSeparator {
			closures = append(closures, b.String())
			b.Reset()
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read closures: %w", err)
	}
	if b.Len() > 0 {
		closures = append(closures, b.String())
	}
	return closures, nil
}
