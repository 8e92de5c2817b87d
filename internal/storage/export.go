package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// RunCSV is the CSV row layout of a run.
type RunCSV struct {
	ID        int64  `csv:"id"`
	Mode      string `csv:"mode"`
	Score     int    `csv:"score"`
	Cause     string `csv:"cause"`
	Lanes     int    `csv:"lanes"`
	Roads     int    `csv:"roads"`
	Duration  int    `csv:"duration_secs"`
	CreatedAt string `csv:"created_at"`
}

// ToCSV converts a run to its CSV row.
func (r RunRecord) ToCSV() RunCSV {
	created := ""
	if !r.CreatedAt.IsZero() {
		created = r.CreatedAt.UTC().Format(sqliteTime)
	}
	return RunCSV{
		ID:        r.ID,
		Mode:      r.GameID,
		Score:     r.Score,
		Cause:     r.Cause,
		Lanes:     r.Lanes,
		Roads:     r.Roads,
		Duration:  r.Duration,
		CreatedAt: created,
	}
}

// WriteRunsCSV writes runs with a header row.
func WriteRunsCSV(w io.Writer, runs []RunRecord) error {
	records := make([]RunCSV, len(runs))
	for i, r := range runs {
		records[i] = r.ToCSV()
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: writing runs csv: %w", err)
	}
	return nil
}

// ReadRunsCSV parses runs written by WriteRunsCSV.
func ReadRunsCSV(r io.Reader) ([]RunCSV, error) {
	var records []RunCSV
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("storage: reading runs csv: %w", err)
	}
	return records, nil
}
