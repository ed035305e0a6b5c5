package analysis

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes records (a slice of csv-tagged structs) with a header row.
func WriteCSV(w io.Writer, records any) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
