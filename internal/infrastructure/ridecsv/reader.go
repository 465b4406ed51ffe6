// Package ridecsv reads ride exports in the id,title,dist,date,max,avg,net,
// gross,elev,polyline column layout.
package ridecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tile-explorer/internal/domain"
)

// Columns is the header written by the ride exporter.
var Columns = []string{"id", "title", "dist", "date", "max", "avg", "net", "gross", "elev", "polyline"}

// ErrMissingColumn - в заголовке нет обязательной колонки
var ErrMissingColumn = errors.New("missing column")

// RowError describes a row that could not be parsed.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Read parses all rows. Broken rows are reported in the second return value
// and do not stop the read; a broken header does.
func Read(r io.Reader) ([]*domain.Ride, []*RowError, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range []string{"id", "date", "polyline"} {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var (
		rides   []*domain.Ride
		rowErrs []*RowError
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			rowErrs = append(rowErrs, &RowError{Line: line, Err: err})
			continue
		}
		line, _ := reader.FieldPos(0)

		ride, err := parseRow(record, cols)
		if err != nil {
			rowErrs = append(rowErrs, &RowError{Line: line, Err: err})
			continue
		}
		rides = append(rides, ride)
	}

	return rides, rowErrs, nil
}

func parseRow(record []string, cols map[string]int) (*domain.Ride, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	id, err := strconv.ParseInt(field("id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id: %w", err)
	}

	date, err := time.Parse(time.RFC3339, field("date"))
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	ride := &domain.Ride{
		ID:        id,
		Title:     field("title"),
		StartDate: date,
		Polyline:  field("polyline"),
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"dist", &ride.Distance},
		{"max", &ride.MaxSpeed},
		{"avg", &ride.AverageSpeed},
		{"elev", &ride.ElevationGain},
	}
	for _, f := range floats {
		if *f.dst, err = parseFloat(field(f.name)); err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	if ride.MovingTime, err = parseSeconds(field("net")); err != nil {
		return nil, fmt.Errorf("net: %w", err)
	}
	if ride.ElapsedTime, err = parseSeconds(field("gross")); err != nil {
		return nil, fmt.Errorf("gross: %w", err)
	}

	return ride, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseSeconds accepts "3600" as well as "3600.0".
func parseSeconds(s string) (int, error) {
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
