package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ReadColumn reads the CSV file at path and returns the numeric values of the
// named column. The first record is the header.
func ReadColumn(path, column string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer file.Close()

	values, err := parseColumn(file, column)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return values, nil
}

func parseColumn(r io.Reader, column string) ([]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header row")
		}
		return nil, err
	}

	idx := -1
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found in header %v", column, header)
	}

	var values []float64
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if idx >= len(record) {
			return nil, fmt.Errorf("line %d: column %q missing", line, column)
		}
		raw := strings.TrimSpace(record[idx])
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: column %q: %w", line, column, err)
		}
		if math.IsNaN(v) {
			continue
		}
		values = append(values, v)
	}
	return values, nil
}
