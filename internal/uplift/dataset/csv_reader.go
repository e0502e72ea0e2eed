package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

type CSVReader struct {
	reader io.Reader
}

func NewCSVReader(reader io.Reader) *CSVReader {
	return &CSVReader{
		reader: reader,
	}
}

// LoadCSV reads a frame from a CSV file on disk.
func LoadCSV(path string, mapping ColumnMapping) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	frame, err := NewCSVReader(f).Read(mapping)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return frame, nil
}

func (cr *CSVReader) Read(mapping ColumnMapping) (*Frame, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(cr.reader)
	csvReader.TrimLeadingSpace = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}

	targetIdx, err := columnIndex(index, mapping.Target)
	if err != nil {
		return nil, err
	}
	treatmentIdx, err := columnIndex(index, mapping.Treatment)
	if err != nil {
		return nil, err
	}

	models := uniq(mapping.Predictions)
	if len(models) == 0 {
		for _, h := range headers {
			if h != mapping.Target && h != mapping.Treatment {
				models = append(models, h)
			}
		}
	}
	if len(models) == 0 {
		return nil, fmt.Errorf("%w: no prediction columns in header", ErrMissingColumn)
	}
	predIdx := make([]int, len(models))
	for i, m := range models {
		if predIdx[i], err = columnIndex(index, m); err != nil {
			return nil, err
		}
	}

	frame := &Frame{
		Predictions: make(map[string][]float64, len(models)),
		Models:      slices.Clone(models),
	}

	for line := 2; ; line++ {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		y, err := parseCell(row, targetIdx, line, mapping.Target)
		if err != nil {
			return nil, err
		}
		t, err := parseCell(row, treatmentIdx, line, mapping.Treatment)
		if err != nil {
			return nil, err
		}
		frame.Target = append(frame.Target, y)
		frame.Treatment = append(frame.Treatment, t)

		for i, m := range models {
			v, err := parseCell(row, predIdx[i], line, m)
			if err != nil {
				return nil, err
			}
			frame.Predictions[m] = append(frame.Predictions[m], v)
		}
	}

	return frame, nil
}

func columnIndex(index map[string]int, name string) (int, error) {
	i, ok := index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q not found in header", ErrMissingColumn, name)
	}
	return i, nil
}

// parseCell accepts numbers as well as true/false flags.
func parseCell(row []string, idx, line int, column string) (float64, error) {
	raw := strings.TrimSpace(row[idx])
	switch strings.ToLower(raw) {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d, column %q: %q", ErrInvalidValue, line, column, raw)
	}
	return v, nil
}

func uniq(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
