package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func WriteJSON(r *Report, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func ReadJSON(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Report, error) {
	var rpt Report
	if err := json.NewDecoder(r).Decode(&rpt); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &rpt, nil
}
