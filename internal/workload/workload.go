// Package workload reads process lists from YAML or CSV files.
package workload

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cpu-scheduler-visualizer/internal/requests"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

type document struct {
	Processes []requests.Job `yaml:"processes"`
}

// LoadFile picks the decoder from the file extension.
func LoadFile(path string) ([]requests.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}

	var jobs []requests.Job
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		jobs, err = ParseYAML(data)
	case ".csv":
		jobs, err = ParseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return jobs, nil
}

func ParseYAML(data []byte) ([]requests.Job, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return doc.Processes, nil
}

// ParseCSV reads arrival,burst[,priority[,id]] rows. A first row whose
// leading cell is "arrival" is treated as a header.
func ParseCSV(r io.Reader) ([]requests.Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	jobs := make([]requests.Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "arrival") {
			continue
		}
		if len(row) < 2 || len(row) > 4 {
			return nil, fmt.Errorf("row %d: expected 2 to 4 columns, got %d", i+1, len(row))
		}

		job, err := requests.ParseJob(strings.Join(row[:min(len(row), 3)], ","))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if len(row) == 4 {
			job.ProcessId = strings.TrimSpace(row[3])
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
