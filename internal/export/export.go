// Package export reads and writes the topic collection as Excel or CSV
// files, for backup and for bulk-loading topics from a sheet.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/revtrack/pkg/models"
)

// Header is the column layout shared by Excel and CSV files.
var Header = []string{"name", "url", "interval_days", "last_reviewed_date", "next_review_date"}

const sheetName = "Sheet1"

// WriteFile writes the topics to path. The extension picks the format:
// .csv writes CSV, anything else writes an Excel workbook.
func WriteFile(topics []models.Topic, path string) error {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return writeCSV(topics, path)
	}
	return writeExcel(topics, path)
}

// ReadFile reads topics from path, choosing the format by extension.
func ReadFile(path string) ([]models.Topic, error) {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return readCSV(path)
	}
	return readExcel(path)
}

func topicRecord(t models.Topic) []string {
	rec := []string{t.Name, t.URL, strconv.Itoa(t.IntervalDays), "", ""}
	if t.LastReviewed != nil {
		rec[3] = t.LastReviewed.String()
	}
	if t.NextReview != nil {
		rec[4] = t.NextReview.String()
	}
	return rec
}

// parseRecord converts one row into a Topic. Short rows are padded so files
// with trailing empty cells trimmed (as Excel does) still parse.
func parseRecord(rec []string, rowNum int) (models.Topic, error) {
	for len(rec) < len(Header) {
		rec = append(rec, "")
	}

	topic := models.Topic{
		Name: models.NormalizeName(rec[0]),
		URL:  strings.TrimSpace(rec[1]),
	}

	if s := strings.TrimSpace(rec[2]); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return models.Topic{}, fmt.Errorf("%w: row %d: invalid interval %q", models.ErrMalformedInput, rowNum, s)
		}
		topic.IntervalDays = n
	}

	if s := strings.TrimSpace(rec[3]); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			return models.Topic{}, fmt.Errorf("row %d: %w", rowNum, err)
		}
		topic.LastReviewed = &d
	}

	if s := strings.TrimSpace(rec[4]); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			return models.Topic{}, fmt.Errorf("row %d: %w", rowNum, err)
		}
		topic.NextReview = &d
	} else if topic.LastReviewed != nil {
		// Derive the next review date when a sheet only carries the last one.
		d := topic.LastReviewed.AddDays(topic.IntervalDays)
		topic.NextReview = &d
	}

	if err := topic.Validate(); err != nil {
		return models.Topic{}, fmt.Errorf("row %d: %w", rowNum, err)
	}

	return topic, nil
}

func writeCSV(topics []models.Topic, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, t := range topics {
		if err := w.Write(topicRecord(t)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()

	return w.Error()
}

func readCSV(path string) ([]models.Topic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrMalformedInput, path, err)
	}

	return parseRecords(records)
}

func writeExcel(topics []models.Topic, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	for col, name := range Header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, t := range topics {
		for col, v := range topicRecord(t) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	return nil
}

func readExcel(path string) ([]models.Topic, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return parseRecords(rows)
}

// parseRecords parses rows into topics, skipping a leading header row and
// blank lines.
func parseRecords(records [][]string) ([]models.Topic, error) {
	topics := make([]models.Topic, 0, len(records))
	for i, rec := range records {
		if i == 0 && isHeader(rec) {
			continue
		}
		if isBlank(rec) {
			continue
		}
		t, err := parseRecord(rec, i+1)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, nil
}

func isHeader(rec []string) bool {
	return len(rec) > 0 && models.NormalizeName(rec[0]) == Header[0]
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
