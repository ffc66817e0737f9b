package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/multierr"

	"figma-px/internal/convert"
	"figma-px/internal/format"
	"figma-px/internal/model"
)

var csvHeaders = []string{
	"date",
	"time",
	"conversion_id",
	"mode",
	"metric",
	"font_size_px",
	"relative_percent",
	"result_px",
}

// WriteCSV writes conversions to a CSV file (semicolon-separated), writing
// the header first if the file is missing or empty, and appending otherwise.
func WriteCSV(path string, conversions []model.Conversion) (err error) {
	exists := hasContent(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if !exists {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for _, c := range conversions {
		row := []string{
			c.Timestamp.Format("02.01.2006"),
			c.Timestamp.Format("15:04:05"),
			c.ID,
			c.Mode,
			c.Metric.String(),
			format.Number(c.BaseSizePx),
			format.Number(c.Percent),
			c.Value,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// ReadCSV reads conversions back from a file written by WriteCSV. Timestamps
// are interpreted in local time.
func ReadCSV(path string) ([]model.Conversion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = len(csvHeaders)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var conversions []model.Conversion
	for i, rec := range records {
		if i == 0 && rec[0] == csvHeaders[0] {
			continue
		}
		c, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", i+1, err)
		}
		conversions = append(conversions, c)
	}
	return conversions, nil
}

func parseRow(rec []string) (model.Conversion, error) {
	ts, err := time.ParseInLocation("02.01.2006 15:04:05", rec[0]+" "+rec[1], time.Local)
	if err != nil {
		return model.Conversion{}, fmt.Errorf("timestamp: %w", err)
	}
	metric, err := convert.ParseMetric(rec[4])
	if err != nil {
		return model.Conversion{}, err
	}
	size, err := strconv.ParseFloat(rec[5], 64)
	if err != nil {
		return model.Conversion{}, fmt.Errorf("font size: %w", err)
	}
	percent, err := strconv.ParseFloat(rec[6], 64)
	if err != nil {
		return model.Conversion{}, fmt.Errorf("percent: %w", err)
	}
	return model.Conversion{
		ID:         rec[2],
		Timestamp:  ts,
		Mode:       rec[3],
		Metric:     metric,
		BaseSizePx: size,
		Percent:    percent,
		Value:      rec[7],
	}, nil
}
