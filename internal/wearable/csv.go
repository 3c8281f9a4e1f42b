package wearable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// #region csv-load

// Expected header for wearable exports. Rows that fail to parse are skipped
// rather than aborting the load, so a partially corrupt export still yields
// usable history.
var csvColumns = []string{
	"date", "sleep_hours", "deep_sleep_pct", "wake_events",
	"resting_hr", "hrv_ms", "steps", "active_minutes", "calories",
}

// LoadCSV reads daily samples from a wearable CSV export.
func LoadCSV(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses samples from r. The first row must match csvColumns.
func ReadCSV(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvColumns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, col := range csvColumns {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected column %q at position %d, want %q", header[i], i, col)
		}
	}

	var samples []Sample
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, skip it.
			continue
		}
		s, err := parseRow(rec)
		if err != nil {
			continue
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func parseRow(rec []string) (Sample, error) {
	date, err := time.Parse("2006-01-02", rec[0])
	if err != nil {
		return Sample{}, fmt.Errorf("parse date: %w", err)
	}
	sleep, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("parse sleep_hours: %w", err)
	}
	deep, err := strconv.ParseFloat(rec[2], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("parse deep_sleep_pct: %w", err)
	}
	wake, err := strconv.Atoi(rec[3])
	if err != nil {
		return Sample{}, fmt.Errorf("parse wake_events: %w", err)
	}
	rhr, err := strconv.ParseFloat(rec[4], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("parse resting_hr: %w", err)
	}
	hrv, err := strconv.ParseFloat(rec[5], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("parse hrv_ms: %w", err)
	}
	steps, err := strconv.Atoi(rec[6])
	if err != nil {
		return Sample{}, fmt.Errorf("parse steps: %w", err)
	}
	active, err := strconv.Atoi(rec[7])
	if err != nil {
		return Sample{}, fmt.Errorf("parse active_minutes: %w", err)
	}
	calories, err := strconv.Atoi(rec[8])
	if err != nil {
		return Sample{}, fmt.Errorf("parse calories: %w", err)
	}

	return Sample{
		Date:          date,
		SleepHours:    sleep,
		DeepSleepPct:  deep,
		WakeEvents:    wake,
		RestingHR:     rhr,
		HRVMs:         hrv,
		Steps:         steps,
		ActiveMinutes: active,
		Calories:      calories,
	}, nil
}

// #endregion csv-load
