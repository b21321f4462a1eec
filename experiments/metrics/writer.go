package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the output files.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	header := []string{"id", "starter", "winner", "moves", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Starter),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Moves),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteRates(rates []Rate) error {
	path := filepath.Join(w.baseDir, "rates.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create rates file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write([]string{"games", "p1", "p2", "draw"})
	if err != nil {
		return fmt.Errorf("failed to write rates header: %w", err)
	}
	for _, rate := range rates {
		row := []string{
			strconv.Itoa(rate.Games),
			strconv.FormatFloat(rate.P1, 'f', 4, 64),
			strconv.FormatFloat(rate.P2, 'f', 4, 64),
			strconv.FormatFloat(rate.Draw, 'f', 4, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write rate row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush rates: %w", err)
	}
	return nil
}
