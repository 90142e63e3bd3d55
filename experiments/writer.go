package experiments

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Setup struct {
	SweepConfig
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold one experiment's files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(cfg SweepConfig, start, end time.Time) error {
	setup := Setup{
		SweepConfig: cfg,
		StartTime:   start,
		EndTime:     end,
		Duration:    end.Sub(start),
	}

	f, err := os.Create(filepath.Join(w.baseDir, "setup.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WritePoints(points []Point) error {
	f, err := os.Create(filepath.Join(w.baseDir, "sweep.csv"))
	if err != nil {
		return fmt.Errorf("failed to create sweep file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"attackers", "defenders", "attacker_wins", "total_trials", "percent", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write sweep header: %w", err)
	}

	for _, point := range points {
		row := []string{
			strconv.Itoa(point.Attackers),
			strconv.Itoa(point.Defenders),
			strconv.Itoa(point.AttackerWins),
			strconv.Itoa(point.TotalTrials),
			point.ToPercent(),
			point.Metric.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write sweep row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush sweep file: %w", err)
	}
	return nil
}
