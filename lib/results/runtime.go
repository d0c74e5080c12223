package results

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jaewan01/hypersweep/lib/common"
	"github.com/jaewan01/hypersweep/lib/errors"
)

// RuntimeEntry is one line of the runtime log: when a measurement ran,
// what it measured, and how long the computation took.
type RuntimeEntry struct {
	Timestamp time.Time
	Dataset   string
	Measure   string
	Elapsed   time.Duration
}

func (e RuntimeEntry) String() string {
	return fmt.Sprintf("%s %s %s %s",
		e.Timestamp.UTC().Format(time.RFC3339), e.Dataset, e.Measure, common.FormatSeconds(e.Elapsed))
}

// AppendRuntime appends an entry to <outputDirectory>/runtime.log.
func AppendRuntime(outputDirectory string, e RuntimeEntry) error {
	if err := os.MkdirAll(outputDirectory, 0o755); err != nil {
		return errors.Wrap(err, "could not create output directory %s", outputDirectory)
	}
	path := filepath.Join(outputDirectory, RuntimeLogName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "could not open runtime log %s", path)
	}
	defer func() {
		_ = f.Close()
	}()
	if _, err := fmt.Fprintln(f, e.String()); err != nil {
		return errors.Wrap(err, "could not append to runtime log %s", path)
	}
	return nil
}

// ReadRuntimes parses the runtime log.  A missing log is an empty result,
// not an error.
func ReadRuntimes(outputDirectory string) ([]RuntimeEntry, error) {
	path := filepath.Join(outputDirectory, RuntimeLogName)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not open runtime log %s", path)
	}
	defer func() {
		_ = f.Close()
	}()
	var entries []RuntimeEntry
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		entry, err := parseRuntimeEntry(text)
		if err != nil {
			return nil, errors.Wrap(err, "invalid runtime log entry at %s:%d", path, line)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read runtime log %s", path)
	}
	return entries, nil
}

func parseRuntimeEntry(text string) (RuntimeEntry, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return RuntimeEntry{}, errors.New("expected 4 fields, got %d", len(fields))
	}
	timestamp, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return RuntimeEntry{}, errors.Wrap(err, "invalid timestamp %q", fields[0])
	}
	seconds, err := strconv.ParseFloat(strings.TrimSuffix(fields[3], "s"), 64)
	if err != nil {
		return RuntimeEntry{}, errors.Wrap(err, "invalid duration %q", fields[3])
	}
	return RuntimeEntry{
		Timestamp: timestamp,
		Dataset:   fields[1],
		Measure:   fields[2],
		Elapsed:   time.Duration(seconds * float64(time.Second)),
	}, nil
}
