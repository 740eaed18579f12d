// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package harness

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"sync"
	"time"
)

// Header is the first line of every result log.
var Header = []string{"Timestamp", "Algorithm", "Dataset", "DataSize", "TimeMs", "MemoryMB", "MemoryBytes"}

// Sink receives records as they are measured.
type Sink interface {
	Append(Record) error
}

// ResultLog appends records to a CSV file. The header is written only when
// the file is created; existing logs are extended, never rewritten.
type ResultLog struct {
	mu   sync.Mutex
	f    *os.File
	w    *csv.Writer
	path string
}

var _ Sink = (*ResultLog)(nil)

// OpenResultLog opens path for appending, creating it with a header line if
// it does not exist.
func OpenResultLog(path string) (*ResultLog, error) {
	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking result log: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening result log: %w", err)
	}
	l := &ResultLog{f: f, w: csv.NewWriter(f), path: path}
	if !exists {
		if err := l.write(Header); err != nil {
			f.Close()
			return nil, err
		}
	}
	return l, nil
}

// Path returns the file the log writes to.
func (l *ResultLog) Path() string { return l.path }

// Append writes r as one line and flushes it to the file.
func (l *ResultLog) Append(r Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.write(formatRecord(r))
}

func (l *ResultLog) write(row []string) error {
	if err := l.w.Write(row); err != nil {
		return fmt.Errorf("writing result log: %w", err)
	}
	l.w.Flush()
	if err := l.w.Error(); err != nil {
		return fmt.Errorf("writing result log: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (l *ResultLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

func formatRecord(r Record) []string {
	return []string{
		r.Timestamp.Format(TimestampLayout),
		r.Algorithm,
		r.Dataset,
		strconv.Itoa(r.Size),
		strconv.FormatFloat(r.TimeMs(), 'f', 6, 64),
		strconv.FormatFloat(r.MemoryMB(), 'f', 6, 64),
		strconv.FormatInt(r.MemoryBytes, 10),
	}
}

// ReadRecords parses a result log. The header line is optional. Timestamps
// are read in the local time zone.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	cr.ReuseRecord = true

	var records []Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading result log: %w", err)
		}
		if line == 1 && row[0] == Header[0] {
			continue
		}
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("result log line %d: %w", line, err)
		}
		records = append(records, rec)
	}
}

// ReadRecordsFile reads the result log stored at path.
func ReadRecordsFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening result log: %w", err)
	}
	defer f.Close()
	return ReadRecords(f)
}

func parseRecord(row []string) (Record, error) {
	ts, err := time.ParseInLocation(TimestampLayout, row[0], time.Local)
	if err != nil {
		return Record{}, fmt.Errorf("bad timestamp: %w", err)
	}
	size, err := strconv.Atoi(row[3])
	if err != nil {
		return Record{}, fmt.Errorf("bad data size: %w", err)
	}
	ms, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad time: %w", err)
	}
	mem, err := strconv.ParseInt(row[6], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("bad memory bytes: %w", err)
	}
	return Record{
		Algorithm:   row[1],
		Dataset:     row[2],
		Size:        size,
		Elapsed:     time.Duration(math.Round(ms * float64(time.Millisecond))),
		MemoryBytes: mem,
		Timestamp:   ts,
	}, nil
}

// Buffer is a Sink that keeps records in memory.
type Buffer struct {
	Records []Record
}

// Append implements Sink.
func (b *Buffer) Append(r Record) error {
	b.Records = append(b.Records, r)
	return nil
}
