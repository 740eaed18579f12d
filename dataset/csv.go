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

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ValuesPerLine is the number of values WriteCSV puts on one line.
const ValuesPerLine = 10_000

// maxLineBytes bounds a single input line. A full line of 32-bit values is
// well under 128KiB; foreign files may use much longer lines.
const maxLineBytes = 64 << 20

// LoadStats describes what ReadCSV accepted and dropped.
type LoadStats struct {
	Lines   int
	Values  int
	Skipped int
}

// WriteCSV writes values as comma separated text, ValuesPerLine per line.
func WriteCSV(w io.Writer, values []int32) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16)
	for start := 0; start < len(values); start += ValuesPerLine {
		end := min(start+ValuesPerLine, len(values))
		for i, v := range values[start:end] {
			if i > 0 {
				bw.WriteByte(',')
			}
			buf = strconv.AppendInt(buf[:0], int64(v), 10)
			bw.Write(buf)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes values to path with WriteCSV, replacing any existing file.
func WriteFile(path string, values []int32) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing dataset file: %w", cerr)
		}
	}()
	if err := WriteCSV(f, values); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadCSV parses comma separated 32-bit integers. Blank lines, empty fields
// and fields that do not parse are skipped; only read errors are returned.
func ReadCSV(r io.Reader) ([]int32, LoadStats, error) {
	var (
		stats  LoadStats
		values []int32
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<20), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		stats.Lines++
		for field := range strings.SplitSeq(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseInt(field, 10, 32)
			if err != nil {
				stats.Skipped++
				continue
			}
			values = append(values, int32(v))
		}
	}
	if err := sc.Err(); err != nil {
		return values, stats, fmt.Errorf("reading dataset: %w", err)
	}
	stats.Values = len(values)
	return values, stats, nil
}
