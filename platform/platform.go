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

// Package platform describes the machine a benchmark runs on, so that result
// logs from different hosts can be told apart.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// VectorLevel is the widest SIMD instruction set the CPU reports.
// None of the sorts use SIMD; the level is recorded because it tracks the
// CPU generation, which dominates sort throughput.
type VectorLevel int

const (
	// LevelScalar indicates no SIMD support was detected.
	LevelScalar VectorLevel = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline).
	LevelSSE2

	// LevelAVX2 indicates AVX2 (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 foundation (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit).
	LevelNEON

	// LevelSVE indicates ARM SVE (scalable).
	LevelSVE
)

// String returns a human-readable name for the level.
func (l VectorLevel) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Host is a snapshot of the machine and Go runtime.
type Host struct {
	OS         string
	Arch       string
	NumCPU     int
	GOMAXPROCS int
	GoVersion  string
	Level      VectorLevel

	// Features lists notable CPU features in detection order.
	Features []string
}

// Detect inspects the current machine.
func Detect() Host {
	level, features := detectCPU()
	return Host{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		GoVersion:  runtime.Version(),
		Level:      level,
		Features:   features,
	}
}

// String renders the host on one line.
func (h Host) String() string {
	s := fmt.Sprintf("%s/%s cpus=%d gomaxprocs=%d go=%s simd=%s",
		h.OS, h.Arch, h.NumCPU, h.GOMAXPROCS, h.GoVersion, h.Level)
	if len(h.Features) > 0 {
		s += " features=" + strings.Join(h.Features, ",")
	}
	return s
}

// EnvBool reports whether the environment variable name is set to a true
// value. Any non-empty value that does not parse as a bool counts as true.
func EnvBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
