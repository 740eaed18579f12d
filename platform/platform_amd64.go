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

//go:build amd64

package platform

import "golang.org/x/sys/cpu"

func detectCPU() (VectorLevel, []string) {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	add(cpu.X86.HasSSE2, "sse2")
	add(cpu.X86.HasSSE42, "sse4.2")
	add(cpu.X86.HasPOPCNT, "popcnt")
	add(cpu.X86.HasBMI2, "bmi2")
	add(cpu.X86.HasAVX, "avx")
	add(cpu.X86.HasAVX2, "avx2")
	add(cpu.X86.HasFMA, "fma")
	add(cpu.X86.HasAVX512F, "avx512f")
	add(cpu.X86.HasAVX512BW, "avx512bw")

	switch {
	case cpu.X86.HasAVX512F:
		return LevelAVX512, features
	case cpu.X86.HasAVX2:
		return LevelAVX2, features
	case cpu.X86.HasSSE2:
		return LevelSSE2, features
	default:
		return LevelScalar, features
	}
}
