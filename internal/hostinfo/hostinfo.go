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

// Package hostinfo describes the machine a benchmark ran on, so recorded
// timings can be compared across hosts.
package hostinfo

import (
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sys/cpu"
)

// Info is a snapshot of the host.
type Info struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	MaxProcs int
	// Features lists the vector extensions relevant to memmove throughput,
	// which dominates the merge phase.
	Features []string
}

type feature struct {
	name string
	has  bool
}

// Detect reads the host description.
func Detect() Info {
	return Info{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		MaxProcs: runtime.GOMAXPROCS(0),
		Features: features(runtime.GOARCH),
	}
}

func features(arch string) []string {
	var candidates []feature
	switch arch {
	case "amd64", "386":
		candidates = []feature{
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
			{"erms", cpu.X86.HasERMS},
		}
	case "arm64":
		candidates = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}

	var out []string
	for _, f := range candidates {
		if f.has {
			out = append(out, f.name)
		}
	}
	return out
}

// String renders Info on one line, e.g. "linux/amd64 cpus=8 procs=8 [avx2 erms]".
func (i Info) String() string {
	var b strings.Builder
	b.WriteString(i.GOOS)
	b.WriteByte('/')
	b.WriteString(i.GOARCH)
	b.WriteString(" cpus=")
	b.WriteString(strconv.Itoa(i.NumCPU))
	b.WriteString(" procs=")
	b.WriteString(strconv.Itoa(i.MaxProcs))
	b.WriteString(" [")
	b.WriteString(strings.Join(i.Features, " "))
	b.WriteByte(']')
	return b.String()
}

// MarshalLogObject lets Info be logged with zap.Object.
func (i Info) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("os", i.GOOS)
	enc.AddString("arch", i.GOARCH)
	enc.AddInt("cpus", i.NumCPU)
	enc.AddInt("procs", i.MaxProcs)
	return enc.AddArray("features", zapcore.ArrayMarshalerFunc(func(ae zapcore.ArrayEncoder) error {
		for _, f := range i.Features {
			ae.AppendString(f)
		}
		return nil
	}))
}

// Field returns Info as a zap field named "host".
func (i Info) Field() zap.Field {
	return zap.Object("host", i)
}
