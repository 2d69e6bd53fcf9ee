/*
Copyright 2011-2025 The msufsort-go Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command msufsort is a minimal driver over the engine: read a file,
// build its suffix array or Burrows-Wheeler transform, write the
// result. It is a thin external collaborator, not part of the
// engine's own contract, so it parses os.Args directly instead of
// pulling in a flag-parsing dependency the engine itself doesn't need.
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	msufsort "github.com/maniscalco/msufsort-go"
)

const (
	_ARG_MODE     = "--mode="
	_ARG_INPUT    = "--input="
	_ARG_OUTPUT   = "--output="
	_ARG_JOBS     = "--jobs="
	_ARG_SENTINEL = "--sentinel="
)

func usage() {
	fmt.Println("msufsort --mode=sa|bwt|invbwt --input=FILE --output=FILE [--jobs=N] [--sentinel=N]")
}

func main() {
	mode := ""
	input := ""
	output := ""
	jobs := runtime.NumCPU()
	sentinel := -1

	for _, arg := range os.Args[1:] {
		switch {
		case strings.HasPrefix(arg, _ARG_MODE):
			mode = arg[len(_ARG_MODE):]
		case strings.HasPrefix(arg, _ARG_INPUT):
			input = arg[len(_ARG_INPUT):]
		case strings.HasPrefix(arg, _ARG_OUTPUT):
			output = arg[len(_ARG_OUTPUT):]
		case strings.HasPrefix(arg, _ARG_JOBS):
			if v, err := strconv.Atoi(arg[len(_ARG_JOBS):]); err == nil {
				jobs = v
			}
		case strings.HasPrefix(arg, _ARG_SENTINEL):
			if v, err := strconv.Atoi(arg[len(_ARG_SENTINEL):]); err == nil {
				sentinel = v
			}
		case arg == "-h", arg == "--help":
			usage()
			os.Exit(0)
		}
	}

	if mode == "" || input == "" || output == "" {
		usage()
		os.Exit(1)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch mode {
	case "sa":
		err = runSuffixArray(data, output, jobs)
	case "bwt":
		err = runForward(data, output, jobs)
	case "invbwt":
		err = runInverse(data, output, jobs, sentinel)
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSuffixArray(data []byte, output string, jobs int) error {
	sa, err := msufsort.MakeSuffixArray(data, jobs)
	if err != nil {
		return err
	}
	buf := make([]byte, 4*len(sa))
	for i, v := range sa {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	return os.WriteFile(output, buf, 0o644)
}

func runForward(data []byte, output string, jobs int) error {
	bwt, err := msufsort.NewBWT(jobs)
	if err != nil {
		return err
	}
	dst := make([]byte, bwt.MaxEncodedLen(len(data)))
	_, _, err = bwt.Forward(data, dst)
	if err != nil {
		return err
	}
	// Trailer: the sentinel row as a little-endian uint32, so invbwt
	// round-trips without a separate side-channel argument.
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], uint32(bwt.SentinelIndex()))
	return os.WriteFile(output, append(dst, trailer[:]...), 0o644)
}

func runInverse(data []byte, output string, jobs, sentinel int) error {
	if sentinel < 0 {
		if len(data) < 4 {
			return fmt.Errorf("msufsort: input too short to carry a sentinel trailer")
		}
		sentinel = int(binary.LittleEndian.Uint32(data[len(data)-4:]))
		data = data[:len(data)-4]
	}
	bwt, err := msufsort.NewBWT(jobs)
	if err != nil {
		return err
	}
	if err := bwt.SetSentinelIndex(sentinel); err != nil {
		return err
	}
	dst := make([]byte, len(data))
	_, _, err = bwt.Inverse(data, dst)
	if err != nil {
		return err
	}
	return os.WriteFile(output, dst, 0o644)
}
