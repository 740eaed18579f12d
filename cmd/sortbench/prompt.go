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

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errNoAnswer = errors.New("no answer on input")

// prompter asks questions on out and reads answers line by line from in.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err == io.EOF {
		return "", errNoAnswer
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// runCount asks for a positive number of runs until it gets one.
func (p *prompter) runCount() (int, error) {
	for {
		fmt.Fprint(p.out, "How many runs? ")
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n > 0 {
			return n, nil
		}
		fmt.Fprintf(p.out, "Please enter a positive whole number, got %q.\n", line)
	}
}

// yesNo asks question until it gets y/yes or n/no.
func (p *prompter) yesNo(question string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s (y/n) ", question)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
