// Copyright 2025 the Labelprep Authors.
// SPDX-License-Identifier: Apache-2.0

package partition

import (
	"fmt"
	"sort"
	"strings"
)

// BlankPolicy decides what happens to input lines that are empty or contain
// only whitespace. Such lines have no group key to partition on.
type BlankPolicy int

const (
	// BlankSkip drops blank lines silently (they are counted, not kept).
	BlankSkip BlankPolicy = iota
	// BlankError fails the run on the first blank line encountered.
	BlankError
)

// Group holds all labels sharing one group key, in sorted order.
type Group struct {
	Key    string
	Labels []string
}

// Result is the outcome of partitioning one label list.
type Result struct {
	Groups       []Group
	SkippedBlank int
}

// GroupNames returns the group keys in the order groups were emitted
// (first appearance within the sorted, deduplicated input).
func (r Result) GroupNames() []string {
	var names []string
	for _, group := range r.Groups {
		names = append(names, group.Key)
	}
	return names
}

// Dedupe returns the distinct lines of in, sorted lexicographically
// (case-sensitive byte order). Exact duplicate lines collapse to one.
func Dedupe(in []string) []string {
	seen := map[string]struct{}{}
	var out []string

	for _, line := range in {
		if _, found := seen[line]; found {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}

	sort.Strings(out)
	return out
}

// SplitLines splits raw label list bytes into lines. A trailing newline does
// not produce an extra empty line; carriage returns are tolerated.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}

	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// GroupKey returns the first whitespace-delimited field of label. A label
// with no whitespace is its own key. A blank label yields the empty string.
func GroupKey(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// CheckGroupKey reports whether key can safely name a file within a single
// directory. Keys carrying path separators, path traversal names, or NUL
// bytes are rejected.
func CheckGroupKey(key string) error {
	switch {
	case key == "." || key == "..":
		return fmt.Errorf("Expected group key to not be a path traversal name, but was '%s'", key)
	case strings.ContainsAny(key, "/\\"):
		return fmt.Errorf("Expected group key to not contain path separators, but was '%s'", key)
	case strings.ContainsRune(key, 0):
		return fmt.Errorf("Expected group key to not contain NUL bytes")
	}
	return nil
}

// Partition dedupes and sorts lines, then groups them by group key.
// Groups come out in order of first appearance within the sorted input;
// labels within a group keep the sorted order of the deduplicated input.
// An unusable group key fails the whole run (no partial result).
func Partition(lines []string, policy BlankPolicy) (Result, error) {
	result := Result{}
	byKey := map[string]int{}

	for i, line := range Dedupe(lines) {
		key := GroupKey(line)

		if key == "" {
			if policy == BlankError {
				return Result{}, fmt.Errorf("Encountered blank label line (line %d of deduplicated input)", i+1)
			}
			result.SkippedBlank++
			continue
		}

		if err := CheckGroupKey(key); err != nil {
			return Result{}, fmt.Errorf("Invalid group key in label '%s': %s", line, err)
		}

		idx, found := byKey[key]
		if !found {
			idx = len(result.Groups)
			byKey[key] = idx
			result.Groups = append(result.Groups, Group{Key: key})
		}
		result.Groups[idx].Labels = append(result.Groups[idx].Labels, line)
	}

	return result, nil
}
