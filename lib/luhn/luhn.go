// Copyright (C) 2014 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package luhn generates and validates Luhn mod N check digits for digit
// strings in any base between 2 and 36.
//
// Digits are 0-9 followed by a-z, read case insensitively. Generated output
// is always lower case. All functions are safe for concurrent use.
package luhn

import (
	"fmt"
	"strings"
)

// Generate returns the check digit for the digit string s. The rightmost
// digit of s gets weight two, the next one weight one, and so on.
func (b Base) Generate(s string) (rune, error) {
	c, err := b.generate(s)
	if err != nil {
		return 0, reject("generate", err)
	}
	metricGenerated.WithLabelValues(baseLabel(b)).Inc()
	return rune(c), nil
}

// Validate returns whether the last character of s is the correct check
// digit for the characters preceding it. Malformed input is an error, not
// an invalid check digit.
func (b Base) Validate(s string) (bool, error) {
	if err := b.Check(); err != nil {
		return false, reject("validate", err)
	}
	if s == "" {
		return false, reject("validate", ErrEmptyInput)
	}
	sum, err := b.weightedSum(s, 1)
	if err != nil {
		return false, reject("validate", err)
	}
	ok := sum%int(b) == 0
	if !ok {
		l.Debugf("validate: check digit of %q incorrect in %v", s, b)
	}
	metricValidated.WithLabelValues(baseLabel(b), validationResult(ok)).Inc()
	return ok, nil
}

func (b Base) generate(s string) (byte, error) {
	if err := b.Check(); err != nil {
		return 0, err
	}
	if s == "" {
		return 0, ErrEmptyInput
	}
	sum, err := b.weightedSum(s, 2)
	if err != nil {
		return 0, err
	}
	n := int(b)
	return b.Digit((n - sum%n) % n), nil
}

// weightedSum walks s from the right, alternating the weight between
// factor and the other of 1 and 2, and folds each product back into a
// single digit of base b.
func (b Base) weightedSum(s string, factor int) (int, error) {
	n := int(b)
	sum := 0
	for i := len(s) - 1; i >= 0; i-- {
		codepoint, err := b.Codepoint(s[i])
		if err != nil {
			return 0, fmt.Errorf("%w at position %d", err, i)
		}
		addend := factor * codepoint
		if factor == 2 {
			factor = 1
		} else {
			factor = 2
		}
		sum += (addend / n) + (addend % n)
	}
	return sum, nil
}

// Checksum returns the check digit for s in the given base. With
// appendToInput, the result is s in lower case followed by the check digit;
// otherwise it is the check digit alone.
func Checksum(s string, base Base, appendToInput bool) (string, error) {
	c, err := base.Generate(s)
	if err != nil {
		return "", err
	}
	if !appendToInput {
		return string(c), nil
	}
	// Generate accepted s, so it is plain ASCII.
	return strings.ToLower(s) + string(c), nil
}

// Append returns s in lower case with its check digit appended.
func Append(s string, base Base) (string, error) {
	return Checksum(s, base, true)
}

// HasValidChecksum returns whether s, including its trailing check digit,
// carries a correct check digit in the given base.
func HasValidChecksum(s string, base Base) (bool, error) {
	return base.Validate(s)
}

// StripChecksum returns s without its trailing check digit. The remaining
// characters are not validated.
func StripChecksum(s string) (string, error) {
	if s == "" {
		return "", reject("strip", ErrEmptyInput)
	}
	return s[:len(s)-1], nil
}

// ExtractChecksum returns the trailing check digit of s.
func ExtractChecksum(s string) (string, error) {
	if s == "" {
		return "", reject("extract", ErrEmptyInput)
	}
	return s[len(s)-1:], nil
}
