// Copyright (C) 2014 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package luhn

import "fmt"

// A Base is the radix of a digit string. Digits are taken from alphabet,
// case insensitively, so a Base of N uses the first N characters of it.
type Base int

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const (
	MinBase Base = 2
	MaxBase Base = Base(len(alphabet))
)

const (
	Base2  Base = 2
	Base10 Base = 10
	Base16 Base = 16
	Base32 Base = 32
	Base36 Base = 36
)

// Check returns ErrInvalidBase unless b is between MinBase and MaxBase.
func (b Base) Check() error {
	if b < MinBase || b > MaxBase {
		return fmt.Errorf("%w: %d", ErrInvalidBase, int(b))
	}
	return nil
}

// Codepoint returns the value of the digit c in base b. Characters outside
// the alphabet, and digits not smaller than b, are an ErrInvalidDigit.
func (b Base) Codepoint(c byte) (int, error) {
	v := codepoint36(c)
	if v == -1 || v >= int(b) {
		return 0, fmt.Errorf("%w: %q not valid in base %d", ErrInvalidDigit, c, int(b))
	}
	return v, nil
}

// Digit returns the lower case character for the value v, which must be in
// the range [0, b).
func (b Base) Digit(v int) byte {
	if v < 0 || v >= int(b) {
		panic("bug: digit value out of range")
	}
	return alphabet[v]
}

func (b Base) String() string {
	return fmt.Sprintf("base%d", int(b))
}

func codepoint36(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}
