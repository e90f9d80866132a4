// Copyright (C) 2014 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package luhn

import "errors"

var (
	ErrInvalidBase      = errors.New("base must be between 2 and 36")
	ErrInvalidDigit     = errors.New("invalid digit")
	ErrEmptyInput       = errors.New("empty input")
	ErrChecksumMismatch = errors.New("check digit incorrect")
)

// rejectReason returns the metric label for an error returned by this
// package.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidBase):
		return "invalid_base"
	case errors.Is(err, ErrInvalidDigit):
		return "invalid_digit"
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrChecksumMismatch):
		return "checksum_mismatch"
	default:
		return "other"
	}
}
