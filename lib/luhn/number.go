// Copyright (C) 2014 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package luhn

import (
	"fmt"
	"strconv"
)

// ChecksumUint renders n in the given base and appends its check digit.
func ChecksumUint(n uint64, base Base) (string, error) {
	if err := base.Check(); err != nil {
		return "", reject("checksum", err)
	}
	return Append(strconv.FormatUint(n, int(base)), base)
}

// ParseUint verifies the check digit of s and returns the value of the
// digits preceding it.
func ParseUint(s string, base Base) (uint64, error) {
	ok, err := base.Validate(s)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, reject("parse", fmt.Errorf("%w: %q", ErrChecksumMismatch, s))
	}
	payload, err := StripChecksum(s)
	if err != nil {
		return 0, err
	}
	if payload == "" {
		return 0, reject("parse", ErrEmptyInput)
	}
	v, err := strconv.ParseUint(payload, int(base), 64)
	if err != nil {
		return 0, reject("parse", err)
	}
	return v, nil
}
