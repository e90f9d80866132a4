// Copyright (C) 2023 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package luhn

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "luhnmodn",
		Subsystem: "luhn",
		Name:      "generated_total",
		Help:      "Total number of check digits generated",
	}, []string{"base"})
	metricValidated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "luhnmodn",
		Subsystem: "luhn",
		Name:      "validated_total",
		Help:      "Total number of check digits validated, by result",
	}, []string{"base", "result"})
	metricRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "luhnmodn",
		Subsystem: "luhn",
		Name:      "rejected_total",
		Help:      "Total number of operations rejected due to invalid input",
	}, []string{"reason"})
)

func init() {
	// Register the fixed label sets, so that counters are present even
	// when zero.
	for _, reason := range []string{"invalid_base", "invalid_digit", "empty_input", "checksum_mismatch"} {
		metricRejected.WithLabelValues(reason)
	}
}

func baseLabel(b Base) string {
	return strconv.Itoa(int(b))
}

func validationResult(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}

// reject counts and logs a failed operation and returns err unchanged.
func reject(op string, err error) error {
	metricRejected.WithLabelValues(rejectReason(err)).Inc()
	l.Debugf("%s: %v", op, err)
	return err
}
