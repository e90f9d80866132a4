// Copyright (C) 2014 The Syncthing Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package logger

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestParseTraces(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		{"", []string{}},
		{"luhn", []string{"luhn"}},
		{"model, luhn;db", []string{"db", "luhn", "model"}},
		{"luhn luhn", []string{"luhn"}},
		{"luhn,all", []string{"all"}},
	}

	for _, tc := range cases {
		res := parseTraces(tc.in)
		if len(res) == 0 && len(tc.out) == 0 {
			continue
		}
		if !slices.Equal(res, tc.out) {
			t.Errorf("parseTraces(%q) = %v, expected %v", tc.in, res, tc.out)
		}
	}
}

func TestFacilityDebugging(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "f1")

	f0 := l.NewFacility("f0", "foo#0")
	f1 := l.NewFacility("f1", "foo#1")

	if l.ShouldDebug("f0") {
		t.Error("f0 should not be debugging")
	}
	if !l.ShouldDebug("f1") {
		t.Error("f1 should be debugging")
	}

	f0.Debugln("hidden")
	f1.Debugln("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("unexpected debug output from f0: %q", out)
	}
	if !strings.Contains(out, "DEBUG: shown") {
		t.Errorf("missing debug output from f1: %q", out)
	}

	l.SetDebug("f1", false)
	buf.Reset()
	f1.Debugf("%d", 42)
	if buf.Len() != 0 {
		t.Errorf("unexpected output after disabling debug: %q", buf.String())
	}

	if fs := l.Facilities(); fs["f0"] != "foo#0" || fs["f1"] != "foo#1" {
		t.Errorf("unexpected facilities %v", fs)
	}
}

func TestTraceAll(t *testing.T) {
	l := newLogger(&bytes.Buffer{}, "all")
	l.NewFacility("anything", "")
	if !l.ShouldDebug("anything") {
		t.Error("STTRACE=all should enable every facility")
	}
}

func TestHandlers(t *testing.T) {
	l := newLogger(&bytes.Buffer{}, "")

	var debug, info, warn []string
	l.AddHandler(LevelDebug, func(_ LogLevel, msg string) { debug = append(debug, msg) })
	l.AddHandler(LevelInfo, func(_ LogLevel, msg string) { info = append(info, msg) })
	l.AddHandler(LevelWarn, func(_ LogLevel, msg string) { warn = append(warn, msg) })

	l.Debugln("d")
	l.Infof("i%d", 1)
	l.Warnln("w")

	if !slices.Equal(debug, []string{"d", "i1", "w"}) {
		t.Errorf("debug handler got %v", debug)
	}
	if !slices.Equal(info, []string{"i1", "w"}) {
		t.Errorf("info handler got %v", info)
	}
	if !slices.Equal(warn, []string{"w"}) {
		t.Errorf("warn handler got %v", warn)
	}
}

func TestControlStripper(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(controlStripper{&buf}, "")
	l.SetFlags(0)
	l.Infoln("a\x1b[31mb\tc")

	if got := buf.String(); got != "INFO: a [31mb c\n" {
		t.Errorf("unexpected output %q", got)
	}
}
