package main

import (
	"bytes"
	"testing"
)

func TestUseColor(t *testing.T) {
	buf := &bytes.Buffer{}

	if !useColor("always", buf) {
		t.Error("always mode must colorize any writer")
	}
	if useColor("never", buf) {
		t.Error("never mode must not colorize")
	}
	// auto probes the report writer itself; a buffer is not a terminal
	if useColor("auto", buf) {
		t.Error("auto mode must not colorize a non-file writer")
	}
}
