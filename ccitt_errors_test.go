// Copyright 2026 肖其顿 (XIAO QI DUN)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ccitt

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	vectors := []struct {
		kind ErrorKind
		want error
	}{
		{KindPrematureEOF, ErrPrematureEOF},
		{KindInvalidCodeWord, ErrInvalidCodeWord},
		{KindRowLengthMismatch, ErrRowLength},
		{KindUnsupportedExtension, ErrUnsupportedExtension},
		{KindEndOfBlock, ErrEndOfBlock},
	}
	for _, v := range vectors {
		err := &Error{Kind: v.kind, Op: "decode2D", Unit: "strip", Index: 1, Row: 7}
		if !errors.Is(err, v.want) {
			t.Errorf("kind %d does not match %v", v.kind, v.want)
		}
		if !strings.Contains(err.Error(), "line 7 of strip 1") {
			t.Errorf("kind %d: message %q lacks position", v.kind, err.Error())
		}
	}
}

func TestRowLengthMessage(t *testing.T) {
	short := &Error{Kind: KindRowLengthMismatch, Op: "decode1D", Unit: "strip", Got: 10, Want: 1728}
	if !strings.Contains(short.Error(), "premature EOL") {
		t.Errorf("short row message = %q", short.Error())
	}
	long := &Error{Kind: KindRowLengthMismatch, Op: "decode1D", Unit: "tile", Got: 1800, Want: 1728}
	if !strings.Contains(long.Error(), "line length mismatch") {
		t.Errorf("long row message = %q", long.Error())
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(log.New(&buf, "", 0))
	data := bitString(t, MSB, "0000 0000 0001 0000 0000 1 1")
	dec, err := NewDecoder(Config{Scheme: SchemeGroup3, Width: 8, Order: MSB, Sink: sink})
	if err != nil {
		t.Fatal(err)
	}
	if err := dec.DecodeStrip(3, data, make([]byte, 2)); !errors.Is(err, ErrPrematureEOF) {
		t.Fatalf("DecodeStrip error = %v, want ErrPrematureEOF", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d log lines:\n%s", len(lines), buf.String())
	}
	for i, prefix := range []string{"[warning] ", "[warning] ", "[failure] "} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
	if !strings.Contains(lines[2], "strip 3") {
		t.Errorf("failure line %q lacks strip index", lines[2])
	}
	if NewLogSink(nil).Logger != log.Default() {
		t.Error("NewLogSink(nil) does not use the standard logger")
	}
}
