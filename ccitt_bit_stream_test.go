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
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitStreamOrder(t *testing.T) {
	want := []uint32{1, 0, 1, 1, 0, 0, 1, 0, 0, 1, 1, 1}
	for _, order := range []Order{MSB, LSB} {
		b := NewBitStream(bitString(t, order, "1011 0010 0111"), order)
		var got []uint32
		for range want {
			if !b.Ensure(1) {
				t.Fatalf("order %v: Ensure(1) failed after %d bits", order, len(got))
			}
			got = append(got, b.Peek(1))
			b.Consume(1)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("order %v: bits mismatch (-want +got):\n%s", order, diff)
		}
	}
}

func TestBitStreamEnsurePadding(t *testing.T) {
	b := NewBitStream([]byte{0xff}, MSB)
	if !b.Ensure(8) {
		t.Fatal("Ensure(8) failed on a full byte")
	}
	b.Consume(3)
	if !b.Ensure(12) {
		t.Fatal("Ensure(12) failed with 5 bits left")
	}
	if got := b.Available(); got != 12 {
		t.Errorf("Available() = %d, want 12", got)
	}
	if got := b.Peek(12); got != 0x1f {
		t.Errorf("Peek(12) = %#x, want 0x1f", got)
	}
	b.Consume(12)
	if b.Ensure(1) {
		t.Error("Ensure(1) succeeded on an exhausted stream")
	}
	if NewBitStream(nil, LSB).Ensure(1) {
		t.Error("Ensure(1) succeeded on an empty stream")
	}
}

func TestBitStreamAlign(t *testing.T) {
	b := NewBitStream([]byte{0x00, 0x00, 0x81, 0x00}, MSB)
	b.Ensure(3)
	b.Consume(3)
	b.Align(8)
	if got := streamPos(b); got != 8 {
		t.Fatalf("after Align(8) position = %d, want 8", got)
	}
	b.Align(8)
	if got := streamPos(b); got != 8 {
		t.Fatalf("aligned Align(8) moved to %d", got)
	}
	b.Align(16)
	if got := streamPos(b); got != 16 {
		t.Fatalf("after Align(16) position = %d, want 16", got)
	}
	if !b.Ensure(8) {
		t.Fatal("Ensure(8) failed")
	}
	if got := b.Peek(8); got != 0x81 {
		t.Errorf("Peek(8) = %#x, want 0x81", got)
	}
}

func TestBitWriterPacking(t *testing.T) {
	for _, order := range []Order{MSB, LSB} {
		w := NewBitWriter(order)
		w.PutBits(0x5, 3)
		w.PutBits(eolCode, eolLength)
		if w.Aligned() {
			t.Errorf("order %v: writer aligned after 15 bits", order)
		}
		if got := w.FreeBits(); got != 1 {
			t.Errorf("order %v: FreeBits() = %d, want 1", order, got)
		}
		w.Flush()
		want := bitString(t, order, "101 0000 0000 0001")
		if diff := cmp.Diff(want, w.Take()); diff != "" {
			t.Errorf("order %v: bytes mismatch (-want +got):\n%s", order, diff)
		}
		if w.Len() != 0 {
			t.Errorf("order %v: Len() = %d after Take", order, w.Len())
		}
	}
}

func TestBitWriterStreamRoundTrip(t *testing.T) {
	type code struct {
		value  uint32
		length int
	}
	rng := rand.New(rand.NewSource(7))
	var codes []code
	for i := 0; i < 500; i++ {
		n := 1 + rng.Intn(16)
		codes = append(codes, code{uint32(rng.Intn(1 << uint(n))), n})
	}
	for _, order := range []Order{MSB, LSB} {
		w := NewBitWriter(order)
		for _, c := range codes {
			w.PutBits(c.value, c.length)
		}
		w.Flush()
		b := NewBitStream(w.Bytes(), order)
		for i, c := range codes {
			if !b.Ensure(c.length) {
				t.Fatalf("order %v: code %d: premature end of stream", order, i)
			}
			if got := reverseCode(b.Peek(c.length), c.length); got != c.value {
				t.Fatalf("order %v: code %d = %#x, want %#x", order, i, got, c.value)
			}
			b.Consume(c.length)
		}
	}
}
