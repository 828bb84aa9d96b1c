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

// lookup 以码流顺序写入码字后查表
// 入参: table 解码表, tableBits 索引位宽, c 码字
// 返回: faxEntry 表项
func lookup(t *testing.T, table []faxEntry, tableBits int, c faxCode) faxEntry {
	t.Helper()
	w := NewBitWriter(MSB)
	w.PutBits(c.code, c.length)
	w.PutBits(0x3ff, 10)
	w.Flush()
	b := NewBitStream(w.Bytes(), MSB)
	if !b.Ensure(tableBits) {
		t.Fatalf("Ensure(%d) failed", tableBits)
	}
	return table[b.Peek(tableBits)]
}

func TestRunTables(t *testing.T) {
	vectors := []struct {
		name   string
		codes  []faxCode
		table  []faxEntry
		bits   int
		term   uint8
		makeUp uint8
	}{
		{"white", whiteCodes[:], whiteTable[:], whiteTableBits, stateTermW, stateMakeUpW},
		{"black", blackCodes[:], blackTable[:], blackTableBits, stateTermB, stateMakeUpB},
	}
	for _, v := range vectors {
		if len(v.codes) != 104 {
			t.Errorf("%s: %d codes, want 104", v.name, len(v.codes))
		}
		for i, c := range v.codes {
			wantRun := int32(i)
			wantState := v.term
			if i >= 64 {
				wantRun = int32(i-63) * 64
				wantState = v.makeUp
				if wantRun >= 1792 {
					wantState = stateMakeUp
				}
			}
			if c.runLen != wantRun {
				t.Errorf("%s: code %d has run %d, want %d", v.name, i, c.runLen, wantRun)
			}
			got := lookup(t, v.table, v.bits, c)
			want := faxEntry{state: wantState, width: uint8(c.length), param: wantRun}
			if got != want {
				t.Errorf("%s: run %d decoded as %+v, want %+v", v.name, wantRun, got, want)
			}
		}
		eol := lookup(t, v.table, v.bits, faxCode{length: eolLength, code: eolCode})
		if eol.state != stateEOL || eol.width != 11 {
			t.Errorf("%s: EOL decoded as %+v", v.name, eol)
		}
	}
}

func TestExtendedMakeUpShared(t *testing.T) {
	for i := 63 + 28; i < len(whiteCodes); i++ {
		if whiteCodes[i] != blackCodes[i] {
			t.Errorf("run %d: white code %+v differs from black code %+v", whiteCodes[i].runLen, whiteCodes[i], blackCodes[i])
		}
	}
}

func TestMainTable(t *testing.T) {
	for _, c := range modeCodes {
		got := lookup(t, mainTable[:], mainTableBits, faxCode{length: c[0], code: uint32(c[1])})
		want := faxEntry{state: uint8(c[2]), width: uint8(c[0]), param: int32(c[3])}
		if got != want {
			t.Errorf("mode code %0*b decoded as %+v, want %+v", c[0], c[1], got, want)
		}
	}
	for i, e := range mainTable {
		if e.state == stateNull {
			t.Errorf("main table index %#x has no entry", i)
		}
	}
	vModes := []struct {
		state uint8
		param int32
	}{
		{stateVR, 3}, {stateVR, 2}, {stateVR, 1}, {stateV0, 0},
		{stateVL, 1}, {stateVL, 2}, {stateVL, 3},
	}
	for i, c := range vCodes {
		got := lookup(t, mainTable[:], mainTableBits, c)
		if got.state != vModes[i].state || got.param != vModes[i].param {
			t.Errorf("vCodes[%d] decoded as %+v, want state %d param %d", i, got, vModes[i].state, vModes[i].param)
		}
	}
}

// naiveSpan 逐位计算同色串长度
func naiveSpan(bp []byte, bs, be int, black bool) int {
	want := 0
	if black {
		want = 1
	}
	n := 0
	for x := bs; x < be && pixel(bp, x, be) == want; x++ {
		n++
	}
	return n
}

func TestFindSpan(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 200; iter++ {
		width := 1 + rng.Intn(700)
		row := make([]byte, (width+7)/8)
		switch iter % 3 {
		case 0:
			rng.Read(row)
		case 1:
			for i := range row {
				row[i] = 0xff
			}
			row[rng.Intn(len(row))] = byte(rng.Intn(256))
		default:
			row[rng.Intn(len(row))] = byte(rng.Intn(256))
		}
		for n := 0; n < 20; n++ {
			bs := rng.Intn(width + 1)
			for _, black := range []bool{false, true} {
				got := findSpan(row, bs, width, black)
				want := naiveSpan(row, bs, width, black)
				if got != want {
					t.Fatalf("width %d row %x: findSpan(%d, black=%v) = %d, want %d", width, row, bs, black, got, want)
				}
			}
		}
	}
}

func TestFindDiff(t *testing.T) {
	row := []byte{0x0f, 0xff, 0x00, 0x80}
	vectors := []struct {
		bs, color, want int
	}{
		{0, 0, 4},
		{4, 1, 16},
		{16, 0, 24},
		{24, 1, 25},
		{25, 0, 32},
		{32, 0, 32},
	}
	for _, v := range vectors {
		if got := findDiff2(row, v.bs, 32, v.color); got != v.want {
			t.Errorf("findDiff2(%d, %d) = %d, want %d", v.bs, v.color, got, v.want)
		}
	}
	if got := pixel(row, 40, 32); got != 0 {
		t.Errorf("pixel beyond width = %d, want 0", got)
	}
}

func TestFillRuns(t *testing.T) {
	vectors := []struct {
		name  string
		width int
		runs  []int32
		want  []byte
	}{
		{"white", 16, []int32{16}, []byte{0x00, 0x00}},
		{"black", 12, []int32{0, 12}, []byte{0xff, 0xf0}},
		{"within byte", 8, []int32{3, 2, 3}, []byte{0x18}},
		{"across bytes", 24, []int32{6, 10, 8}, []byte{0x03, 0xff, 0x00}},
		{"clipped", 10, []int32{4, 20}, []byte{0x0f, 0xc0}},
		{"long", 200, []int32{3, 190, 7}, append(append([]byte{0x1f}, repeatByte(0xff, 23)...), 0x80)},
	}
	for _, v := range vectors {
		row := make([]byte, len(v.want))
		for i := range row {
			row[i] = 0x55
		}
		FillRuns(row, append([]int32(nil), v.runs...), v.width)
		if v.width%8 != 0 {
			// 行宽之外的位不受影响
			row[len(row)-1] &= fillMasks[v.width%8]
		}
		if diff := cmp.Diff(v.want, row); diff != "" {
			t.Errorf("%s: row mismatch (-want +got):\n%s", v.name, diff)
		}
	}
}

func repeatByte(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
