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

import "encoding/binary"

// fillMasks 高 n 位为 1 的掩码
var fillMasks = [9]byte{0x00, 0x80, 0xc0, 0xe0, 0xf0, 0xf8, 0xfc, 0xfe, 0xff}

// FillRuns 按黑白交替的游程填充一行位图
// 游程数为奇数时视为末尾补一个长度为 0 的黑游程; 超出行宽或为负的游程就地截断到行宽
// 入参: row 行缓冲, runs 游程数组, width 行宽
func FillRuns(row []byte, runs []int32, width int) {
	x := 0
	for i := 0; i < len(runs); i++ {
		run := int(runs[i])
		if run < 0 || x+run > width {
			run = width - x
			runs[i] = int32(run)
		}
		if run == 0 {
			continue
		}
		fillSpan(row, x, run, i&1 != 0)
		x += run
	}
}

// fillSpan 将 [x, x+run) 置为黑色或白色
// 入参: row 行缓冲, x 起点, run 长度, black 是否黑色
func fillSpan(row []byte, x, run int, black bool) {
	cp := x >> 3
	bx := x & 7
	if run <= 8-bx {
		mask := fillMasks[run] >> uint(bx)
		if black {
			row[cp] |= mask
		} else {
			row[cp] &^= mask
		}
		return
	}
	if bx != 0 {
		// 对齐到字节边界
		if black {
			row[cp] |= 0xff >> uint(bx)
		} else {
			row[cp] &= 0xff << uint(8-bx)
		}
		cp++
		run -= 8 - bx
	}
	if n := run >> 3; n != 0 {
		var v byte
		if black {
			v = 0xff
		}
		fillBytes(row, cp, cp+n, v)
		cp += n
		run &= 7
	}
	if run != 0 {
		if black {
			row[cp] |= fillMasks[run]
		} else {
			row[cp] &^= fillMasks[run]
		}
	}
}

// fillBytes 整字节填充 row[from:to], 较长的区间先对齐到 8 字节再按 64 位字写入
// 入参: row 行缓冲, from 起始字节, to 结束字节, v 填充值
func fillBytes(row []byte, from, to int, v byte) {
	i := from
	if (to-from)/8 > 1 {
		for ; i < to && i&7 != 0; i++ {
			row[i] = v
		}
		word := uint64(0)
		if v != 0 {
			word = ^uint64(0)
		}
		for ; i+8 <= to; i += 8 {
			binary.LittleEndian.PutUint64(row[i:], word)
		}
	}
	for ; i < to; i++ {
		row[i] = v
	}
}
