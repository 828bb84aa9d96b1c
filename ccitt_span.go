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
	"encoding/binary"
	"math/bits"
)

// zeroRun 字节从最高位起连续 0 的个数
func zeroRun(b byte) int {
	return bits.LeadingZeros8(b)
}

// oneRun 字节从最高位起连续 1 的个数
func oneRun(b byte) int {
	return bits.LeadingZeros8(^b)
}

// findSpan 查找从 bs 开始、在 be 之前结束的同色像素串长度
// 入参: bp 行数据, bs 起始位, be 结束位, black 是否查找黑色串
// 返回: int 串长度
func findSpan(bp []byte, bs, be int, black bool) int {
	count := zeroRun
	var full byte
	var fullWord uint64
	if black {
		count = oneRun
		full = 0xff
		fullWord = ^uint64(0)
	}
	offset := bs >> 3
	bitsLeft := be - bs
	span := 0
	// 左侧不完整字节
	if n := bs & 7; bitsLeft > 0 && n != 0 {
		span = count(bp[offset] << uint(n))
		if span > 8-n {
			span = 8 - n
		}
		if span > bitsLeft {
			span = bitsLeft
		}
		if n+span < 8 {
			return span
		}
		bitsLeft -= span
		offset++
	}
	if bitsLeft >= 2*64 {
		// 对齐到 8 字节后按 64 位字比较
		for offset&7 != 0 {
			if bp[offset] != full {
				return span + count(bp[offset])
			}
			span += 8
			bitsLeft -= 8
			offset++
		}
		for bitsLeft >= 64 && binary.LittleEndian.Uint64(bp[offset:]) == fullWord {
			span += 64
			bitsLeft -= 64
			offset += 8
		}
	}
	for bitsLeft >= 8 {
		if bp[offset] != full {
			return span + count(bp[offset])
		}
		span += 8
		bitsLeft -= 8
		offset++
	}
	// 右侧不完整字节
	if bitsLeft > 0 {
		n := count(bp[offset])
		if n > bitsLeft {
			n = bitsLeft
		}
		span += n
	}
	return span
}

// find0span 查找白色串长度
// 入参: bp 行数据, bs 起始位, be 结束位
// 返回: int 串长度
func find0span(bp []byte, bs, be int) int {
	return findSpan(bp, bs, be, false)
}

// find1span 查找黑色串长度
// 入参: bp 行数据, bs 起始位, be 结束位
// 返回: int 串长度
func find1span(bp []byte, bs, be int) int {
	return findSpan(bp, bs, be, true)
}

// findDiff 返回 [bs, be) 中第一个颜色不同于 color 的位置, 不存在时返回 be
// 入参: bp 行数据, bs 起始位, be 结束位, color 颜色
// 返回: int 位置
func findDiff(bp []byte, bs, be int, color int) int {
	return bs + findSpan(bp, bs, be, color != 0)
}

// findDiff2 同 findDiff, 但 bs 不小于 be 时直接返回 be
// 入参: bp 行数据, bs 起始位, be 结束位, color 颜色
// 返回: int 位置
func findDiff2(bp []byte, bs, be int, color int) int {
	if bs < be {
		return findDiff(bp, bs, be, color)
	}
	return be
}

// pixel 获取行中 ix 处的像素, 超出行宽视为白色
// 入参: bp 行数据, ix 位置, width 行宽
// 返回: int 像素值
func pixel(bp []byte, ix, width int) int {
	if ix >= width {
		return 0
	}
	return int(bp[ix>>3]>>uint(7-ix&7)) & 1
}
