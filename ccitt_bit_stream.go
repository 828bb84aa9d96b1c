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

var (
	identityTable [256]byte
	reverseTable  [256]byte
)

func init() {
	for i := range identityTable {
		identityTable[i] = byte(i)
		b := byte(i)
		b = (b&0xaa)>>1 | (b&0x55)<<1
		b = (b&0xcc)>>2 | (b&0x33)<<2
		b = (b&0xf0)>>4 | (b&0x0f)<<4
		reverseTable[i] = b
	}
}

// bitRevTable 获取字节转换表
// 入参: reversed 是否反转位序
// 返回: *[256]byte 转换表
func bitRevTable(reversed bool) *[256]byte {
	if reversed {
		return &reverseTable
	}
	return &identityTable
}

// BitStream 位流
// 解码器按低位在前处理数据, 高位在前的数据经反转表转换后进入累加器
type BitStream struct {
	data    []byte
	byteIdx int
	acc     uint32
	nbits   int
	pad     int
	bitmap  *[256]byte
}

// NewBitStream 创建位流
// 入参: data 数据源, order 位序
// 返回: *BitStream 位流对象
func NewBitStream(data []byte, order Order) *BitStream {
	b := &BitStream{}
	b.Reset(data, order)
	return b
}

// Reset 重置位流
// 入参: data 数据源, order 位序
func (b *BitStream) Reset(data []byte, order Order) {
	b.data = data
	b.byteIdx = 0
	b.acc = 0
	b.nbits = 0
	b.pad = 0
	b.bitmap = bitRevTable(order != LSB)
}

// Ensure 保证累加器中至少有 n 位有效数据, n 不超过 24
// 数据耗尽时若仍有未消耗的输入位则以 0 补足并成功, 否则失败
// 入参: n 位数
// 返回: bool 是否成功
func (b *BitStream) Ensure(n int) bool {
	for b.nbits < n {
		if !b.IsInBounds() {
			if b.nbits <= b.pad {
				return false
			}
			b.pad += n - b.nbits
			b.nbits = n
			return true
		}
		b.acc |= uint32(b.bitmap[b.data[b.byteIdx]]) << uint(b.nbits)
		b.byteIdx++
		b.nbits += 8
	}
	return true
}

// Peek 获取低 n 位但不消耗
// 入参: n 位数
// 返回: uint32 数据
func (b *BitStream) Peek(n int) uint32 {
	return b.acc & (1<<uint(n) - 1)
}

// Consume 丢弃 n 位
// 入参: n 位数
func (b *BitStream) Consume(n int) {
	b.nbits -= n
	b.acc >>= uint(n)
	if b.pad > b.nbits {
		b.pad = b.nbits
	}
}

// Available 获取累加器中有效位数
// 返回: int 位数
func (b *BitStream) Available() int {
	return b.nbits
}

// GetOffset 获取已读入累加器的字节数
// 返回: int 偏移量
func (b *BitStream) GetOffset() int {
	return b.byteIdx
}

// IsInBounds 检查是否在边界内
// 返回: bool 是否在边界内
func (b *BitStream) IsInBounds() bool {
	return b.byteIdx < len(b.data)
}

// Align 丢弃位使读取位置对齐到 n 位边界
// 入参: n 对齐位数, 取 8 或 16
func (b *BitStream) Align(n int) {
	pos := b.byteIdx*8 - b.nbits
	skip := (n - pos%n) % n
	if skip <= b.nbits {
		b.Consume(skip)
		return
	}
	skip -= b.nbits
	b.acc = 0
	b.nbits = 0
	b.pad = 0
	for ; skip > 0 && b.IsInBounds(); skip -= 8 {
		b.byteIdx++
	}
}
