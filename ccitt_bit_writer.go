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

// BitWriter 位写入器
// 码字按高位在前拼入当前字节, 字节写满后按配置的位序输出
type BitWriter struct {
	out    []byte
	data   uint32
	bit    int
	bitmap *[256]byte
}

// NewBitWriter 创建位写入器
// 入参: order 位序
// 返回: *BitWriter 写入器对象
func NewBitWriter(order Order) *BitWriter {
	w := &BitWriter{}
	w.Reset(order)
	return w
}

// Reset 清空输出并重置状态
// 入参: order 位序
func (w *BitWriter) Reset(order Order) {
	w.out = w.out[:0]
	w.data = 0
	w.bit = 8
	w.bitmap = bitRevTable(order == LSB)
}

// PutBits 写入变长位值, 长度不超过 24
// 入参: bits 位值, length 位数
func (w *BitWriter) PutBits(bits uint32, length int) {
	for length > w.bit {
		w.data |= bits >> uint(length-w.bit)
		length -= w.bit
		w.flushBits()
	}
	w.data |= (bits & (1<<uint(length) - 1)) << uint(w.bit-length)
	w.bit -= length
	if w.bit == 0 {
		w.flushBits()
	}
}

// flushBits 输出当前字节
func (w *BitWriter) flushBits() {
	w.out = append(w.out, w.bitmap[byte(w.data)])
	w.data = 0
	w.bit = 8
}

// Flush 输出未写满的字节, 剩余位补 0
func (w *BitWriter) Flush() {
	if w.bit != 8 {
		w.flushBits()
	}
}

// Aligned 是否位于字节边界
// 返回: bool 是否对齐
func (w *BitWriter) Aligned() bool {
	return w.bit == 8
}

// FreeBits 获取当前字节剩余可写位数
// 返回: int 位数
func (w *BitWriter) FreeBits() int {
	return w.bit
}

// Len 获取已输出字节数
// 返回: int 字节数
func (w *BitWriter) Len() int {
	return len(w.out)
}

// Bytes 获取已输出字节
// 返回: []byte 输出数据
func (w *BitWriter) Bytes() []byte {
	return w.out
}

// Take 取出已输出字节并清空缓冲
// 返回: []byte 输出数据
func (w *BitWriter) Take() []byte {
	out := make([]byte, len(w.out))
	copy(out, w.out)
	w.out = w.out[:0]
	return out
}
