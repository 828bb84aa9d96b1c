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

// runGuard 每个区域在行宽所需之外额外保留的表项
const runGuard = 8

// RunBuffer 游程缓冲区
// 当前行与参考行共用一个底层数组, 行完成后交换两者的起始偏移
type RunBuffer struct {
	runs []int32
	size int
	cur  int
	ref  int
}

// NewRunBuffer 创建游程缓冲区
// 每个区域可容纳 2*roundUp(width,32)+3 个游程, 无参考行时只分配当前行区域
// 入参: width 行宽, withRef 是否需要参考行
// 返回: *RunBuffer 缓冲区对象
func NewRunBuffer(width int, withRef bool) *RunBuffer {
	size := 2*roundUp(width, 32) + 3 + runGuard
	rb := &RunBuffer{
		runs: make([]int32, size),
		size: size,
		cur:  0,
		ref:  -1,
	}
	if withRef {
		rb.runs = make([]int32, 2*size)
		rb.ref = size
	}
	return rb
}

// ResetReference 将参考行置为全白
// 入参: width 行宽
func (rb *RunBuffer) ResetReference(width int) {
	if rb.ref < 0 {
		return
	}
	rb.runs[rb.ref] = int32(width)
	rb.runs[rb.ref+1] = 0
}

// Swap 交换当前行与参考行
func (rb *RunBuffer) Swap() {
	if rb.ref < 0 {
		return
	}
	rb.cur, rb.ref = rb.ref, rb.cur
}

// roundUp 向上取整到 m 的倍数
// 入参: x 数值, m 倍数
// 返回: int 结果
func roundUp(x, m int) int {
	return (x + m - 1) / m * m
}
