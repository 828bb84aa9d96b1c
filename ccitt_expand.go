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

// runResult 游程解码结果
type runResult uint8

const (
	runTerminated runResult = iota
	runEOL
	runInvalid
	runEOF
)

// decodeRun 解码一个完整游程 (若干构造码加一个终止码)
// 入参: black 是否黑色游程
// 返回: runResult 解码结果
func (d *Decoder) decodeRun(black bool) runResult {
	for {
		var e faxEntry
		if black {
			if !d.stream.Ensure(blackTableBits) {
				return runEOF
			}
			e = blackTable[d.stream.Peek(blackTableBits)]
		} else {
			if !d.stream.Ensure(whiteTableBits) {
				return runEOF
			}
			e = whiteTable[d.stream.Peek(whiteTableBits)]
		}
		d.stream.Consume(int(e.width))
		switch e.state {
		case stateTermW, stateTermB:
			d.setValue(int(e.param))
			return runTerminated
		case stateMakeUpW, stateMakeUpB, stateMakeUp:
			d.a0 += int(e.param)
			d.runLength += int(e.param)
		case stateEOL:
			return runEOL
		default:
			return runInvalid
		}
	}
}

// setValue 追加一个游程并推进 a0
// 入参: x 游程终止码长度
func (d *Decoder) setValue(x int) {
	d.runs[d.pa] = int32(d.runLength + x)
	d.pa++
	d.a0 += x
	d.runLength = 0
}

// refRun 读取参考行游程, 越界时返回 0
// 入参: i 游程索引
// 返回: int 游程长度
func (d *Decoder) refRun(i int) int {
	ref := d.rb.ref
	if i < ref || i >= ref+d.rb.size {
		return 0
	}
	return int(d.runs[i])
}

// checkB1 推进 b1 到 a0 右侧
// 入参: b1 当前 b1
// 返回: int 新的 b1
func (d *Decoder) checkB1(b1 int) int {
	if d.pa == d.thisRun {
		return b1
	}
	end := d.rb.ref + d.rb.size
	for b1 <= d.a0 && b1 < d.rowPixels {
		if d.pb+1 >= end {
			return d.rowPixels
		}
		b1 += d.refRun(d.pb) + d.refRun(d.pb+1)
		d.pb += 2
	}
	return b1
}

// overflow 检查当前行游程数组是否将要溢出
// 入参: op 操作名
// 返回: bool 是否溢出
func (d *Decoder) overflow(op string) bool {
	if d.pa <= d.thisRun+d.rb.size-runGuard {
		return false
	}
	d.unexpected(op, "run array overflow")
	return true
}

// cleanupRuns 整理行末游程, 保证游程总和等于行宽
// 入参: op 操作名
func (d *Decoder) cleanupRuns(op string) {
	if d.runLength != 0 {
		d.setValue(0)
	}
	if d.a0 == d.rowPixels {
		return
	}
	d.badLength(op)
	for d.a0 > d.rowPixels && d.pa > d.thisRun {
		d.pa--
		d.a0 -= int(d.runs[d.pa])
	}
	if d.a0 < d.rowPixels {
		if d.a0 < 0 {
			d.a0 = 0
		}
		if (d.pa-d.thisRun)&1 != 0 {
			d.setValue(0)
		}
		d.setValue(d.rowPixels - d.a0)
	} else if d.a0 > d.rowPixels {
		d.pa = d.thisRun
		d.a0 = 0
		d.setValue(d.rowPixels)
		d.setValue(0)
	}
}

// expand1D 解码一维编码行
// 入参: op 操作名
// 返回: bool 是否成功, 失败表示数据提前结束
func (d *Decoder) expand1D(op string) bool {
	for !d.overflow(op) {
		if stop, ok := d.expandRun(op, false); !ok {
			return false
		} else if stop || d.a0 >= d.rowPixels {
			break
		}
		if stop, ok := d.expandRun(op, true); !ok {
			return false
		} else if stop || d.a0 >= d.rowPixels {
			break
		}
		// 折叠成对的零长度游程
		if d.runs[d.pa-1] == 0 && d.runs[d.pa-2] == 0 {
			d.pa -= 2
		}
	}
	d.cleanupRuns(op)
	return true
}

// expandRun 解码一维行中的单个游程
// 入参: op 操作名, black 是否黑色游程
// 返回: bool 是否结束本行, bool 是否成功
func (d *Decoder) expandRun(op string, black bool) (bool, bool) {
	switch d.decodeRun(black) {
	case runEOF:
		d.prematureEOF(op)
		d.cleanupRuns(op)
		return true, false
	case runEOL:
		d.eolCount = 1
		return true, true
	case runInvalid:
		d.unexpected(op, runTableName(black))
		return true, true
	}
	return false, true
}

// runTableName 获取游程码表名称
// 入参: black 是否黑色
// 返回: string 名称
func runTableName(black bool) string {
	if black {
		return "BlackTable"
	}
	return "WhiteTable"
}

// expand2D 解码二维编码行
// 入参: op 操作名, b1 参考行首个变化像素位置
// 返回: bool 是否成功, 失败表示数据提前结束
func (d *Decoder) expand2D(op string, b1 int) bool {
	done := false
	for d.a0 < d.rowPixels && !done {
		if d.overflow(op) {
			done = true
			break
		}
		if !d.stream.Ensure(mainTableBits) {
			return d.eof2D(op)
		}
		e := mainTable[d.stream.Peek(mainTableBits)]
		d.stream.Consume(int(e.width))
		switch e.state {
		case statePass:
			b1 = d.checkB1(b1)
			b1 += d.refRun(d.pb)
			d.pb++
			d.runLength += b1 - d.a0
			d.a0 = b1
			b1 += d.refRun(d.pb)
			d.pb++
		case stateHoriz:
			black := (d.pa-d.thisRun)&1 != 0
			for i := 0; i < 2 && !done; i++ {
				switch d.decodeRun(black) {
				case runEOF:
					return d.eof2D(op)
				case runTerminated:
				default:
					d.unexpected(op, runTableName(black))
					done = true
				}
				black = !black
			}
			if !done {
				b1 = d.checkB1(b1)
			}
		case stateV0:
			b1 = d.checkB1(b1)
			d.setValue(b1 - d.a0)
			b1 += d.refRun(d.pb)
			d.pb++
		case stateVR:
			b1 = d.checkB1(b1)
			d.setValue(b1 - d.a0 + int(e.param))
			b1 += d.refRun(d.pb)
			d.pb++
		case stateVL:
			b1 = d.checkB1(b1)
			if b1 < d.a0+int(e.param) {
				d.unexpected(op, "VL")
				done = true
				break
			}
			d.setValue(b1 - d.a0 - int(e.param))
			d.pb--
			b1 -= d.refRun(d.pb)
		case stateExt:
			d.extension(op)
			done = true
		case stateEOL:
			if !d.stream.Ensure(4) {
				return d.eof2D(op)
			}
			if d.stream.Peek(4) != 0 {
				d.unexpected(op, "EOL")
			}
			d.stream.Consume(4)
			d.eolCount = 1
			done = true
		default:
			d.unexpected(op, "MainTable")
			done = true
		}
	}
	if !done && d.runLength != 0 {
		if d.runLength+d.a0 < d.rowPixels {
			// 行末只允许 V0
			if !d.stream.Ensure(1) {
				return d.eof2D(op)
			}
			if d.stream.Peek(1) == 0 {
				d.unexpected(op, "MainTable")
				done = true
			} else {
				d.stream.Consume(1)
			}
		}
		if !done {
			d.setValue(0)
		}
	}
	d.cleanupRuns(op)
	return true
}

// eof2D 处理二维解码中的数据提前结束
// 入参: op 操作名
// 返回: bool 固定为 false
func (d *Decoder) eof2D(op string) bool {
	d.prematureEOF(op)
	d.cleanupRuns(op)
	return false
}

// syncEOL 同步到下一个 EOL 之后
// 返回: bool 是否成功, 失败表示数据提前结束
func (d *Decoder) syncEOL() bool {
	if d.eolCount == 0 {
		for {
			if !d.stream.Ensure(11) {
				return false
			}
			if d.stream.Peek(11) == 0 {
				break
			}
			d.stream.Consume(1)
		}
	}
	for {
		if !d.stream.Ensure(8) {
			return false
		}
		if d.stream.Peek(8) != 0 {
			break
		}
		d.stream.Consume(8)
	}
	for d.stream.Peek(1) == 0 {
		d.stream.Consume(1)
	}
	d.stream.Consume(1)
	d.eolCount = 0
	return true
}
