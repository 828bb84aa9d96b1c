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

// Stats 解码统计
type Stats struct {
	Rows               int
	BadRows            int
	ConsecutiveBadRows int
	Clean              CleanFaxData
}

// Decoder 传真解码器
// 同一实例不可并发使用, 不同实例之间互不影响
type Decoder struct {
	cfg       Config
	rowPixels int
	rowBytes  int
	stream    *BitStream
	rb        *RunBuffer
	runs      []int32
	eolCount  int
	a0        int
	runLength int
	thisRun   int
	pa        int
	pb        int
	unit      string
	index     int
	line      int
	rowBad    bool
	failure   *Error
	badRun    int
	stats     Stats
}

// NewDecoder 创建解码器
// 入参: cfg 编码配置
// 返回: *Decoder 解码器, error 错误信息
func NewDecoder(cfg Config) (*Decoder, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	d := &Decoder{
		cfg:       cfg,
		rowPixels: cfg.Width,
		rowBytes:  cfg.RowBytes,
		stream:    NewBitStream(nil, cfg.Order),
		rb:        NewRunBuffer(cfg.Width, cfg.needsRefLine()),
	}
	d.runs = d.rb.runs
	return d, nil
}

// Config 获取补全后的配置
// 返回: Config 配置
func (d *Decoder) Config() Config {
	return d.cfg
}

// Stats 获取累计解码统计
// 返回: Stats 统计信息
func (d *Decoder) Stats() Stats {
	return d.stats
}

// Reset 开始解码新的条带, 参考行重置为全白
// 入参: strip 条带序号, src 压缩数据
func (d *Decoder) Reset(strip int, src []byte) {
	d.begin("strip", strip, src)
}

// DecodeStrip 解码一个条带
// 入参: strip 条带序号, src 压缩数据, dst 输出缓冲区, 长度须为行字节数的整数倍
// 返回: error 错误信息
func (d *Decoder) DecodeStrip(strip int, src, dst []byte) error {
	d.begin("strip", strip, src)
	return d.DecodeRows(dst)
}

// DecodeTile 解码一个分块
// 入参: tile 分块序号, src 压缩数据, dst 输出缓冲区, 长度须为行字节数的整数倍
// 返回: error 错误信息
func (d *Decoder) DecodeTile(tile int, src, dst []byte) error {
	d.begin("tile", tile, src)
	return d.DecodeRows(dst)
}

// DecodeRows 从当前位置继续解码若干行
// 入参: dst 输出缓冲区, 长度须为行字节数的整数倍
// 返回: error 错误信息
func (d *Decoder) DecodeRows(dst []byte) error {
	if len(dst)%d.rowBytes != 0 {
		return ErrBufferSize
	}
	for off := 0; off < len(dst); off += d.rowBytes {
		if err := d.decodeRow(dst[off : off+d.rowBytes]); err != nil {
			d.cfg.Sink.Failure(err)
			return err
		}
	}
	return nil
}

// begin 解码前的状态准备
// 入参: unit 单元类型, index 单元序号, src 压缩数据
func (d *Decoder) begin(unit string, index int, src []byte) {
	d.unit = unit
	d.index = index
	d.stream.Reset(src, d.cfg.Order)
	d.eolCount = 0
	d.rb.ResetReference(d.rowPixels)
	d.line = 0
}

// decodeRow 解码一行
// 入参: row 行缓冲区
// 返回: *Error 失败时的错误
func (d *Decoder) decodeRow(row []byte) *Error {
	d.a0 = 0
	d.runLength = 0
	d.thisRun = d.rb.cur
	d.pa = d.thisRun
	d.pb = 0
	d.rowBad = false
	d.failure = nil
	var ok bool
	switch {
	case d.cfg.Scheme == SchemeGroup4:
		ok = d.decodeG4Row(row)
	case d.cfg.Scheme == SchemeRLE || d.cfg.Scheme == SchemeRLEW:
		ok = d.decodeRLERow(row)
	case d.cfg.is2D():
		ok = d.decode2DRow(row)
	default:
		ok = d.decode1DRow(row)
	}
	if !ok && d.failure == nil {
		d.prematureEOF("decode")
	}
	d.finishRow(ok)
	if !ok {
		return d.failure
	}
	return nil
}

// decode1DRow 解码 G3 一维行
// 入参: row 行缓冲区
// 返回: bool 是否成功
func (d *Decoder) decode1DRow(row []byte) bool {
	const op = "decode1D"
	if d.cfg.Mode&ModeNoEOL == 0 && !d.syncEOL() {
		d.cleanupRuns(op)
		d.prematureEOF(op)
		d.fillRow(row)
		return false
	}
	ok := d.expand1D(op)
	d.fillRow(row)
	return ok
}

// decode2DRow 解码 G3 二维模式下的一行, 由标志位决定行编码方式
// 入参: row 行缓冲区
// 返回: bool 是否成功
func (d *Decoder) decode2DRow(row []byte) bool {
	const op = "decode2D"
	if (d.cfg.Mode&ModeNoEOL == 0 && !d.syncEOL()) || !d.stream.Ensure(1) {
		d.cleanupRuns(op)
		d.prematureEOF(op)
		d.fillRow(row)
		return false
	}
	is1D := d.stream.Peek(1) != 0
	d.stream.Consume(1)
	d.pb = d.rb.ref
	b1 := d.refRun(d.pb)
	d.pb++
	var ok bool
	if is1D {
		ok = d.expand1D(op)
	} else {
		ok = d.expand2D(op, b1)
	}
	d.fillRow(row)
	if ok {
		// 参考行末尾的虚拟变化像素
		d.setValue(0)
		d.rb.Swap()
	}
	return ok
}

// decodeG4Row 解码 G4 行
// 入参: row 行缓冲区
// 返回: bool 是否成功
func (d *Decoder) decodeG4Row(row []byte) bool {
	const op = "decodeG4"
	d.eolCount = 0
	d.pb = d.rb.ref
	b1 := d.refRun(d.pb)
	d.pb++
	ok := d.expand2D(op, b1)
	if ok && d.eolCount != 0 {
		ok = false
		d.failure = d.newError(KindEndOfBlock, op)
		if d.stream.Ensure(13) {
			d.stream.Consume(13)
		}
	}
	d.fillRow(row)
	if ok {
		d.setValue(0)
		d.rb.Swap()
	}
	return ok
}

// decodeRLERow 解码 RLE 行, 行末按模式对齐到字节或字
// 入参: row 行缓冲区
// 返回: bool 是否成功
func (d *Decoder) decodeRLERow(row []byte) bool {
	const op = "decodeRLE"
	ok := d.expand1D(op)
	d.fillRow(row)
	if !ok {
		return false
	}
	if d.cfg.Mode&ModeByteAlign != 0 {
		d.stream.Align(8)
	} else if d.cfg.Mode&ModeWordAlign != 0 {
		d.stream.Align(16)
	}
	return true
}

// fillRow 将当前行游程写入行缓冲区
// 入参: row 行缓冲区
func (d *Decoder) fillRow(row []byte) {
	d.cfg.Fill(row, d.runs[d.thisRun:d.pa], d.rowPixels)
}

// finishRow 更新行统计
// 入参: ok 行是否解码成功
func (d *Decoder) finishRow(ok bool) {
	d.stats.Rows++
	d.line++
	if ok && !d.rowBad {
		d.badRun = 0
		return
	}
	d.stats.BadRows++
	d.badRun++
	if d.badRun > d.stats.ConsecutiveBadRows {
		d.stats.ConsecutiveBadRows = d.badRun
	}
	if !ok {
		d.stats.Clean = CleanFaxDataUnclean
	} else if d.stats.Clean == CleanFaxDataClean {
		d.stats.Clean = CleanFaxDataRegenerated
	}
}

// newError 创建带当前位置信息的错误
// 入参: kind 错误类别, op 操作名
// 返回: *Error 错误
func (d *Decoder) newError(kind ErrorKind, op string) *Error {
	return &Error{
		Kind:  kind,
		Op:    op,
		Unit:  d.unit,
		Index: d.index,
		Row:   d.line,
		X:     d.a0,
	}
}

// warn 报告行级警告
// 入参: err 错误
func (d *Decoder) warn(err *Error) {
	d.rowBad = true
	d.cfg.Sink.Warning(err)
}

// unexpected 报告无效码字
// 入参: op 操作名, detail 出错的码表
func (d *Decoder) unexpected(op, detail string) {
	err := d.newError(KindInvalidCodeWord, op)
	err.Detail = detail
	d.warn(err)
}

// extension 报告不支持的扩展码
// 入参: op 操作名
func (d *Decoder) extension(op string) {
	d.warn(d.newError(KindUnsupportedExtension, op))
}

// badLength 报告行长度不符
// 入参: op 操作名
func (d *Decoder) badLength(op string) {
	err := d.newError(KindRowLengthMismatch, op)
	err.Got = d.a0
	err.Want = d.rowPixels
	d.warn(err)
}

// prematureEOF 记录数据提前结束
// 入参: op 操作名
func (d *Decoder) prematureEOF(op string) {
	if d.failure == nil {
		d.failure = d.newError(KindPrematureEOF, op)
	}
}
