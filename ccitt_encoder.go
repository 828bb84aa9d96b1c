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

// Encoder 传真编码器
// 同一实例不可并发使用
type Encoder struct {
	cfg       Config
	rowPixels int
	rowBytes  int
	w         *BitWriter
	refline   []byte
	k         int
	maxk      int
	use1D     bool
}

// NewEncoder 创建编码器
// 入参: cfg 编码配置
// 返回: *Encoder 编码器, error 错误信息
func NewEncoder(cfg Config) (*Encoder, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	if cfg.Group3Options&Group3OptUncompressed != 0 {
		return nil, ErrUncompressedMode
	}
	e := &Encoder{
		cfg:       cfg,
		rowPixels: cfg.Width,
		rowBytes:  cfg.RowBytes,
		w:         NewBitWriter(cfg.Order),
		use1D:     true,
	}
	if cfg.needsRefLine() {
		e.refline = make([]byte, cfg.RowBytes+1)
	}
	return e, nil
}

// Config 获取补全后的配置
// 返回: Config 配置
func (e *Encoder) Config() Config {
	return e.cfg
}

// EncodeStrip 编码一个条带
// 入参: src 原始行数据, 长度须为行字节数的整数倍
// 返回: []byte 压缩数据, error 错误信息
func (e *Encoder) EncodeStrip(src []byte) ([]byte, error) {
	return e.encode(src)
}

// EncodeTile 编码一个分块
// 入参: src 原始行数据, 长度须为行字节数的整数倍
// 返回: []byte 压缩数据, error 错误信息
func (e *Encoder) EncodeTile(src []byte) ([]byte, error) {
	return e.encode(src)
}

// Close 生成结束序列, G3 为 RTC, 设置 ModeNoRTC 时为空
// 返回: []byte 结束序列
func (e *Encoder) Close() []byte {
	if e.cfg.Mode&ModeNoRTC != 0 {
		return nil
	}
	e.w.Reset(e.cfg.Order)
	code, length := uint32(eolCode), eolLength
	if e.cfg.is2D() {
		code <<= 1
		if e.use1D {
			code |= 1
		}
		length++
	}
	for i := 0; i < 6; i++ {
		e.w.PutBits(code, length)
	}
	e.w.Flush()
	return e.w.Take()
}

// encode 编码若干行
// 入参: src 原始行数据
// 返回: []byte 压缩数据, error 错误信息
func (e *Encoder) encode(src []byte) ([]byte, error) {
	if len(src)%e.rowBytes != 0 {
		return nil, ErrBufferSize
	}
	e.preencode()
	for off := 0; off < len(src); off += e.rowBytes {
		row := src[off : off+e.rowBytes]
		if e.cfg.Scheme == SchemeGroup4 {
			e.encode2DRow(row)
			copy(e.refline, row)
			continue
		}
		e.encodeG3Row(row)
	}
	if e.cfg.Scheme == SchemeGroup4 {
		// EOFB
		e.w.PutBits(eolCode, eolLength)
		e.w.PutBits(eolCode, eolLength)
	}
	e.w.Flush()
	return e.w.Take(), nil
}

// preencode 编码前的状态准备, 参考行重置为全白
func (e *Encoder) preencode() {
	e.w.Reset(e.cfg.Order)
	e.use1D = true
	clear(e.refline)
	if e.cfg.is2D() {
		e.maxk = e.cfg.maxK()
		e.k = e.maxk - 1
	} else {
		e.maxk = 0
		e.k = 0
	}
}

// encodeG3Row 编码 G3 或 RLE 行
// 入参: row 行数据
func (e *Encoder) encodeG3Row(row []byte) {
	if e.cfg.Mode&ModeNoEOL == 0 {
		e.putEOL()
	}
	if !e.cfg.is2D() {
		e.encode1DRow(row)
		return
	}
	if e.use1D {
		e.encode1DRow(row)
		e.use1D = false
	} else {
		e.encode2DRow(row)
		e.k--
	}
	if e.k == 0 {
		e.use1D = true
		e.k = e.maxk - 1
	} else {
		copy(e.refline, row)
	}
}

// encode1DRow 一维编码一行
// 入参: row 行数据
func (e *Encoder) encode1DRow(row []byte) {
	bs := 0
	for {
		span := find0span(row, bs, e.rowPixels)
		e.putSpan(span, &whiteCodes)
		bs += span
		if bs >= e.rowPixels {
			break
		}
		span = find1span(row, bs, e.rowPixels)
		e.putSpan(span, &blackCodes)
		bs += span
		if bs >= e.rowPixels {
			break
		}
	}
	if e.cfg.Mode&(ModeByteAlign|ModeWordAlign) != 0 {
		e.w.Flush()
		if e.cfg.Mode&ModeWordAlign != 0 && e.w.Len()&1 != 0 {
			e.w.PutBits(0, 8)
		}
	}
}

// encode2DRow 二维编码一行, 参考行为上一行
// 入参: row 行数据
func (e *Encoder) encode2DRow(row []byte) {
	width := e.rowPixels
	ref := e.refline
	a0 := 0
	a1 := 0
	if pixel(row, 0, width) == 0 {
		a1 = findDiff(row, 0, width, 0)
	}
	b1 := 0
	if pixel(ref, 0, width) == 0 {
		b1 = findDiff(ref, 0, width, 0)
	}
	for {
		b2 := findDiff2(ref, b1, width, pixel(ref, b1, width))
		if b2 >= a1 {
			d := b1 - a1
			if d < -3 || d > 3 {
				// 水平模式
				a2 := findDiff2(row, a1, width, pixel(row, a1, width))
				e.putCode(horizCode)
				if a0+a1 == 0 || pixel(row, a0, width) == 0 {
					e.putSpan(a1-a0, &whiteCodes)
					e.putSpan(a2-a1, &blackCodes)
				} else {
					e.putSpan(a1-a0, &blackCodes)
					e.putSpan(a2-a1, &whiteCodes)
				}
				a0 = a2
			} else {
				// 垂直模式
				e.putCode(vCodes[d+3])
				a0 = a1
			}
		} else {
			// 通过模式
			e.putCode(passCode)
			a0 = b2
		}
		if a0 >= width {
			break
		}
		color := pixel(row, a0, width)
		a1 = findDiff(row, a0, width, color)
		b1 = findDiff(ref, a0, width, 1-color)
		b1 = findDiff(ref, b1, width, color)
	}
}

// putSpan 写入一个游程的构造码和终止码
// 入参: span 游程长度, codes 码表
func (e *Encoder) putSpan(span int, codes *[len(whiteCodes)]faxCode) {
	for span >= 2624 {
		te := codes[63+2560>>6]
		e.putCode(te)
		span -= int(te.runLen)
	}
	if span >= 64 {
		te := codes[63+span>>6]
		e.putCode(te)
		span -= int(te.runLen)
	}
	e.putCode(codes[span])
}

// putCode 写入码字
// 入参: c 码字
func (e *Encoder) putCode(c faxCode) {
	e.w.PutBits(c.code, c.length)
}

// putEOL 写入 EOL, 二维模式下附加行编码标志位
func (e *Encoder) putEOL() {
	if e.cfg.Group3Options&Group3OptFillBits != 0 {
		// 补零使 EOL 结束于字节边界
		align := 8 - 4
		if free := e.w.FreeBits(); align != free {
			if align > free {
				align = free + (8 - align)
			} else {
				align = free - align
			}
			e.w.PutBits(0, align)
		}
	}
	code, length := uint32(eolCode), eolLength
	if e.cfg.is2D() {
		code <<= 1
		if e.use1D {
			code |= 1
		}
		length++
	}
	e.w.PutBits(code, length)
}
