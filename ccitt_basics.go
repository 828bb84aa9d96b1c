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
	"fmt"
	"strconv"

	"golang.org/x/image/ccitt"
)

// Order 压缩数据流中的位序
type Order = ccitt.Order

const (
	// LSB 低位在前
	LSB = ccitt.LSB
	// MSB 高位在前
	MSB = ccitt.MSB
)

// Scheme 压缩方案
type Scheme int

const (
	// SchemeRLE 改进霍夫曼编码, 行按字节对齐, 无 EOL
	SchemeRLE Scheme = 2
	// SchemeGroup3 T.4 编码
	SchemeGroup3 Scheme = 3
	// SchemeGroup4 T.6 编码
	SchemeGroup4 Scheme = 4
	// SchemeRLEW 改进霍夫曼编码, 行按字对齐, 无 EOL
	SchemeRLEW Scheme = 32771
)

// String 获取方案名称
// 返回: string 名称
func (s Scheme) String() string {
	switch s {
	case SchemeRLE:
		return "CCITT RLE"
	case SchemeRLEW:
		return "CCITT RLE/W"
	case SchemeGroup3:
		return "CCITT Group 3"
	case SchemeGroup4:
		return "CCITT Group 4"
	}
	return "Scheme(" + strconv.Itoa(int(s)) + ")"
}

// Mode 编解码模式标志
type Mode uint32

const (
	// ModeClassic 默认模式
	ModeClassic Mode = 0
	// ModeNoRTC 不写入块结束序列
	ModeNoRTC Mode = 0x0001
	// ModeNoEOL 不写入 EOL
	ModeNoEOL Mode = 0x0002
	// ModeByteAlign 行按字节对齐
	ModeByteAlign Mode = 0x0004
	// ModeWordAlign 行按16位字对齐
	ModeWordAlign Mode = 0x0008
)

// Group3Options T.4 编码选项
type Group3Options uint32

const (
	// Group3Opt2DEncoding 一维二维混合编码
	Group3Opt2DEncoding Group3Options = 0x1
	// Group3OptUncompressed 非压缩扩展模式
	Group3OptUncompressed Group3Options = 0x2
	// Group3OptFillBits EOL 前补齐到字节边界
	Group3OptFillBits Group3Options = 0x4
)

// ResolutionUnit 分辨率单位
type ResolutionUnit int

const (
	// ResUnitNone 无单位
	ResUnitNone ResolutionUnit = 1
	// ResUnitInch 英寸
	ResUnitInch ResolutionUnit = 2
	// ResUnitCentimeter 厘米
	ResUnitCentimeter ResolutionUnit = 3
)

// CleanFaxData 传真数据完整性
type CleanFaxData int

const (
	// CleanFaxDataClean 没有坏行
	CleanFaxDataClean CleanFaxData = 0
	// CleanFaxDataRegenerated 坏行已修复
	CleanFaxDataRegenerated CleanFaxData = 1
	// CleanFaxDataUnclean 存在未修复的坏行
	CleanFaxDataUnclean CleanFaxData = 2
)

// FillFunc 行填充函数
type FillFunc func(row []byte, runs []int32, width int)

// Config 编解码配置
type Config struct {
	Scheme         Scheme
	Width          int
	RowBytes       int
	Mode           Mode
	Group3Options  Group3Options
	Order          Order
	YResolution    float64
	ResolutionUnit ResolutionUnit
	Fill           FillFunc
	Sink           DiagnosticSink
}

// defaultMode 获取方案默认模式
// 返回: Mode 模式
func (s Scheme) defaultMode() Mode {
	switch s {
	case SchemeRLE:
		return ModeNoRTC | ModeNoEOL | ModeByteAlign
	case SchemeRLEW:
		return ModeNoRTC | ModeNoEOL | ModeWordAlign
	case SchemeGroup4:
		return ModeNoRTC
	}
	return ModeClassic
}

// normalize 校验并补全配置
// 返回: Config 补全后的配置, error 错误信息
func (c Config) normalize() (Config, error) {
	switch c.Scheme {
	case SchemeRLE, SchemeRLEW, SchemeGroup3, SchemeGroup4:
	default:
		return c, fmt.Errorf("%w: %v", ErrUnsupportedScheme, c.Scheme)
	}
	if c.Width <= 0 || c.Width > maxWidth {
		return c, ErrInvalidWidth
	}
	if c.RowBytes == 0 {
		c.RowBytes = (c.Width + 7) / 8
	}
	if c.RowBytes*8 < c.Width {
		return c, ErrInvalidRowBytes
	}
	c.Mode |= c.Scheme.defaultMode()
	if c.Scheme != SchemeGroup3 {
		c.Group3Options &^= Group3Opt2DEncoding | Group3OptFillBits
	}
	if c.Fill == nil {
		c.Fill = FillRuns
	}
	if c.Sink == nil {
		c.Sink = NopSink{}
	}
	return c, nil
}

// is2D 是否使用二维编码
// 返回: bool 是否二维
func (c *Config) is2D() bool {
	return c.Scheme == SchemeGroup3 && c.Group3Options&Group3Opt2DEncoding != 0
}

// needsRefLine 是否需要参考行
// 返回: bool 是否需要
func (c *Config) needsRefLine() bool {
	return c.is2D() || c.Scheme == SchemeGroup4
}

// maxK 根据垂直分辨率计算连续二维编码行数
// 返回: int 行数
func (c *Config) maxK() int {
	res := c.YResolution
	if c.ResolutionUnit == ResUnitCentimeter {
		res *= 2.54
	}
	if res > 150 {
		return 4
	}
	return 2
}

// maxWidth 支持的最大行宽
const maxWidth = 1 << 20
