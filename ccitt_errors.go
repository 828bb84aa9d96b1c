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
	"errors"
	"fmt"
	"log"
)

var (
	// ErrUnsupportedScheme 不支持的压缩方案
	ErrUnsupportedScheme = errors.New("ccitt: unsupported compression scheme")
	// ErrInvalidWidth 行宽无效
	ErrInvalidWidth = errors.New("ccitt: invalid row width")
	// ErrInvalidRowBytes 行字节数不足以容纳行宽
	ErrInvalidRowBytes = errors.New("ccitt: row bytes too small for row width")
	// ErrUncompressedMode 不支持非压缩扩展模式
	ErrUncompressedMode = errors.New("ccitt: uncompressed mode not supported")
	// ErrInvalidHeight 图像高度无效
	ErrInvalidHeight = errors.New("ccitt: invalid image height")
	// ErrBufferSize 缓冲区长度不是行字节数的整数倍
	ErrBufferSize = errors.New("ccitt: buffer size is not a multiple of the row size")

	// ErrPrematureEOF 数据提前结束
	ErrPrematureEOF = errors.New("ccitt: premature EOF")
	// ErrInvalidCodeWord 无效码字
	ErrInvalidCodeWord = errors.New("ccitt: bad code word")
	// ErrRowLength 行长度不匹配
	ErrRowLength = errors.New("ccitt: line length mismatch")
	// ErrUnsupportedExtension 遇到非压缩扩展码
	ErrUnsupportedExtension = errors.New("ccitt: uncompressed data (not supported)")
	// ErrEndOfBlock 所需行解码完成前遇到块结束
	ErrEndOfBlock = errors.New("ccitt: end of facsimile block")
)

// ErrorKind 错误类型
type ErrorKind int

const (
	// KindPrematureEOF 数据提前结束, 条带级
	KindPrematureEOF ErrorKind = iota + 1
	// KindInvalidCodeWord 无效码字, 行级
	KindInvalidCodeWord
	// KindRowLengthMismatch 行长度与行宽不符, 行级
	KindRowLengthMismatch
	// KindUnsupportedExtension 非压缩扩展码, 行级
	KindUnsupportedExtension
	// KindEndOfBlock 提前遇到块结束, 条带级
	KindEndOfBlock
)

// sentinel 获取错误类型对应的哨兵错误
// 返回: error 哨兵错误
func (k ErrorKind) sentinel() error {
	switch k {
	case KindPrematureEOF:
		return ErrPrematureEOF
	case KindInvalidCodeWord:
		return ErrInvalidCodeWord
	case KindRowLengthMismatch:
		return ErrRowLength
	case KindUnsupportedExtension:
		return ErrUnsupportedExtension
	case KindEndOfBlock:
		return ErrEndOfBlock
	}
	return nil
}

// Error 编解码过程中的行级或条带级错误
type Error struct {
	Kind   ErrorKind
	Op     string
	Unit   string
	Index  int
	Row    int
	X      int
	Got    int
	Want   int
	Detail string
}

// Error 实现 error 接口
// 返回: string 错误描述
func (e *Error) Error() string {
	where := fmt.Sprintf("line %d of %s %d (x %d)", e.Row, e.Unit, e.Index, e.X)
	switch e.Kind {
	case KindRowLengthMismatch:
		what := "line length mismatch"
		if e.Got < e.Want {
			what = "premature EOL"
		}
		return fmt.Sprintf("ccitt: %s: %s at line %d of %s %d (got %d, expected %d)",
			e.Op, what, e.Row, e.Unit, e.Index, e.Got, e.Want)
	case KindInvalidCodeWord:
		if e.Detail != "" {
			return fmt.Sprintf("ccitt: %s: bad code word (%s) at %s", e.Op, e.Detail, where)
		}
		return fmt.Sprintf("ccitt: %s: bad code word at %s", e.Op, where)
	case KindUnsupportedExtension:
		return fmt.Sprintf("ccitt: %s: uncompressed data (not supported) at %s", e.Op, where)
	case KindEndOfBlock:
		return fmt.Sprintf("ccitt: %s: end of facsimile block at %s", e.Op, where)
	}
	return fmt.Sprintf("ccitt: %s: premature EOF at %s", e.Op, where)
}

// Unwrap 返回错误类型对应的哨兵错误
// 返回: error 哨兵错误
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// DiagnosticSink 诊断信息接收器
// Warning 接收已在行内恢复的异常, Failure 接收导致条带解码失败的异常
type DiagnosticSink interface {
	Warning(err *Error)
	Failure(err *Error)
}

// NopSink 丢弃所有诊断信息
type NopSink struct{}

// Warning 忽略警告
func (NopSink) Warning(*Error) {}

// Failure 忽略失败
func (NopSink) Failure(*Error) {}

// LogSink 通过标准日志输出诊断信息
type LogSink struct {
	Logger *log.Logger
}

// NewLogSink 创建日志接收器
// 入参: logger 日志对象, 为空时使用标准日志
// 返回: *LogSink 接收器
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{Logger: logger}
}

// Warning 输出警告
// 入参: err 错误
func (s *LogSink) Warning(err *Error) {
	s.Logger.Printf("[warning] %v", err)
}

// Failure 输出失败
// 入参: err 错误
func (s *LogSink) Failure(err *Error) {
	s.Logger.Printf("[failure] %v", err)
}
