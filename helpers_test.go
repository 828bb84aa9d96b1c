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
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// bitString 按码流顺序拼装位串
// 空白分隔的记号, "#" 之后为注释, 记号可带 "*N" 重复次数
// 入参: t 测试对象, order 位序, s 位串描述
// 返回: []byte 数据
func bitString(t *testing.T, order Order, s string) []byte {
	t.Helper()
	var bits []byte
	for _, line := range strings.Split(s, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.Fields(line) {
			n := 1
			if i := strings.IndexByte(tok, '*'); i >= 0 {
				v, err := strconv.Atoi(tok[i+1:])
				if err != nil {
					t.Fatalf("bad repeat count in token %q", tok)
				}
				tok, n = tok[:i], v
			}
			for ; n > 0; n-- {
				for _, c := range tok {
					switch c {
					case '0':
						bits = append(bits, 0)
					case '1':
						bits = append(bits, 1)
					default:
						t.Fatalf("bad token %q", tok)
					}
				}
			}
		}
	}
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b == 0 {
			continue
		}
		if order == LSB {
			out[i>>3] |= 1 << uint(i&7)
		} else {
			out[i>>3] |= 0x80 >> uint(i&7)
		}
	}
	return out
}

// streamPos 获取位流已消耗的位数
// 入参: b 位流
// 返回: int 位数
func streamPos(b *BitStream) int {
	return b.GetOffset()*8 - b.Available()
}

// recordSink 记录诊断信息
type recordSink struct {
	warnings []*Error
	failures []*Error
}

func (s *recordSink) Warning(err *Error) { s.warnings = append(s.warnings, err) }
func (s *recordSink) Failure(err *Error) { s.failures = append(s.failures, err) }

// kinds 获取警告的类型序列
// 返回: []ErrorKind 类型序列
func (s *recordSink) kinds() []ErrorKind {
	var out []ErrorKind
	for _, err := range s.warnings {
		out = append(out, err.Kind)
	}
	return out
}

// testImage 生成带有上下相关性的测试图像
// 入参: width 宽度, height 高度, seed 随机种子
// 返回: *Image 图像
func testImage(width, height int, seed int64) *Image {
	rng := rand.New(rand.NewSource(seed))
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		switch rng.Intn(6) {
		case 0:
			// 全白
		case 1:
			for x := 0; x < width; x++ {
				img.SetPixel(x, y, 1)
			}
		case 2, 3:
			// 上一行边缘小幅移动
			shift := rng.Intn(7) - 3
			for x := 0; x < width; x++ {
				img.SetPixel(x, y, img.GetPixel(x-shift, y-1))
			}
			for n := rng.Intn(3); n > 0; n-- {
				x := rng.Intn(width)
				img.SetPixel(x, y, 1-img.GetPixel(x, y))
			}
		default:
			black := rng.Intn(2)
			for x := 0; x < width; {
				run := 1 + rng.Intn(1+rng.Intn(200))
				for end := x + run; x < end && x < width; x++ {
					img.SetPixel(x, y, black)
				}
				black ^= 1
			}
		}
	}
	return img
}

// stripeImage 生成每行条纹宽度不同的测试图像
// 入参: width 宽度, height 高度
// 返回: *Image 图像
func stripeImage(width, height int) *Image {
	img := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/(y%7+1))%2 == 1 {
				img.SetPixel(x, y, 1)
			}
		}
	}
	return img
}
