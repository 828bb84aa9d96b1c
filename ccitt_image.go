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
	"image"
	"image/color"
)

// Image 二值图像, 每像素 1 位, 高位在前, 1 表示黑色
type Image struct {
	width  int
	height int
	stride int
	data   []byte
}

// NewImage 创建新图像
// 入参: width 宽度, height 高度
// 返回: *Image 图像对象
func NewImage(width, height int) *Image {
	if width <= 0 || width > maxWidth || height <= 0 {
		return nil
	}
	stride := (width + 7) / 8
	if height > int(^uint(0)>>1)/stride {
		return nil
	}
	return &Image{
		width:  width,
		height: height,
		stride: stride,
		data:   make([]byte, stride*height),
	}
}

// Width 获取宽度
// 返回: int 宽度
func (i *Image) Width() int {
	return i.width
}

// Height 获取高度
// 返回: int 高度
func (i *Image) Height() int {
	return i.height
}

// Stride 获取跨度
// 返回: int 跨度
func (i *Image) Stride() int {
	return i.stride
}

// Data 获取数据
// 返回: []byte 数据切片
func (i *Image) Data() []byte {
	return i.data
}

// Row 获取一行数据
// 入参: y 行号
// 返回: []byte 行数据, 越界时为 nil
func (i *Image) Row(y int) []byte {
	if y < 0 || y >= i.height {
		return nil
	}
	return i.data[y*i.stride : (y+1)*i.stride]
}

// GetPixel 获取像素值
// 入参: x 轴坐标, y 轴坐标
// 返回: int 像素值
func (i *Image) GetPixel(x, y int) int {
	if x < 0 || x >= i.width || y < 0 || y >= i.height {
		return 0
	}
	return int(i.data[y*i.stride+x>>3]>>(7-x&7)) & 1
}

// SetPixel 设置像素值
// 入参: x 轴坐标, y 轴坐标, v 像素值
func (i *Image) SetPixel(x, y int, v int) {
	if x < 0 || x >= i.width || y < 0 || y >= i.height {
		return
	}
	mask := byte(0x80) >> uint(x&7)
	if v != 0 {
		i.data[y*i.stride+x>>3] |= mask
	} else {
		i.data[y*i.stride+x>>3] &^= mask
	}
}

// ToGoImage 转换为Go标准库Image
// 返回: image.Image 图像
func (i *Image) ToGoImage() image.Image {
	if i == nil {
		return nil
	}
	img := image.NewGray(image.Rect(0, 0, i.width, i.height))
	for y := 0; y < i.height; y++ {
		for x := 0; x < i.width; x++ {
			if i.GetPixel(x, y) != 0 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// NewImageFromGoImage 由Go标准库Image创建二值图像, 亮度低于一半的像素视为黑色
// 入参: m 源图像
// 返回: *Image 图像对象, 尺寸无效时为 nil
func NewImageFromGoImage(m image.Image) *Image {
	b := m.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	if img == nil {
		return nil
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			g := color.GrayModel.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if g.Y < 0x80 {
				img.SetPixel(x, y, 1)
			}
		}
	}
	return img
}
