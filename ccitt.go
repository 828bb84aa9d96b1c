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

// Package ccitt 纯 Go 语言实现的 CCITT G3/G4 (T.4/T.6) 传真编解码器
package ccitt

import (
	"image"
	"io"
)

// DecodeImage 将单个条带的压缩数据解码为图像
// 失败时返回已解码部分的图像和错误
// 入参: data 压缩数据, cfg 编码配置, height 图像高度
// 返回: *Image 图像, error 错误信息
func DecodeImage(data []byte, cfg Config, height int) (*Image, error) {
	img := NewImage(cfg.Width, height)
	if img == nil {
		if height <= 0 {
			return nil, ErrInvalidHeight
		}
		return nil, ErrInvalidWidth
	}
	cfg.RowBytes = img.Stride()
	dec, err := NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := dec.DecodeStrip(0, data, img.Data()); err != nil {
		return img, err
	}
	return img, nil
}

// Decode 解码传真数据
// 失败时与 DecodeImage 一样返回已解码部分的图像和错误
// 入参: r 读取器, cfg 编码配置, height 图像高度
// 返回: image.Image 图像, error 错误信息
func Decode(r io.Reader, cfg Config, height int) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(data, cfg, height)
	if img == nil {
		return nil, err
	}
	return img.ToGoImage(), err
}

// EncodeImage 将图像编码为单个条带, G3 附加 RTC
// 入参: img 图像, cfg 编码配置, 宽度和行字节数取自图像
// 返回: []byte 压缩数据, error 错误信息
func EncodeImage(img *Image, cfg Config) ([]byte, error) {
	if img == nil {
		return nil, ErrInvalidWidth
	}
	cfg.Width = img.Width()
	cfg.RowBytes = img.Stride()
	enc, err := NewEncoder(cfg)
	if err != nil {
		return nil, err
	}
	out, err := enc.EncodeStrip(img.Data())
	if err != nil {
		return nil, err
	}
	return append(out, enc.Close()...), nil
}

// Encode 编码Go标准库Image并写入
// 入参: w 写入器, m 图像, cfg 编码配置
// 返回: error 错误信息
func Encode(w io.Writer, m image.Image, cfg Config) error {
	img := NewImageFromGoImage(m)
	if img == nil {
		return ErrInvalidWidth
	}
	data, err := EncodeImage(img, cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
