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

// 解码状态
const (
	stateNull uint8 = iota
	statePass
	stateHoriz
	stateV0
	stateVR
	stateVL
	stateExt
	stateTermW
	stateTermB
	stateMakeUpW
	stateMakeUpB
	stateMakeUp
	stateEOL
)

// 解码表索引位宽
const (
	mainTableBits  = 7
	whiteTableBits = 12
	blackTableBits = 13
)

// eolCode EOL 码字 0000 0000 0001
const (
	eolCode   = 0x001
	eolLength = 12
)

// faxEntry 解码表项
type faxEntry struct {
	state uint8
	width uint8
	param int32
}

// faxCode 编码表项
type faxCode struct {
	length int
	code   uint32
	runLen int32
}

// whiteCodes 白游程编码, 下标 0..63 为终止码, 63+n 为 n*64 的补充码
var whiteCodes = [...]faxCode{
	{8, 0x035, 0}, {6, 0x007, 1}, {4, 0x007, 2}, {4, 0x008, 3},
	{4, 0x00B, 4}, {4, 0x00C, 5}, {4, 0x00E, 6}, {4, 0x00F, 7},
	{5, 0x013, 8}, {5, 0x014, 9}, {5, 0x007, 10}, {5, 0x008, 11},
	{6, 0x008, 12}, {6, 0x003, 13}, {6, 0x034, 14}, {6, 0x035, 15},
	{6, 0x02A, 16}, {6, 0x02B, 17}, {7, 0x027, 18}, {7, 0x00C, 19},
	{7, 0x008, 20}, {7, 0x017, 21}, {7, 0x003, 22}, {7, 0x004, 23},
	{7, 0x028, 24}, {7, 0x02B, 25}, {7, 0x013, 26}, {7, 0x024, 27},
	{7, 0x018, 28}, {8, 0x002, 29}, {8, 0x003, 30}, {8, 0x01A, 31},
	{8, 0x01B, 32}, {8, 0x012, 33}, {8, 0x013, 34}, {8, 0x014, 35},
	{8, 0x015, 36}, {8, 0x016, 37}, {8, 0x017, 38}, {8, 0x028, 39},
	{8, 0x029, 40}, {8, 0x02A, 41}, {8, 0x02B, 42}, {8, 0x02C, 43},
	{8, 0x02D, 44}, {8, 0x004, 45}, {8, 0x005, 46}, {8, 0x00A, 47},
	{8, 0x00B, 48}, {8, 0x052, 49}, {8, 0x053, 50}, {8, 0x054, 51},
	{8, 0x055, 52}, {8, 0x024, 53}, {8, 0x025, 54}, {8, 0x058, 55},
	{8, 0x059, 56}, {8, 0x05A, 57}, {8, 0x05B, 58}, {8, 0x04A, 59},
	{8, 0x04B, 60}, {8, 0x032, 61}, {8, 0x033, 62}, {8, 0x034, 63},
	{5, 0x01B, 64}, {5, 0x012, 128}, {6, 0x017, 192}, {7, 0x037, 256},
	{8, 0x036, 320}, {8, 0x037, 384}, {8, 0x064, 448}, {8, 0x065, 512},
	{8, 0x068, 576}, {8, 0x067, 640}, {9, 0x0CC, 704}, {9, 0x0CD, 768},
	{9, 0x0D2, 832}, {9, 0x0D3, 896}, {9, 0x0D4, 960}, {9, 0x0D5, 1024},
	{9, 0x0D6, 1088}, {9, 0x0D7, 1152}, {9, 0x0D8, 1216}, {9, 0x0D9, 1280},
	{9, 0x0DA, 1344}, {9, 0x0DB, 1408}, {9, 0x098, 1472}, {9, 0x099, 1536},
	{9, 0x09A, 1600}, {6, 0x018, 1664}, {9, 0x09B, 1728}, {11, 0x008, 1792},
	{11, 0x00C, 1856}, {11, 0x00D, 1920}, {12, 0x012, 1984}, {12, 0x013, 2048},
	{12, 0x014, 2112}, {12, 0x015, 2176}, {12, 0x016, 2240}, {12, 0x017, 2304},
	{12, 0x01C, 2368}, {12, 0x01D, 2432}, {12, 0x01E, 2496}, {12, 0x01F, 2560},
}

// blackCodes 黑游程编码, 布局同 whiteCodes
var blackCodes = [...]faxCode{
	{10, 0x037, 0}, {3, 0x002, 1}, {2, 0x003, 2}, {2, 0x002, 3},
	{3, 0x003, 4}, {4, 0x003, 5}, {4, 0x002, 6}, {5, 0x003, 7},
	{6, 0x005, 8}, {6, 0x004, 9}, {7, 0x004, 10}, {7, 0x005, 11},
	{7, 0x007, 12}, {8, 0x004, 13}, {8, 0x007, 14}, {9, 0x018, 15},
	{10, 0x017, 16}, {10, 0x018, 17}, {10, 0x008, 18}, {11, 0x067, 19},
	{11, 0x068, 20}, {11, 0x06C, 21}, {11, 0x037, 22}, {11, 0x028, 23},
	{11, 0x017, 24}, {11, 0x018, 25}, {12, 0x0CA, 26}, {12, 0x0CB, 27},
	{12, 0x0CC, 28}, {12, 0x0CD, 29}, {12, 0x068, 30}, {12, 0x069, 31},
	{12, 0x06A, 32}, {12, 0x06B, 33}, {12, 0x0D2, 34}, {12, 0x0D3, 35},
	{12, 0x0D4, 36}, {12, 0x0D5, 37}, {12, 0x0D6, 38}, {12, 0x0D7, 39},
	{12, 0x06C, 40}, {12, 0x06D, 41}, {12, 0x0DA, 42}, {12, 0x0DB, 43},
	{12, 0x054, 44}, {12, 0x055, 45}, {12, 0x056, 46}, {12, 0x057, 47},
	{12, 0x064, 48}, {12, 0x065, 49}, {12, 0x052, 50}, {12, 0x053, 51},
	{12, 0x024, 52}, {12, 0x037, 53}, {12, 0x038, 54}, {12, 0x027, 55},
	{12, 0x028, 56}, {12, 0x058, 57}, {12, 0x059, 58}, {12, 0x02B, 59},
	{12, 0x02C, 60}, {12, 0x05A, 61}, {12, 0x066, 62}, {12, 0x067, 63},
	{10, 0x00F, 64}, {12, 0x0C8, 128}, {12, 0x0C9, 192}, {12, 0x05B, 256},
	{12, 0x033, 320}, {12, 0x034, 384}, {12, 0x035, 448}, {13, 0x06C, 512},
	{13, 0x06D, 576}, {13, 0x04A, 640}, {13, 0x04B, 704}, {13, 0x04C, 768},
	{13, 0x04D, 832}, {13, 0x072, 896}, {13, 0x073, 960}, {13, 0x074, 1024},
	{13, 0x075, 1088}, {13, 0x076, 1152}, {13, 0x077, 1216}, {13, 0x052, 1280},
	{13, 0x053, 1344}, {13, 0x054, 1408}, {13, 0x055, 1472}, {13, 0x05A, 1536},
	{13, 0x05B, 1600}, {13, 0x064, 1664}, {13, 0x065, 1728}, {11, 0x008, 1792},
	{11, 0x00C, 1856}, {11, 0x00D, 1920}, {12, 0x012, 1984}, {12, 0x013, 2048},
	{12, 0x014, 2112}, {12, 0x015, 2176}, {12, 0x016, 2240}, {12, 0x017, 2304},
	{12, 0x01C, 2368}, {12, 0x01D, 2432}, {12, 0x01E, 2496}, {12, 0x01F, 2560},
}

// 二维模式编码
var (
	passCode  = faxCode{4, 0x1, 0}
	horizCode = faxCode{3, 0x1, 0}
	// vCodes 以 b1-a1+3 为下标
	vCodes = [7]faxCode{
		{7, 0x03, 0}, // VR3 0000 011
		{6, 0x03, 0}, // VR2 0000 11
		{3, 0x03, 0}, // VR1 011
		{1, 0x1, 0},  // V0  1
		{3, 0x2, 0},  // VL1 010
		{6, 0x02, 0}, // VL2 0000 10
		{7, 0x02, 0}, // VL3 0000 010
	}
)

// modeCodes 主表码字: 位长, 码字, 解码状态, 参数
var modeCodes = [][4]int{
	{4, 0x1, int(statePass), 0},
	{3, 0x1, int(stateHoriz), 0},
	{1, 0x1, int(stateV0), 0},
	{3, 0x3, int(stateVR), 1},
	{6, 0x3, int(stateVR), 2},
	{7, 0x3, int(stateVR), 3},
	{3, 0x2, int(stateVL), 1},
	{6, 0x2, int(stateVL), 2},
	{7, 0x2, int(stateVL), 3},
	{7, 0x1, int(stateExt), 0},
	{7, 0x0, int(stateEOL), 0},
}

var (
	mainTable  [1 << mainTableBits]faxEntry
	whiteTable [1 << whiteTableBits]faxEntry
	blackTable [1 << blackTableBits]faxEntry
)

func init() {
	for _, c := range modeCodes {
		createLittleEndianTable(mainTable[:], mainTableBits, c[0], uint32(c[1]),
			faxEntry{state: uint8(c[2]), width: uint8(c[0]), param: int32(c[3])})
	}
	createRunTable(whiteTable[:], whiteTableBits, whiteCodes[:], stateTermW, stateMakeUpW)
	createRunTable(blackTable[:], blackTableBits, blackCodes[:], stateTermB, stateMakeUpB)
}

// createRunTable 创建游程解码表
// 入参: table 解码表, tableBits 索引位宽, codes 编码集, term 终止码状态, makeUp 补充码状态
func createRunTable(table []faxEntry, tableBits int, codes []faxCode, term, makeUp uint8) {
	for _, c := range codes {
		state := term
		switch {
		case c.runLen >= 1792:
			state = stateMakeUp
		case c.runLen >= 64:
			state = makeUp
		}
		createLittleEndianTable(table, tableBits, c.length, c.code,
			faxEntry{state: state, width: uint8(c.length), param: c.runLen})
	}
	// EOL 只识别 11 个 0, 标志位留给同步过程
	createLittleEndianTable(table, tableBits, 11, 0, faxEntry{state: stateEOL, width: 11})
}

// createLittleEndianTable 按低位在前的顺序填充直接索引表
// 入参: table 解码表, tableBits 索引位宽, length 码长, code 码字, entry 表项
func createLittleEndianTable(table []faxEntry, tableBits, length int, code uint32, entry faxEntry) {
	base := reverseCode(code, length)
	for variant := 0; variant < 1<<uint(tableBits-length); variant++ {
		table[base|uint32(variant)<<uint(length)] = entry
	}
}

// reverseCode 反转码字的低 length 位
// 入参: code 码字, length 码长
// 返回: uint32 反转后的码字
func reverseCode(code uint32, length int) uint32 {
	var r uint32
	for i := 0; i < length; i++ {
		r = r<<1 | code&1
		code >>= 1
	}
	return r
}
