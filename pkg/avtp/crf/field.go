/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package crf

import (
	"fmt"
	"strings"

	"jinr.ru/greenlab/go-avtp/pkg/avtp"
)

type Field int

const (
	FieldSV Field = iota
	FieldMR
	FieldFS
	FieldTU
	FieldSeqNum
	FieldType
	FieldStreamID
	FieldPull
	FieldBaseFreq
	FieldCRFDataLen
	FieldTimestampInterval
	// FieldTV can be set but not read back, see Get
	FieldTV
	fieldMax
)

var fieldNames = [fieldMax]string{
	FieldSV:                "sv",
	FieldMR:                "mr",
	FieldFS:                "fs",
	FieldTU:                "tu",
	FieldSeqNum:            "seq_num",
	FieldType:              "type",
	FieldStreamID:          "stream_id",
	FieldPull:              "pull",
	FieldBaseFreq:          "base_freq",
	FieldCRFDataLen:        "crf_data_len",
	FieldTimestampInterval: "timestamp_interval",
	FieldTV:                "tv",
}

func (f Field) String() string {
	if f < 0 || f >= fieldMax {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fields returns all known fields in declaration order
func Fields() []Field {
	fields := make([]Field, 0, fieldMax)
	for f := Field(0); f < fieldMax; f++ {
		fields = append(fields, f)
	}
	return fields
}

// ParseField returns the field with the given name, e.g. "seq_num".
// Dashes are accepted in place of underscores.
func ParseField(name string) (Field, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for f, n := range fieldNames {
		if n == normalized {
			return Field(f), nil
		}
	}
	return 0, avtp.ErrField{Op: "parse", Field: name}
}

// Bit positions are counted from the most significant bit of a word
// as in IEEE 1722, hence the 31 - n and 63 - n notation.
const (
	shiftSV                = 31 - 8
	shiftMR                = 31 - 12
	shiftFS                = 31 - 14
	shiftTV                = 31 - 15
	shiftSeqNum            = 31 - 23
	shiftTU                = 31 - 31
	shiftCRFDataLen        = 63 - 15
	shiftType              = 63 - 31
	shiftBaseFreq          = 63 - 39
	shiftTimestampInterval = 0
)

func bitmask(width uint8) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// descriptor tells where a field lives and how its value is translated.
// decode and encode are applied on top of the raw bits when set.
type descriptor struct {
	word   word
	mask   uint64
	shift  uint8
	get    bool
	set    bool
	decode func(raw uint64) (uint64, error)
	encode func(val uint64) (uint64, error)
}

func plain(w word, width, shift uint8) descriptor {
	return descriptor{
		word:  w,
		mask:  bitmask(width) << shift,
		shift: shift,
		get:   true,
		set:   true,
	}
}

var descriptors = [fieldMax]descriptor{
	FieldSV:                plain(wordSubtypeData, 1, shiftSV),
	FieldMR:                plain(wordSubtypeData, 1, shiftMR),
	FieldFS:                plain(wordSubtypeData, 1, shiftFS),
	FieldTU:                plain(wordSubtypeData, 1, shiftTU),
	FieldSeqNum:            plain(wordSubtypeData, 8, shiftSeqNum),
	FieldType:              plain(wordPacketInfo, 16, shiftType),
	FieldStreamID:          plain(wordStreamID, 64, 0),
	FieldCRFDataLen:        plain(wordPacketInfo, 16, shiftCRFDataLen),
	FieldTimestampInterval: plain(wordPacketInfo, 16, shiftTimestampInterval),
	FieldBaseFreq: {
		word:   wordPacketInfo,
		mask:   bitmask(8) << shiftBaseFreq,
		shift:  shiftBaseFreq,
		get:    true,
		set:    true,
		decode: FreqToRate,
		encode: RateToFreq,
	},
	// Pull occupies no bits, only the 1.0 multiplier is supported
	FieldPull: {
		word:   wordNone,
		get:    true,
		set:    true,
		decode: decodePull,
		encode: encodePull,
	},
	// TODO: allow reading TV once it is confirmed that the missing getter is not intended
	FieldTV: {
		word:  wordSubtypeData,
		mask:  bitmask(1) << shiftTV,
		shift: shiftTV,
		set:   true,
	},
}

type direction int

const (
	opGet direction = iota
	opSet
)

func (d direction) String() string {
	if d == opGet {
		return "get"
	}
	return "set"
}

// resolve returns the descriptor of a field if it supports the direction
func resolve(f Field, op direction) (*descriptor, error) {
	if f < 0 || f >= fieldMax {
		return nil, avtp.ErrField{Op: op.String(), Field: f.String()}
	}
	d := &descriptors[f]
	if (op == opGet && !d.get) || (op == opSet && !d.set) {
		return nil, avtp.ErrField{Op: op.String(), Field: f.String()}
	}
	return d, nil
}
