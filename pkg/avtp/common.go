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

// Package avtp implements the header fields shared by every AVTP PDU.
// Subtype specific layouts live in subpackages, e.g. avtp/crf.
package avtp

import (
	"encoding/binary"
	"fmt"
)

// CommonHeaderLen is the size of the common header in bytes
const CommonHeaderLen = 4

type Subtype uint8

// AVTP subtypes, IEEE 1722-2016 table 6
const (
	Subtype61883IIDC     Subtype = 0x00
	SubtypeMMAStream     Subtype = 0x01
	SubtypeAAF           Subtype = 0x02
	SubtypeCVF           Subtype = 0x03
	SubtypeCRF           Subtype = 0x04
	SubtypeTSCF          Subtype = 0x05
	SubtypeSVF           Subtype = 0x06
	SubtypeRVF           Subtype = 0x07
	SubtypeAEFContinuous Subtype = 0x6e
	SubtypeVSFStream     Subtype = 0x6f
	SubtypeEFStream      Subtype = 0x7f
	SubtypeNTSCF         Subtype = 0x82
	SubtypeESCF          Subtype = 0xec
	SubtypeEECF          Subtype = 0xed
	SubtypeAEFDiscrete   Subtype = 0xee
	SubtypeADP           Subtype = 0xfa
	SubtypeAECP          Subtype = 0xfb
	SubtypeACMP          Subtype = 0xfc
	SubtypeMAAP          Subtype = 0xfe
	SubtypeEFControl     Subtype = 0xff
)

var subtypeNames = map[Subtype]string{
	Subtype61883IIDC:     "61883/IIDC",
	SubtypeMMAStream:     "MMA stream",
	SubtypeAAF:           "AAF",
	SubtypeCVF:           "CVF",
	SubtypeCRF:           "CRF",
	SubtypeTSCF:          "TSCF",
	SubtypeSVF:           "SVF",
	SubtypeRVF:           "RVF",
	SubtypeAEFContinuous: "AEF continuous",
	SubtypeVSFStream:     "VSF stream",
	SubtypeEFStream:      "EF stream",
	SubtypeNTSCF:         "NTSCF",
	SubtypeESCF:          "ESCF",
	SubtypeEECF:          "EECF",
	SubtypeAEFDiscrete:   "AEF discrete",
	SubtypeADP:           "ADP",
	SubtypeAECP:          "AECP",
	SubtypeACMP:          "ACMP",
	SubtypeMAAP:          "MAAP",
	SubtypeEFControl:     "EF control",
}

func (s Subtype) String() string {
	if name, ok := subtypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%02x)", uint8(s))
}

type Field int

const (
	FieldSubtype Field = iota
	FieldVersion
)

func (f Field) String() string {
	switch f {
	case FieldSubtype:
		return "subtype"
	case FieldVersion:
		return "version"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

const (
	shiftSubtype = 31 - 7
	shiftVersion = 31 - 11

	maskSubtype = uint32(0xff) << shiftSubtype
	maskVersion = uint32(0x7) << shiftVersion
)

// Common is the first 32-bit word of every AVTP PDU in wire byte order.
// Subtype specific PDUs embed it and hand out a pointer to it.
type Common [CommonHeaderLen]byte

func (h *Common) word() uint32 {
	return binary.BigEndian.Uint32(h[:])
}

func (h *Common) putWord(w uint32) {
	binary.BigEndian.PutUint32(h[:], w)
}

func resolve(f Field) (mask uint32, shift uint8, ok bool) {
	switch f {
	case FieldSubtype:
		return maskSubtype, shiftSubtype, true
	case FieldVersion:
		return maskVersion, shiftVersion, true
	}
	return 0, 0, false
}

// Get returns the value of a common header field
func Get(h *Common, f Field) (uint64, error) {
	if h == nil {
		return 0, ErrInvalidArgument
	}
	mask, shift, ok := resolve(f)
	if !ok {
		return 0, ErrField{Op: "get", Field: f.String()}
	}
	return uint64((h.word() & mask) >> shift), nil
}

// Set overwrites a common header field leaving the rest of the word untouched.
// Bits of val beyond the width of the field are dropped.
func Set(h *Common, f Field, val uint64) error {
	if h == nil {
		return ErrInvalidArgument
	}
	mask, shift, ok := resolve(f)
	if !ok {
		return ErrField{Op: "set", Field: f.String()}
	}
	w := h.word()
	w = (w &^ mask) | ((uint32(val) << shift) & mask)
	h.putWord(w)
	return nil
}
