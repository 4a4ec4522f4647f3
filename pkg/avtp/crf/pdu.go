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

// Package crf implements field access for the AVTP Clock Reference Format PDU header.
//
// The header is kept in wire byte order inside a caller owned PDU value.
// Get and Set translate single fields between the wire and the host,
// Init prepares a fresh header. Nothing here allocates or keeps state,
// concurrent Set calls on the same PDU must be serialized by the caller.
package crf

import (
	"encoding/binary"
	"fmt"

	"jinr.ru/greenlab/go-avtp/pkg/avtp"
)

const (
	// HeaderLen is the size of the fixed CRF header in bytes.
	// It is followed by crf_data_len bytes of timestamps.
	HeaderLen = 20

	offsetSubtypeData = 0
	offsetStreamID    = 4
	offsetPacketInfo  = 12
)

// PDU is the fixed part of a CRF PDU exactly as it appears on the wire:
//
//	0..3   subtype_data (32 bit)
//	4..11  stream_id    (64 bit)
//	12..19 packet_info  (64 bit)
type PDU [HeaderLen]byte

// ErrHeaderTooShort returned when a buffer can not hold a CRF header
type ErrHeaderTooShort struct {
	Len int
}

func (e ErrHeaderTooShort) Error() string {
	return fmt.Sprintf("CRF header too short: %d bytes, must be at least %d", e.Len, HeaderLen)
}

// FromBytes copies the first HeaderLen bytes of data into a new PDU
func FromBytes(data []byte) (*PDU, error) {
	if len(data) < HeaderLen {
		return nil, ErrHeaderTooShort{Len: len(data)}
	}
	pdu := &PDU{}
	copy(pdu[:], data[:HeaderLen])
	return pdu, nil
}

// Bytes returns the header in wire byte order. The slice aliases the PDU.
func (p *PDU) Bytes() []byte {
	return p[:]
}

// Common returns the AVTP common header sharing memory with the PDU
func (p *PDU) Common() *avtp.Common {
	return (*avtp.Common)(p[:avtp.CommonHeaderLen])
}

// word selects one of the header words a field lives in
type word uint8

const (
	// wordNone is used by fields that are not carried on the wire
	wordNone word = iota
	wordSubtypeData
	wordStreamID
	wordPacketInfo
)

// load returns a header word in host byte order
func (p *PDU) load(w word) uint64 {
	switch w {
	case wordSubtypeData:
		return uint64(binary.BigEndian.Uint32(p[offsetSubtypeData:offsetStreamID]))
	case wordStreamID:
		return binary.BigEndian.Uint64(p[offsetStreamID:offsetPacketInfo])
	case wordPacketInfo:
		return binary.BigEndian.Uint64(p[offsetPacketInfo:HeaderLen])
	}
	return 0
}

// store writes a host byte order value back to a header word in wire byte order
func (p *PDU) store(w word, v uint64) {
	switch w {
	case wordSubtypeData:
		binary.BigEndian.PutUint32(p[offsetSubtypeData:offsetStreamID], uint32(v))
	case wordStreamID:
		binary.BigEndian.PutUint64(p[offsetStreamID:offsetPacketInfo], v)
	case wordPacketInfo:
		binary.BigEndian.PutUint64(p[offsetPacketInfo:HeaderLen], v)
	}
}
