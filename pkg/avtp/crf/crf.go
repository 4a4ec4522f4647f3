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
	"jinr.ru/greenlab/go-avtp/pkg/avtp"
)

// Get returns the host value of a field.
// The base frequency is returned in Hz. FieldTV is not readable.
func Get(pdu *PDU, f Field) (uint64, error) {
	if pdu == nil {
		return 0, avtp.ErrInvalidArgument
	}
	d, err := resolve(f, opGet)
	if err != nil {
		return 0, err
	}

	var val uint64
	if d.word != wordNone {
		val = (pdu.load(d.word) & d.mask) >> d.shift
	}
	if d.decode != nil {
		return d.decode(val)
	}
	return val, nil
}

// Set writes the host value of a field preserving all other bits of its word.
// The base frequency is given in Hz. Bits of val beyond the field width are dropped.
func Set(pdu *PDU, f Field, val uint64) error {
	if pdu == nil {
		return avtp.ErrInvalidArgument
	}
	d, err := resolve(f, opSet)
	if err != nil {
		return err
	}

	if d.encode != nil {
		val, err = d.encode(val)
		if err != nil {
			return err
		}
	}
	if d.word == wordNone {
		return nil
	}

	bitmap := pdu.load(d.word)
	bitmap = (bitmap &^ d.mask) | ((val << d.shift) & d.mask)
	pdu.store(d.word, bitmap)
	return nil
}

// Init zeroes the PDU, stamps the CRF subtype and marks both
// the stream ID and the timestamps as valid
func Init(pdu *PDU) error {
	if pdu == nil {
		return avtp.ErrInvalidArgument
	}

	*pdu = PDU{}

	if err := avtp.Set(pdu.Common(), avtp.FieldSubtype, uint64(avtp.SubtypeCRF)); err != nil {
		return err
	}
	if err := Set(pdu, FieldSV, 1); err != nil {
		return err
	}
	// timestamps are usually interpreted as valid
	if err := Set(pdu, FieldTV, 1); err != nil {
		return err
	}
	return nil
}
