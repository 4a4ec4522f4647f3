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

	"sigs.k8s.io/yaml"

	"jinr.ru/greenlab/go-avtp/pkg/log"
)

// Header is the host side view of a CRF header
type Header struct {
	StreamID uint64 `json:"streamID"`
	SV       uint8  `json:"sv"`
	MR       uint8  `json:"mr"`
	FS       uint8  `json:"fs"`
	// TV is write-only. Describe leaves it nil, Apply writes it when it is not nil.
	TV                *uint8 `json:"tv,omitempty"`
	TU                uint8  `json:"tu"`
	SeqNum            uint8  `json:"seqNum"`
	Type              Type   `json:"type"`
	Pull              Pull   `json:"pull"`
	BaseFreq          uint64 `json:"baseFreq"` // Hz
	CRFDataLen        uint16 `json:"crfDataLen"`
	TimestampInterval uint16 `json:"timestampInterval"`
}

// Describe reads every readable field of the PDU
func Describe(pdu *PDU) (*Header, error) {
	values := make(map[Field]uint64, fieldMax)
	for _, f := range Fields() {
		if f == FieldTV {
			continue
		}
		val, err := Get(pdu, f)
		if err != nil {
			return nil, err
		}
		values[f] = val
	}
	return &Header{
		StreamID:          values[FieldStreamID],
		SV:                uint8(values[FieldSV]),
		MR:                uint8(values[FieldMR]),
		FS:                uint8(values[FieldFS]),
		TU:                uint8(values[FieldTU]),
		SeqNum:            uint8(values[FieldSeqNum]),
		Type:              Type(values[FieldType]),
		Pull:              Pull(values[FieldPull]),
		BaseFreq:          values[FieldBaseFreq],
		CRFDataLen:        uint16(values[FieldCRFDataLen]),
		TimestampInterval: uint16(values[FieldTimestampInterval]),
	}, nil
}

// Apply writes every field of the header to the PDU stopping at the first error
func (h *Header) Apply(pdu *PDU) error {
	type write struct {
		field Field
		value uint64
	}
	writes := []write{
		{FieldStreamID, h.StreamID},
		{FieldSV, uint64(h.SV)},
		{FieldMR, uint64(h.MR)},
		{FieldFS, uint64(h.FS)},
		{FieldTU, uint64(h.TU)},
		{FieldSeqNum, uint64(h.SeqNum)},
		{FieldType, uint64(h.Type)},
		{FieldPull, uint64(h.Pull)},
		{FieldBaseFreq, h.BaseFreq},
		{FieldCRFDataLen, uint64(h.CRFDataLen)},
		{FieldTimestampInterval, uint64(h.TimestampInterval)},
	}
	if h.TV != nil {
		writes = append(writes, write{FieldTV, uint64(*h.TV)})
	}
	for _, w := range writes {
		if err := Set(pdu, w.field, w.value); err != nil {
			log.Debug("Error while applying field %s=%d: %s", w.field, w.value, err)
			return err
		}
	}
	return nil
}

func (h *Header) String() string {
	result, err := yaml.Marshal(h)
	if err != nil {
		log.Error("Error occured while marshaling CRF header, %s", err)
		return ""
	}
	return fmt.Sprintf("---\n%s", string(result))
}
