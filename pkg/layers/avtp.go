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

package layers

import (
	"errors"
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"jinr.ru/greenlab/go-avtp/pkg/avtp"
	"jinr.ru/greenlab/go-avtp/pkg/log"
)

const (
	// EthernetTypeAVTP is the IEEE 1722 EtherType
	EthernetTypeAVTP layers.EthernetType = 0x22f0
	// AVTPLayerNum identifies the layer
	AVTPLayerNum = 2000
)

func init() {
	initUnknownSubtypes()
	initActualSubtypes()
	layers.EthernetTypeMetadata[EthernetTypeAVTP] = layers.EnumMetadata{
		DecodeWith: gopacket.DecodeFunc(decodeAVTP),
		Name:       "AVTP",
		LayerType:  AVTPLayerType,
	}
}

// Subtype wraps avtp.Subtype so it can be used as a gopacket decoder
type Subtype avtp.Subtype

type errorDecoderForSubtype int

func (e *errorDecoderForSubtype) Decode(data []byte, p gopacket.PacketBuilder) error {
	return e
}

func (e *errorDecoderForSubtype) Error() string {
	return fmt.Sprintf("Unable to decode AVTP subtype %s", avtp.Subtype(*e))
}

var errorDecodersForSubtype [256]errorDecoderForSubtype
var SubtypeMetadata [256]layers.EnumMetadata

func initUnknownSubtypes() {
	for i := 0; i < 256; i++ {
		errorDecodersForSubtype[i] = errorDecoderForSubtype(i)
		SubtypeMetadata[i] = layers.EnumMetadata{
			DecodeWith: &errorDecodersForSubtype[i],
			Name:       "UnknownAVTPSubtype",
		}
	}
}

func initActualSubtypes() {
	SubtypeMetadata[avtp.SubtypeCRF] = layers.EnumMetadata{DecodeWith: gopacket.DecodeFunc(DecodeCRFLayer), Name: "CRF", LayerType: CRFLayerType}
}

// LayerType returns SubtypeMetadata.LayerType
func (s Subtype) LayerType() gopacket.LayerType {
	return SubtypeMetadata[s].LayerType
}

// Decode calls SubtypeMetadata.DecodeWith's decoder
func (s Subtype) Decode(data []byte, p gopacket.PacketBuilder) error {
	return SubtypeMetadata[s].DecodeWith.Decode(data, p)
}

// String returns SubtypeMetadata.Name
func (s Subtype) String() string {
	return SubtypeMetadata[s].Name
}

// AVTPLayerType is what Ethernet frames with EthernetTypeAVTP decode to.
// The frame is handed over to the layer of its subtype, so packets never
// carry a layer of this type. It exists to be reported by EthernetType.LayerType.
var AVTPLayerType = gopacket.RegisterLayerType(AVTPLayerNum,
	gopacket.LayerTypeMetadata{Name: "AVTPLayerType", Decoder: gopacket.DecodeFunc(decodeAVTP)})

func decodeAVTP(data []byte, p gopacket.PacketBuilder) error {
	if len(data) < avtp.CommonHeaderLen {
		p.SetTruncated()
		return errors.New("AVTP packet too short")
	}
	subtype := Subtype(data[0])
	log.Debug("decodeAVTP: subtype: %s", avtp.Subtype(subtype))
	return subtype.Decode(data, p)
}
