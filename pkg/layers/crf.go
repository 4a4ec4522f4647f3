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
	"encoding/hex"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"jinr.ru/greenlab/go-avtp/pkg/avtp"
	"jinr.ru/greenlab/go-avtp/pkg/avtp/crf"
	"jinr.ru/greenlab/go-avtp/pkg/log"
)

const (
	// CRFLayerNum identifies the layer
	CRFLayerNum = 2001
)

// CRFLayer is a CRF PDU. The timestamps following the header
// are left undecoded in Payload.
type CRFLayer struct {
	layers.BaseLayer
	crf.PDU
}

var CRFLayerType = gopacket.RegisterLayerType(CRFLayerNum,
	gopacket.LayerTypeMetadata{Name: "CRFLayerType", Decoder: gopacket.DecodeFunc(DecodeCRFLayer)})

// LayerType returns the type of the CRF layer in the layer catalog
func (c *CRFLayer) LayerType() gopacket.LayerType {
	return CRFLayerType
}

func (c *CRFLayer) CanDecode() gopacket.LayerClass {
	return CRFLayerType
}

func (c *CRFLayer) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// Header returns the host side view of the layer's PDU
func (c *CRFLayer) Header() (*crf.Header, error) {
	return crf.Describe(&c.PDU)
}

// SerializeTo writes the CRF header in front of whatever is already in the buffer
func (c *CRFLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	headerBytes, err := b.PrependBytes(crf.HeaderLen)
	if err != nil {
		return err
	}
	copy(headerBytes, c.PDU.Bytes())
	return nil
}

// DecodeFromBytes attempts to decode the byte slice as a CRF PDU
func (c *CRFLayer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	log.Debug("DecodeFromBytes: decoding CRF layer")
	log.Debug("DecodeFromBytes: data: \n%s", hex.Dump(data))

	pdu, err := crf.FromBytes(data)
	if err != nil {
		df.SetTruncated()
		return err
	}
	subtype, err := avtp.Get(pdu.Common(), avtp.FieldSubtype)
	if err != nil {
		return err
	}
	if avtp.Subtype(subtype) != avtp.SubtypeCRF {
		return fmt.Errorf("Wrong AVTP subtype for CRF layer: %s", avtp.Subtype(subtype))
	}

	c.PDU = *pdu
	c.BaseLayer = layers.BaseLayer{
		Contents: data[:crf.HeaderLen],
		Payload:  data[crf.HeaderLen:],
	}
	return nil
}

func DecodeCRFLayer(data []byte, p gopacket.PacketBuilder) error {
	c := &CRFLayer{}
	err := c.DecodeFromBytes(data, p)
	if err != nil {
		log.Error("Error while decoding CRF layer: %s", err)
		return err
	}
	p.AddLayer(c)
	return p.NextDecoder(c.NextLayerType())
}

// CRFFrameToBytes serializes an Ethernet frame carrying the CRF header and its timestamps
func CRFFrameToBytes(src, dst net.HardwareAddr, pdu *crf.PDU, timestamps []byte) ([]byte, error) {
	eth := &layers.Ethernet{
		SrcMAC:       src,
		DstMAC:       dst,
		EthernetType: EthernetTypeAVTP,
	}
	c := &CRFLayer{PDU: *pdu}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{}
	err := gopacket.SerializeLayers(buf, opts, eth, c, gopacket.Payload(timestamps))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
