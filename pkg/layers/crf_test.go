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
	"bytes"
	"encoding/binary"
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"jinr.ru/greenlab/go-avtp/pkg/avtp"
	"jinr.ru/greenlab/go-avtp/pkg/avtp/crf"
)

var (
	testSrc = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	testDst = net.HardwareAddr{0x91, 0xe0, 0xf0, 0x00, 0xfe, 0x00}
)

func newTestPDU(t *testing.T) *crf.PDU {
	t.Helper()
	pdu := &crf.PDU{}
	if err := crf.Init(pdu); err != nil {
		t.Fatalf("init: %v", err)
	}
	header := &crf.Header{
		StreamID:          0x0011223344556677,
		SV:                1,
		SeqNum:            9,
		Type:              crf.TypeAudioSample,
		BaseFreq:          48000,
		CRFDataLen:        48,
		TimestampInterval: 160,
	}
	if err := header.Apply(pdu); err != nil {
		t.Fatalf("apply: %v", err)
	}
	return pdu
}

func testTimestamps(n int) []byte {
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		binary.BigEndian.PutUint64(buf[i*8:], uint64(1000000*(i+1)))
	}
	return buf
}

func TestCRFFrameRoundTrip(t *testing.T) {
	pdu := newTestPDU(t)
	timestamps := testTimestamps(6)

	frame, err := CRFFrameToBytes(testSrc, testDst, pdu, timestamps)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if len(frame) != 14+crf.HeaderLen+len(timestamps) {
		t.Fatalf("unexpected frame length %d", len(frame))
	}
	if binary.BigEndian.Uint16(frame[12:14]) != uint16(EthernetTypeAVTP) {
		t.Fatalf("unexpected EtherType 0x%04x", binary.BigEndian.Uint16(frame[12:14]))
	}

	packet := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	if errLayer := packet.ErrorLayer(); errLayer != nil {
		t.Fatalf("decode: %v", errLayer.Error())
	}
	layer := packet.Layer(CRFLayerType)
	if layer == nil {
		t.Fatalf("no CRF layer in %v", packet)
	}
	crfLayer := layer.(*CRFLayer)
	if crfLayer.PDU != *pdu {
		t.Fatalf("expected % x, got % x", pdu[:], crfLayer.PDU[:])
	}
	if !bytes.Equal(crfLayer.LayerPayload(), timestamps) {
		t.Fatalf("unexpected payload % x", crfLayer.LayerPayload())
	}

	header, err := crfLayer.Header()
	if err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.SeqNum != 9 || header.BaseFreq != 48000 || header.StreamID != 0x0011223344556677 {
		t.Fatalf("unexpected header %+v", header)
	}
}

func TestDecodeUnknownSubtype(t *testing.T) {
	pdu := newTestPDU(t)
	if err := avtp.Set(pdu.Common(), avtp.FieldSubtype, uint64(avtp.SubtypeAAF)); err != nil {
		t.Fatalf("set subtype: %v", err)
	}
	frame, err := CRFFrameToBytes(testSrc, testDst, pdu, testTimestamps(6))
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	packet := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	if packet.ErrorLayer() == nil {
		t.Fatalf("expected decode error for AAF subtype")
	}
	if packet.Layer(CRFLayerType) != nil {
		t.Fatalf("unexpected CRF layer")
	}
}

func TestDecodeTruncatedAVTP(t *testing.T) {
	frame := make([]byte, 14+2)
	copy(frame[0:6], testDst)
	copy(frame[6:12], testSrc)
	binary.BigEndian.PutUint16(frame[12:14], uint16(EthernetTypeAVTP))
	frame[14] = byte(avtp.SubtypeCRF)

	packet := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	if packet.ErrorLayer() == nil {
		t.Fatalf("expected decode error for truncated frame")
	}
}

func TestCRFLayerDecodeFromBytes(t *testing.T) {
	pdu := newTestPDU(t)
	data := append(append([]byte{}, pdu.Bytes()...), 0xaa, 0xbb)

	c := &CRFLayer{}
	if err := c.DecodeFromBytes(data, gopacket.NilDecodeFeedback); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(c.LayerContents(), pdu.Bytes()) {
		t.Fatalf("unexpected contents % x", c.LayerContents())
	}
	if !bytes.Equal(c.LayerPayload(), []byte{0xaa, 0xbb}) {
		t.Fatalf("unexpected payload % x", c.LayerPayload())
	}

	if err := c.DecodeFromBytes(data[:crf.HeaderLen-1], gopacket.NilDecodeFeedback); err == nil {
		t.Fatalf("expected error for short data")
	}
	data[0] = byte(avtp.SubtypeTSCF)
	if err := c.DecodeFromBytes(data, gopacket.NilDecodeFeedback); err == nil {
		t.Fatalf("expected error for wrong subtype")
	}
}

func TestSubtypeMetadata(t *testing.T) {
	if Subtype(avtp.SubtypeCRF).LayerType() != CRFLayerType {
		t.Fatalf("CRF subtype is not mapped to CRFLayerType")
	}
	if Subtype(avtp.SubtypeCRF).String() != "CRF" {
		t.Fatalf("unexpected name %q", Subtype(avtp.SubtypeCRF).String())
	}
	if Subtype(avtp.SubtypeAAF).String() != "UnknownAVTPSubtype" {
		t.Fatalf("unexpected name %q", Subtype(avtp.SubtypeAAF).String())
	}
	if EthernetTypeAVTP.LayerType() != AVTPLayerType {
		t.Fatalf("EtherType 0x22f0 is not registered")
	}
}
