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
	"encoding/hex"
	"errors"
	"fmt"
	"net"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/spf13/cobra"

	pkglayers "jinr.ru/greenlab/go-avtp/pkg/layers"
)

// DefaultDstMac is the multicast address IEEE 1722 reserves for CRF streams
const DefaultDstMac = "91:e0:f0:00:fe:00"

func NewFrameCommand() *cobra.Command {
	var pduHex, payloadHex, srcMac, dstMac string
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Wrap a CRF header and its timestamps into an Ethernet frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			pdu, err := parsePDU(pduHex)
			if err != nil {
				return err
			}
			payload, err := decodeHex(payloadHex)
			if err != nil {
				return err
			}
			src, err := net.ParseMAC(srcMac)
			if err != nil {
				return err
			}
			dst, err := net.ParseMAC(dstMac)
			if err != nil {
				return err
			}
			frame, err := pkglayers.CRFFrameToBytes(src, dst, pdu, payload)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(frame))
			return nil
		},
	}
	cmd.Flags().StringVar(&pduHex, PDUOptionName, "", "CRF header (hexadecimal)")
	cmd.Flags().StringVar(&payloadHex, PayloadOptionName, "", "Timestamps following the header (hexadecimal)")
	cmd.Flags().StringVar(&srcMac, SrcMacOptionName, "00:00:00:00:00:00", "Source MAC address")
	cmd.Flags().StringVar(&dstMac, DstMacOptionName, DefaultDstMac, "Destination MAC address")
	return cmd
}

func NewParseCommand() *cobra.Command {
	var frameHex string
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Decode an Ethernet frame carrying a CRF PDU",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := decodeHex(frameHex)
			if err != nil {
				return err
			}
			packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
			if errLayer := packet.ErrorLayer(); errLayer != nil {
				return errLayer.Error()
			}
			layer := packet.Layer(pkglayers.CRFLayerType)
			if layer == nil {
				return errors.New("Frame does not carry a CRF PDU")
			}
			crfLayer := layer.(*pkglayers.CRFLayer)
			header, err := crfLayer.Header()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), header)
			fmt.Fprintf(cmd.OutOrStdout(), "payload: %s\n", hex.EncodeToString(crfLayer.LayerPayload()))
			return nil
		},
	}
	cmd.Flags().StringVar(&frameHex, FrameOptionName, "", "Ethernet frame (hexadecimal)")
	return cmd
}
