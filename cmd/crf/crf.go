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
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-avtp/pkg/avtp/crf"
	pkgconfig "jinr.ru/greenlab/go-avtp/pkg/config"
)

const (
	PDUOptionName      = "pdu"
	FieldOptionName    = "field"
	ValueOptionName    = "value"
	StreamIDOptionName = "stream-id"
	BaseFreqOptionName = "base-freq"
	SeqNumOptionName   = "seq-num"
	PayloadOptionName  = "payload"
	SrcMacOptionName   = "src-mac"
	DstMacOptionName   = "dst-mac"
	FrameOptionName    = "frame"
)

// NewCommand creates the crf command group. Headers and frames are read
// from and written to the command line as hex strings.
func NewCommand(cfg *pkgconfig.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crf",
		Short: "Build and inspect CRF headers",
	}
	cmd.AddCommand(NewNewCommand(cfg))
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewSetCommand())
	cmd.AddCommand(NewShowCommand())
	cmd.AddCommand(NewFrameCommand())
	cmd.AddCommand(NewParseCommand())
	return cmd
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.NewReplacer(" ", "", ":", "").Replace(s)
	return hex.DecodeString(s)
}

func parsePDU(s string) (*crf.PDU, error) {
	if s == "" {
		return nil, fmt.Errorf("--%s is required", PDUOptionName)
	}
	data, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	return crf.FromBytes(data)
}

func parseValue(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

func printPDU(cmd *cobra.Command, pdu *crf.PDU) {
	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(pdu.Bytes()))
}

func fieldNames() string {
	var names []string
	for _, f := range crf.Fields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
