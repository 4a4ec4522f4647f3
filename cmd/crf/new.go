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
	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-avtp/pkg/avtp/crf"
	pkgconfig "jinr.ru/greenlab/go-avtp/pkg/config"
	"jinr.ru/greenlab/go-avtp/pkg/log"
)

func NewNewCommand(cfg *pkgconfig.Config) *cobra.Command {
	var streamID, baseFreq, seqNum string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Build a CRF header from config defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := cfg.CRFConfig.Header()
			if streamID != "" {
				v, err := parseValue(streamID)
				if err != nil {
					return err
				}
				header.StreamID = v
			}
			if baseFreq != "" {
				v, err := parseValue(baseFreq)
				if err != nil {
					return err
				}
				header.BaseFreq = v
			}
			if seqNum != "" {
				v, err := parseValue(seqNum)
				if err != nil {
					return err
				}
				header.SeqNum = uint8(v)
			}

			pdu := &crf.PDU{}
			if err := crf.Init(pdu); err != nil {
				return err
			}
			if err := header.Apply(pdu); err != nil {
				return err
			}
			log.Debug("New CRF header:\n%s", header)
			printPDU(cmd, pdu)
			return nil
		},
	}
	cmd.Flags().StringVar(&streamID, StreamIDOptionName, "", "Stream ID. E.g. 0x0011223344556677")
	cmd.Flags().StringVar(&baseFreq, BaseFreqOptionName, "", "Base frequency in Hz. E.g. 48000")
	cmd.Flags().StringVar(&seqNum, SeqNumOptionName, "", "Sequence number")
	return cmd
}
