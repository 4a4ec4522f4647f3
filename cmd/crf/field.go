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

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-avtp/pkg/avtp/crf"
)

func NewGetCommand() *cobra.Command {
	var pduHex, field string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get field value",
		RunE: func(cmd *cobra.Command, args []string) error {
			pdu, err := parsePDU(pduHex)
			if err != nil {
				return err
			}
			f, err := crf.ParseField(field)
			if err != nil {
				return err
			}
			val, err := crf.Get(pdu, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), val)
			return nil
		},
	}
	cmd.Flags().StringVar(&pduHex, PDUOptionName, "", "CRF header (hexadecimal)")
	cmd.Flags().StringVar(&field, FieldOptionName, "", fmt.Sprintf("Field name. One of: %s", fieldNames()))
	return cmd
}

func NewSetCommand() *cobra.Command {
	var pduHex, field, value string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set field value and print the new header",
		RunE: func(cmd *cobra.Command, args []string) error {
			pdu, err := parsePDU(pduHex)
			if err != nil {
				return err
			}
			f, err := crf.ParseField(field)
			if err != nil {
				return err
			}
			val, err := parseValue(value)
			if err != nil {
				return err
			}
			if err := crf.Set(pdu, f, val); err != nil {
				return err
			}
			printPDU(cmd, pdu)
			return nil
		},
	}
	cmd.Flags().StringVar(&pduHex, PDUOptionName, "", "CRF header (hexadecimal)")
	cmd.Flags().StringVar(&field, FieldOptionName, "", fmt.Sprintf("Field name. One of: %s", fieldNames()))
	cmd.Flags().StringVar(&value, ValueOptionName, "", "Field value (decimal or 0x prefixed hexadecimal)")
	return cmd
}

func NewShowCommand() *cobra.Command {
	var pduHex string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print all readable fields of a header",
		RunE: func(cmd *cobra.Command, args []string) error {
			pdu, err := parsePDU(pduHex)
			if err != nil {
				return err
			}
			header, err := crf.Describe(pdu)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), header)
			return nil
		},
	}
	cmd.Flags().StringVar(&pduHex, PDUOptionName, "", "CRF header (hexadecimal)")
	return cmd
}
