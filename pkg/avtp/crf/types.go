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

	"jinr.ru/greenlab/go-avtp/pkg/avtp"
)

// Type is the value of the type field
type Type uint16

const (
	TypeUser Type = iota
	TypeAudioSample
	TypeVideoFrame
	TypeVideoLine
	TypeMachineCycle
)

func (t Type) String() string {
	switch t {
	case TypeUser:
		return "user"
	case TypeAudioSample:
		return "audio-sample"
	case TypeVideoFrame:
		return "video-frame"
	case TypeVideoLine:
		return "video-line"
	case TypeMachineCycle:
		return "machine-cycle"
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}

// Pull is the multiplier applied to the base frequency
type Pull uint8

const (
	PullMultBy1 Pull = iota
	PullMultBy1Div1001
	PullMultBy1001
	PullMultBy24Div25
	PullMultBy25Div24
	PullMultBy1Div8
)

func (p Pull) String() string {
	switch p {
	case PullMultBy1:
		return "1.0"
	case PullMultBy1Div1001:
		return "1/1.001"
	case PullMultBy1001:
		return "1.001"
	case PullMultBy24Div25:
		return "24/25"
	case PullMultBy25Div24:
		return "25/24"
	case PullMultBy1Div8:
		return "1/8"
	}
	return fmt.Sprintf("Pull(%d)", uint8(p))
}

// Pull is not carried on the wire yet. Reading always yields the 1.0
// multiplier and writing accepts nothing else.

func decodePull(uint64) (uint64, error) {
	return uint64(PullMultBy1), nil
}

func encodePull(val uint64) (uint64, error) {
	if val != uint64(PullMultBy1) {
		return 0, avtp.ErrValue{Field: FieldPull.String(), Value: val}
	}
	return val, nil
}
