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

// baseFreqRates maps the 8-bit base_frequency code to a sample rate in Hz.
// Code 0 is reserved.
var baseFreqRates = [...]uint64{
	0, 8000, 11025, 16000, 22050, 32000, 44100, 48000,
	64000, 88200, 96000,
}

// FreqToRate translates a base_frequency code to Hz
func FreqToRate(code uint64) (uint64, error) {
	if code >= uint64(len(baseFreqRates)) {
		return 0, avtp.ErrValue{Field: FieldBaseFreq.String(), Value: code}
	}
	return baseFreqRates[code], nil
}

// RateToFreq translates a rate in Hz to its base_frequency code
func RateToFreq(hz uint64) (uint64, error) {
	for code, rate := range baseFreqRates {
		if rate == hz {
			return uint64(code), nil
		}
	}
	return 0, avtp.ErrValue{Field: FieldBaseFreq.String(), Value: hz}
}

// Rates returns the sample rates that can be encoded, the reserved code excluded
func Rates() []uint64 {
	rates := make([]uint64, len(baseFreqRates)-1)
	copy(rates, baseFreqRates[1:])
	return rates
}
