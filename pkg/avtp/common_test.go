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

package avtp

import (
	"errors"
	"testing"
)

func TestCommonSubtype(t *testing.T) {
	h := &Common{0x00, 0xff, 0xff, 0xff}
	if err := Set(h, FieldSubtype, uint64(SubtypeCRF)); err != nil {
		t.Fatalf("set subtype: %v", err)
	}
	if *h != (Common{0x04, 0xff, 0xff, 0xff}) {
		t.Fatalf("unexpected header % x", h[:])
	}
	v, err := Get(h, FieldSubtype)
	if err != nil || Subtype(v) != SubtypeCRF {
		t.Fatalf("expected CRF, got %d (%v)", v, err)
	}
}

func TestCommonVersion(t *testing.T) {
	h := &Common{}
	if err := Set(h, FieldVersion, 0xf); err != nil {
		t.Fatalf("set version: %v", err)
	}
	if *h != (Common{0x00, 0x70, 0x00, 0x00}) {
		t.Fatalf("unexpected header % x", h[:])
	}
	v, err := Get(h, FieldVersion)
	if err != nil || v != 7 {
		t.Fatalf("expected 7, got %d (%v)", v, err)
	}
}

func TestCommonErrors(t *testing.T) {
	if _, err := Get(nil, FieldSubtype); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err := Set(nil, FieldSubtype, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Get(&Common{}, Field(7)); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
	if err := Set(&Common{}, Field(7), 0); !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestSubtypeString(t *testing.T) {
	if SubtypeCRF.String() != "CRF" {
		t.Fatalf("unexpected name %q", SubtypeCRF.String())
	}
	if Subtype(0x42).String() != "Unknown(0x42)" {
		t.Fatalf("unexpected name %q", Subtype(0x42).String())
	}
}
