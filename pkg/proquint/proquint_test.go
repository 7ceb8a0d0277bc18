// Copyright 2019 The Bridgefs Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package proquint_test

import (
	"bytes"
	"testing"

	"github.com/bridgefs/bridgefs/pkg/proquint"
)

func TestFromUint16(t *testing.T) {
	var tests = []struct {
		input    uint16
		expected []byte
	}{
		{0, []byte("babab")},
		{1, []byte("babad")},
		{34, []byte("babof")},
		{129, []byte("bafad")},
		{2510, []byte("bolav")},
		{16241, []byte("gutud")},
		{64298, []byte("zosop")},
	}

	for _, test := range tests {
		result := proquint.FromUint16(test.input)
		if !bytes.Equal(test.expected, result) {
			t.Errorf("expected %s, got %s", test.expected, result)
		}
	}
}

func TestFromUint32(t *testing.T) {
	var tests = []struct {
		input    uint32
		expected []byte
	}{
		{0, []byte("babab-babab")},
		{241418941, []byte("bunog-saput")},
		{31231151, []byte("balis-mufoz")},
		{543123113, []byte("fadiz-kipon")},
	}

	for _, test := range tests {
		result := proquint.FromUint32(test.input)
		if !bytes.Equal(test.expected, result) {
			t.Errorf("expected %s, got %s", test.expected, result)
		}
	}
}

func TestFromUint64(t *testing.T) {
	var tests = []struct {
		input    uint64
		expected []byte
	}{
		{0, []byte("babab-babab-babab-babab")},
		{41418391241418941, []byte("bafig-filav-rahis-vofut")},
		{9489151893131231151, []byte("mavub-gujiz-balaz-zuvoz")},
		{81518945431213, []byte("babab-homoh-dozam-vupot")},
	}

	for _, test := range tests {
		result := proquint.FromUint64(test.input)
		if !bytes.Equal(test.expected, result) {
			t.Errorf("expected %s, got %s", test.expected, result)
		}
	}
}
