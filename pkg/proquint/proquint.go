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

// Package proquint renders integers as pronounceable quintets, useful for
// identifiers that humans have to read back out of logs. See
// https://arxiv.org/html/0901.4016.
package proquint

var consonants = [16]byte{
	'b', 'd', 'f', 'g', 'h', 'j', 'k', 'l',
	'm', 'n', 'p', 'r', 's', 't', 'v', 'z',
}
var vowels = [4]byte{'a', 'i', 'o', 'u'}

// FromUint16 encodes a 16-bit word as a five letter quintet, alternating
// consonants (four bits each) and vowels (two bits each):
//
//      0 1 2 3 4 5 6 7 8 9 A B C D E F
//      +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//      |con    |vo |con    |vo |con    |
//      +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
func FromUint16(i uint16) []byte {
	return []byte{
		consonants[i>>12&0xF],
		vowels[i>>10&0x3],
		consonants[i>>6&0xF],
		vowels[i>>4&0x3],
		consonants[i&0xF],
	}
}

// FromUint32 encodes a 32-bit word as two dash-separated quintets, high half
// first.
func FromUint32(i uint32) []byte {
	quint := FromUint16(uint16(i >> 16))
	quint = append(quint, '-')
	return append(quint, FromUint16(uint16(i))...)
}

// FromUint64 encodes a 64-bit word as four dash-separated quintets, high
// halves first.
func FromUint64(i uint64) []byte {
	quint := FromUint32(uint32(i >> 32))
	quint = append(quint, '-')
	return append(quint, FromUint32(uint32(i))...)
}
