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

package bridge

import (
	"syscall"
	"testing"
)

func TestDirListDrainOrder(t *testing.T) {
	list := NewDirList(3)
	list.Append(".")
	list.Append("..")
	list.Append("greeting")

	if list.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", list.Len())
	}

	var drained []string
	rv := list.Drain(func(name string) bool {
		drained = append(drained, name)
		return true
	})
	if rv != 0 {
		t.Errorf("expected drain success, got %d", rv)
	}

	expected := []string{".", "..", "greeting"}
	if len(drained) != len(expected) {
		t.Fatalf("expected %d drained entries, got %d", len(expected), len(drained))
	}
	for i := range expected {
		if drained[i] != expected[i] {
			t.Errorf("entry %d: expected %q, got %q", i, expected[i], drained[i])
		}
	}
}

func TestDirListEmptyDrain(t *testing.T) {
	list := NewDirList(0)

	fills := 0
	rv := list.Drain(func(string) bool {
		fills++
		return true
	})
	if rv != 0 {
		t.Errorf("expected drain success, got %d", rv)
	}
	if fills != 0 {
		t.Errorf("expected zero fills for empty listing, got %d", fills)
	}
}

func TestDirListFillRejection(t *testing.T) {
	list := NewDirList(3)
	list.Append("a")
	list.Append("b")
	list.Append("c")

	// Delivery stops at the rejected entry; entries already delivered stand.
	var delivered []string
	rv := list.Drain(func(name string) bool {
		if name == "b" {
			return false
		}
		delivered = append(delivered, name)
		return true
	})
	if rv != Errno(syscall.EIO) {
		t.Errorf("expected %d (EIO), got %d", Errno(syscall.EIO), rv)
	}
	if len(delivered) != 1 || delivered[0] != "a" {
		t.Errorf("expected partial delivery [a], got %v", delivered)
	}
}

func TestDirListAppendAfterReleasePanics(t *testing.T) {
	list := NewDirList(1)
	list.Append("a")
	list.Release()

	if !list.Released() {
		t.Fatal("expected listing to report released")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on append to released listing")
		}
	}()
	list.Append("b")
}

func TestDirListDoubleReleasePanics(t *testing.T) {
	list := NewDirList(0)
	list.Release()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on double release")
		}
	}()
	list.Release()
}
