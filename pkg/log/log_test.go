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

package log

import (
	"bytes"
	"regexp"
	"testing"
	"time"
)

func TestInfoLog(t *testing.T) {
	SetGlobalLogMode(InfoMode)
	defer SetGlobalLogMode(DefaultMode)

	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer))
	{
		logger.Info("info")
		regex := "^I.*log_test.go:[0-9]+\\] info"
		match, err := regexp.Match(regex, buffer.Bytes())
		if err != nil {
			t.Error(err)
		}
		if !match {
			t.Errorf("expected pattern: \"%s\", got: %s", regex, buffer.String())
		}
		buffer.Reset()
	}
	{
		logger.Infof("%t %d %s", true, 1, "infof")
		regex := "\\] true 1 infof"
		match, err := regexp.Match(regex, buffer.Bytes())
		if err != nil {
			t.Error(err)
		}
		if !match {
			t.Errorf("expected pattern: \"%s\", got: %s", regex, buffer.String())
		}
		buffer.Reset()
	}
}

func TestDebugModeEnableDisable(t *testing.T) {
	SetGlobalLogMode(InfoMode)
	defer SetGlobalLogMode(DefaultMode)

	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer))
	{
		logger.Debug("debug")
		logger.Debugf("%t %d %s", true, 1, "debugf")

		if buffer.Len() != 0 {
			t.Errorf("expected suppressed debug output, got: %s", buffer.String())
		}
		buffer.Reset()
	}
	SetGlobalLogMode(DebugMode)
	{
		logger.Debug("debug")
		regex := "^D.*\\] debug"
		match, err := regexp.Match(regex, buffer.Bytes())
		if err != nil {
			t.Error(err)
		}
		if !match {
			t.Errorf("expected pattern: \"%s\", got: %s", regex, buffer.String())
		}
		buffer.Reset()
	}
}

func TestErrorModeFiltering(t *testing.T) {
	SetGlobalLogMode(ErrorMode)
	defer SetGlobalLogMode(DefaultMode)

	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer))

	logger.Info("info")
	logger.Warn("warn")
	if buffer.Len() != 0 {
		t.Errorf("expected suppressed output, got: %s", buffer.String())
	}

	logger.Error("error")
	regex := "^E.*\\] error"
	match, err := regexp.Match(regex, buffer.Bytes())
	if err != nil {
		t.Error(err)
	}
	if !match {
		t.Errorf("expected pattern: \"%s\", got: %s", regex, buffer.String())
	}
}

func TestHeaderBasePathElision(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := New(Writer(buffer), Flags(Lmode|Llongfile))
	logger.basePath = "/a/b"

	header := logger.header(InfoMode, time.Time{}, "/a/b/pkg/log/x.go", 7)
	expected := "I pkg/log/x.go:7] "
	if string(header) != expected {
		t.Errorf("expected header %q, got %q", expected, string(header))
	}

	// Files outside the base path are left fully qualified.
	header = logger.header(InfoMode, time.Time{}, "/elsewhere/y.go", 9)
	expected = "I /elsewhere/y.go:9] "
	if string(header) != expected {
		t.Errorf("expected header %q, got %q", expected, string(header))
	}
}
