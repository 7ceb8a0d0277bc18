package handlerserver

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/bridgefs/bridgefs/pkg/log"
)

type logMode struct {
	m   log.Mode
	set bool
}

func (l logMode) String() string {
	return modeToString(l.m)
}

func (l *logMode) Set(value string) error {
	l.set = true

	m, err := modeFromString(value)
	if err != nil {
		return err
	}
	l.m = m
	return nil
}

func modeFromString(value string) (log.Mode, error) {
	var m log.Mode
	for _, mode := range strings.Split(value, "|") {
		switch mode {
		case "info":
			m |= log.InfoMode
		case "debug":
			m |= log.DebugMode
		case "warn":
			m |= log.WarnMode
		case "error":
			m |= log.ErrorMode
		case "disabled":
			m = log.DisabledMode
		default:
			return m, errors.New(fmt.Sprintf("unrecognized mode: %s", mode))
		}
	}
	return m, nil
}

func modeToString(m log.Mode) string {
	if m == log.DisabledMode {
		return "disabled"
	}

	var buf bytes.Buffer
	if (m & log.InfoMode) != log.DisabledMode {
		buf.WriteString("info|")
	}
	if (m & log.WarnMode) != log.DisabledMode {
		buf.WriteString("warn|")
	}
	if (m & log.ErrorMode) != log.DisabledMode {
		buf.WriteString("error|")
	}
	if (m & log.DebugMode) != log.DisabledMode {
		buf.WriteString("debug|")
	}
	return strings.TrimSuffix(buf.String(), "|")
}
