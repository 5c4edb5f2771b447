package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerDebugGating(t *testing.T) {
	var out, errOut bytes.Buffer

	l := &Logger{Debug: false, Out: &out, Err: &errOut}
	l.Debugf("hidden %d\n", 1)
	if out.Len() != 0 {
		t.Errorf("debug output with Debug=false: %q", out.String())
	}

	l.Debug = true
	l.Debugf("shown %d\n", 2)
	if !strings.Contains(out.String(), "[debug] shown 2") {
		t.Errorf("missing debug line, got %q", out.String())
	}
}

func TestLoggerErrorsGoToStderr(t *testing.T) {
	var out, errOut bytes.Buffer

	l := &Logger{Out: &out, Err: &errOut}
	l.Infof("info\n")
	l.Errorf("boom\n")

	if !strings.Contains(out.String(), "[info] info") {
		t.Errorf("missing info line, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[error] boom") {
		t.Errorf("missing error line, got %q", errOut.String())
	}
	if strings.Contains(out.String(), "boom") {
		t.Errorf("error leaked to stdout: %q", out.String())
	}
}
