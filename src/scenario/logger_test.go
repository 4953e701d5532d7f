package scenario

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	// Swap the base logger to capture output
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("info")

	msg := "scenario1 loaded rows=12 cf=[0.0% 95.5%] temp=[90.0% 100.0%]"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "cf=[0.0% 95.5%]") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestSetLogLevel_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("warn")
	Debugf("hidden")
	Infof("also hidden")
	Warnf("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("level filter leaked lower levels: %s", out)
	}
	if !strings.Contains(out, "[WARN] visible") {
		t.Fatalf("warn line missing: %s", out)
	}
	SetLogLevel("info")
}
