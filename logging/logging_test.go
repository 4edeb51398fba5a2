// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerInitializers(t *testing.T) {
	t.Parallel()

	Init()
	if l := Logger(SourceApp); l == nil {
		t.Fatal("Logger returned nil")
	}
	if l := StdLogger(SourceDataset); l == nil {
		t.Fatal("StdLogger returned nil")
	}
}

func TestBaseLoggerWritesLogfmt(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newBaseLogger(&buf).With("source", SourceDataset).Info("loaded dataset", "rows", 24)

	line := buf.String()
	for _, want := range []string{"time=", "level=info", `msg="loaded dataset"`, "source=dataset", "rows=24"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in log line, got %q", want, line)
		}
	}
}
