package main

import (
	"bytes"
	"context"
	"testing"
)

func TestRunRejectsUnknownKind(t *testing.T) {
	var out bytes.Buffer
	if code := run(context.Background(), []string{"-kind", "transfer"}, &out); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
	if out.Len() != 0 {
		t.Errorf("run() printed %q, want no records", out.String())
	}
}
