package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunInsertRemoveCancels(t *testing.T) {
	var out1, out2 bytes.Buffer

	if err := run(nil, strings.NewReader("aa\n-aa\n"), &out1); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(nil, strings.NewReader(""), &out2); err != nil {
		t.Fatalf("run: %v", err)
	}

	if out1.String() != out2.String() {
		t.Fatalf("inserting then removing the same element changed the digest: %q vs %q", out1.String(), out2.String())
	}
}

func TestRunArgsMatchStdin(t *testing.T) {
	var fromArgs, fromStdin bytes.Buffer

	if err := run([]string{"aa", "bb"}, strings.NewReader(""), &fromArgs); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(nil, strings.NewReader("aa\nbb\n"), &fromStdin); err != nil {
		t.Fatalf("run: %v", err)
	}

	if fromArgs.String() != fromStdin.String() {
		t.Fatalf("positional args and stdin produced different digests")
	}
}

func TestRunRejectsBadHex(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"not-hex!"}, strings.NewReader(""), &out); err == nil {
		t.Fatalf("expected error for invalid hex element")
	}
}
