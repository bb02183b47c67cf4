package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewCartValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "cart.json")
	if err := os.WriteFile(path, []byte("["+lineJSON("p1", 1)+","+lineJSON("p2", 2)+"]"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "slot valid: 2 lines" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if !strings.HasPrefix(strings.TrimSpace(out.String()), "[") {
		t.Fatalf("expected canonical json array, got %q", out.String())
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewCartValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "lines.jsonl")
	content := lineJSON("p1", 1) + "\n" + lineJSON("p2", -1) + "\n" + lineJSON("p3", 3) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	ctx := context.Background()
	validator := NewCartValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`[{"productId":"","quantity":1}]`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatJSON, &out)
	if err == nil {
		t.Fatalf("expected error for invalid slot")
	}
	if summary != "slot invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.String() != "" {
		t.Fatalf("output must be empty for invalid slot")
	}
}

func TestValidateFile_ExplicitFormat_IgnoresExt(t *testing.T) {
	ctx := context.Background()
	validator := NewCartValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(path, []byte(lineJSON("p1", 1)+"\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatJSONL, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_OpenError(t *testing.T) {
	var out bytes.Buffer
	if _, err := ValidateFile(context.Background(), NewCartValidator(), "no-such-file.json", FormatAuto, &out); err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cart.json")
	_ = os.WriteFile(path, []byte(`[]`), 0o600)

	var out bytes.Buffer
	_, err := ValidateFile(context.Background(), NewCartValidator(), path, InputFormat("yaml"), &out)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got: %v", err)
	}
}
