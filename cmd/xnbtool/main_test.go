package main

import (
	"encoding/binary"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildBinary(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "xnbtool")
	cmd := exec.Command("go", "build", "-o", binPath, "github.com/lyrositor/bastionmod-codec/cmd/xnbtool")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build xnbtool: %v\n%s", err, out)
	}
	return binPath
}

// writeUncompressedXNB writes a minimal uncompressed XNB fixture: a 10-byte
// preamble (no trailing decompressed-size field, since flags&0x80 is unset)
// followed by payload verbatim.
func writeUncompressedXNB(t *testing.T, path string, payload []byte) {
	t.Helper()
	buf := make([]byte, 10+len(payload))
	copy(buf[0:3], "XNB")
	buf[3] = 'w'
	buf[4] = 5
	buf[5] = 0x00
	binary.LittleEndian.PutUint32(buf[6:10], uint32(10+len(payload)))
	copy(buf[10:], payload)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestCLIVersion(t *testing.T) {
	binPath := buildBinary(t)
	out, err := exec.Command(binPath, "-version").CombinedOutput()
	if err != nil {
		t.Fatalf("run -version: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "xnbtool version") {
		t.Errorf("version output missing: %s", out)
	}
}

func TestCLIMissingMode(t *testing.T) {
	binPath := buildBinary(t)
	cmd := exec.Command(binPath)
	if err := cmd.Run(); err == nil {
		t.Error("expected error when no -i/-glob/-bundle given")
	}
}

func TestCLIFileNotFound(t *testing.T) {
	binPath := buildBinary(t)
	cmd := exec.Command(binPath, "-i", "/nonexistent/texture.xnb")
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected failure exit code, output: %s", out)
	}
}

func TestCLIOutputToFileUncompressed(t *testing.T) {
	binPath := buildBinary(t)

	fixture := filepath.Join(t.TempDir(), "asset.xnb")
	payload := []byte("raw asset bytes, not LZX-compressed")
	writeUncompressedXNB(t, fixture, payload)

	outFile := filepath.Join(t.TempDir(), "asset.bin")
	cmd := exec.Command(binPath, "-i", fixture, "-o", outFile, "-verify")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), "xxhash") {
		t.Errorf("expected -verify digest in output: %s", out)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("output = %q, want %q", got, payload)
	}
}

func TestCLIJSONOutput(t *testing.T) {
	binPath := buildBinary(t)

	fixture := filepath.Join(t.TempDir(), "asset.xnb")
	writeUncompressedXNB(t, fixture, []byte("data"))

	cmd := exec.Command(binPath, "-i", fixture, "-json")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), `"input"`) {
		t.Errorf("expected JSON result object: %s", out)
	}
}
