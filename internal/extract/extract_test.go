package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	localstore "resume-parser/internal/shared/storage/object/local"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytesPlainText(t *testing.T) {
	got, err := TextFromBytes(context.Background(), []byte("John Doe\njohn@example.com\n"), "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(got, "john@example.com") {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestTextFromBytesInvalidUTF8(t *testing.T) {
	if _, err := TextFromBytes(context.Background(), []byte{0xff, 0xfe, 0x00}, "text/plain", "resume.txt"); err == nil {
		t.Fatalf("expected error for invalid UTF-8")
	}
}

func TestTextFromBytesDocx(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>JOHN DOE</w:t></w:r></w:p>
    <w:p><w:r><w:t>EXPERIENCE</w:t></w:r></w:p>
    <w:p><w:r><w:t>Engineer Jan 2020 - Present</w:t></w:r></w:p>
  </w:body>
</w:document>`
	data := buildDocx(t, doc)

	got, err := TextFromBytes(context.Background(), data, mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	lines := strings.Split(got, "\n")
	joined := strings.Join(lines, "|")
	if !strings.Contains(joined, "JOHN DOE|") || !strings.Contains(joined, "EXPERIENCE|") {
		t.Fatalf("expected paragraph boundaries preserved, got %q", got)
	}
}

func TestTextFromBytesDocxSniffedFromOctetStream(t *testing.T) {
	data := buildDocx(t, `<w:document xmlns:w="ns"><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`)

	got, err := TextFromBytes(context.Background(), data, "application/octet-stream", "upload.bin")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "hello" {
		t.Fatalf("expected sniffed docx text, got %q", got)
	}
}

func TestTextFromBytesExtensionFallback(t *testing.T) {
	got, err := TextFromBytes(context.Background(), []byte("plain body"), "", "resume.txt")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "plain body" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestTextFromBytesUnsupported(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte("GIF89a"), "image/gif", "photo.gif")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestTextFromBytesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := TextFromBytes(ctx, []byte("body"), "text/plain", "resume.txt"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestTextPersistsExtractedCopy(t *testing.T) {
	dir := t.TempDir()
	store := localstore.New(dir)

	key, _, _, err := store.Save(context.Background(), "resume.txt", strings.NewReader("John Doe\n"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Text(context.Background(), store, key, "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(got, "John Doe") {
		t.Fatalf("unexpected text %q", got)
	}

	extracted := filepath.Join(dir, key+".extracted.txt")
	data, err := os.ReadFile(extracted)
	if err != nil {
		t.Fatalf("expected derived copy at %s: %v", extracted, err)
	}
	if !strings.Contains(string(data), "John Doe") {
		t.Fatalf("unexpected derived copy %q", data)
	}
}
