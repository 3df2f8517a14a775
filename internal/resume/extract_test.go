package resume_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/saulo-duarte/careercoach/internal/resume"
)

const docxType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// buildDOCX returns a minimal WordprocessingML package with one paragraph per
// entry of paragraphs.
func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">` + p + `</w:t></w:r></w:p>`)
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write([]byte(doc)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExtract(t *testing.T) {
	t.Run("DOCX", func(t *testing.T) {
		data := buildDOCX(t, "Jane Doe", "Senior Go engineer &amp; AWS")
		text, err := resume.Extract("cv.docx", docxType, data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "Jane Doe\nSenior Go engineer & AWS" {
			t.Errorf("unexpected text %q", text)
		}
	})

	t.Run("DOCXByExtensionOnly", func(t *testing.T) {
		data := buildDOCX(t, "Jane Doe")
		if _, err := resume.Extract("cv.DOCX", "application/octet-stream", data); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("EmptyDOCX", func(t *testing.T) {
		data := buildDOCX(t, "   ")
		if _, err := resume.Extract("cv.docx", docxType, data); !errors.Is(err, resume.ErrEmptyDocument) {
			t.Errorf("expected ErrEmptyDocument, got %v", err)
		}
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		if _, err := resume.Extract("cv.txt", "text/plain", []byte("hello")); !errors.Is(err, resume.ErrUnsupportedFile) {
			t.Errorf("expected ErrUnsupportedFile, got %v", err)
		}
	})

	t.Run("DeclaredPDFWithoutPDFBytes", func(t *testing.T) {
		if _, err := resume.Extract("cv.pdf", "application/pdf", []byte("not a pdf")); !errors.Is(err, resume.ErrUnsupportedFile) {
			t.Errorf("expected ErrUnsupportedFile, got %v", err)
		}
	})

	t.Run("CorruptPDF", func(t *testing.T) {
		_, err := resume.Extract("cv.pdf", "application/pdf", []byte("%PDF-1.4\ngarbage"))
		if !errors.Is(err, resume.ErrUnreadableDocument) {
			t.Errorf("expected ErrUnreadableDocument, got %v", err)
		}
	})
}

func TestPreview(t *testing.T) {
	if got := resume.Preview("héllo world", 5); got != "héllo..." {
		t.Errorf("unexpected preview %q", got)
	}
	if got := resume.Preview("short", 500); got != "short..." {
		t.Errorf("unexpected preview %q", got)
	}
}
