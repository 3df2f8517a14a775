package resume

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	MaxUploadSize = 5 << 20

	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrUnsupportedFile    = errors.New("only PDF and DOCX files are allowed")
	ErrUnreadableDocument = errors.New("failed to parse resume")
	ErrEmptyDocument      = errors.New("no text found in resume")
)

type docKind int

const (
	kindUnknown docKind = iota
	kindPDF
	kindDOCX
)

func detectKind(filename, contentType string, data []byte) docKind {
	declared := kindUnknown
	switch {
	case strings.HasPrefix(contentType, mimePDF), strings.EqualFold(filepath.Ext(filename), ".pdf"):
		declared = kindPDF
	case strings.HasPrefix(contentType, mimeDOCX), strings.EqualFold(filepath.Ext(filename), ".docx"):
		declared = kindDOCX
	}

	switch declared {
	case kindPDF:
		if bytes.HasPrefix(data, []byte("%PDF")) {
			return kindPDF
		}
	case kindDOCX:
		if bytes.HasPrefix(data, []byte("PK\x03\x04")) {
			return kindDOCX
		}
	}
	return kindUnknown
}

// Extract returns the plain text of a PDF or DOCX document.
func Extract(filename, contentType string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch detectKind(filename, contentType, data) {
	case kindPDF:
		text, err = extractPDF(data)
	case kindDOCX:
		text, err = extractDOCX(data)
	default:
		return "", ErrUnsupportedFile
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	return text, nil
}

func extractPDF(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()
		return documentText(io.LimitReader(rc, 4*MaxUploadSize))
	}
	return "", errors.New("word/document.xml not found")
}

// documentText collects the w:t runs of a WordprocessingML body, one line per
// paragraph.
func documentText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		sb     strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}

// Preview returns the first n runes of text followed by "...".
func Preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}
