package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Tagged extraction failures. Callers classify with errors.Is; none of
// these are retried for the current request.
var (
	// ErrUnsupportedFormat means the declared extension is not one of
	// .pdf, .doc, .docx. Returned before any parse attempt.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrCorrupt means the buffer was empty or the parser rejected it.
	ErrCorrupt = errors.New("corrupt document")
	// ErrEmptyText means parsing succeeded but produced no usable text.
	ErrEmptyText = errors.New("no text content extracted")
)

// Text converts an uploaded document into plain text, dispatching on the
// declared file extension. PDF goes through github.com/ledongthuc/pdf,
// DOC/DOCX through github.com/nguyenthenguyen/docx with formatting
// stripped.
func Text(data []byte, fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf", ".doc", ".docx":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty buffer", ErrCorrupt)
	}

	var (
		text string
		err  error
	)
	if ext == ".pdf" {
		text, err = extractPDF(data)
	} else {
		text, err = extractDocx(data)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCorrupt, ext, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()
	return stripWordXML(doc.Editable().GetContent()), nil
}

// stripWordXML collapses word/document.xml to its character data, turning
// paragraph and line-break ends into newlines.
func stripWordXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
