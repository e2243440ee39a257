package drawio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/odtools/oddraw/pkg/errors"
)

// Fixed file-level attributes of the interchange format.
const (
	// Host is the producer string written into every file.
	Host = "od-draw"
	// FormatVersion is the interchange format version this writer targets.
	FormatVersion = "21.6.5"
	// fileType marks files produced on a local device.
	fileType = "device"
)

const modifiedLayout = "2006-01-02T15:04:05"

// Document is the top-level interchange file model: an ordered sequence of
// pages plus the target file name and directory. Page order is tab order.
type Document struct {
	FileName string
	FilePath string

	pages []*Page
	now   func() time.Time // overridable for deterministic tests
}

// NewDocument creates a document. Both the file name and directory path
// are required; an empty value fails immediately.
func NewDocument(fileName, filePath string) (*Document, error) {
	if fileName == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document file name is required")
	}
	if filePath == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document file path is required")
	}
	return &Document{FileName: fileName, FilePath: filePath, now: time.Now}, nil
}

// AddPage appends a page to the document.
func (d *Document) AddPage(p *Page) {
	d.pages = append(d.pages, p)
}

// RemovePage removes a page by identity, failing with a [NotFoundError]
// if the page is not part of the document.
func (d *Document) RemovePage(p *Page) error {
	for i, existing := range d.pages {
		if existing == p {
			d.pages = append(d.pages[:i], d.pages[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "page", ID: p.Name}
}

// Pages returns the pages in tab order.
func (d *Document) Pages() []*Page {
	out := make([]*Page, len(d.pages))
	copy(out, d.pages)
	return out
}

// agent identifies the generator, including the Go runtime that built it.
func agent() string {
	return fmt.Sprintf("Go %s, od-draw", runtime.Version())
}

// checkIDs validates user-cell identifier uniqueness across all pages.
// The structural cells "0" and "1" are per-page by construction, so the
// check covers user cells only and additionally rejects any user cell
// claiming a structural id.
func (d *Document) checkIDs() error {
	seen := make(map[string]struct{})
	for _, p := range d.pages {
		for _, c := range p.cells {
			if c.ID == "0" || c.ID == "1" {
				return &DuplicateIDError{ID: c.ID}
			}
			if _, dup := seen[c.ID]; dup {
				return &DuplicateIDError{ID: c.ID}
			}
			if c.ID != "" {
				seen[c.ID] = struct{}{}
			}
		}
	}
	return nil
}

// Serialize produces the complete XML string for the document. It fails
// without producing output if any cell identifier is duplicated, empty,
// or collides with a structural id. An empty document serializes to a
// minimal valid mxfile shell.
func (d *Document) Serialize() (string, error) {
	if err := d.checkIDs(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<mxfile host="%s" modified="%s" agent="%s" version="%s" type="%s">`,
		Host, d.now().Format(modifiedLayout), Escape(agent()), FormatVersion, fileType)
	buf.WriteByte('\n')

	for i, p := range d.pages {
		if err := p.writeXML(&buf, i+1); err != nil {
			return "", err
		}
		buf.WriteByte('\n')
	}

	buf.WriteString("</mxfile>\n")
	return buf.String(), nil
}

// Write serializes the document and writes it under FilePath/FileName,
// creating the directory if needed. The full string is produced before
// anything touches the filesystem, so a serialization failure leaves no
// partial file behind. I/O errors are surfaced unchanged inside the
// returned error's chain. Returns the full path written.
func (d *Document) Write() (string, error) {
	s, err := d.Serialize()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(d.FilePath, 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "create directory %s", d.FilePath)
	}

	full := filepath.Join(d.FilePath, d.FileName)
	if err := os.WriteFile(full, []byte(s), 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "write %s", full)
	}
	return full, nil
}
