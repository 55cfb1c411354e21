// Package analyzer implements the deterministic CV analysis pipeline:
// PDF text extraction, section segmentation, heuristic scoring and
// keyword-based job recommendation.
package analyzer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ExtractionResult holds the text extracted from a PDF plus page metadata.
// PageStart/PageEnd are the effective 1-based inclusive range after clamping.
type ExtractionResult struct {
	Path       string `json:"path"`
	TotalPages int    `json:"total_pages"`
	PageStart  int    `json:"page_start"`
	PageEnd    int    `json:"page_end"`
	EmptyPages []int  `json:"empty_pages"`
	Content    string `json:"content"`
}

// ExtractPDF reads plain text from a PDF file. pageStart and pageEnd are
// optional 1-based inclusive bounds; nil means first/last page respectively.
// Both are clamped into [1, total pages] before use. A page whose text cannot
// be extracted degrades to an empty page instead of failing the whole call.
func ExtractPDF(path string, pageStart, pageEnd *int) (*ExtractionResult, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	info, err := os.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &FileNotFoundError{Path: abs}
	}

	doc, err := fitz.New(abs)
	if err != nil {
		return nil, &PDFReadError{Path: abs, Cause: err}
	}
	defer doc.Close()

	total := doc.NumPage()

	start := 1
	if pageStart != nil && *pageStart > 1 {
		start = *pageStart
	}
	end := total
	if pageEnd != nil && *pageEnd < total {
		end = *pageEnd
	}
	if start > end {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	texts := make([]string, 0, end-start+1)
	emptyPages := []int{}
	for page := start; page <= end; page++ {
		text, err := doc.Text(page - 1)
		if err != nil {
			// satu halaman rusak tidak boleh menggagalkan seluruh ekstraksi
			text = ""
		}
		if strings.TrimSpace(text) == "" {
			emptyPages = append(emptyPages, page)
			text = ""
		}
		texts = append(texts, text)
	}

	return &ExtractionResult{
		Path:       abs,
		TotalPages: total,
		PageStart:  start,
		PageEnd:    end,
		EmptyPages: emptyPages,
		Content:    strings.Join(texts, "\n\n"),
	}, nil
}
