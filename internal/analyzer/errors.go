package analyzer

import "fmt"

// FileNotFoundError indicates the input path does not resolve to a regular file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// InvalidRangeError indicates the requested page range, after clamping to the
// document bounds, has start > end.
type InvalidRangeError struct {
	Start int
	End   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid page range: %d-%d", e.Start, e.End)
}

// PDFReadError indicates the document could not be opened or parsed.
type PDFReadError struct {
	Path  string
	Cause error
}

func (e *PDFReadError) Error() string {
	return fmt.Sprintf("failed to open or read PDF %s: %v", e.Path, e.Cause)
}

func (e *PDFReadError) Unwrap() error {
	return e.Cause
}
