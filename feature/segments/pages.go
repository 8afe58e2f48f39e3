package segments

import (
	"fmt"
	"regexp"
	"strconv"

	pdflib "github.com/ledongthuc/pdf"
)

var pageRangePattern = regexp.MustCompile(`__pages(\d+)-(\d+)\.pdf$`)

// PageRange extracts the inclusive page range from a segment filename.
// Example: "Energetica_1969-1627417979__pages400-449.pdf" -> (400, 449).
// Inverted ranges are rejected.
func PageRange(filename string) (start, end int, ok bool) {
	match := pageRangePattern.FindStringSubmatch(filename)
	if match == nil {
		return 0, 0, false
	}

	start, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, false
	}
	if start > end {
		return 0, 0, false
	}

	return start, end, true
}

// CountPages returns the number of pages in the PDF at path.
func CountPages(path string) (pages int, err error) {
	// The PDF reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("read pdf %s: %v", path, r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	return reader.NumPage(), nil
}
