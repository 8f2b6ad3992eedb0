package pdf

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Patterns are compiled once at package load.
var (
	rangeRe  = regexp.MustCompile(`^(\d+)-(\d+)$`)
	singleRe = regexp.MustCompile(`^\d+$`)
)

// ParsePageSpec parses a page specification string and returns the sorted,
// deduplicated list of 1-indexed page numbers it names.
// Supported formats: "1", "1,3", "1-5", "1,3-5,7". Whitespace around pieces
// and empty pieces (doubled or trailing commas) are ignored, so an empty or
// whitespace-only spec yields an empty list.
// When totalPages > 0, every resulting number must be <= totalPages.
func ParsePageSpec(spec string, totalPages int) ([]int, error) {
	pages := map[int]struct{}{}

	for _, raw := range strings.Split(spec, ",") {
		part := strings.TrimSpace(raw)
		if part == "" {
			continue
		}

		if m := rangeRe.FindStringSubmatch(part); m != nil {
			// Digits only, bounded by the regex, so Atoi cannot fail
			start, _ := strconv.Atoi(m[1])
			end, _ := strconv.Atoi(m[2])
			if start <= 0 || end <= 0 {
				return nil, fmt.Errorf("invalid page range: %s", part)
			}
			if start > end {
				return nil, fmt.Errorf("range start greater than end: %s", part)
			}
			for i := start; i <= end; i++ {
				pages[i] = struct{}{}
			}
			continue
		}

		if singleRe.MatchString(part) {
			num, _ := strconv.Atoi(part)
			if num <= 0 {
				return nil, fmt.Errorf("invalid page number: %s", part)
			}
			pages[num] = struct{}{}
			continue
		}

		return nil, fmt.Errorf("invalid page spec piece: %s", part)
	}

	sorted := make([]int, 0, len(pages))
	for p := range pages {
		sorted = append(sorted, p)
	}
	sort.Ints(sorted)

	if totalPages > 0 {
		if err := ValidatePageNumbers(sorted, totalPages); err != nil {
			return nil, err
		}
	}

	return sorted, nil
}

// ValidatePageNumbers checks that every page number fits a document with
// totalPages pages. All out-of-range numbers are reported, not just the first.
func ValidatePageNumbers(pages []int, totalPages int) error {
	var invalid []int
	for _, page := range pages {
		if page < 1 || page > totalPages {
			invalid = append(invalid, page)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("page numbers out of range (document has %d pages): %v", totalPages, invalid)
	}
	return nil
}
