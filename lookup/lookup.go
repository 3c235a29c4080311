// Package lookup serves the static legal corpus: IPC sections, FAQs,
// helplines, awareness tips and the judgments archive.
//
// Everything here is read once at startup and never mutated. Section search
// is a linear scan over the corpus in file order.
package lookup

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundMessage is the client-facing text for a missing section.
const NotFoundMessage = "Section not found"

// ErrNotFound is returned when no section matches an id.
var ErrNotFound = errors.New("section not found")

// LegalSection is one entry of the IPC sections corpus.
type LegalSection struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	LawText string `json:"law_text"`
}

// Explanation is a section plus a templated plain-language summary.
type Explanation struct {
	Section           string `json:"section"`
	Title             string `json:"title"`
	LawText           string `json:"law_text"`
	SimpleExplanation string `json:"simple_explanation"`
}

// Search returns sections whose id, title or law text contains query,
// compared case-insensitively, in corpus order and at most maxResults long.
// An empty query or a non-positive maxResults yields an empty result.
func Search(corpus []LegalSection, query string, maxResults int) []LegalSection {
	results := []LegalSection{}
	q := strings.ToLower(query)
	if q == "" || maxResults <= 0 {
		return results
	}

	for _, sec := range corpus {
		if strings.Contains(strings.ToLower(sec.Section), q) ||
			strings.Contains(strings.ToLower(sec.Title), q) ||
			strings.Contains(strings.ToLower(sec.LawText), q) {
			results = append(results, sec)
			if len(results) >= maxResults {
				break
			}
		}
	}
	return results
}

// FindBySectionID returns the first section whose id equals id exactly.
func FindBySectionID(corpus []LegalSection, id string) (LegalSection, error) {
	for _, sec := range corpus {
		if sec.Section == id {
			return sec, nil
		}
	}
	return LegalSection{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Explain wraps a section with its plain-language summary.
func Explain(sec LegalSection) Explanation {
	return Explanation{
		Section: sec.Section,
		Title:   sec.Title,
		LawText: sec.LawText,
		SimpleExplanation: fmt.Sprintf("IPC Section %s deals with %s. In simple terms, %s",
			sec.Section, sec.Title, sec.LawText),
	}
}
