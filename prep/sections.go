// Package prep holds the offline tools that build the data directory:
// extracting IPC sections from plain text and generating the synthetic
// case-outcome dataset.
package prep

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/spektr-org/nyaya/lookup"
)

// minBodyLength drops header-like lines that carry no real law text.
const minBodyLength = 30

// sectionHeader matches "\n302. " and "\n498A. " at the start of a line.
var sectionHeader = regexp.MustCompile(`\n(\d{1,3}[A-Z]?)\.\s+`)

// ExtractSections splits IPC plain text into sections. A section starts at a
// header line, its title runs to the end of that line and its body runs to
// the next header or the end of the text. Sections with a body of 30
// characters or fewer are dropped.
func ExtractSections(text string) []lookup.LegalSection {
	sections := []lookup.LegalSection{}

	pos := 0
	for pos < len(text) {
		loc := sectionHeader.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		id := text[pos+loc[2] : pos+loc[3]]
		titleStart := pos + loc[1]

		nl := strings.IndexByte(text[titleStart:], '\n')
		if nl < 0 {
			break
		}
		bodyStart := titleStart + nl + 1

		bodyEnd := len(text)
		if next := sectionHeader.FindStringIndex(text[bodyStart:]); next != nil {
			bodyEnd = bodyStart + next[0]
		}

		body := strings.TrimSpace(text[bodyStart:bodyEnd])
		if utf8.RuneCountInString(body) > minBodyLength {
			sections = append(sections, lookup.LegalSection{
				Section: strings.TrimSpace(id),
				Title:   strings.TrimSpace(text[titleStart : titleStart+nl]),
				LawText: body,
			})
		}
		pos = bodyEnd
	}
	return sections
}

// WriteSectionsJSON writes sections as indented JSON with non-ASCII text and
// HTML characters left unescaped.
func WriteSectionsJSON(w io.Writer, sections []lookup.LegalSection) error {
	if sections == nil {
		sections = []lookup.LegalSection{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(sections)
}
