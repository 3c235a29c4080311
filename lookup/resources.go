package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// ============================================================================
// RESOURCES: JSON corpus files loaded at startup
// ============================================================================

// Files names the five resource files inside the data directory.
type Files struct {
	Sections  string `yaml:"ipc_sections" validate:"required"`
	FAQs      string `yaml:"legal_faqs" validate:"required"`
	Helplines string `yaml:"helplines" validate:"required"`
	Awareness string `yaml:"legal_awareness" validate:"required"`
	Judgments string `yaml:"supreme_court" validate:"required"`
}

// DefaultFiles returns the file names shipped with the data directory.
func DefaultFiles() Files {
	return Files{
		Sections:  "ipc_sections.json",
		FAQs:      "legal_faqs.json",
		Helplines: "helplines.json",
		Awareness: "legal_awareness.json",
		Judgments: "supreme_court.json",
	}
}

// Resources holds the loaded corpus. Sections are decoded for search; the
// FAQ, helpline and awareness files are served as stored, so they are kept
// as raw JSON and only counted.
type Resources struct {
	Sections  []LegalSection
	FAQs      json.RawMessage
	Helplines json.RawMessage
	Awareness json.RawMessage

	HelplineCount int
	Judgments     int
}

// LoadResources reads all five files from dir concurrently. The first
// failure cancels the rest and is returned.
func LoadResources(ctx context.Context, dir string, files Files) (*Resources, error) {
	res := &Resources{}
	var judgments json.RawMessage

	g, gctx := errgroup.WithContext(ctx)
	load := func(name string, dst any) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return loadJSON(filepath.Join(dir, name), dst)
		})
	}
	load(files.Sections, &res.Sections)
	load(files.FAQs, &res.FAQs)
	load(files.Helplines, &res.Helplines)
	load(files.Awareness, &res.Awareness)
	load(files.Judgments, &judgments)

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	if res.HelplineCount, err = countEntries(res.Helplines); err != nil {
		return nil, fmt.Errorf("%s: %w", files.Helplines, err)
	}
	if res.Judgments, err = countEntries(judgments); err != nil {
		return nil, fmt.Errorf("%s: %w", files.Judgments, err)
	}
	return res, nil
}

func loadJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// countEntries counts the elements of a JSON array or the keys of an object.
func countEntries(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return 0, err
		}
		return len(items), nil
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return 0, err
		}
		return len(fields), nil
	default:
		return 0, fmt.Errorf("expected a JSON array or object")
	}
}
