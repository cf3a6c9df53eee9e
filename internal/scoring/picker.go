package scoring

import (
	"log"
	"strings"

	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/catalog"
	"github.com/mohamed-arabi16/qobouli-explore-guide-sub000/internal/model"
)

// maxPickedPrograms bounds how many program titles a result card shows.
const maxPickedPrograms = 3

// ProgramPicker turns a ranked major list into concrete program titles.
// It holds an inverted index from lowercase keyword to matching catalog
// titles, built once at construction since the catalog can run to
// hundreds of entries.
type ProgramPicker struct {
	index map[string][]string
}

// NewProgramPicker builds the keyword index over the given program catalog.
func NewProgramPicker(programs []model.Program) *ProgramPicker {
	index := make(map[string][]string)

	for _, keywords := range catalog.MajorKeywords {
		for _, kw := range keywords {
			kw = strings.ToLower(kw)
			if _, done := index[kw]; done {
				continue
			}
			var hits []string
			seen := make(map[string]bool)
			for _, p := range programs {
				if !strings.Contains(strings.ToLower(p.Title), kw) {
					continue
				}
				if seen[p.Title] {
					continue
				}
				seen[p.Title] = true
				hits = append(hits, p.Title)
			}
			index[kw] = hits
		}
	}

	return &ProgramPicker{index: index}
}

// Pick walks the majors in rank order and collects up to three distinct
// program titles, preserving major rank and keyword order. Majors without
// configured keywords are skipped; an empty catalog yields an empty list.
func (p *ProgramPicker) Pick(sortedSlugs []string) []model.Program {
	picked := make([]model.Program, 0, maxPickedPrograms)
	seen := make(map[string]bool)

	for _, slug := range sortedSlugs {
		keywords, ok := catalog.MajorKeywords[slug]
		if !ok {
			log.Printf("picker: no keywords configured for major %q", slug)
			continue
		}
		for _, kw := range keywords {
			for _, title := range p.index[strings.ToLower(kw)] {
				if seen[title] {
					continue
				}
				seen[title] = true
				picked = append(picked, model.Program{Title: title})
				if len(picked) == maxPickedPrograms {
					return picked
				}
			}
		}
	}

	return picked
}
