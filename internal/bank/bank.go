// Package bank loads subject/year question banks and serves them read-only.
//
// A Bank is built once at startup by Load and never mutated afterwards, so it
// is safe for concurrent readers without locking. A fresh Load is the only way
// to pick up changed files.
package bank

import (
	"slices"

	"practice-service/internal/constants"
	"practice-service/internal/models"
)

// Catalog enumerates the selectable subjects and years and the file backing
// each (subject, year) pair.
type Catalog struct {
	Subjects []string
	Years    []string
	Files    map[string]map[string]string
}

func DefaultCatalog() Catalog {
	return Catalog{
		Subjects: constants.AvailableSubjects,
		Years:    constants.AvailableYears,
		Files:    constants.SubjectFiles,
	}
}

func (c Catalog) File(subject, year string) (string, bool) {
	name, ok := c.Files[subject][year]
	return name, ok
}

type Bank struct {
	catalog Catalog
	sets    map[string]map[string][]models.Question // year -> subject -> questions
}

// New builds a bank from already-parsed question sets keyed by year then subject.
// A nil or empty set marks the entry absent.
func New(catalog Catalog, sets map[string]map[string][]models.Question) *Bank {
	b := &Bank{
		catalog: catalog,
		sets:    make(map[string]map[string][]models.Question, len(catalog.Years)),
	}
	for _, year := range catalog.Years {
		b.sets[year] = make(map[string][]models.Question, len(catalog.Subjects))
		for _, subject := range catalog.Subjects {
			if qs := sets[year][subject]; len(qs) > 0 {
				b.sets[year][subject] = slices.Clone(qs)
			} else {
				b.sets[year][subject] = nil
			}
		}
	}
	return b
}

func (b *Bank) Subjects() []string {
	return slices.Clone(b.catalog.Subjects)
}

func (b *Bank) Years() []string {
	return slices.Clone(b.catalog.Years)
}

// ValidSelection reports whether subject and year are both enumerated.
func (b *Bank) ValidSelection(subject, year string) bool {
	return slices.Contains(b.catalog.Subjects, subject) && slices.Contains(b.catalog.Years, year)
}

// Questions returns the question set for (subject, year). ok is false when the
// entry is absent. The returned slice must not be modified.
func (b *Bank) Questions(subject, year string) (questions []models.Question, ok bool) {
	qs := b.sets[year][subject]
	if len(qs) == 0 {
		return nil, false
	}
	return qs, true
}

// YearHasData reports whether any subject has questions for year.
func (b *Bank) YearHasData(year string) bool {
	for _, qs := range b.sets[year] {
		if len(qs) > 0 {
			return true
		}
	}
	return false
}

// Size is the total number of loaded questions across all entries.
func (b *Bank) Size() int {
	n := 0
	for _, subjects := range b.sets {
		for _, qs := range subjects {
			n += len(qs)
		}
	}
	return n
}
