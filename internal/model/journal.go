package model

import "sort"

// Outcome is the final state of an encounter as recorded in the journal.
type Outcome string

// Outcomes. Values match the encounter state names.
const (
	OutcomeCaught  Outcome = "caught"
	OutcomeEscaped Outcome = "escaped"
	OutcomeSnapped Outcome = "snapped"
)

// JournalEntry: счётчики по одному виду.
type JournalEntry struct {
	SpeciesID string
	Caught    int
	Escaped   int
	Snapped   int
}

// Journal counts encounter outcomes per species.
type Journal struct {
	entries map[string]*JournalEntry
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{entries: make(map[string]*JournalEntry)}
}

// Record counts one outcome.
func (j *Journal) Record(speciesID string, outcome Outcome) {
	e, ok := j.entries[speciesID]
	if !ok {
		e = &JournalEntry{SpeciesID: speciesID}
		j.entries[speciesID] = e
	}
	switch outcome {
	case OutcomeCaught:
		e.Caught++
	case OutcomeEscaped:
		e.Escaped++
	case OutcomeSnapped:
		e.Snapped++
	}
}

// Caught returns how many of the species were landed.
func (j *Journal) Caught(speciesID string) int {
	if e, ok := j.entries[speciesID]; ok {
		return e.Caught
	}
	return 0
}

// Discovered returns the number of species landed at least once.
func (j *Journal) Discovered() int {
	n := 0
	for _, e := range j.entries {
		if e.Caught > 0 {
			n++
		}
	}
	return n
}

// Entries returns copies sorted by species ID.
func (j *Journal) Entries() []JournalEntry {
	result := make([]JournalEntry, 0, len(j.entries))
	for _, e := range j.entries {
		result = append(result, *e)
	}
	sort.Slice(result, func(a, b int) bool { return result[a].SpeciesID < result[b].SpeciesID })
	return result
}
