// internal/medium/medium.go
package medium

import (
	"sort"
)

// Entry is one row of a medium: a reaction identifier and its flux.
type Entry struct {
	Reaction string  `json:"reaction"`
	Flux     float64 `json:"flux"`
}

// Medium is an immutable reaction → flux mapping kept as a list sorted by
// reaction identifier. Build one with FromRows or FromMap.
type Medium struct {
	entries []Entry
	index   map[string]int
}

// FromRows builds a Medium from raw source rows.
//
// Duplicate policy: when a reaction appears more than once, the first row
// wins and later rows are dropped. The dropped rows are returned so callers
// can report them.
func FromRows(rows []Entry) (Medium, []Entry) {
	seen := make(map[string]struct{}, len(rows))
	kept := make([]Entry, 0, len(rows))
	var dropped []Entry
	for _, r := range rows {
		if _, ok := seen[r.Reaction]; ok {
			dropped = append(dropped, r)
			continue
		}
		seen[r.Reaction] = struct{}{}
		kept = append(kept, r)
	}
	return build(kept), dropped
}

// FromMap builds a Medium from a plain map.
func FromMap(m map[string]float64) Medium {
	rows := make([]Entry, 0, len(m))
	for id, f := range m {
		rows = append(rows, Entry{Reaction: id, Flux: f})
	}
	return build(rows)
}

func build(rows []Entry) Medium {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Reaction < rows[j].Reaction })
	idx := make(map[string]int, len(rows))
	for i, r := range rows {
		idx[r.Reaction] = i
	}
	return Medium{entries: rows, index: idx}
}

// Len returns the number of unique reactions.
func (m Medium) Len() int { return len(m.entries) }

// Flux returns the flux for id and whether id is present.
func (m Medium) Flux(id string) (float64, bool) {
	i, ok := m.index[id]
	if !ok {
		return 0, false
	}
	return m.entries[i].Flux, true
}

// FluxOrZero treats an absent reaction as a zero contribution.
func (m Medium) FluxOrZero(id string) float64 {
	f, _ := m.Flux(id)
	return f
}

// Reactions returns the sorted reaction identifiers.
func (m Medium) Reactions() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Reaction
	}
	return out
}

// Entries returns a copy of the rows in reaction order.
func (m Medium) Entries() []Entry {
	return append([]Entry(nil), m.entries...)
}

// Fluxes returns the flux column in reaction order.
func (m Medium) Fluxes() []float64 {
	out := make([]float64, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Flux
	}
	return out
}

// Map returns the medium as a fresh map.
func (m Medium) Map() map[string]float64 {
	out := make(map[string]float64, len(m.entries))
	for _, e := range m.entries {
		out[e.Reaction] = e.Flux
	}
	return out
}

// UnionReactions returns the sorted, de-duplicated union of reaction ids.
func UnionReactions(a, b Medium) []string {
	out := make([]string, 0, a.Len()+b.Len())
	i, j := 0, 0
	for i < len(a.entries) && j < len(b.entries) {
		ra, rb := a.entries[i].Reaction, b.entries[j].Reaction
		switch {
		case ra == rb:
			out = append(out, ra)
			i++
			j++
		case ra < rb:
			out = append(out, ra)
			i++
		default:
			out = append(out, rb)
			j++
		}
	}
	for ; i < len(a.entries); i++ {
		out = append(out, a.entries[i].Reaction)
	}
	for ; j < len(b.entries); j++ {
		out = append(out, b.entries[j].Reaction)
	}
	return out
}
