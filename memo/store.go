package memo

import (
	"sort"

	"github.com/jnystrom/eppp-go/expr"
)

// record is the canonical entry for a value: the cheapest reverse-polish
// expression known to realize it, and the component count (level) it was
// found at.
type record struct {
	level int
	rp    expr.ReversePolish
}

// Store is a multi-level ordered map from realized resistance value to
// the cheapest reverse-polish expression that reaches it, layered by
// component count. Level 1 holds bare catalogue values; level k holds
// every value discovered so far that some k-component expression
// realizes.
//
// A Store is not safe for concurrent use. The synthesis engine owns one
// Store per call and drives it single-threaded.
type Store struct {
	levelKeys [][]float64        // levelKeys[i] holds the sorted, deduplicated keys of level i+1
	canonical map[float64]record // value -> cheapest known record across all levels
}

// NewStore builds a Store seeded at level 1 with every value in
// catalogue. Duplicate values in catalogue collapse to a single entry.
func NewStore(catalogue []float64) *Store {
	s := &Store{canonical: make(map[float64]record, len(catalogue))}
	for _, v := range catalogue {
		s.Insert(1, v, expr.ReversePolish{expr.Val(v)})
	}

	return s
}

// Levels reports the number of levels the Store has materialized so far.
// LevelKeys(k) is guaranteed empty for k > Levels().
func (s *Store) Levels() int {
	return len(s.levelKeys)
}

// Insert records that value is realized by rp using level components.
// Insert is idempotent on value: if value is already recorded at a level
// less than or equal to level, the call is a no-op. Otherwise rp is
// additionally recorded under level, and the canonical (cheapest) record
// for value is updated — the store never forgets a coarser-level
// occurrence it already holds, it only ever adds finer ones.
//
// Insert panics if level is less than 1.
func (s *Store) Insert(level int, value float64, rp expr.ReversePolish) {
	if level < 1 {
		panic(ErrInvalidLevel)
	}
	if existing, ok := s.canonical[value]; ok && existing.level <= level {
		return
	}

	s.ensureLevel(level)
	insertSorted(&s.levelKeys[level-1], value)
	s.canonical[value] = record{level: level, rp: append(expr.ReversePolish(nil), rp...)}
}

func (s *Store) ensureLevel(level int) {
	for len(s.levelKeys) < level {
		s.levelKeys = append(s.levelKeys, nil)
	}
}

func insertSorted(keys *[]float64, v float64) {
	k := *keys
	idx := sort.SearchFloat64s(k, v)
	if idx < len(k) && k[idx] == v {
		return
	}
	k = append(k, 0)
	copy(k[idx+1:], k[idx:])
	k[idx] = v
	*keys = k
}

// Lookup returns the cheapest known reverse-polish expression that
// realizes value and the level (component count) it was found at. ok is
// false if value has never been recorded.
func (s *Store) Lookup(value float64) (rp expr.ReversePolish, level int, ok bool) {
	rec, found := s.canonical[value]
	if !found {
		return nil, 0, false
	}

	return rec.rp, rec.level, true
}

// LevelKeys returns a sorted, deduplicated copy of every value recorded
// at the given level. The returned slice supports binary-search bracket
// lookup by its caller and is safe to mutate. LevelKeys returns nil for
// any level the store has not materialized.
func (s *Store) LevelKeys(level int) []float64 {
	if level < 1 || level > len(s.levelKeys) {
		return nil
	}

	return append([]float64(nil), s.levelKeys[level-1]...)
}

// Nearest brackets target across every level simultaneously and returns
// the closer of the two bracketing candidates — or the exact match, if
// one exists — along with the cheapest reverse-polish expression known to
// realize it. Ties in absolute distance are broken by lower component
// count, via lowest-level-first scan order. Nearest reports ok=false if
// the store holds no entries at all.
func (s *Store) Nearest(target float64) (value float64, rp expr.ReversePolish, ok bool) {
	bestDiff := -1.0
	for _, keys := range s.levelKeys {
		if len(keys) == 0 {
			continue
		}
		idx := sort.SearchFloat64s(keys, target)
		if idx < len(keys) {
			if d := absDiff(keys[idx], target); bestDiff < 0 || d < bestDiff {
				bestDiff, value, ok = d, keys[idx], true
			}
		}
		if idx > 0 {
			if d := absDiff(keys[idx-1], target); bestDiff < 0 || d < bestDiff {
				bestDiff, value, ok = d, keys[idx-1], true
			}
		}
	}
	if !ok {
		return 0, nil, false
	}
	rec := s.canonical[value]

	return value, rec.rp, true
}

func absDiff(a, b float64) float64 {
	if a < b {
		return b - a
	}

	return a - b
}
