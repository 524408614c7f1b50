package matching

import (
	"sort"
	"strings"
)

// SkillSet is a normalized set of lower-cased skill tokens. The zero value is
// an empty set and is safe to read.
type SkillSet map[string]struct{}

// Tokenize splits a raw comma-separated skill field into a SkillSet.
// Pieces are trimmed and lower-cased; empty pieces are dropped.
func Tokenize(raw string) SkillSet {
	out := make(SkillSet)
	if strings.TrimSpace(raw) == "" {
		return out
	}
	for _, piece := range strings.Split(raw, ",") {
		s := strings.ToLower(strings.TrimSpace(piece))
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}

func NewSkillSet(skills ...string) SkillSet {
	return Tokenize(strings.Join(skills, ","))
}

func (s SkillSet) Len() int {
	return len(s)
}

func (s SkillSet) Has(skill string) bool {
	_, ok := s[skill]
	return ok
}

func (s SkillSet) Intersect(other SkillSet) SkillSet {
	out := make(SkillSet)
	for k := range s {
		if other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

func (s SkillSet) Difference(other SkillSet) SkillSet {
	out := make(SkillSet)
	for k := range s {
		if !other.Has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
