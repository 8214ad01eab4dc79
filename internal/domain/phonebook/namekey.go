package phonebook

import "strings"

// nameKey is the normalized form used for name uniqueness: the first and
// last whitespace-separated words of the trimmed, lowercased name, plus the
// number of words. Interior words do not take part, so "Ann Marie Lee" and
// "Ann Rose Lee" collide while "Ann Lee" does not collide with either.
type nameKey struct {
	first string
	last  string
	words int
}

// newNameKey returns false when name has no words.
func newNameKey(name string) (nameKey, bool) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	if len(fields) == 0 {
		return nameKey{}, false
	}
	return nameKey{
		first: fields[0],
		last:  fields[len(fields)-1],
		words: len(fields),
	}, true
}

// indexOfNameKey returns the index of the first contact whose name key
// equals key, or -1.
func (s *Store) indexOfNameKey(key nameKey) int {
	for i, c := range s.contacts {
		if k, ok := newNameKey(c.Name); ok && k == key {
			return i
		}
	}
	return -1
}
