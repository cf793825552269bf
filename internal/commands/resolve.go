package commands

import (
	"strings"

	"github.com/Giddy-K/AirBnB-clone/internal/models"
)

// resolveClass checks, in order, that a class name was given and that it is
// registered.
func resolveClass(store Store, name string) error {
	if name == "" {
		return ErrClassNameMissing
	}
	if !store.HasClass(name) {
		return ErrClassNotFound
	}
	return nil
}

// resolveInstance runs the class checks, then checks that an id was given and
// that it names a stored object.
func resolveInstance(store Store, class, id string) (*models.Model, error) {
	if err := resolveClass(store, class); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrInstanceIDMissing
	}
	obj, ok := store.All()[models.Key(class, id)]
	if !ok {
		return nil, ErrInstanceNotFound
	}
	return obj, nil
}

// field returns the i-th whitespace separated word of line, or "".
func field(line string, i int) string {
	words := strings.Fields(line)
	if i < len(words) {
		return words[i]
	}
	return ""
}

// scanner walks an argument line word by word.
type scanner struct {
	src string
	pos int
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// word returns the next run of non-space characters.
func (s *scanner) word() string {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.src) && !isSpace(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// value returns the next double-quoted string, quotes included, or the next
// word when there is no closing quote.
func (s *scanner) value() string {
	s.skipSpace()
	if s.pos < len(s.src) && s.src[s.pos] == '"' {
		if end := strings.IndexByte(s.src[s.pos+1:], '"'); end >= 0 {
			start := s.pos
			s.pos += end + 2
			return s.src[start:s.pos]
		}
	}
	return s.word()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
