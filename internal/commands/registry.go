package commands

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Registry maps a verb, the first word of a console line, to the command that
// runs it. It is filled at startup and read by a single console loop; it is
// not safe for concurrent use.
type Registry struct {
	verbs map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{verbs: make(map[string]Command)}
}

// Register makes cmd reachable under its name. A verb must be a single
// non-empty word and can be registered once.
func (r *Registry) Register(cmd Command) error {
	verb := cmd.Name()
	if verb == "" || strings.ContainsAny(verb, " \t") {
		return errors.Errorf("invalid verb %q", verb)
	}
	if _, taken := r.verbs[verb]; taken {
		return errors.Errorf("verb %q is already registered", verb)
	}
	r.verbs[verb] = cmd
	return nil
}

func (r *Registry) Lookup(verb string) (Command, bool) {
	cmd, ok := r.verbs[verb]
	return cmd, ok
}

// Verbs lists the registered verbs in byte order, so EOF sorts first.
func (r *Registry) Verbs() []string {
	verbs := make([]string, 0, len(r.verbs))
	for verb := range r.verbs {
		verbs = append(verbs, verb)
	}
	sort.Strings(verbs)
	return verbs
}
