package commands

import "go.uber.org/zap"

// NewDefaultRegistry returns a registry holding every console verb wired to
// store.
func NewDefaultRegistry(store Store, logger *zap.Logger) (*Registry, error) {
	registry := NewRegistry()
	cmdsToRegister := []Command{
		&HelpCmd{Registry: registry},
		&CreateCmd{Store: store},
		&ShowCmd{Store: store},
		&DestroyCmd{Store: store},
		&AllCmd{Store: store},
		&CountCmd{Store: store},
		&UpdateCmd{Store: store, Logger: logger},
		&QuitCmd{},
		&EOFCmd{},
	}
	for _, cmd := range cmdsToRegister {
		if err := registry.Register(cmd); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
