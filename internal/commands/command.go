package commands

import (
	"context"
	"errors"
	"io"

	"github.com/Giddy-K/AirBnB-clone/internal/models"
)

// Command is one console verb. Execute receives the rest of the input line
// after the verb and writes its result to output.
type Command interface {
	Name() string        // Returns the verb (e.g., "show")
	Description() string // Returns the usage line shown by help
	Execute(ctx context.Context, line string, output io.Writer) error
}

// Store is the part of the storage engine the commands use.
type Store interface {
	All() map[string]*models.Model
	New(obj *models.Model)
	Save() error
	Keys() []string
	HasClass(name string) bool
	Classes() map[string]models.Class
	Attributes() map[string]map[string]models.Cast
}

// Diagnostic is a user-facing error. The console prints it and keeps going.
type Diagnostic string

func (d Diagnostic) Error() string { return string(d) }

const (
	ErrClassNameMissing     Diagnostic = "** class name missing **"
	ErrClassNotFound        Diagnostic = "** class doesn't exist **"
	ErrInstanceIDMissing    Diagnostic = "** instance id missing **"
	ErrInstanceNotFound     Diagnostic = "** no instance found **"
	ErrAttributeNameMissing Diagnostic = "** attribute name missing **"
	ErrValueMissing         Diagnostic = "** value missing **"
	ErrInvalidDictionary    Diagnostic = "** invalid dictionary **"
)

// ErrQuit is returned by the commands that end the session.
var ErrQuit = errors.New("quit")
