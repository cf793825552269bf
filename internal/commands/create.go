package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// CreateCmd implements "create <Class>".
type CreateCmd struct {
	Store Store
}

func (c *CreateCmd) Name() string { return "create" }
func (c *CreateCmd) Description() string {
	return "Creates an instance of a class, saves it and prints its id. Usage: create <class>"
}

func (c *CreateCmd) Execute(ctx context.Context, line string, output io.Writer) error {
	name := strings.TrimSpace(line)
	if err := resolveClass(c.Store, name); err != nil {
		return err
	}
	obj := c.Store.Classes()[name].New()
	c.Store.New(obj)
	if err := obj.Save(); err != nil {
		return errors.Wrapf(err, "save %s", obj.Key())
	}
	fmt.Fprintln(output, obj.ID)
	return nil
}
