package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ShowCmd implements "show <Class> <id>".
type ShowCmd struct {
	Store Store
}

func (c *ShowCmd) Name() string { return "show" }
func (c *ShowCmd) Description() string {
	return "Prints the string representation of an instance. Usage: show <class> <id>"
}

func (c *ShowCmd) Execute(ctx context.Context, line string, output io.Writer) error {
	obj, err := resolveInstance(c.Store, field(line, 0), field(line, 1))
	if err != nil {
		return err
	}
	fmt.Fprintln(output, obj)
	return nil
}

// DestroyCmd implements "destroy <Class> <id>".
type DestroyCmd struct {
	Store Store
}

func (c *DestroyCmd) Name() string { return "destroy" }
func (c *DestroyCmd) Description() string {
	return "Deletes an instance and saves the change. Usage: destroy <class> <id>"
}

func (c *DestroyCmd) Execute(ctx context.Context, line string, output io.Writer) error {
	obj, err := resolveInstance(c.Store, field(line, 0), field(line, 1))
	if err != nil {
		return err
	}
	delete(c.Store.All(), obj.Key())
	if err := c.Store.Save(); err != nil {
		return errors.Wrapf(err, "save after destroying %s", obj.Key())
	}
	return nil
}
