package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// AllCmd implements "all [<Class>]".
type AllCmd struct {
	Store Store
}

func (c *AllCmd) Name() string { return "all" }
func (c *AllCmd) Description() string {
	return "Prints every instance, or every instance of one class. Usage: all [class]"
}

func (c *AllCmd) Execute(ctx context.Context, line string, output io.Writer) error {
	class := field(line, 0)
	if class != "" && !c.Store.HasClass(class) {
		return ErrClassNotFound
	}
	objects := c.Store.All()
	rendered := make([]string, 0, len(objects))
	for _, key := range c.Store.Keys() {
		obj := objects[key]
		if class != "" && obj.Class != class {
			continue
		}
		rendered = append(rendered, quoteItem(obj.String()))
	}
	fmt.Fprintf(output, "[%s]\n", strings.Join(rendered, ", "))
	return nil
}

// quoteItem quotes s as a list element: single quotes unless s holds a
// single quote and no double quote.
func quoteItem(s string) string {
	quote := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		quote = '"'
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\' || r == rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// CountCmd implements "count <Class>".
type CountCmd struct {
	Store Store
}

func (c *CountCmd) Name() string { return "count" }
func (c *CountCmd) Description() string {
	return "Prints the number of instances of a class. Usage: count <class>"
}

func (c *CountCmd) Execute(ctx context.Context, line string, output io.Writer) error {
	class := field(line, 0)
	if err := resolveClass(c.Store, class); err != nil {
		return err
	}
	prefix := class + "."
	n := 0
	for key := range c.Store.All() {
		if strings.HasPrefix(key, prefix) {
			n++
		}
	}
	fmt.Fprintln(output, n)
	return nil
}
