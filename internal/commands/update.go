package commands

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Giddy-K/AirBnB-clone/internal/models"
	"github.com/Giddy-K/AirBnB-clone/pkg/utils"
)

// UpdateCmd implements "update <Class> <id> <attribute> <value>" and the
// dictionary form used by Class.update(id, {...}).
type UpdateCmd struct {
	Store  Store
	Logger *zap.Logger
}

func (c *UpdateCmd) Name() string { return "update" }
func (c *UpdateCmd) Description() string {
	return `Sets one attribute of an instance and saves it. Usage: update <class> <id> <attribute> "<value>"`
}

// updateArgs is the parsed form of an update line.
type updateArgs struct {
	class, id, attr, value string
}

func parseUpdateArgs(line string) updateArgs {
	s := &scanner{src: line}
	var a updateArgs
	a.class = s.word()
	a.id = s.word()
	a.attr = s.word()
	a.value = s.value()
	return a
}

func (c *UpdateCmd) Execute(ctx context.Context, line string, output io.Writer) error {
	a := parseUpdateArgs(line)
	obj, err := resolveInstance(c.Store, a.class, a.id)
	if err != nil {
		return err
	}
	if a.attr == "" {
		return ErrAttributeNameMissing
	}
	if a.value == "" {
		return ErrValueMissing
	}

	casts := c.Store.Attributes()[a.class]
	obj.Set(a.attr, c.castValue(casts, a.attr, a.value))
	if err := obj.Save(); err != nil {
		return errors.Wrapf(err, "save %s", obj.Key())
	}
	return nil
}

// castValue converts the raw text of an update. Quoted text is unquoted and
// stays a string; anything else is guessed as a float when it has a '.' and as
// an int otherwise. A registered cast wins over the guess. Whatever fails to
// convert is kept as text.
func (c *UpdateCmd) castValue(casts map[string]models.Cast, attr, raw string) any {
	quoted := len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`)
	var v any = raw
	if quoted {
		v = strings.ReplaceAll(raw, `"`, "")
	}
	if cast, ok := casts[attr]; ok {
		return c.applyCast(cast, attr, v)
	}
	if !quoted {
		if n, ok := models.GuessNumber(raw); ok {
			return n
		}
	}
	return v
}

func (c *UpdateCmd) applyCast(cast models.Cast, attr string, v any) any {
	cv, err := cast.Apply(v)
	if err != nil {
		c.logger().Debug("keeping uncast value", zap.String("attribute", attr), zap.Stringer("cast", cast), zap.Error(err))
		return v
	}
	return cv
}

// ExecuteDict applies every pair of a dictionary literal to one instance and
// saves it once. It validates like Execute; the literal is parsed only once
// the instance is known and nothing is changed when it is malformed.
func (c *UpdateCmd) ExecuteDict(ctx context.Context, class, id, literal string, output io.Writer) error {
	obj, err := resolveInstance(c.Store, class, id)
	if err != nil {
		return err
	}
	pairs, err := utils.ParseDictLiteral(literal)
	if err != nil {
		c.logger().Debug("rejecting dictionary literal", zap.String("literal", literal), zap.Error(err))
		return ErrInvalidDictionary
	}
	attrs := make([]string, 0, len(pairs))
	for attr := range pairs {
		if attr == "" {
			return ErrAttributeNameMissing
		}
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	casts := c.Store.Attributes()[class]
	for _, attr := range attrs {
		v := pairs[attr]
		if cast, ok := casts[attr]; ok {
			v = c.applyCast(cast, attr, v)
		}
		obj.Set(attr, v)
	}
	if err := obj.Save(); err != nil {
		return errors.Wrapf(err, "save %s", obj.Key())
	}
	return nil
}

func (c *UpdateCmd) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
