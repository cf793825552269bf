// Package models defines the objects managed by the hbnb console and the
// classes they can be created from.
package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Giddy-K/AirBnB-clone/pkg/utils"
)

// TimeFormat is the layout used for created_at and updated_at in snapshots.
const TimeFormat = "2006-01-02T15:04:05.000000"

// Reserved snapshot keys.
const (
	KeyClass     = "__class__"
	KeyID        = "id"
	KeyCreatedAt = "created_at"
	KeyUpdatedAt = "updated_at"
)

// Saver persists every stored object. The storage engine binds itself to each
// object it holds.
type Saver interface {
	Save() error
}

// Model is a stored object: an id, its timestamps and a free set of
// attributes.
type Model struct {
	Class     string
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Attrs     map[string]any

	saver Saver
}

// Key returns the store key for class and id.
func Key(class, id string) string {
	return class + "." + id
}

// Key returns the store key of m.
func (m *Model) Key() string {
	return Key(m.Class, m.ID)
}

// Bind sets the Saver used by Save.
func (m *Model) Bind(s Saver) {
	m.saver = s
}

// Set assigns an attribute. The id is fixed once the object exists since it
// is part of the store key. Timestamps are routed to their typed fields; one
// that does not parse leaves the field unchanged.
func (m *Model) Set(name string, v any) {
	switch name {
	case KeyID, KeyClass:
		return
	case KeyCreatedAt, KeyUpdatedAt:
		t, err := parseTime(v)
		if err != nil {
			return
		}
		if name == KeyCreatedAt {
			m.CreatedAt = t
		} else {
			m.UpdatedAt = t
		}
	default:
		m.Attrs[name] = v
	}
}

// Save refreshes updated_at and writes the store.
func (m *Model) Save() error {
	m.UpdatedAt = time.Now()
	if m.saver == nil {
		return errors.Errorf("%s is not attached to a storage", m.Key())
	}
	return m.saver.Save()
}

// ToMap returns the attribute snapshot written to the backing file.
func (m *Model) ToMap() map[string]any {
	out := make(map[string]any, len(m.Attrs)+4)
	for k, v := range m.Attrs {
		out[k] = v
	}
	out[KeyClass] = m.Class
	out[KeyID] = m.ID
	out[KeyCreatedAt] = m.CreatedAt.Format(TimeFormat)
	out[KeyUpdatedAt] = m.UpdatedAt.Format(TimeFormat)
	return out
}

// String renders m as "[Class] (id) {attributes}".
func (m *Model) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] (%s) {", m.Class, m.ID)
	fmt.Fprintf(&b, "%q: %q, ", KeyID, m.ID)
	fmt.Fprintf(&b, "%q: %q, ", KeyCreatedAt, m.CreatedAt.Format(TimeFormat))
	fmt.Fprintf(&b, "%q: %q", KeyUpdatedAt, m.UpdatedAt.Format(TimeFormat))
	for _, k := range sortedKeys(m.Attrs) {
		fmt.Fprintf(&b, ", %q: %s", k, render(m.Attrs[k]))
	}
	b.WriteByte('}')
	return b.String()
}

func render(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case float64:
		return utils.FormatFloat(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = render(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		parts := make([]string, 0, len(x))
		for _, k := range sortedKeys(x) {
			parts = append(parts, strconv.Quote(k)+": "+render(x[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(x)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		t, err := time.ParseInLocation(TimeFormat, x, time.Local)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "parse timestamp %q", x)
		}
		return t, nil
	default:
		return time.Time{}, errors.Errorf("timestamp has type %T", v)
	}
}

func newID() string {
	return uuid.NewString()
}
