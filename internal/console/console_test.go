package console

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Giddy-K/AirBnB-clone/internal/commands"
	"github.com/Giddy-K/AirBnB-clone/internal/models"
	"github.com/Giddy-K/AirBnB-clone/internal/storage"
)

type session struct {
	store   *storage.FileStorage
	console *Console
	out     *bytes.Buffer
}

func newSession(t *testing.T) *session {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "file.json"), models.Defaults(), zap.NewNop())
	registry, err := commands.NewDefaultRegistry(store, zap.NewNop())
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return &session{store: store, console: New(registry, out, zap.NewNop()), out: out}
}

// exec runs line and returns what it printed.
func (s *session) exec(t *testing.T, line string) string {
	t.Helper()
	s.out.Reset()
	assert.False(t, s.console.Execute(context.Background(), line), line)
	return s.out.String()
}

func (s *session) create(t *testing.T, class string) string {
	t.Helper()
	return strings.TrimSpace(s.exec(t, "create "+class))
}

func TestEmptyLineIsNoop(t *testing.T) {
	s := newSession(t)
	assert.Empty(t, s.exec(t, ""))
	assert.Empty(t, s.exec(t, "   \t"))
}

func TestUnknownSyntax(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, "*** Unknown syntax: fly User\n", s.exec(t, "fly User"))
	assert.Equal(t, "*** Unknown syntax: ?\n", s.exec(t, "?"))
	assert.Equal(t, "*** Unknown syntax: fly User 1\n", s.exec(t, `User.fly("1")`))
}

func TestQuit(t *testing.T) {
	s := newSession(t)
	assert.True(t, s.console.Execute(context.Background(), "quit"))
	assert.True(t, s.console.Execute(context.Background(), `.quit()`))
}

func TestDottedShowMatchesCanonical(t *testing.T) {
	s := newSession(t)
	id := s.create(t, "User")

	canonical := s.exec(t, "show User "+id)
	assert.Contains(t, canonical, id)
	assert.Equal(t, canonical, s.exec(t, `User.show("`+id+`")`))
	assert.Equal(t, canonical, s.exec(t, `User.show(`+id+`)`))

	assert.Equal(t, s.exec(t, "show User 123"), s.exec(t, `User.show("123")`))
	assert.Equal(t, "** instance id missing **\n", s.exec(t, `User.show()`))
	assert.Equal(t, "** class doesn't exist **\n", s.exec(t, `Ghost.show("1")`))
	// The empty class drops out of the canonical line, so the id is read as
	// the class name.
	assert.Equal(t, "** class doesn't exist **\n", s.exec(t, `.show("1")`))
	assert.Equal(t, "** class name missing **\n", s.exec(t, `.show()`))
}

func TestDottedAllCountDestroy(t *testing.T) {
	s := newSession(t)
	a := s.create(t, "Amenity")
	b := s.create(t, "Amenity")
	s.create(t, "User")

	assert.Equal(t, "2\n", s.exec(t, "Amenity.count()"))
	assert.Equal(t, s.exec(t, "all Amenity"), s.exec(t, "Amenity.all()"))

	assert.Empty(t, s.exec(t, `Amenity.destroy("`+a+`")`))
	assert.Equal(t, "1\n", s.exec(t, "count Amenity"))
	all := s.exec(t, "Amenity.all()")
	assert.NotContains(t, all, a)
	assert.Contains(t, all, b)
}

func TestDottedUpdateAttribute(t *testing.T) {
	s := newSession(t)
	id := s.create(t, "User")

	assert.Empty(t, s.exec(t, `User.update("`+id+`", "first_name", "John")`))
	assert.Empty(t, s.exec(t, `User.update("`+id+`", "age", 89)`))
	obj := s.store.All()["User."+id]
	assert.Equal(t, "John", obj.Attrs["first_name"])
	assert.Equal(t, 89, obj.Attrs["age"])

	assert.Equal(t, "** attribute name missing **\n", s.exec(t, `User.update("`+id+`")`))
	assert.Equal(t, "** value missing **\n", s.exec(t, `User.update("`+id+`", "age")`))
}

func TestDottedDictUpdateMatchesSequentialUpdates(t *testing.T) {
	s := newSession(t)
	viaDict := s.create(t, "Place")
	viaUpdates := s.create(t, "Place")

	assert.Empty(t, s.exec(t, `Place.update("`+viaDict+`", {'x': 1, 'y': "a", 'max_guest': '3'})`))
	assert.Empty(t, s.exec(t, "update Place "+viaUpdates+" x 1"))
	assert.Empty(t, s.exec(t, "update Place "+viaUpdates+` y "a"`))
	assert.Empty(t, s.exec(t, "update Place "+viaUpdates+` max_guest "3"`))

	all := s.store.All()
	assert.Equal(t, all["Place."+viaUpdates].Attrs, all["Place."+viaDict].Attrs)

	fresh := storage.New(s.store.Path(), models.Defaults(), zap.NewNop())
	require.NoError(t, fresh.Load())
	assert.Equal(t, all["Place."+viaDict].Attrs, fresh.All()["Place."+viaDict].Attrs)
}

func TestDottedDictUpdateDiagnostics(t *testing.T) {
	s := newSession(t)
	id := s.create(t, "User")

	assert.Equal(t, "** class name missing **\n", s.exec(t, `.update("`+id+`", {'a': 1})`))
	assert.Equal(t, "** class doesn't exist **\n", s.exec(t, `Ghost.update("`+id+`", {'a': 1})`))
	assert.Equal(t, "** no instance found **\n", s.exec(t, `User.update("nope", {'a': 1})`))
	assert.Equal(t, "** invalid dictionary **\n", s.exec(t, `User.update("`+id+`", {'a': })`))
	assert.Equal(t, "** invalid dictionary **\n", s.exec(t, `User.update("`+id+`", {'name': "O'Brien"})`))
	assert.NotContains(t, s.store.All()["User."+id].Attrs, "a")
	assert.NotContains(t, s.store.All()["User."+id].Attrs, "name")
}

func TestUpdateMissingArgumentOrdering(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, "** class name missing **\n", s.exec(t, "update"))
	assert.Equal(t, "** class doesn't exist **\n", s.exec(t, "update Ghost"))
	assert.Equal(t, "** class doesn't exist **\n", s.exec(t, "update Ghost 1 name value"))
	assert.Equal(t, "** instance id missing **\n", s.exec(t, "update User"))
	assert.Equal(t, "** no instance found **\n", s.exec(t, "update User 1 name value"))
}

func TestSaveFailureIsReported(t *testing.T) {
	store := storage.New(filepath.Join(t.TempDir(), "missing", "file.json"), models.Defaults(), zap.NewNop())
	registry, err := commands.NewDefaultRegistry(store, zap.NewNop())
	require.NoError(t, err)
	var out bytes.Buffer
	c := New(registry, &out, zap.NewNop())

	assert.False(t, c.Execute(context.Background(), "create User"))
	assert.Equal(t, "** save failed **\n", out.String())
}

func TestRunStream(t *testing.T) {
	s := newSession(t)
	input := strings.Join([]string{
		"create State",
		"",
		"count State",
		"State.count()",
	}, "\n")

	require.NoError(t, s.console.RunStream(context.Background(), strings.NewReader(input)))
	lines := strings.Split(s.out.String(), "\n")
	require.Len(t, lines, 5)
	assert.Len(t, lines[0], 36)
	assert.Equal(t, []string{"1", "1", "", ""}, lines[1:])
}

func TestRunStreamStopsAtQuit(t *testing.T) {
	s := newSession(t)
	input := "quit\ncreate User\n"

	require.NoError(t, s.console.RunStream(context.Background(), strings.NewReader(input)))
	assert.Empty(t, s.out.String())
	assert.Empty(t, s.store.All())
}
