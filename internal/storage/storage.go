// Package storage keeps the console's objects in memory and persists them to a
// single JSON file.
package storage

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Giddy-K/AirBnB-clone/internal/models"
	"github.com/Giddy-K/AirBnB-clone/pkg/utils"
)

// FileStorage maps "Class.ID" keys to live objects. It is not safe for
// concurrent use.
type FileStorage struct {
	path    string
	objects map[string]*models.Model
	classes map[string]models.Class
	logger  *zap.Logger
}

// New creates an empty storage backed by path that knows the given classes.
func New(path string, classes []models.Class, logger *zap.Logger) *FileStorage {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := make(map[string]models.Class, len(classes))
	for _, c := range classes {
		registry[c.Name] = c
	}
	return &FileStorage{
		path:    path,
		objects: make(map[string]*models.Model),
		classes: registry,
		logger:  logger,
	}
}

// Path returns the backing file.
func (s *FileStorage) Path() string {
	return s.path
}

// All returns the live object map. Callers may delete from it directly.
func (s *FileStorage) All() map[string]*models.Model {
	return s.objects
}

// New adds obj to the store and binds its Save to this storage.
func (s *FileStorage) New(obj *models.Model) {
	obj.Bind(s)
	s.objects[obj.Key()] = obj
}

// Keys returns the store keys in sorted order.
func (s *FileStorage) Keys() []string {
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Classes returns a copy of the class registry.
func (s *FileStorage) Classes() map[string]models.Class {
	out := make(map[string]models.Class, len(s.classes))
	for name, c := range s.classes {
		out[name] = c
	}
	return out
}

// HasClass reports whether name is a registered class.
func (s *FileStorage) HasClass(name string) bool {
	_, ok := s.classes[name]
	return ok
}

// Attributes returns a copy of the attribute-cast registry, keyed by class.
func (s *FileStorage) Attributes() map[string]map[string]models.Cast {
	out := make(map[string]map[string]models.Cast, len(s.classes))
	for name, c := range s.classes {
		casts := make(map[string]models.Cast, len(c.Attributes))
		for attr, cast := range c.Attributes {
			casts[attr] = cast
		}
		out[name] = casts
	}
	return out
}

// Save writes every object's snapshot to the backing file, replacing it.
func (s *FileStorage) Save() error {
	snapshot := make(map[string]any, len(s.objects))
	for key, obj := range s.objects {
		snapshot[key] = utils.PreserveFloats(obj.ToMap())
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "encode store")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", s.path)
	}
	s.logger.Debug("store saved", zap.String("file", s.path), zap.Int("objects", len(s.objects)))
	return nil
}

// Load reads the backing file into the store. A missing file leaves the store
// empty. A file that cannot be read or decoded is logged and also leaves the
// store empty. Entries naming an unregistered class, or whose snapshot cannot
// be rehydrated, are skipped with a warning.
func (s *FileStorage) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("backing file unreadable, starting empty", zap.String("file", s.path), zap.Error(err))
		}
		return nil
	}
	raw, err := utils.DecodeObject(data)
	if err != nil {
		s.logger.Warn("backing file is not a JSON object, starting empty", zap.String("file", s.path), zap.Error(err))
		return nil
	}

	loaded := 0
	for key, v := range raw {
		snapshot, ok := v.(map[string]any)
		if !ok {
			s.logger.Warn("skipping malformed entry", zap.String("key", key))
			continue
		}
		name, _ := snapshot[models.KeyClass].(string)
		class, ok := s.classes[name]
		if !ok {
			s.logger.Warn("skipping entry of unregistered class", zap.String("key", key), zap.String("class", name))
			continue
		}
		obj, err := class.FromMap(snapshot)
		if err != nil {
			s.logger.Warn("skipping entry", zap.String("key", key), zap.Error(err))
			continue
		}
		s.New(obj)
		loaded++
	}
	s.logger.Debug("store loaded", zap.String("file", s.path), zap.Int("objects", loaded))
	return nil
}
