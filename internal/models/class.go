package models

import (
	"time"

	"github.com/pkg/errors"
)

// Class describes a model type the console can create: its name and the casts
// of its declared attributes.
type Class struct {
	Name       string
	Attributes map[string]Cast
}

// New constructs a fresh object with a new id and both timestamps set to now.
func (c Class) New() *Model {
	now := time.Now()
	return &Model{
		Class:     c.Name,
		ID:        newID(),
		CreatedAt: now,
		UpdatedAt: now,
		Attrs:     make(map[string]any),
	}
}

// FromMap rehydrates an object from a snapshot produced by Model.ToMap.
// Declared attributes are cast; a value that fails its cast is kept as is.
func (c Class) FromMap(snapshot map[string]any) (*Model, error) {
	id, ok := snapshot[KeyID].(string)
	if !ok || id == "" {
		return nil, errors.Errorf("%s snapshot has no id", c.Name)
	}
	m := &Model{
		Class: c.Name,
		ID:    id,
		Attrs: make(map[string]any, len(snapshot)),
	}
	var err error
	if m.CreatedAt, err = parseTime(snapshot[KeyCreatedAt]); err != nil {
		return nil, errors.Wrapf(err, "%s.%s", c.Name, id)
	}
	if m.UpdatedAt, err = parseTime(snapshot[KeyUpdatedAt]); err != nil {
		return nil, errors.Wrapf(err, "%s.%s", c.Name, id)
	}
	for k, v := range snapshot {
		switch k {
		case KeyClass, KeyID, KeyCreatedAt, KeyUpdatedAt:
			continue
		}
		if cast, ok := c.Attributes[k]; ok {
			if cv, err := cast.Apply(v); err == nil {
				v = cv
			}
		}
		m.Attrs[k] = v
	}
	return m, nil
}

// Defaults returns the AirBnB class set.
func Defaults() []Class {
	return []Class{
		{Name: "BaseModel"},
		{Name: "User", Attributes: map[string]Cast{
			"email":      CastText,
			"password":   CastText,
			"first_name": CastText,
			"last_name":  CastText,
		}},
		{Name: "State", Attributes: map[string]Cast{
			"name": CastText,
		}},
		{Name: "City", Attributes: map[string]Cast{
			"state_id": CastText,
			"name":     CastText,
		}},
		{Name: "Amenity", Attributes: map[string]Cast{
			"name": CastText,
		}},
		{Name: "Place", Attributes: map[string]Cast{
			"city_id":          CastText,
			"user_id":          CastText,
			"name":             CastText,
			"description":      CastText,
			"number_rooms":     CastInt,
			"number_bathrooms": CastInt,
			"max_guest":        CastInt,
			"price_by_night":   CastInt,
			"latitude":         CastFloat,
			"longitude":        CastFloat,
			"amenity_ids":      CastAny,
		}},
		{Name: "Review", Attributes: map[string]Cast{
			"place_id": CastText,
			"user_id":  CastText,
			"text":     CastText,
		}},
	}
}
