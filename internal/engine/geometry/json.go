package geometry

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// JSON round-trip
// ============================================================

// Entities are serialized as type-tagged objects so a drawing can be
// re-hydrated by the render endpoint without losing the union variant.

type taggedEntity struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func entityTag(e Entity) string {
	switch e.(type) {
	case Polyline:
		return "polyline"
	case Line:
		return "line"
	case Circle:
		return "circle"
	case Arc:
		return "arc"
	case Text:
		return "text"
	}
	return ""
}

// MarshalEntities encodes an entity list with type tags.
func MarshalEntities(entities []Entity) ([]byte, error) {
	tagged := make([]taggedEntity, 0, len(entities))
	for _, e := range entities {
		tag := entityTag(e)
		if tag == "" {
			return nil, fmt.Errorf("unknown entity type %T", e)
		}
		data, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		tagged = append(tagged, taggedEntity{Type: tag, Data: data})
	}
	return json.Marshal(tagged)
}

// UnmarshalEntities decodes a type-tagged entity list.
func UnmarshalEntities(data []byte) ([]Entity, error) {
	var tagged []taggedEntity
	if err := json.Unmarshal(data, &tagged); err != nil {
		return nil, err
	}

	entities := make([]Entity, 0, len(tagged))
	for _, t := range tagged {
		var (
			e   Entity
			err error
		)
		switch t.Type {
		case "polyline":
			var v Polyline
			err = json.Unmarshal(t.Data, &v)
			e = v
		case "line":
			var v Line
			err = json.Unmarshal(t.Data, &v)
			e = v
		case "circle":
			var v Circle
			err = json.Unmarshal(t.Data, &v)
			e = v
		case "arc":
			var v Arc
			err = json.Unmarshal(t.Data, &v)
			e = v
		case "text":
			var v Text
			err = json.Unmarshal(t.Data, &v)
			e = v
		default:
			return nil, fmt.Errorf("unknown entity type %q", t.Type)
		}
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

// MarshalJSON encodes the drawing as its type-tagged entity list.
func (d *Drawing) MarshalJSON() ([]byte, error) {
	return MarshalEntities(d.entities)
}

// UnmarshalJSON replaces the drawing contents with the decoded list.
func (d *Drawing) UnmarshalJSON(data []byte) error {
	entities, err := UnmarshalEntities(data)
	if err != nil {
		return err
	}
	d.entities = entities
	return nil
}
