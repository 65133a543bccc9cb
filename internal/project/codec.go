package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/imagenav/imagenav/internal/model"
)

// ErrMalformedProject is returned when a project document fails structural
// validation on load. The caller's prior project, if any, stays in place.
var ErrMalformedProject = errors.New("malformed project document")

// Encode writes the store as an indented JSON project document:
//
//	{ "scenes": { name: { "background": ..., "buttons": [...] } } }
//
// Scenes appear in insertion order, which Decode preserves, so the document
// round-trips without reordering. Encoding an empty store fails with
// ErrEmptyProject: a valid document has at least one scene.
func (st *Store) Encode(w io.Writer) error {
	if len(st.order) == 0 {
		return ErrEmptyProject
	}

	// Marshal scene records one by one into a compact document so scene keys
	// keep insertion order (a map marshal would sort them), then indent.
	var compact bytes.Buffer
	compact.WriteString(`{"scenes":{`)
	for i, name := range st.order {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return fmt.Errorf("encode scene name %q: %w", name, err)
		}
		compact.Write(key)
		compact.WriteByte(':')
		record, err := json.Marshal(st.scenes[name])
		if err != nil {
			return fmt.Errorf("encode scene %q: %w", name, err)
		}
		compact.Write(record)
	}
	compact.WriteString("}}")

	var indented bytes.Buffer
	if err := json.Indent(&indented, compact.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("indent project document: %w", err)
	}
	indented.WriteByte('\n')

	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("write project document: %w", err)
	}
	return nil
}

// Decode parses and validates a project document and returns a new store.
// Scene order follows the document's declared key order. A document is
// malformed when "scenes" is missing, empty, or not an object, when a scene
// record lacks "background" or "buttons", or when a hotspot lacks "target"
// or its "coords" is not an array of exactly four numbers. Hotspot targets
// are not checked against the scene set: missing targets surface at
// navigation time, which keeps hand-authored work-in-progress loadable.
func Decode(r io.Reader) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read project document: %w", err)
	}

	var doc struct {
		Scenes json.RawMessage `json:"scenes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProject, err)
	}
	if len(doc.Scenes) == 0 || string(doc.Scenes) == "null" {
		return nil, fmt.Errorf("%w: missing scenes", ErrMalformedProject)
	}

	names, records, err := decodeSceneEntries(doc.Scenes)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no scenes", ErrMalformedProject)
	}

	st := NewStore()
	for _, name := range names {
		scene, err := decodeScene(name, records[name])
		if err != nil {
			return nil, err
		}
		st.scenes[name] = scene
		st.order = append(st.order, name)
	}
	return st, nil
}

// decodeSceneEntries walks the scenes object with a token decoder, keeping
// the declared key order. A duplicate key keeps its first position and the
// last value, matching plain map semantics in other tooling.
func decodeSceneEntries(raw json.RawMessage) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedProject, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("%w: scenes must be an object", ErrMalformedProject)
	}

	var names []string
	records := make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedProject, err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("%w: scene key is not a string", ErrMalformedProject)
		}
		if name == "" {
			return nil, nil, fmt.Errorf("%w: empty scene name", ErrMalformedProject)
		}

		var record json.RawMessage
		if err := dec.Decode(&record); err != nil {
			return nil, nil, fmt.Errorf("%w: scene %q: %v", ErrMalformedProject, name, err)
		}
		if _, seen := records[name]; !seen {
			names = append(names, name)
		}
		records[name] = record
	}
	return names, records, nil
}

// decodeScene validates a single scene record. Pointer fields distinguish a
// missing key from a present-but-empty value.
func decodeScene(name string, raw json.RawMessage) (*model.Scene, error) {
	var record struct {
		Background *string            `json:"background"`
		Buttons    *[]json.RawMessage `json:"buttons"`
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("%w: scene %q: %v", ErrMalformedProject, name, err)
	}
	if record.Background == nil {
		return nil, fmt.Errorf("%w: scene %q: missing background", ErrMalformedProject, name)
	}
	if record.Buttons == nil {
		return nil, fmt.Errorf("%w: scene %q: missing buttons", ErrMalformedProject, name)
	}

	scene := model.NewScene(name, *record.Background)
	for i, rawButton := range *record.Buttons {
		h, err := decodeHotspot(rawButton)
		if err != nil {
			return nil, fmt.Errorf("%w: scene %q: button %d: %v", ErrMalformedProject, name, i, err)
		}
		scene.Buttons = append(scene.Buttons, h)
	}
	return scene, nil
}

// decodeHotspot validates a single hotspot record and assigns its runtime ID.
func decodeHotspot(raw json.RawMessage) (model.Hotspot, error) {
	var record struct {
		Coords *json.RawMessage `json:"coords"`
		Target *string          `json:"target"`
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return model.Hotspot{}, err
	}
	if record.Coords == nil {
		return model.Hotspot{}, errors.New("missing coords")
	}
	if record.Target == nil {
		return model.Hotspot{}, errors.New("missing target")
	}

	var coords model.Rect
	if err := json.Unmarshal(*record.Coords, &coords); err != nil {
		return model.Hotspot{}, err
	}

	return model.Hotspot{
		ID:     generateHotspotID(),
		Coords: coords,
		Target: *record.Target,
	}, nil
}
