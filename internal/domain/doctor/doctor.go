// Package doctor gives a typed view of the doctor list for search and
// similarity queries.
//
// The data file's schema belongs to the generator that produced it. Only the
// fields needed for matching are decoded; every Record keeps its original
// object and marshals back to it byte for byte.
package doctor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrNotFound is returned when no record carries the requested id.
var ErrNotFound = errors.New("doctor not found")

// Record is one doctor entry.
type Record struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Specialty   string  `json:"specialty"`
	Area        string  `json:"area"`
	ReviewScore float64 `json:"reviewScore"`

	noID bool // decoded without a usable integer id; never found by id
	raw  json.RawMessage
}

// fields mirrors Record without its methods so marshalling doesn't recurse.
type fields struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Specialty   string  `json:"specialty"`
	Area        string  `json:"area"`
	ReviewScore float64 `json:"reviewScore"`
}

// UnmarshalJSON decodes the matching fields and keeps a copy of the object.
// The generator owns the schema, so a field of an unexpected type is left at
// its zero value instead of failing the whole list. Numbers written as strings
// ("4.5") are accepted.
func (r *Record) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*r = Record{
		Name:      stringField(obj["name"]),
		Specialty: stringField(obj["specialty"]),
		Area:      stringField(obj["area"]),
	}
	r.ID, r.noID = intField(obj["id"])
	if score, err := numberField(obj["reviewScore"]).Float64(); err == nil {
		r.ReviewScore = score
	}
	r.raw = append(json.RawMessage(nil), data...)
	return nil
}

func stringField(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// numberField reads a JSON number or a string holding one. Anything else
// yields an empty Number, which fails to convert.
func numberField(raw json.RawMessage) json.Number {
	var n json.Number
	if json.Unmarshal(raw, &n) != nil {
		return ""
	}
	return n
}

// intField reads an integral number such as 7, 7.0 or "7".
func intField(raw json.RawMessage) (id int, missing bool) {
	n := numberField(raw)
	if i, err := n.Int64(); err == nil {
		return int(i), false
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		return int(f), false
	}
	return 0, true
}

// MarshalJSON returns the original object when the record was decoded from
// JSON, and the matching fields otherwise.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	return json.Marshal(fields{
		ID:          r.ID,
		Name:        r.Name,
		Specialty:   r.Specialty,
		Area:        r.Area,
		ReviewScore: r.ReviewScore,
	})
}

// Decode parses a doctor list. The document must be a JSON array of objects.
func Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return records, nil
}

func (r Record) sameID(o Record) bool {
	return !r.noID && !o.noID && r.ID == o.ID
}

// Find returns the record with the given id.
func Find(records []Record, id int) (Record, error) {
	for _, r := range records {
		if !r.noID && r.ID == id {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
}
