package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// dateLayouts are the date shapes accepted from the document store and the form
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-like date string. ok is false when the value is not a date.
func ParseDate(value string) (t time.Time, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// CoercePrice normalizes a price that may arrive as a number or a numeric string.
// ok is false for anything that is not a finite number after coercion.
func CoercePrice(raw interface{}) (float64, bool) {
	if raw == nil {
		return 0, false
	}
	if s, isString := raw.(string); isString {
		raw = strings.TrimSpace(s)
	}
	v, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FlexFloat is a numeric field that tolerates string encodings from the document store
type FlexFloat struct {
	Value float64
	Valid bool
}

// NewFlexFloat returns a valid FlexFloat
func NewFlexFloat(v float64) FlexFloat {
	return FlexFloat{Value: v, Valid: true}
}

// Positive reports whether the value is usable as a price
func (f FlexFloat) Positive() bool {
	return f.Valid && f.Value > 0
}

func (f *FlexFloat) set(raw interface{}) {
	f.Value, f.Valid = CoercePrice(raw)
}

// UnmarshalJSON accepts numbers, numeric strings and null
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid numeric value: %w", err)
	}
	f.set(raw)
	return nil
}

// MarshalJSON writes null for invalid values
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalYAML accepts scalars in either form
func (f *FlexFloat) UnmarshalYAML(node *yaml.Node) error {
	var raw interface{}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	f.set(raw)
	return nil
}

// Scan implements sql.Scanner
func (f *FlexFloat) Scan(src interface{}) error {
	if b, ok := src.([]byte); ok {
		src = string(b)
	}
	f.set(src)
	return nil
}

// Timestamp is an updatedAt/dateAdded value that arrives either as an ISO string
// or as an epoch-seconds structure ({"seconds": N}).
type Timestamp struct {
	ISO     string
	Seconds *int64
}

// TimestampFromTime builds an ISO timestamp
func TimestampFromTime(t time.Time) Timestamp {
	return Timestamp{ISO: t.UTC().Format(time.RFC3339Nano)}
}

// TimestampFromSeconds builds an epoch-seconds timestamp
func TimestampFromSeconds(seconds int64) Timestamp {
	return Timestamp{Seconds: &seconds}
}

// Time returns the instant the timestamp denotes
func (t Timestamp) Time() (time.Time, bool) {
	if t.ISO != "" {
		return ParseDate(t.ISO)
	}
	if t.Seconds != nil {
		return time.Unix(*t.Seconds, 0).UTC(), true
	}
	return time.Time{}, false
}

// Millis normalizes the timestamp to epoch milliseconds. Unparseable or absent values are 0 (oldest).
func (t Timestamp) Millis() int64 {
	if t.ISO != "" {
		parsed, ok := ParseDate(t.ISO)
		if !ok {
			return 0
		}
		return parsed.UnixMilli()
	}
	if t.Seconds != nil {
		return *t.Seconds * 1000
	}
	return 0
}

type secondsShape struct {
	Seconds       *int64 `json:"seconds" yaml:"seconds"`
	LegacySeconds *int64 `json:"_seconds" yaml:"_seconds"`
}

func (s secondsShape) value() *int64 {
	if s.Seconds != nil {
		return s.Seconds
	}
	return s.LegacySeconds
}

// UnmarshalJSON accepts an ISO string or a {seconds} object; anything else is left empty
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	trimmed := strings.TrimSpace(string(data))
	switch {
	case strings.HasPrefix(trimmed, `"`):
		return json.Unmarshal(data, &t.ISO)
	case strings.HasPrefix(trimmed, "{"):
		var shape secondsShape
		if err := json.Unmarshal(data, &shape); err != nil {
			return fmt.Errorf("invalid timestamp object: %w", err)
		}
		t.Seconds = shape.value()
	}
	return nil
}

// MarshalJSON writes the timestamp back in the shape it arrived in
func (t Timestamp) MarshalJSON() ([]byte, error) {
	switch {
	case t.ISO != "":
		return json.Marshal(t.ISO)
	case t.Seconds != nil:
		return json.Marshal(map[string]int64{"seconds": *t.Seconds})
	}
	return []byte("null"), nil
}

// UnmarshalYAML mirrors UnmarshalJSON for pricing sheets
func (t *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	*t = Timestamp{}
	switch node.Kind {
	case yaml.ScalarNode:
		t.ISO = node.Value
	case yaml.MappingNode:
		var shape secondsShape
		if err := node.Decode(&shape); err != nil {
			return err
		}
		t.Seconds = shape.value()
	}
	return nil
}

// Scan implements sql.Scanner for timestamptz and text columns
func (t *Timestamp) Scan(src interface{}) error {
	*t = Timestamp{}
	switch v := src.(type) {
	case nil:
	case time.Time:
		t.ISO = v.UTC().Format(time.RFC3339Nano)
	case string:
		t.ISO = v
	case []byte:
		t.ISO = string(v)
	case int64:
		t.Seconds = &v
	default:
		return fmt.Errorf("unsupported timestamp source %T", src)
	}
	return nil
}
