package statestore

import (
	"encoding/json"
	"errors"
	"math"
	"unicode/utf8"

	"github.com/buger/jsonparser"
	"github.com/mj1618/tasktrees/internal/model"
)

// ErrMalformed is returned by Decode for text that is not valid UTF-8 JSON.
var ErrMalformed = errors.New("malformed window state")

// Decode extracts a WindowState from data. Every field is decoded on its own
// and replaced by its default when missing, mistyped or out of range, so a
// file with a single good field still restores that field. Unknown keys are
// ignored and a repeated key keeps its last value. A valid document that is
// not an object yields all defaults.
func Decode(data []byte) (model.WindowState, error) {
	if !utf8.Valid(data) || !json.Valid(data) {
		return model.DefaultWindowState(), ErrMalformed
	}
	members := topLevel(data)
	return model.WindowState{
		Width:       uint32Field(members["width"], model.DefaultWidth),
		Height:      uint32Field(members["height"], model.DefaultHeight),
		X:           int32Field(members["x"], model.DefaultX),
		Y:           int32Field(members["y"], model.DefaultY),
		IsMaximized: boolField(members["is_maximized"], false),
	}, nil
}

type member struct {
	value []byte
	typ   jsonparser.ValueType
}

// topLevel indexes the members of a top-level object. The zero member has
// type NotExist.
func topLevel(data []byte) map[string]member {
	members := make(map[string]member)
	_ = jsonparser.ObjectEach(data, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		members[string(key)] = member{value: value, typ: typ}
		return nil
	})
	return members
}

func uint32Field(m member, def uint32) uint32 {
	if m.typ != jsonparser.Number {
		return def
	}
	v, err := jsonparser.ParseInt(m.value)
	if err != nil || v < 0 || v > math.MaxUint32 {
		return def
	}
	return uint32(v)
}

func int32Field(m member, def int32) int32 {
	if m.typ != jsonparser.Number {
		return def
	}
	v, err := jsonparser.ParseInt(m.value)
	if err != nil || v < math.MinInt32 || v > math.MaxInt32 {
		return def
	}
	return int32(v)
}

func boolField(m member, def bool) bool {
	if m.typ != jsonparser.Boolean {
		return def
	}
	v, err := jsonparser.ParseBoolean(m.value)
	if err != nil {
		return def
	}
	return v
}
