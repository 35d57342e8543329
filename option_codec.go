// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package maybe

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Encoding of Option values.
// None encodes as null and null decodes as None, for both JSON and YAML.
// A field absent from the input leaves the Option at its zero value, which is None.

// ErrNilValue is returned when encoding a present Option that holds nil.
// Such an Option would encode as null and decode back as None.
var ErrNilValue = errors.New("maybe: cannot encode present option holding nil")

var jsonNull = []byte("null")

// IsZero reports whether o is empty.
// Lets `json:",omitzero"` and `yaml:",omitempty"` drop empty Options.
func (o Option[T]) IsZero() bool {
	return !o.ok
}

// MarshalJSON implements json.Marshaler.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return jsonNull, nil
	}
	if isNil(o.value) {
		return nil, ErrNilValue
	}
	data, err := json.Marshal(o.value)
	if err != nil {
		return nil, errors.Wrap(err, "maybe: encode option")
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*o = Option[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "maybe: decode option")
	}
	*o = Some(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Option[T]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	if isNil(o.value) {
		return nil, ErrNilValue
	}
	return o.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Option[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		*o = Option[T]{}
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return errors.Wrap(err, "maybe: decode option")
	}
	*o = Some(v)
	return nil
}
