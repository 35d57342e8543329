// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package maybe_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"code.hybscloud.com/maybe"
)

type profile struct {
	Name  maybe.Option[string] `json:"name" yaml:"name"`
	Age   maybe.Option[int]    `json:"age" yaml:"age"`
	Email maybe.Option[string] `json:"email,omitzero" yaml:"email,omitempty"`
}

func TestOptionJSONEncode(t *testing.T) {
	data, err := json.Marshal(profile{Name: maybe.Some("ann")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"name":"ann","age":null}`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestOptionJSONDecode(t *testing.T) {
	var p profile
	if err := json.Unmarshal([]byte(`{"name":"ann","age":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Name != maybe.Some("ann") {
		t.Fatalf("got name %v, want Some(ann)", p.Name)
	}
	if p.Age.IsPresent() {
		t.Fatalf("got age %v, want None", p.Age)
	}
	if p.Email.IsPresent() {
		t.Fatalf("got email %v, want None", p.Email)
	}
}

func TestOptionJSONDecodeError(t *testing.T) {
	var p profile
	err := json.Unmarshal([]byte(`{"age":"old"}`), &p)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "maybe: decode option") {
		t.Fatalf("error %q not wrapped", err)
	}
}

func TestOptionYAMLEncode(t *testing.T) {
	data, err := yaml.Marshal(profile{Age: maybe.Some(30)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), "name: null\nage: 30\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOptionYAMLDecode(t *testing.T) {
	var p profile
	if err := yaml.Unmarshal([]byte("name: ann\nage: null\n"), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Name != maybe.Some("ann") {
		t.Fatalf("got name %v, want Some(ann)", p.Name)
	}
	if p.Age.IsPresent() {
		t.Fatalf("got age %v, want None", p.Age)
	}
}

func TestOptionYAMLDecodeError(t *testing.T) {
	var p profile
	err := yaml.Unmarshal([]byte("age: [1, 2]\n"), &p)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !strings.Contains(err.Error(), "maybe: decode option") {
		t.Fatalf("error %q not wrapped", err)
	}
}

func TestOptionRoundTrip(t *testing.T) {
	in := profile{Name: maybe.Some("bo"), Email: maybe.Some("bo@example.com")}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	var fromJSON profile
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if fromJSON != in {
		t.Fatalf("json round trip: got %+v, want %+v", fromJSON, in)
	}

	data, err = yaml.Marshal(in)
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	var fromYAML profile
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if fromYAML != in {
		t.Fatalf("yaml round trip: got %+v, want %+v", fromYAML, in)
	}
}

type ref struct {
	Ptr maybe.Option[*int] `json:"ptr" yaml:"ptr"`
}

func TestOptionSomeNilRoundTrip(t *testing.T) {
	in := ref{Ptr: maybe.Some[*int](nil)}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	var fromJSON ref
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if fromJSON != in {
		t.Fatalf("json round trip: got %v, want %v", fromJSON.Ptr, in.Ptr)
	}

	data, err = yaml.Marshal(in)
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	var fromYAML ref
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if fromYAML != in {
		t.Fatalf("yaml round trip: got %v, want %v", fromYAML.Ptr, in.Ptr)
	}
}

func TestOptionPointerRoundTrip(t *testing.T) {
	x := 7
	in := ref{Ptr: maybe.Some(&x)}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	var fromJSON ref
	if err := json.Unmarshal(data, &fromJSON); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if p, ok := fromJSON.Ptr.TryGet(); !ok || *p != 7 {
		t.Fatalf("json round trip: got %v", fromJSON.Ptr)
	}

	data, err = yaml.Marshal(in)
	if err != nil {
		t.Fatalf("yaml marshal: %v", err)
	}
	var fromYAML ref
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		t.Fatalf("yaml unmarshal: %v", err)
	}
	if p, ok := fromYAML.Ptr.TryGet(); !ok || *p != 7 {
		t.Fatalf("yaml round trip: got %v", fromYAML.Ptr)
	}
}

func TestOptionHeldNilRefusesEncoding(t *testing.T) {
	tw := maybe.TakeWhile(maybe.FromSlice([]*int{nil}), func(p *int) bool { return p != nil })
	_ = maybe.Collect[*int](tw)
	in := ref{Ptr: tw.HoldValue()}
	if !in.Ptr.IsPresent() {
		t.Fatal("expected held nil to be present")
	}

	if _, err := json.Marshal(in); !errors.Is(err, maybe.ErrNilValue) {
		t.Fatalf("json: got %v, want ErrNilValue", err)
	}
	if _, err := yaml.Marshal(in); !errors.Is(err, maybe.ErrNilValue) {
		t.Fatalf("yaml: got %v, want ErrNilValue", err)
	}
}
