// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package optiontest provides test assertions for [maybe.Option] values.
//
// Assert functions report a failure through t and return whether the check
// passed. Require functions also stop the test with t.FailNow.
package optiontest

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/maybe"
)

type tHelper interface {
	Helper()
}

// AssertIsDefined checks that o holds a value.
func AssertIsDefined[T any](t assert.TestingT, o maybe.Option[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if o.IsPresent() {
		return true
	}
	return assert.Fail(t, "Expected option to be defined, but it is None", msgAndArgs...)
}

// AssertOptionEquals checks that o holds a value equal to expected.
// Values are compared with assert.ObjectsAreEqual.
func AssertOptionEquals[T any](t assert.TestingT, expected T, o maybe.Option[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	actual, ok := o.TryGet()
	if !ok {
		return assert.Fail(t, fmt.Sprintf("Expected option to equal %#v, but it is None", expected), msgAndArgs...)
	}
	if !assert.ObjectsAreEqual(expected, actual) {
		return assert.Fail(t, fmt.Sprintf("Not equal: \n"+
			"expected: Some(%#v)\n"+
			"actual  : Some(%#v)", expected, actual), msgAndArgs...)
	}
	return true
}

// AssertEmpty checks that o holds nothing.
func AssertEmpty[T any](t assert.TestingT, o maybe.Option[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if v, ok := o.TryGet(); ok {
		return assert.Fail(t, fmt.Sprintf("Expected option to be None, but it holds %#v", v), msgAndArgs...)
	}
	return true
}

// RequireIsDefined is like AssertIsDefined but stops the test on failure.
func RequireIsDefined[T any](t require.TestingT, o maybe.Option[T], msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !AssertIsDefined(t, o, msgAndArgs...) {
		t.FailNow()
	}
}

// RequireOptionEquals is like AssertOptionEquals but stops the test on failure.
func RequireOptionEquals[T any](t require.TestingT, expected T, o maybe.Option[T], msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !AssertOptionEquals(t, expected, o, msgAndArgs...) {
		t.FailNow()
	}
}

// RequireEmpty is like AssertEmpty but stops the test on failure.
func RequireEmpty[T any](t require.TestingT, o maybe.Option[T], msgAndArgs ...any) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !AssertEmpty(t, o, msgAndArgs...) {
		t.FailNow()
	}
}
