// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"testing"
)

func TestEnvironment__URL(t *testing.T) {
	cases := []struct {
		env Environment
		url string
	}{
		{Sandbox, "https://sandbox.plaid.com"},
		{Development, "https://development.plaid.com"},
		{Production, "https://production.plaid.com"},
		{Environment("staging"), ""},
	}
	for i := range cases {
		if v := cases[i].env.URL(); v != cases[i].url {
			t.Errorf("%s: got %q", cases[i].env, v)
		}
	}
}

func TestEnvironment__Parse(t *testing.T) {
	if env, err := ParseEnvironment("sandbox"); env != Sandbox || err != nil {
		t.Errorf("got %v / %v", env, err)
	}
	if env, err := ParseEnvironment(" Production "); env != Production || err != nil {
		t.Errorf("got %v / %v", env, err)
	}
	if env, err := ParseEnvironment("DEVELOPMENT"); env != Development || err != nil {
		t.Errorf("got %v / %v", env, err)
	}
	if _, err := ParseEnvironment("qa"); err == nil {
		t.Error("expected error")
	}
	if _, err := ParseEnvironment(""); err == nil {
		t.Error("expected error")
	}
}
