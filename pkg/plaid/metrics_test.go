// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"testing"
)

func TestMetrics(t *testing.T) {
	client, err := New(nil, "id", "secret", Sandbox, nil)
	if err != nil {
		t.Fatal(err)
	}
	client.trackRequest("accounts.get")
	client.trackError("accounts.get")
}
