// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"encoding/json"
	"fmt"

	"github.com/moov-io/plaid/x/mask"
)

// Secret holds a Plaid API secret. Rendering a Secret with the fmt package
// masks the underlying value so it can't end up in logs or panic output by
// accident. The raw value is only written out by MarshalJSON, which every
// request body relies on.
type Secret string

func (s Secret) String() string {
	return mask.Password(string(s))
}

func (s Secret) GoString() string {
	return fmt.Sprintf("plaid.Secret(%s)", mask.Password(string(s)))
}

// MarshalJSON writes the raw secret value. This is the single deliberate
// accessor for the unmasked secret and exists so request bodies can carry the
// "secret" field Plaid requires.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}
