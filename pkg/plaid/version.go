// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

// Version is sent in each request's User-Agent header.
var Version string = "v0.1.0-dev"
