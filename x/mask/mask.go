// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package mask hides credential material (API secrets, account numbers)
// before it's written to logs or debug output.
package mask

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Password masks all but the first and last characters of s.
func Password(s string) string {
	if utf8.RuneCountInString(s) < 3 {
		return "**" // too short, we can't mask anything
	}
	// turn 'password' into 'p******d'
	first, last := s[0:1], s[len(s)-1:]
	return fmt.Sprintf("%s%s%s", first, strings.Repeat("*", len(s)-2), last)
}

// Token keeps the last four characters of s visible, which is enough to
// tell two access tokens apart without recording either.
func Token(s string) string {
	if utf8.RuneCountInString(s) < 8 {
		return "****"
	}
	return fmt.Sprintf("****%s", s[len(s)-4:])
}
