// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"fmt"
	"strings"
)

// Environment selects which Plaid deployment requests are sent to.
//
// Sandbox and Development are for testing, while all activity against
// Production is billed. Each environment has a fixed base address which is
// resolved at call time with URL().
type Environment string

const (
	Sandbox     Environment = "sandbox"
	Development Environment = "development"
	Production  Environment = "production"
)

// URL returns the base address for the environment or an empty string for
// unrecognized values.
func (env Environment) URL() string {
	switch env {
	case Sandbox:
		return "https://sandbox.plaid.com"
	case Development:
		return "https://development.plaid.com"
	case Production:
		return "https://production.plaid.com"
	}
	return ""
}

func (env Environment) String() string {
	return string(env)
}

// ParseEnvironment matches v against each Environment name.
func ParseEnvironment(v string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "sandbox":
		return Sandbox, nil
	case "development":
		return Development, nil
	case "production":
		return Production, nil
	}
	return "", fmt.Errorf("unknown Plaid environment %q", v)
}
