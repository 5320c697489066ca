// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"github.com/go-kit/kit/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FromEnv builds a Client from PLAID_CLIENT_ID, PLAID_SECRET and
// PLAID_ENVIRONMENT. A .env file in the working directory is loaded first
// when present. PLAID_ENVIRONMENT defaults to sandbox when unset.
func FromEnv(logger log.Logger) (*Client, error) {
	_ = godotenv.Load() // optional

	vip := viper.New()
	vip.SetEnvPrefix("plaid")
	vip.AutomaticEnv()

	clientID := vip.GetString("client_id")
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	secret := vip.GetString("secret")
	if secret == "" {
		return nil, ErrMissingSecret
	}

	environment := Sandbox
	if v := vip.GetString("environment"); v != "" {
		env, err := ParseEnvironment(v)
		if err != nil {
			return nil, err
		}
		environment = env
	}

	return New(logger, clientID, secret, environment, nil)
}
