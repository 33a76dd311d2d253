// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. Every violation is
// reported, joined into one error.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrTokenSignKeyIsNotSpecified)
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidTokenDuration)
	}
	if cfg.App.PasswordHashTime == 0 || cfg.App.PasswordHashMemory == 0 || cfg.App.PasswordHashThreads == 0 {
		errs = append(errs, ErrInvalidPasswordHashParams)
	}
	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrServerAddressIsNotSpecified)
	}
	if err := cfg.validateStorage(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrDSNIsNotSpecified
	}
	return nil
}
