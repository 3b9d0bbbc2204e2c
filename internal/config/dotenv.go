// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultDotEnvPath = ".env"
	dotEnvPathEnv     = "ENV_FILE"
)

// dotEnvPath returns the .env location, overridable through ENV_FILE.
func dotEnvPath() string {
	if p := os.Getenv(dotEnvPathEnv); p != "" {
		return p
	}
	return defaultDotEnvPath
}

// loadDotEnv exports the variables of the file at path into the process
// environment. Variables that are already set keep their values. A missing
// file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s file: %w", path, err)
	}

	return nil
}
