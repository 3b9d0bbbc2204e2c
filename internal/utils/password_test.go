// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_DigestShape(t *testing.T) {
	short, err := HashPassword("a", bcrypt.MinCost)
	require.NoError(t, err)

	long, err := HashPassword(strings.Repeat("x", 72), bcrypt.MinCost)
	require.NoError(t, err)

	assert.Len(t, short, 60)
	assert.Len(t, long, 60)
	assert.NotEqual(t, "a", short)
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73), bcrypt.MinCost)
	require.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	digest, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		password  string
		digest    string
		wantMatch bool
		wantErr   bool
	}{
		{name: "match", password: "secret", digest: digest, wantMatch: true},
		{name: "mismatch", password: "other", digest: digest},
		{name: "malformed digest", password: "secret", digest: "not-a-digest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := ComparePassword(tt.password, tt.digest)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatch, ok)
		})
	}
}
