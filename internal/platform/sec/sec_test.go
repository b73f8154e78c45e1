// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/internal/platform/sec"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return raw
}

/*
TestParseUnverified_ReadsBackendClaims verifies subject, role and expiry are
decoded without knowledge of the signing secret.
*/
func TestParseUnverified_ReadsBackendClaims(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := sign(t, jwt.MapClaims{"sub": "user-1", "role": "Admin", "exp": expiry.Unix()})

	claims, err := sec.ParseUnverified(raw)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, sec.RoleAdmin, claims.UserRole())
	assert.True(t, claims.Expiry().Equal(expiry))
	assert.False(t, claims.Expired(time.Now()))
	assert.True(t, claims.Expired(expiry.Add(time.Second)))
}

func TestParseUnverified_Garbage(t *testing.T) {
	_, err := sec.ParseUnverified("not-a-token")
	assert.Error(t, err)
}

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		role   string
		target sec.UserRole
		want   bool
	}{
		{"Admin", sec.RoleAdmin, true},
		{"admin", sec.RoleEditor, true},
		{"Editor", sec.RoleEditor, true},
		{"editor", sec.RoleAdmin, false},
		{"guest", sec.RoleEditor, false},
		{"", sec.UserRole("nobody"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sec.ParseRole(tt.role).AtLeast(tt.target), tt.role)
	}
}
