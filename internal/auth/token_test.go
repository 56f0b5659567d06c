// token_test.go
//
// Jobby, a job-board service where admins post jobs and users apply
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of jobby.
// jobby is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// jobby is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with jobby.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *TokenService {
	t.Helper()
	s, err := NewTokenService("admin-secret", "user-secret")
	require.NoError(t, err)
	return s
}

func TestNewTokenServiceSecrets(t *testing.T) {
	_, err := NewTokenService("", "user-secret")
	assert.Error(t, err)

	_, err = NewTokenService("admin-secret", "")
	assert.Error(t, err)

	_, err = NewTokenService("same", "same")
	assert.Error(t, err)
}

func TestIssueAndVerifyAdmin(t *testing.T) {
	s := newTestService(t)

	token, err := s.IssueAdmin("a1")
	require.NoError(t, err)

	p, err := s.VerifyAdmin(token)
	require.NoError(t, err)
	assert.Equal(t, Principal{ID: "a1", Role: RoleAdmin}, p)
}

func TestIssueAndVerifyUser(t *testing.T) {
	s := newTestService(t)

	token, err := s.IssueUser("u1")
	require.NoError(t, err)

	p, err := s.VerifyUser(token)
	require.NoError(t, err)
	assert.Equal(t, Principal{ID: "u1", Role: RoleUser}, p)
}

func TestDomainsAreIsolated(t *testing.T) {
	s := newTestService(t)

	userToken, err := s.IssueUser("u1")
	require.NoError(t, err)
	adminToken, err := s.IssueAdmin("a1")
	require.NoError(t, err)

	_, err = s.Verify(string(userToken), DomainAdmin)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrRoleMismatch)

	_, err = s.Verify(string(adminToken), DomainUser)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAdminDomainRequiresAdminRole(t *testing.T) {
	s := newTestService(t)

	// Signed with the admin secret but claiming the user role
	token, err := s.Issue("u1", RoleUser, DomainAdmin)
	require.NoError(t, err)

	_, err = s.Verify(token, DomainAdmin)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestUserDomainAcceptsAnyRole(t *testing.T) {
	s := newTestService(t)

	token, err := s.Issue("a1", RoleAdmin, DomainUser)
	require.NoError(t, err)

	p, err := s.Verify(token, DomainUser)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, p.Role)
}

func TestVerifyRejectsMalformedAndTampered(t *testing.T) {
	s := newTestService(t)

	_, err := s.Verify("not-a-jwt", DomainUser)
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, err := s.IssueUser("u1")
	require.NoError(t, err)
	tampered := string(token) + "x"
	_, err = s.Verify(tampered, DomainUser)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify(string(token), Domain("other"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	s := newTestService(t)

	claims := &Claims{ID: "u1", Role: RoleUser}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte("user-secret"))
	require.NoError(t, err)

	_, err = s.Verify(signed, DomainUser)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingID(t *testing.T) {
	s := newTestService(t)

	token, err := s.Issue("", RoleUser, DomainUser)
	require.NoError(t, err)

	_, err = s.Verify(token, DomainUser)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensDoNotExpire(t *testing.T) {
	s := newTestService(t)
	s.now = func() time.Time { return time.Now().Add(-5 * 365 * 24 * time.Hour) }

	token, err := s.IssueUser("u1")
	require.NoError(t, err)

	_, err = s.VerifyUser(token)
	assert.NoError(t, err)
}
