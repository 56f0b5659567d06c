// token.go
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

// Package auth issues and verifies role-tagged bearer tokens and carries the
// authenticated principal through a request context.
//
// Tokens are HS256 JWTs with the claims {id, role, iat}. Admin and user tokens
// are signed in two independent domains, each with its own secret, so a token
// from one domain never verifies in the other. Tokens carry no expiry and stay
// valid until the signing secret changes.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the role claim carried by a token.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Domain is an isolated signing scope.
type Domain string

const (
	DomainAdmin Domain = "admin"
	DomainUser  Domain = "user"
)

// AdminToken is a token issued in the admin domain.
type AdminToken string

// UserToken is a token issued in the user domain.
type UserToken string

var (
	// ErrInvalidToken is returned for any token that does not verify in the requested domain.
	ErrInvalidToken = errors.New("invalid token")
	// ErrRoleMismatch is returned, together with ErrInvalidToken, when an
	// admin-domain token verifies but its role claim is not "admin".
	ErrRoleMismatch = errors.New("role mismatch")
)

// Claims is the JWT payload.
type Claims struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies tokens for both domains.
type TokenService struct {
	secrets map[Domain][]byte
	now     func() time.Time
}

// NewTokenService creates a token service from the two domain secrets.
// The secrets must be non-empty and distinct.
func NewTokenService(adminSecret, userSecret string) (*TokenService, error) {
	if adminSecret == "" || userSecret == "" {
		return nil, fmt.Errorf("token service: both signing secrets are required")
	}
	if adminSecret == userSecret {
		return nil, fmt.Errorf("token service: admin and user signing secrets must differ")
	}
	return &TokenService{
		secrets: map[Domain][]byte{
			DomainAdmin: []byte(adminSecret),
			DomainUser:  []byte(userSecret),
		},
		now: time.Now,
	}, nil
}

// Issue signs {id, role} in the given domain.
func (s *TokenService) Issue(id string, role Role, domain Domain) (string, error) {
	secret, ok := s.secrets[domain]
	if !ok {
		return "", fmt.Errorf("unknown signing domain %q", domain)
	}

	claims := &Claims{
		ID:   id,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks token against the domain secret and returns its principal.
func (s *TokenService) Verify(token string, domain Domain) (Principal, error) {
	secret, ok := s.secrets[domain]
	if !ok {
		return Principal{}, fmt.Errorf("%w: unknown signing domain %q", ErrInvalidToken, domain)
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.ID == "" {
		return Principal{}, ErrInvalidToken
	}

	if domain == DomainAdmin && claims.Role != RoleAdmin {
		return Principal{}, fmt.Errorf("%w: %w: role %q", ErrInvalidToken, ErrRoleMismatch, claims.Role)
	}

	return Principal{ID: claims.ID, Role: claims.Role}, nil
}

// IssueAdmin issues an admin-domain token for an admin id.
func (s *TokenService) IssueAdmin(adminID string) (AdminToken, error) {
	token, err := s.Issue(adminID, RoleAdmin, DomainAdmin)
	return AdminToken(token), err
}

// IssueUser issues a user-domain token for a user id.
func (s *TokenService) IssueUser(userID string) (UserToken, error) {
	token, err := s.Issue(userID, RoleUser, DomainUser)
	return UserToken(token), err
}

// VerifyAdmin verifies an admin token.
func (s *TokenService) VerifyAdmin(token AdminToken) (Principal, error) {
	return s.Verify(string(token), DomainAdmin)
}

// VerifyUser verifies a user token.
func (s *TokenService) VerifyUser(token UserToken) (Principal, error) {
	return s.Verify(string(token), DomainUser)
}
