// Package authstore persists the token pair and user identity under the
// config directory. A missing or unreadable file always reads as "absent"
// so storage trouble degrades to a logged-out session instead of an error.
package authstore

import (
	"encoding/json"
	"os"

	"golang.org/x/oauth2"
)

// Store reads and writes tokens and the user profile as small JSON files.
type Store struct {
	tokenPath   string
	profilePath string
}

type profile struct {
	Email string `json:"email"`
}

// New creates a Store bound to the given file paths.
func New(tokenPath, profilePath string) *Store {
	return &Store{tokenPath: tokenPath, profilePath: profilePath}
}

// Access returns the stored access token, or "" if none.
func (s *Store) Access() string {
	return s.readToken().AccessToken
}

// Refresh returns the stored refresh token, or "" if none.
func (s *Store) Refresh() string {
	return s.readToken().RefreshToken
}

// SetTokens persists both tokens, replacing any existing pair.
func (s *Store) SetTokens(access, refresh string) {
	s.writeToken(oauth2.Token{AccessToken: access, RefreshToken: refresh})
}

// SetAccess updates only the access token, keeping the stored refresh token.
// Used after a refresh, which does not rotate the refresh token.
func (s *Store) SetAccess(access string) {
	tok := s.readToken()
	tok.AccessToken = access
	s.writeToken(tok)
}

// Clear removes the token pair. The profile is untouched; logout clears it
// explicitly via SetEmail("").
func (s *Store) Clear() {
	os.Remove(s.tokenPath)
}

// Email returns the stored user email, or "" if none.
func (s *Store) Email() string {
	data, err := os.ReadFile(s.profilePath)
	if err != nil {
		return ""
	}
	var p profile
	if err := json.Unmarshal(data, &p); err != nil {
		return ""
	}
	return p.Email
}

// SetEmail persists the user email. An empty email removes the profile.
func (s *Store) SetEmail(email string) {
	if email == "" {
		os.Remove(s.profilePath)
		return
	}
	data, err := json.MarshalIndent(profile{Email: email}, "", "  ")
	if err != nil {
		return
	}
	os.WriteFile(s.profilePath, data, 0600)
}

func (s *Store) readToken() oauth2.Token {
	data, err := os.ReadFile(s.tokenPath)
	if err != nil {
		return oauth2.Token{}
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return oauth2.Token{}
	}
	return tok
}

func (s *Store) writeToken(tok oauth2.Token) {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return
	}
	os.WriteFile(s.tokenPath, data, 0600)
}
