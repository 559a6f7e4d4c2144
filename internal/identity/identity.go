// Package identity verifies ID tokens issued by the external identity provider.
package identity

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidToken is returned for tokens the provider rejects.
var ErrInvalidToken = errors.New("invalid identity token")

// Identity is the verified profile carried by an ID token.
type Identity struct {
	UID        string
	Email      string
	FirstName  string
	LastName   string
	PictureURL string
	Provider   string
}

// Verifier checks an ID token and returns the identity it asserts.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Identity, error)
}

// SplitName splits a display name into first and last name on the first space.
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	first, last, _ = strings.Cut(name, " ")
	return first, strings.TrimSpace(last)
}
