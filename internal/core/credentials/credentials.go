// Package credentials generates the opaque sandbox secrets handed out at signup.
//
// Values come from math/rand and are only meant for sandbox tenants; they must
// never be reused as production secrets.
package credentials

import (
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	secretChars  = alphanumeric + "-_"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	lowerChars   = "abcdefghijklmnopqrstuvwxyz0123456789"

	APIKeyPrefix      = "sbx_"
	APIKeyLength      = 32
	SecretLength      = 40
	CompanyIDPrefix   = "SBX"
	CompanyIDLength   = 8
	SlugMaxLength     = 30
	ShortSuffixLength = 4
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// APIKey returns a v1 API key: the sbx_ prefix followed by 32 alphanumerics.
func APIKey() string {
	return APIKeyPrefix + randomString(alphanumeric, APIKeyLength)
}

// ClientID returns an opaque v2 OAuth client identifier.
func ClientID() string {
	return uuid.NewString()
}

// ClientSecret returns a 40-character secret drawn from [A-Za-z0-9-_].
func ClientSecret() string {
	return randomString(secretChars, SecretLength)
}

// CompanyID returns a public company identifier such as SBX7K2M9QAZ.
func CompanyID() string {
	return CompanyIDPrefix + randomString(upperChars, CompanyIDLength)
}

// ShortSuffix returns the random suffix appended to a colliding slug.
func ShortSuffix() string {
	return randomString(lowerChars, ShortSuffixLength)
}

// Slugify lowercases text, collapses every run of non-alphanumerics into a single
// dash, caps the result at SlugMaxLength and trims dashes at both ends.
func Slugify(text string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(text), "-")
	s = strings.Trim(s, "-")
	if len(s) > SlugMaxLength {
		s = strings.TrimRight(s[:SlugMaxLength], "-")
	}
	return s
}

func randomString(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}
