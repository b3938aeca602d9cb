package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKey(t *testing.T) {
	key := APIKey()
	require.True(t, strings.HasPrefix(key, "sbx_"))
	assert.Len(t, key, len(APIKeyPrefix)+APIKeyLength)
	for _, r := range strings.TrimPrefix(key, APIKeyPrefix) {
		assert.Contains(t, alphanumeric, string(r))
	}
}

func TestClientSecret(t *testing.T) {
	secret := ClientSecret()
	assert.Len(t, secret, 40)
	for _, r := range secret {
		assert.Contains(t, secretChars, string(r))
	}
	assert.NotEqual(t, secret, ClientSecret())
}

func TestClientID_Unique(t *testing.T) {
	assert.NotEqual(t, ClientID(), ClientID())
}

func TestCompanyID(t *testing.T) {
	id := CompanyID()
	require.True(t, strings.HasPrefix(id, "SBX"))
	assert.Len(t, id, 11)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Acme Corp", "acme-corp"},
		{"  --Hello,   World!!  ", "hello-world"},
		{"ÜberCo GmbH & Söhne", "berco-gmbh-s-hne"},
		{"A Very Long Company Name That Keeps Going", "a-very-long-company-name-that"},
		{"!!!", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "slugify(%q)", tc.in)
	}
}

func TestSlugify_LengthCapped(t *testing.T) {
	assert.LessOrEqual(t, len(Slugify(strings.Repeat("abc ", 40))), SlugMaxLength)
}
