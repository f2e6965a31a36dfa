package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeToken builds an unsigned JWT-shaped credential from the given payload.
func makeToken(t *testing.T, payload map[string]interface{}) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

func TestDecodeUnverified(t *testing.T) {
	token := makeToken(t, map[string]interface{}{"email": "a@x.com", "sub": "uid-1"})

	claims := DecodeUnverified(token)
	require.NotNil(t, claims)
	assert.Equal(t, "a@x.com", claims.GetString("email"))
	assert.Equal(t, "uid-1", claims.GetString("sub"))
}

func TestDecodeUnverifiedIsTotal(t *testing.T) {
	// Any malformed input yields nil claims, never a panic or error.
	inputs := []string{
		"",
		"not-a-token",
		"only.two",
		"a.b.c.d",
		"x.!!!notbase64!!!.y",
		"a..b",
	}
	for _, in := range inputs {
		assert.Nil(t, DecodeUnverified(in), "input %q", in)
	}

	// Valid base64 but non-JSON payload.
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte("plain text"))
	assert.Nil(t, DecodeUnverified(header+"."+payload+".sig"))
}

func TestEmailClaimPriority(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		want   string
	}{
		{"email wins", Claims{"email": "a@x.com", "user_id": "b@x.com", "sub": "c@x.com"}, "a@x.com"},
		{"user_id next", Claims{"user_id": "b@x.com", "sub": "c@x.com"}, "b@x.com"},
		{"sub last", Claims{"sub": "c@x.com"}, "c@x.com"},
		{"non-string ignored", Claims{"email": 42, "sub": "c@x.com"}, "c@x.com"},
		{"nothing", Claims{"aud": "app"}, ""},
		{"nil claims", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.claims.EmailClaim())
		})
	}
}

func TestFirebaseIdentityEmail(t *testing.T) {
	claims := Claims{
		"firebase": map[string]interface{}{
			"identities": map[string]interface{}{
				"email": []interface{}{"nested@x.com", "other@x.com"},
			},
		},
	}
	assert.Equal(t, "nested@x.com", claims.FirebaseIdentityEmail())

	assert.Empty(t, Claims{}.FirebaseIdentityEmail())
	assert.Empty(t, Claims{"firebase": map[string]interface{}{}}.FirebaseIdentityEmail())
	assert.Empty(t, Claims{"firebase": map[string]interface{}{
		"identities": map[string]interface{}{"email": []interface{}{}},
	}}.FirebaseIdentityEmail())
}
