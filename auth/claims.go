package auth

import "github.com/golang-jwt/jwt"

// Claims is the string-keyed attribute map asserted by a credential. Upstream
// identity providers vary in which fields they populate, so access goes
// through narrow helpers instead of a fixed schema.
type Claims map[string]interface{}

// GetString returns the claim as a string, or "" when absent or non-string.
func (c Claims) GetString(key string) string {
	if c == nil {
		return ""
	}
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

// EmailClaim returns the first email-like claim, trying "email", then
// "user_id", then "sub".
func (c Claims) EmailClaim() string {
	for _, key := range []string{"email", "user_id", "sub"} {
		if v := c.GetString(key); v != "" {
			return v
		}
	}
	return ""
}

// FirebaseIdentityEmail digs out the first entry of the Firebase-shaped
// firebase.identities.email array, or "" when the path is absent.
func (c Claims) FirebaseIdentityEmail() string {
	if c == nil {
		return ""
	}
	fb, ok := c["firebase"].(map[string]interface{})
	if !ok {
		return ""
	}
	identities, ok := fb["identities"].(map[string]interface{})
	if !ok {
		return ""
	}
	emails, ok := identities["email"].([]interface{})
	if !ok || len(emails) == 0 {
		return ""
	}
	email, _ := emails[0].(string)
	return email
}

// DecodeUnverified parses a JWT's claims without checking its signature: the
// credential must have exactly three dot-separated segments and a base64url
// JSON payload. Any malformation yields nil rather than an error, so callers
// simply proceed to the next fallback.
func DecodeUnverified(token string) Claims {
	parser := jwt.Parser{}
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return Claims(claims)
}
