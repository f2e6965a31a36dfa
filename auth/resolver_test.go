package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVerifier scripts the verification service and counts calls.
type fakeVerifier struct {
	claims Claims
	err    error
	calls  int
}

func (v *fakeVerifier) Verify(ctx context.Context, token string) (Claims, error) {
	v.calls++
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func TestStrictResolveVerifiedCredential(t *testing.T) {
	verifier := &fakeVerifier{claims: Claims{"email": "verified@x.com"}}
	r := NewResolver(verifier)

	// The token decodes to a different email; the verified claims must win
	// and the resolver must not fall through to unverified decoding.
	token := makeToken(t, map[string]interface{}{"email": "decoded@x.com"})

	id, err := r.Resolve(context.Background(), Input{AuthHeader: "Bearer " + token})
	require.NoError(t, err)
	assert.Equal(t, "verified@x.com", id.Email)
	assert.Equal(t, Claims{"email": "verified@x.com"}, id.Claims)
	assert.Equal(t, 1, verifier.calls)
}

func TestStrictResolveMissingHeader(t *testing.T) {
	verifier := &fakeVerifier{claims: Claims{"email": "verified@x.com"}}
	r := NewResolver(verifier)

	// A missing or malformed header fails immediately, body notwithstanding.
	tests := []struct {
		name   string
		header string
	}{
		{"absent", ""},
		{"wrong scheme", "Basic abc"},
		{"bare bearer", "Bearer "},
		{"no space", "Bearertoken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), Input{
				AuthHeader: tt.header,
				Body:       map[string]interface{}{"userEmail": "body@x.com"},
			})
			assert.ErrorIs(t, err, ErrMissingCredential)
			assert.Zero(t, verifier.calls)
		})
	}
}

func TestStrictResolveFallsBackToDecodedToken(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("signature mismatch")}
	r := NewResolver(verifier)

	token := makeToken(t, map[string]interface{}{"user_id": "decoded@x.com"})

	id, err := r.Resolve(context.Background(), Input{AuthHeader: "Bearer " + token})
	require.NoError(t, err)
	assert.Equal(t, "decoded@x.com", id.Email)
	assert.Equal(t, 1, verifier.calls)
}

func TestStrictResolveFallsBackToBodyEmail(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("expired")}
	r := NewResolver(verifier)

	// The token neither verifies nor decodes; the body's userEmail is the
	// last resort.
	id, err := r.Resolve(context.Background(), Input{
		AuthHeader: "Bearer garbage",
		Body:       map[string]interface{}{"userEmail": "body@x.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "body@x.com", id.Email)
}

func TestStrictResolveInvalidCredential(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("expired")}
	r := NewResolver(verifier)

	_, err := r.Resolve(context.Background(), Input{AuthHeader: "Bearer garbage"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLenientResolveBodyEmailWins(t *testing.T) {
	r := NewResolver(nil)

	// An unparseable bearer credential does not shadow the body email.
	id, err := r.Resolve(context.Background(), Input{
		AuthHeader: "Bearer not-a-jwt",
		Body:       map[string]interface{}{"userEmail": "a@x.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", id.Email)
}

func TestLenientResolveDecodedToken(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name    string
		payload map[string]interface{}
		want    string
	}{
		{"email claim", map[string]interface{}{"email": "a@x.com"}, "a@x.com"},
		{"user_id claim", map[string]interface{}{"user_id": "b@x.com"}, "b@x.com"},
		{"sub claim", map[string]interface{}{"sub": "c@x.com"}, "c@x.com"},
		{"nested identities", map[string]interface{}{
			"firebase": map[string]interface{}{
				"identities": map[string]interface{}{
					"email": []interface{}{"nested@x.com"},
				},
			},
		}, "nested@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := r.Resolve(context.Background(), Input{
				AuthHeader: "Bearer " + makeToken(t, tt.payload),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.Email)
		})
	}
}

func TestLenientResolveBodyFallbacks(t *testing.T) {
	r := NewResolver(nil)

	tests := []struct {
		name string
		body map[string]interface{}
		want string
	}{
		{"email field", map[string]interface{}{"email": "e@x.com"}, "e@x.com"},
		{"nested user email", map[string]interface{}{
			"user": map[string]interface{}{"email": "u@x.com"},
		}, "u@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := r.Resolve(context.Background(), Input{Body: tt.body})
			require.NoError(t, err)
			assert.Equal(t, tt.want, id.Email)
		})
	}
}

func TestLenientResolveBookingPlaceholder(t *testing.T) {
	r := NewResolver(nil)

	// A booking request with some body but no extractable identity gets the
	// sentinel identity instead of a rejection.
	id, err := r.Resolve(context.Background(), Input{
		Path: "/api/bookings",
		Body: map[string]interface{}{"serviceId": "svc-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderEmail, id.Email)

	// Outside the booking path the same request is rejected.
	_, err = r.Resolve(context.Background(), Input{
		Path: "/api/services",
		Body: map[string]interface{}{"serviceId": "svc-1"},
	})
	assert.ErrorIs(t, err, ErrMissingIdentity)

	// An empty body on the booking path is rejected too.
	_, err = r.Resolve(context.Background(), Input{Path: "/api/bookings"})
	assert.ErrorIs(t, err, ErrMissingIdentity)
}

func TestLenientResolveMissingIdentity(t *testing.T) {
	r := NewResolver(nil)

	_, err := r.Resolve(context.Background(), Input{})
	assert.ErrorIs(t, err, ErrMissingIdentity)
}
