package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homehero/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	claims auth.Claims
	err    error
}

func (v *fakeVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	return v.claims, v.err
}

func newRouter(resolver *auth.Resolver, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(VerifyToken(resolver))
	api.POST("/bookings", handler)
	api.GET("/services/provider/:email", handler)
	return r
}

func TestVerifyTokenLenientBodyIdentity(t *testing.T) {
	var gotEmail string
	var gotBody map[string]interface{}
	router := newRouter(auth.NewResolver(nil), func(c *gin.Context) {
		gotEmail = UserEmail(c)
		// The body must still be bindable after the resolver peeked at it.
		require.NoError(t, c.ShouldBindJSON(&gotBody))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	body := `{"userEmail": "customer@x.com", "serviceId": "svc-1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "customer@x.com", gotEmail)
	assert.Equal(t, "svc-1", gotBody["serviceId"])
}

func TestVerifyTokenLenientRejectsAnonymousNonBooking(t *testing.T) {
	router := newRouter(auth.NewResolver(nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/services/provider/x%40y.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unauthorized: could not extract user email", resp["error"])
}

func TestVerifyTokenLenientBookingPlaceholder(t *testing.T) {
	var gotEmail string
	router := newRouter(auth.NewResolver(nil), func(c *gin.Context) {
		gotEmail = UserEmail(c)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"serviceId": "svc-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, auth.PlaceholderEmail, gotEmail)
}

func TestVerifyTokenStrictVerifiedClaims(t *testing.T) {
	verifier := &fakeVerifier{claims: auth.Claims{"email": "verified@x.com", "uid": "u1"}}
	var gotEmail string
	var gotClaims auth.Claims
	router := newRouter(auth.NewResolver(verifier), func(c *gin.Context) {
		gotEmail = UserEmail(c)
		raw, _ := c.Get(ContextUser)
		gotClaims, _ = raw.(auth.Claims)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"serviceId": "svc-1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "verified@x.com", gotEmail)
	require.NotNil(t, gotClaims)
	assert.Equal(t, "u1", gotClaims.GetString("uid"))
}

func TestVerifyTokenStrictMissingHeader(t *testing.T) {
	verifier := &fakeVerifier{claims: auth.Claims{"email": "verified@x.com"}}
	router := newRouter(auth.NewResolver(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Even a body with a userEmail is not enough without a bearer credential.
	req := httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"userEmail": "customer@x.com", "serviceId": "svc-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unauthorized: no token provided", resp["error"])
}
