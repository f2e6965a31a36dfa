package auth

import (
	"context"
	"fmt"

	"homehero/config"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseVerifier validates ID tokens against Firebase Auth.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier initializes the Firebase app from the configured service
// account file, or from the bare project ID (application default credentials).
// It returns (nil, nil) when neither is configured, which selects lenient mode.
func NewFirebaseVerifier(ctx context.Context) (*FirebaseVerifier, error) {
	cfg := config.AppConfig

	var app *firebase.App
	var err error
	switch {
	case cfg.FirebaseCredentialsFile != "":
		app, err = firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	case cfg.FirebaseProjectID != "":
		app, err = firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID})
	default:
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("firebase: error initializing app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: error getting Auth client: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

// Verify validates the token's signature and claims with Firebase.
func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (Claims, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return Claims(decoded.Claims), nil
}
