// internal/config/google.go
package config

import (
	"context"
	"errors"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const driveScope = "https://www.googleapis.com/auth/drive"

// GoogleClientOptions resolves the archival credential from the environment.
// Three schemes are supported, tried in order:
//
//  1. GOOGLE_APPLICATION_CREDENTIALS_JSON — a full credential bundle inline
//  2. GOOGLE_APPLICATION_CREDENTIALS — path to a credential file
//  3. GOOGLE_OAUTH_CLIENT_ID / GOOGLE_OAUTH_CLIENT_SECRET /
//     GOOGLE_OAUTH_REFRESH_TOKEN — an OAuth client with a refresh token
//
// Callers receive opaque client options; nothing outside this file knows
// which scheme a deployment uses.
func GoogleClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	if credsJSON := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"); credsJSON != "" {
		return []option.ClientOption{
			option.WithCredentialsJSON([]byte(credsJSON)),
			option.WithScopes(driveScope),
		}, nil
	}

	if credsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credsPath != "" {
		return []option.ClientOption{
			option.WithCredentialsFile(credsPath),
			option.WithScopes(driveScope),
		}, nil
	}

	clientID := os.Getenv("GOOGLE_OAUTH_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET")
	refreshToken := os.Getenv("GOOGLE_OAUTH_REFRESH_TOKEN")
	if clientID != "" && clientSecret != "" && refreshToken != "" {
		conf := &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{driveScope},
		}
		ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
		return []option.ClientOption{option.WithTokenSource(ts)}, nil
	}

	return nil, errors.New("no google credentials configured: set GOOGLE_APPLICATION_CREDENTIALS_JSON, GOOGLE_APPLICATION_CREDENTIALS, or GOOGLE_OAUTH_CLIENT_ID/GOOGLE_OAUTH_CLIENT_SECRET/GOOGLE_OAUTH_REFRESH_TOKEN")
}
