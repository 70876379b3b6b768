package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrMissingCredentials = errors.New("google sheets credentials incomplete")

// Credentials identify the spreadsheet and the service account allowed to read it.
type Credentials struct {
	SpreadsheetID       string
	ServiceAccountEmail string
	PrivateKey          string
}

func CredentialsFromEnv() Credentials {
	return Credentials{
		SpreadsheetID:       os.Getenv("GOOGLE_SHEET_ID"),
		ServiceAccountEmail: os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL"),
		PrivateKey:          os.Getenv("GOOGLE_PRIVATE_KEY"),
	}
}

func (c Credentials) IsComplete() bool {
	return c.SpreadsheetID != "" && c.ServiceAccountEmail != "" && c.PrivateKey != ""
}

// UnescapedPrivateKey turns literal "\n" sequences, as stored in env files,
// back into newlines.
func (c Credentials) UnescapedPrivateKey() string {
	return strings.ReplaceAll(c.PrivateKey, `\n`, "\n")
}

func setup(ctx context.Context, creds Credentials) (*sheets.Service, error) {
	config := &jwt.Config{
		Email:      creds.ServiceAccountEmail,
		PrivateKey: []byte(creds.UnescapedPrivateKey()),
		Scopes:     []string{sheets.SpreadsheetsReadonlyScope},
		TokenURL:   google.JWTTokenURL,
	}

	// create client with config and context
	client := config.Client(ctx)

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return srv, nil
}

func NewClient(ctx context.Context, creds Credentials) (*sheets.Service, error) {
	if !creds.IsComplete() {
		return nil, ErrMissingCredentials
	}

	return setup(ctx, creds)
}

// NewRowsReaderFromEnv returns ErrMissingCredentials when any of the three
// credentials is unset.
func NewRowsReaderFromEnv(ctx context.Context) (*ServiceRowsReader, error) {
	creds := CredentialsFromEnv()

	srv, err := NewClient(ctx, creds)
	if err != nil {
		return nil, err
	}

	return NewServiceRowsReader(srv, creds.SpreadsheetID), nil
}
