// Package oauth implements the Google sign-in flow: consent URL, code exchange
// and profile lookup.
package oauth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// ErrNoEmail is returned when Google does not share an e-mail address.
var ErrNoEmail = errors.New("google profile has no email")

// GoogleProfile is the subset of the Google account the API stores.
type GoogleProfile struct {
	ID          string
	Email       string
	DisplayName string
	GivenName   string
	FamilyName  string
}

// GoogleProvider drives the Google OAuth code flow.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*GoogleProfile, error)
}

type googleProvider struct {
	config *oauth2.Config
}

// NewGoogleProvider builds a provider requesting the profile and email scopes.
func NewGoogleProvider(clientID, clientSecret, callbackURL string) GoogleProvider {
	return &googleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				oauth2api.UserinfoProfileScope,
				oauth2api.UserinfoEmailScope,
			},
		},
	}
}

// NewState returns an unguessable value for the OAuth state parameter.
func NewState() string {
	return uuid.NewString()
}

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (*GoogleProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(p.config.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("create userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	return profileFromUserinfo(info)
}

func profileFromUserinfo(info *oauth2api.Userinfo) (*GoogleProfile, error) {
	if info.Email == "" {
		return nil, ErrNoEmail
	}
	return &GoogleProfile{
		ID:          info.Id,
		Email:       info.Email,
		DisplayName: info.Name,
		GivenName:   info.GivenName,
		FamilyName:  info.FamilyName,
	}, nil
}
