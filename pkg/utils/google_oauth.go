package utils

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type GoogleUserInfo struct {
	ID            string
	Email         string
	VerifiedEmail bool
	Name          string
	GivenName     string
	FamilyName    string
	Picture       string
}

// GoogleAuthenticator federates identity: it hands out the login URL and
// resolves an authorization code into the provider's profile.
type GoogleAuthenticator interface {
	LoginURL(state string) string
	FetchUserInfo(ctx context.Context, code string) (*GoogleUserInfo, error)
}

type googleAuthenticator struct {
	oauthConfig *oauth2.Config
}

func NewGoogleAuthenticator(clientID, clientSecret, redirectURL string) GoogleAuthenticator {
	return &googleAuthenticator{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleAuthenticator) LoginURL(state string) string {
	return g.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (g *googleAuthenticator) FetchUserInfo(ctx context.Context, code string) (*GoogleUserInfo, error) {
	token, err := g.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	service, err := googleoauth2.NewService(ctx,
		option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Do()
	if err != nil {
		return nil, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return &GoogleUserInfo{
		ID:            userInfo.Id,
		Email:         userInfo.Email,
		VerifiedEmail: verified,
		Name:          userInfo.Name,
		GivenName:     userInfo.GivenName,
		FamilyName:    userInfo.FamilyName,
		Picture:       userInfo.Picture,
	}, nil
}
