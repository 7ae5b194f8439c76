package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"mapsplanner/internal/models/db_models"
	"mapsplanner/internal/repositories"
	"mapsplanner/pkg/config"
	"mapsplanner/pkg/memcache"
	"mapsplanner/pkg/utils"
)

// LoginResult carries everything the auth controller needs to finish a
// federated login: the session token for the cookie and where to send the
// browser next.
type LoginResult struct {
	Token       string
	SignedUp    bool
	RedirectURL string
}

// stateTTL bounds how long a handed-out login URL stays redeemable.
const stateTTL = 10 * time.Minute

type AuthServiceInterface interface {
	LoginURL() (string, error)
	HandleCallback(ctx context.Context, code, state string) (*LoginResult, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type AuthService struct {
	userRepo       repositories.UserRepository
	sessionService SessionServiceInterface
	authenticator  utils.GoogleAuthenticator
	states         memcache.OAuthStateStore
	cfg            *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionService SessionServiceInterface,
	authenticator utils.GoogleAuthenticator,
	states memcache.OAuthStateStore,
	cfg *config.Config,
) AuthServiceInterface {
	return &AuthService{
		userRepo:       userRepo,
		sessionService: sessionService,
		authenticator:  authenticator,
		states:         states,
		cfg:            cfg,
	}
}

func (a *AuthService) LoginURL() (string, error) {
	state, err := a.states.Issue(stateTTL)
	if err != nil {
		return "", err
	}
	return a.authenticator.LoginURL(state), nil
}

// HandleCallback checks the state nonce, exchanges the authorization code,
// materializes a local user on first login and issues a session. The active
// flag of an existing user is never touched on repeat logins.
func (a *AuthService) HandleCallback(ctx context.Context, code, state string) (*LoginResult, error) {
	if !a.states.Consume(state) {
		return nil, utils.ErrAuthenticationFailed
	}

	userInfo, err := a.authenticator.FetchUserInfo(ctx, code)
	if err != nil {
		log.Printf("Google code exchange failed: %v", err)
		return nil, utils.ErrAuthenticationFailed
	}

	user, err := a.userRepo.FindByEmail(ctx, userInfo.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	created := false
	if user == nil {
		log.Printf("Creating new google user for %s", userInfo.Email)
		user = &db_models.User{
			FirstName:      userInfo.GivenName,
			LastName:       userInfo.FamilyName,
			Email:          userInfo.Email,
			ProfilePicture: userInfo.Picture,
			IsActive:       a.cfg.UserAutoApproval,
		}
		if err := a.userRepo.Insert(ctx, user); err != nil {
			return nil, utils.ErrDatabaseError
		}
		created = true
	}

	session, err := a.sessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	signedUp := 0
	if created {
		signedUp = 1
	}

	return &LoginResult{
		Token:       session.Token,
		SignedUp:    created,
		RedirectURL: fmt.Sprintf("%s?signed_up=%d", a.cfg.FrontendURL, signedUp),
	}, nil
}

// Logout revokes the session row; reports whether one existed.
func (a *AuthService) Logout(ctx context.Context, token string) (bool, error) {
	session, err := a.sessionService.ResolveSession(ctx, token)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}

	if err := a.sessionService.DestroySession(ctx, token); err != nil {
		return false, err
	}
	return true, nil
}
