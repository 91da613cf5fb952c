package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-bucketlist-api/internal/domain/entity"
	repo "github.com/oksasatya/go-bucketlist-api/internal/domain/repository"
	"github.com/oksasatya/go-bucketlist-api/pkg/helpers"
	"github.com/oksasatya/go-bucketlist-api/pkg/mailer"
	"github.com/oksasatya/go-bucketlist-api/pkg/mailer/templates"
	"github.com/oksasatya/go-bucketlist-api/pkg/validation"
)

// JobPublisher enqueues background jobs. *helpers.RabbitQueue implements it.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type AuthService struct {
	Store   repo.Store
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Mail    JobPublisher // nil disables welcome emails
	AppName string

	validate *validator.Validate
}

func NewAuthService(store repo.Store, jwt *helpers.JWTManager, logger *logrus.Logger, mail JobPublisher, appName string) *AuthService {
	return &AuthService{
		Store:    store,
		JWT:      jwt,
		Logger:   logger,
		Mail:     mail,
		AppName:  appName,
		validate: validation.New(),
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginResult struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

func (s *AuthService) checkRegistration(in RegisterInput) error {
	if in.Username == "" || in.Password == "" {
		return ErrMissingFields
	}
	if err := s.validate.Var(in.Password, "pwd"); err != nil {
		return ErrWeakPassword
	}
	if err := s.validate.Var(in.Email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// Register creates a user. It does not log the user in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := s.checkRegistration(in); err != nil {
		return nil, err
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Username: in.Username, Email: in.Email, Password: hash}
	err = s.Store.WithTx(ctx, func(tx repo.Store) error {
		if _, err := tx.Users().GetByUsername(ctx, u.Username); err == nil {
			return ErrDuplicateUser
		} else if !errors.Is(err, repo.ErrNotFound) {
			return err
		}
		taken, err := tx.Users().ExistsByEmail(ctx, u.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateEmail
		}
		return tx.Users().Create(ctx, u)
	})
	switch {
	case errors.Is(err, repo.ErrDuplicateUsername):
		return nil, ErrDuplicateUser
	case errors.Is(err, repo.ErrDuplicateEmail):
		return nil, ErrDuplicateEmail
	case err != nil:
		return nil, err
	}

	helpers.LogInfo(s.Logger, "user registered", logrus.Fields{"user_id": u.ID})
	s.enqueueWelcome(ctx, u)
	return u, nil
}

// enqueueWelcome is best effort: a broker failure never fails the registration.
func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: templates.Welcome,
		Data:     templates.NewWelcomeData(s.AppName, u.Username, u.Email, templates.WithTime(u.CreatedAt)),
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil {
		helpers.LogError(s.Logger, "enqueue welcome email failed", err, logrus.Fields{"user_id": u.ID})
	}
}

// Login checks the credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	u, err := s.Store.Users().GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, AccessToken: token, ExpiresAt: exp}, nil
}

// DeleteAccount removes the user and everything it owns once the password is confirmed.
func (s *AuthService) DeleteAccount(ctx context.Context, userID int64, password string) (*entity.User, error) {
	if password == "" {
		return nil, ErrMissingFields
	}
	var deleted *entity.User
	err := s.Store.WithTx(ctx, func(tx repo.Store) error {
		u, err := tx.Users().GetByID(ctx, userID)
		if err != nil {
			return translate(err, ErrUserNotFound, err)
		}
		if !helpers.CompareHashAndPassword(u.Password, password) {
			return ErrInvalidCredentials
		}
		if err := tx.Users().Delete(ctx, userID); err != nil {
			return translate(err, ErrUserNotFound, err)
		}
		deleted = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	helpers.LogInfo(s.Logger, "account deleted", logrus.Fields{"user_id": userID})
	return deleted, nil
}
