package service

import (
	"context"

	"github.com/Luismorlan/yatube/forms"
	"github.com/Luismorlan/yatube/model"
	"github.com/Luismorlan/yatube/repository"
	Logger "github.com/Luismorlan/yatube/utils/log"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const usernameTakenMsg = "A user with that username already exists."

type UserService struct {
	repos      *repository.Repositories
	bcryptCost int
}

func NewUserService(repos *repository.Repositories, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repos: repos, bcryptCost: bcryptCost}
}

// SignUp registers a new user. A taken username is a FieldErrors on
// "username".
func (s *UserService) SignUp(ctx context.Context, form *forms.SignUpForm) (*model.User, error) {
	if err := form.Clean(); err != nil {
		return nil, err
	}
	if _, err := s.repos.Users.GetByUsername(ctx, form.Username); err == nil {
		return nil, forms.FieldErrors{"username": usernameTakenMsg}
	} else if !repository.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password1), s.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "cannot hash password")
	}
	user := &model.User{
		Username:     form.Username,
		Email:        form.Email,
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		PasswordHash: string(hash),
	}
	if err := s.repos.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	Logger.Log.WithFields(logrus.Fields{"user": user.Username}).Info("user signed up")
	return user, nil
}

// Authenticate returns the user matching the credentials or
// ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, form *forms.LoginForm) (*model.User, error) {
	if err := form.Clean(); err != nil {
		return nil, err
	}
	user, err := s.repos.Users.GetByUsername(ctx, form.Username)
	if repository.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.repos.Users.Get(ctx, id)
}

// Delete removes the user with everything they wrote and every follow edge.
func (s *UserService) Delete(ctx context.Context, username string) error {
	user, err := s.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if err := s.repos.Users.Delete(ctx, user.ID); err != nil {
		return err
	}
	Logger.Log.WithFields(logrus.Fields{"user": username}).Info("user deleted")
	return nil
}
