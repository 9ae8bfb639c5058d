package usecase

import (
	"context"
	"fmt"

	"main/model"
	"main/services"
	"main/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

type UsersRepository interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUser(ctx context.Context, userID string) (*model.User, error)
}

type UserService struct {
	UsersRepo UsersRepository
}

// Register creates an account with a hashed credential. Duplicate emails are
// rejected before insert; the unique index backs this up under races.
func (svc *UserService) Register(ctx context.Context, email, password, userName string) (*model.User, error) {
	if !utils.ValidateEmail(email) {
		return nil, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if userName == "" {
		return nil, fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}

	existing, err := svc.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Password: hashed,
		UserName: userName,
	}

	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		// A concurrent signup can slip past the pre-insert check; the unique
		// email index catches it on insert.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Authenticate resolves the user for an email/password pair. Unknown email
// and wrong password are indistinguishable to the caller.
func (svc *UserService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (svc *UserService) Profile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
