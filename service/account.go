package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tourhub/constants"
	"tourhub/helper"
	"tourhub/model"
	"tourhub/repository"
)

var (
	ErrInvalidCredentials = errors.New(constants.INVALID_CREDENTIALS)
	ErrAccountDisabled    = errors.New(constants.ACCOUNT_NOT_ACTIVE)
)

type AccountService struct {
	accounts repository.Repository[model.Account]
}

// Login checks the credentials and issues an access token.
func (s *AccountService) Login(ctx context.Context, in model.LoginInput) (*model.TokenData, error) {
	if err := ValidateLoginInput(in); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	acc, err := s.accounts.FindOne(ctx, repository.Query{Scopes: []repository.Scope{equals("email", email)}})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, storeErr("login", entityAccount, email, err)
	}
	if !helper.CheckPasswordHash(in.Password, acc.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !acc.IsActive {
		return nil, ErrAccountDisabled
	}

	return s.issue(ctx, acc)
}

// Register creates a customer account and signs it in. Registered accounts
// are never admins.
func (s *AccountService) Register(ctx context.Context, in model.RegisterInput) (*model.TokenData, error) {
	if err := ValidateRegisterInput(in); err != nil {
		return nil, err
	}
	acc, err := s.insert(ctx, in.Email, in.Password, in.Name, in.Phone, false)
	if err != nil {
		return nil, err
	}
	return s.issue(ctx, acc)
}

// issue records the login time and signs an access token for acc.
func (s *AccountService) issue(ctx context.Context, acc *model.Account) (*model.TokenData, error) {
	now := time.Now().UTC()
	if err := s.accounts.Update(ctx, acc.ID, map[string]any{"last_login_at": now}); err != nil {
		return nil, storeErr("login", entityAccount, acc.Email, err)
	}
	acc.LastLoginAt = &now

	token, exp, err := helper.GenerateAccessToken(helper.Claims{UserID: acc.ID, Email: acc.Email, IsAdmin: acc.IsAdmin})
	if err != nil {
		return nil, &DependencyError{Op: "sign token", Err: err}
	}
	return &model.TokenData{AccessToken: token, ExpiresAt: exp, Account: acc}, nil
}

// Me returns the account behind a verified token. A deactivated account is
// refused even while its token is still valid.
func (s *AccountService) Me(ctx context.Context, id uint) (*model.Account, error) {
	acc, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("get account", entityAccount, id, err)
	}
	if !acc.IsActive {
		return nil, ErrAccountDisabled
	}
	return acc, nil
}

func (s *AccountService) ListAdmins(ctx context.Context) ([]model.Account, error) {
	out, err := s.accounts.Find(ctx, repository.Query{
		Scopes: []repository.Scope{equals("is_admin", true)},
		Order:  newestFirst,
	})
	if err != nil {
		return nil, storeErr("list accounts", entityAccount, nil, err)
	}
	if out == nil {
		out = []model.Account{}
	}
	return out, nil
}

// Create adds an active admin account.
func (s *AccountService) Create(ctx context.Context, in model.AccountInput) (*model.Account, error) {
	if err := ValidateAccountInput(in); err != nil {
		return nil, err
	}
	return s.insert(ctx, in.Email, in.Password, in.Name, in.Phone, true)
}

func (s *AccountService) insert(ctx context.Context, email, password, name, phone string, admin bool) (*model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	taken, err := s.accounts.Exists(ctx, equals("email", email))
	if err != nil {
		return nil, storeErr("create account", entityAccount, email, err)
	}
	if taken {
		return nil, &ConflictError{Field: "email", Message: "User with this email already exists"}
	}

	hash, err := helper.HashPassword(password)
	if err != nil {
		return nil, &DependencyError{Op: "hash password", Err: err}
	}
	acc := model.Account{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		Phone:        strings.TrimSpace(phone),
		IsAdmin:      admin,
		IsActive:     true,
	}
	if err := s.accounts.Insert(ctx, &acc); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, &ConflictError{Field: "email", Message: "User with this email already exists"}
		}
		return nil, storeErr("create account", entityAccount, email, err)
	}
	return &acc, nil
}

// UpdateProfile changes the signed-in user's own name and phone.
func (s *AccountService) UpdateProfile(ctx context.Context, id uint, p model.ProfilePatch) (*model.Account, error) {
	if err := ValidateProfilePatch(p); err != nil {
		return nil, err
	}
	if _, err := s.Me(ctx, id); err != nil {
		return nil, err
	}
	patch := map[string]any{}
	if p.Name != nil {
		patch["name"] = strings.TrimSpace(*p.Name)
	}
	if p.Phone != nil {
		patch["phone"] = strings.TrimSpace(*p.Phone)
	}
	if err := s.accounts.Update(ctx, id, patch); err != nil {
		return nil, storeErr("update profile", entityAccount, id, err)
	}
	return s.Me(ctx, id)
}

// ChangePassword replaces the password after checking the current one.
func (s *AccountService) ChangePassword(ctx context.Context, id uint, in model.ChangePasswordInput) error {
	if err := ValidateChangePassword(in); err != nil {
		return err
	}
	acc, err := s.Me(ctx, id)
	if err != nil {
		return err
	}
	if !helper.CheckPasswordHash(in.CurrentPassword, acc.PasswordHash) {
		return invalid("current_password", "is incorrect")
	}
	hash, err := helper.HashPassword(in.NewPassword)
	if err != nil {
		return &DependencyError{Op: "hash password", Err: err}
	}
	if err := s.accounts.Update(ctx, id, map[string]any{"password_hash": hash}); err != nil {
		return storeErr("change password", entityAccount, id, err)
	}
	return nil
}

func (s *AccountService) Update(ctx context.Context, id uint, p model.AccountPatch) (*model.Account, error) {
	if err := ValidateAccountPatch(p); err != nil {
		return nil, err
	}
	patch := map[string]any{}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		patch["name"] = name
	}
	setIf(patch, "phone", p.Phone)
	setIf(patch, "is_active", p.IsActive)

	if err := s.accounts.Update(ctx, id, patch); err != nil {
		return nil, storeErr("update account", entityAccount, id, err)
	}
	acc, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("update account", entityAccount, id, err)
	}
	return acc, nil
}

// Delete removes an admin account. Callers cannot delete themselves.
func (s *AccountService) Delete(ctx context.Context, id, actorID uint) error {
	if id == actorID {
		return &ConflictError{Field: "id", Message: constants.CANNOT_DELETE_SELF}
	}
	if err := s.accounts.Delete(ctx, id); err != nil {
		return storeErr("delete account", entityAccount, id, err)
	}
	return nil
}
