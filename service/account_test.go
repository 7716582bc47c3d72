package service

import (
	"context"
	"errors"
	"testing"

	"tourhub/model"
)

func TestAccountService_LoginLifecycle(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	acc, err := svc.Accounts.Create(ctx, model.AccountInput{Email: "Ops@Example.com", Password: "correct-horse", Name: "Ops"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if acc.PasswordHash == "correct-horse" || !acc.IsAdmin || !acc.IsActive {
		t.Fatalf("account = %+v", acc)
	}

	_, err = svc.Accounts.Create(ctx, model.AccountInput{Email: "ops@example.com", Password: "another-pass", Name: "Dup"})
	asConflict(t, err)

	if _, err := svc.Accounts.Login(ctx, model.LoginInput{Email: "ops@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v", err)
	}
	if _, err := svc.Accounts.Login(ctx, model.LoginInput{Email: "ghost@example.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: err = %v", err)
	}

	token, err := svc.Accounts.Login(ctx, model.LoginInput{Email: "OPS@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token.AccessToken == "" || token.Account.LastLoginAt == nil {
		t.Fatalf("token = %+v", token)
	}

	inactive := false
	if _, err := svc.Accounts.Update(ctx, acc.ID, model.AccountPatch{IsActive: &inactive}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := svc.Accounts.Login(ctx, model.LoginInput{Email: "ops@example.com", Password: "correct-horse"}); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("disabled login: err = %v", err)
	}
	if _, err := svc.Accounts.Me(ctx, acc.ID); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("disabled Me: err = %v", err)
	}
}

func TestAccountService_Delete(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	a, err := svc.Accounts.Create(ctx, model.AccountInput{Email: "a@example.com", Password: "password-a", Name: "A"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	b, err := svc.Accounts.Create(ctx, model.AccountInput{Email: "b@example.com", Password: "password-b", Name: "B"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	asConflict(t, svc.Accounts.Delete(ctx, a.ID, a.ID))
	if err := svc.Accounts.Delete(ctx, b.ID, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	admins, err := svc.Accounts.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 1 || admins[0].ID != a.ID {
		t.Fatalf("admins = %+v", admins)
	}
}

func TestAccountService_Register(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Accounts.Register(ctx, model.RegisterInput{Email: "nope", Password: "123", Phone: "0501234"})
	ve := asValidation(t, err)
	for _, f := range []string{"email", "password", "name", "phone"} {
		if !ve.Has(f) {
			t.Errorf("missing field error for %s in %+v", f, ve.Fields)
		}
	}

	token, err := svc.Accounts.Register(ctx, model.RegisterInput{Email: "Guest@Example.com", Password: "secret1", Name: " Guest ", Phone: "+971501234567"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	acc := token.Account
	if token.AccessToken == "" || acc.IsAdmin || !acc.IsActive || acc.Email != "guest@example.com" || acc.Name != "Guest" {
		t.Fatalf("registered = %+v", acc)
	}

	_, err = svc.Accounts.Register(ctx, model.RegisterInput{Email: "guest@example.com", Password: "secret2", Name: "Again"})
	if ce := asConflict(t, err); ce.Field != "email" {
		t.Fatalf("field = %q", ce.Field)
	}

	admins, err := svc.Accounts.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins: %v", err)
	}
	if len(admins) != 0 {
		t.Fatalf("registered account listed as admin: %+v", admins)
	}
}

func TestAccountService_UpdateProfile(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	acc, err := svc.Accounts.Create(ctx, model.AccountInput{Email: "p@example.com", Password: "password-p", Name: "Old"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	updated, err := svc.Accounts.UpdateProfile(ctx, acc.ID, model.ProfilePatch{Name: strPtr(" New Name "), Phone: strPtr("+97140000000")})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Name != "New Name" || updated.Phone != "+97140000000" || updated.Email != "p@example.com" {
		t.Fatalf("updated = %+v", updated)
	}

	_, err = svc.Accounts.UpdateProfile(ctx, 999, model.ProfilePatch{Name: strPtr("Ghost")})
	asNotFound(t, err)
}

func TestAccountService_ChangePassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	acc, err := svc.Accounts.Create(ctx, model.AccountInput{Email: "c@example.com", Password: "first-pass", Name: "C"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Accounts.ChangePassword(ctx, acc.ID, model.ChangePasswordInput{CurrentPassword: "wrong-pass", NewPassword: "second-pass"})
	if ve := asValidation(t, err); !ve.Has("current_password") {
		t.Fatalf("fields = %+v", ve.Fields)
	}
	err = svc.Accounts.ChangePassword(ctx, acc.ID, model.ChangePasswordInput{CurrentPassword: "first-pass", NewPassword: "first-pass"})
	if ve := asValidation(t, err); !ve.Has("new_password") {
		t.Fatalf("fields = %+v", ve.Fields)
	}

	if err := svc.Accounts.ChangePassword(ctx, acc.ID, model.ChangePasswordInput{CurrentPassword: "first-pass", NewPassword: "second-pass"}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if _, err := svc.Accounts.Login(ctx, model.LoginInput{Email: "c@example.com", Password: "first-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password login: err = %v", err)
	}
	if _, err := svc.Accounts.Login(ctx, model.LoginInput{Email: "c@example.com", Password: "second-pass"}); err != nil {
		t.Fatalf("new password login: %v", err)
	}
}
