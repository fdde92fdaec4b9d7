package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"taskjar/domain/dto"
	"taskjar/domain/models"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) Update(_ context.Context, id uuid.UUID, user *models.User) error {
	r.users[id] = user
	return nil
}

func (r *fakeUserRepo) ListIDs(_ context.Context) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids, nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "test-secret")
	ctx := context.Background()

	token, user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "kid@example.com",
		Username: "kid",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Error("Register returned empty token")
	}
	if user.Password == "hunter22" {
		t.Error("password stored in plain text")
	}

	// Token round-trips back to the same user.
	got, err := svc.ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ValidateJWT user = %s, want %s", got.ID, user.ID)
	}

	if _, _, err := svc.Login(ctx, &dto.LoginRequest{Email: "kid@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, _, err := svc.Login(ctx, &dto.LoginRequest{Email: "kid@example.com", Password: "wrong"}); err == nil {
		t.Error("Login accepted a wrong password")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "test-secret")
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@b.c", Username: "a", Password: "password"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, _, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@b.c", Username: "other", Password: "password"}); err == nil {
		t.Error("duplicate email accepted")
	}
	if _, _, err := svc.Register(ctx, &dto.RegisterRequest{Email: "x@y.z", Username: "a", Password: "password"}); err == nil {
		t.Error("duplicate username accepted")
	}
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "test-secret")
	ctx := context.Background()

	_, user, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@b.c", Username: "a", Password: "oldpass"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	err = svc.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "newpass"})
	if err == nil {
		t.Error("ChangePassword accepted a wrong current password")
	}

	if err := svc.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{CurrentPassword: "oldpass", NewPassword: "newpass"}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, _, err := svc.Login(ctx, &dto.LoginRequest{Email: "a@b.c", Password: "newpass"}); err != nil {
		t.Errorf("Login with new password: %v", err)
	}
}

func TestValidateJWTRejectsForeignSecret(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, "secret-one")
	other := NewUserService(repo, "secret-two")
	ctx := context.Background()

	token, _, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@b.c", Username: "a", Password: "password"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := other.ValidateJWT(token); err == nil {
		t.Error("token signed with a different secret validated")
	}
}
