package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Dharmub376/Digital-Chunab/internal/model"
	"github.com/Dharmub376/Digital-Chunab/internal/repository"
	"github.com/Dharmub376/Digital-Chunab/pkg/hash"
	"github.com/Dharmub376/Digital-Chunab/pkg/token"
)

// ErrInvalidCredentials covers both unknown principals and wrong passwords,
// deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	admins   *repository.AdminRepo
	students *repository.StudentRepo
	activity *repository.ActivityRepo

	secret string
	ttl    time.Duration
}

func NewAuthService(admins *repository.AdminRepo, students *repository.StudentRepo, activity *repository.ActivityRepo, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		admins:   admins,
		students: students,
		activity: activity,
		secret:   secret,
		ttl:      ttl,
	}
}

// Login verifies a credential against the collection selected by req.Role
// and issues a bearer token on success.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest, ip string) (*model.LoginResponse, error) {
	var (
		user      model.UserInfo
		storedPwd string
	)

	switch req.Role {
	case token.RoleAdmin:
		a, err := s.admins.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, ErrInvalidCredentials
		}
		user = model.UserInfo{ID: a.ID, Name: a.Name, Email: a.Email, Role: token.RoleAdmin}
		storedPwd = a.PasswordHash
	default:
		st, err := s.students.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, ErrInvalidCredentials
		}
		user = model.UserInfo{ID: st.ID, Name: st.Name, Email: st.Email, Role: token.RoleStudent, StudentID: st.StudentID}
		storedPwd = st.PasswordHash
	}

	if !hash.CheckPassword(storedPwd, req.Password) {
		return nil, ErrInvalidCredentials
	}

	signed, err := token.Sign(s.secret, user.ID, user.Role, s.ttl)
	if err != nil {
		return nil, err
	}

	actorType := model.ActorStudent
	if user.Role == token.RoleAdmin {
		actorType = model.ActorAdmin
	}
	if err := s.activity.Record(ctx, user.ID, actorType, model.ActionLogin, "User logged in", ip); err != nil {
		log.Printf("activity: record login error: %v", err)
	}

	return &model.LoginResponse{Success: true, Token: signed, User: user}, nil
}

// SeedAdmin creates the bootstrap admin from config when none exists.
func (s *AuthService) SeedAdmin(ctx context.Context, email, name, password string) error {
	hashed, err := hash.Password(password)
	if err != nil {
		return err
	}
	created, err := s.admins.SeedDefault(ctx, email, name, hashed)
	if err != nil {
		return err
	}
	if created {
		log.Printf("seeded default admin account %s", email)
	}
	return nil
}
