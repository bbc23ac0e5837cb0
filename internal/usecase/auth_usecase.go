package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Korea-Traffic-Solution/backend/internal/domain/entity"
	"github.com/Korea-Traffic-Solution/backend/internal/domain/repository"
	"github.com/Korea-Traffic-Solution/backend/pkg/errors"
	"github.com/Korea-Traffic-Solution/backend/pkg/logger"
)

const managerClassField = "class"

type AuthUseCase struct {
	adminRepo repository.AdminRepository
	managers  repository.DocumentRepository
	mirror    AccountMirror
	jwtSecret []byte
	jwtExpiry time.Duration
	now       func() time.Time
}

func NewAuthUseCase(
	adminRepo repository.AdminRepository,
	managers repository.DocumentRepository,
	mirror AccountMirror,
	jwtSecret string,
	jwtExpiry time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		adminRepo: adminRepo,
		managers:  managers,
		mirror:    mirror,
		jwtSecret: []byte(jwtSecret),
		jwtExpiry: jwtExpiry,
		now:       time.Now,
	}
}

type SignupInput struct {
	LoginID   string `json:"loginId" validate:"required,notblank,max=100"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required,notblank"`
	Region    string `json:"region" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email"`
	Classname string `json:"classname"`
}

type LoginInput struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token  string `json:"token"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

// Signup creates the admin, registers it in the manager directory and mirrors
// the account into Firebase Authentication. The mirror is best effort.
func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*entity.Admin, error) {
	if _, err := uc.adminRepo.FindByLoginID(ctx, input.LoginID); err == nil {
		return nil, errors.Conflict("login id already in use")
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	admin := &entity.Admin{
		LoginID:   input.LoginID,
		Password:  string(hash),
		Name:      input.Name,
		Region:    input.Region,
		Email:     input.Email,
		Classname: input.Classname,
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	manager := entity.Fields{
		managerClassField:  input.Classname,
		"email":            input.Email,
		"name":             input.Name,
		entity.FieldRegion: input.Region,
	}
	if err := uc.managers.Upsert(ctx, input.Email, manager); err != nil {
		return nil, err
	}

	if uc.mirror != nil {
		if uid, err := uc.mirror.CreateUser(ctx, input.Email, input.Password, input.Name); err != nil {
			logger.Warn("Firebase Auth registration failed for %s: %v", input.Email, err)
		} else {
			logger.Info("Firebase Auth account created: %s", uid)
		}
	}

	return admin, nil
}

// Login checks the credentials and issues an HS256 token whose subject is the login id.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	admin, err := uc.adminRepo.FindByLoginID(ctx, input.LoginID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthorized("Invalid login id or password", err)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		return nil, errors.Unauthorized("Invalid login id or password", err)
	}

	token, err := uc.issueToken(admin.LoginID)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &LoginResult{
		Token:  token,
		Name:   admin.Name,
		Region: admin.Region,
	}, nil
}

func (uc *AuthUseCase) issueToken(loginID string) (string, error) {
	now := uc.now()
	claims := jwt.RegisteredClaims{
		Subject:   loginID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(uc.jwtExpiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}

// Authenticate validates a bearer token and loads the admin it was issued to.
func (uc *AuthUseCase) Authenticate(ctx context.Context, tokenString string) (*entity.Admin, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return uc.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(uc.now))
	if err != nil {
		return nil, errors.Unauthorized("Invalid token", err)
	}

	admin, err := uc.adminRepo.FindByLoginID(ctx, claims.Subject)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Unauthorized("Invalid token", err)
		}
		return nil, err
	}

	return admin, nil
}
