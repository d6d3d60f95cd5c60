package service

import (
	"errors"

	"go-inventory-api/internal/model"
	"go-inventory-api/internal/policy"
	"go-inventory-api/internal/repository"
	"go-inventory-api/pkg/apperr"
	"go-inventory-api/pkg/jwt"
	"go-inventory-api/pkg/validator"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *RegisterRequest) (*LoginResponse, error)
	Login(email, password string) (*LoginResponse, error)
}

// RegisterRequest is the self-service signup payload. The role defaults
// to STAFF; only admins assign other roles through the user endpoints.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
}

type LoginResponse struct {
	Token       string             `json:"token"`
	User        model.UserResponse `json:"user"`
	Permissions []string           `json:"permissions"` // flat action list for the UI
}

type authService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewAuthService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) AuthService {
	return &authService{userRepo: userRepo, roleRepo: roleRepo}
}

func (s *authService) Register(req *RegisterRequest) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.NewValidation("%s", validator.FirstError(errs))
	}
	if req.Password != req.PasswordConfirm {
		return nil, apperr.NewValidation("passwords do not match")
	}

	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil {
		return nil, apperr.NewValidation("email already registered")
	}

	role, err := s.roleRepo.FindByCode(model.RoleStaff)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		RoleID:    &role.ID,
		IsActive:  true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	user.Role = role

	return s.issueToken(user)
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperr.NewUnauthorized("user account is inactive")
	}

	if !user.CheckPassword(password) {
		return nil, apperr.NewUnauthorized("invalid email or password")
	}

	if err := s.userRepo.UpdateLastAccess(user.ID); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authService) issueToken(user *model.User) (*LoginResponse, error) {
	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName(), user.RoleCode())
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:       token,
		User:        user.ToResponse(),
		Permissions: policy.ActionsFor(user.RoleCode()),
	}, nil
}
