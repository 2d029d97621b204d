package service

import (
	"context"
	"regexp"
	"strings"

	"printing-support-be/internal/dto"
	"printing-support-be/internal/entity"
	"printing-support-be/internal/pkg/logger"
	"printing-support-be/internal/repository/specification"
	"printing-support-be/internal/repository/unitofwork"

	"golang.org/x/crypto/bcrypt"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Login looks up exactly one account by email or US phone and compares
// the password against the stored bcrypt hash. Unknown identifier and
// wrong password collapse into the same error so callers cannot probe
// which part was wrong.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	password := req.Password

	isEmail := emailPattern.MatchString(identifier)
	isPhone := phonePattern.MatchString(identifier)

	if identifier == "" || password == "" || (!isEmail && !isPhone) {
		return nil, ErrInvalidLoginInput
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var (
		user *entity.User
		err  error
	)
	if isEmail {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: identifier})
	} else {
		user, err = uow.UserRepository().FindOne(ctx, specification.ByPhone{Phone: identifier})
	}
	if err != nil {
		s.log.Error("auth", "login lookup failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		User: dto.LoginUser{
			Id:          user.Id,
			DisplayName: user.DisplayName(),
		},
	}, nil
}
