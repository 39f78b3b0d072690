package user

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/thomasdhughes/realworld/internal/dto"
	"github.com/thomasdhughes/realworld/internal/model/user"
	"github.com/thomasdhughes/realworld/internal/pkg"
	"github.com/thomasdhughes/realworld/internal/response"
)

type UserService struct {
	userRepo *UserRepository
}

func NewUserService(userRepo *UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register 注册新用户并签发令牌
// 邮箱和用户名同时冲突时两个字段一并上报
func (s *UserService) Register(req dto.RegisterRequest) (dto.UserResponse, *response.BusinessError) {
	email := strings.TrimSpace(req.User.Email)
	username := strings.TrimSpace(req.User.Username)
	password := strings.TrimSpace(req.User.Password)

	if email == "" {
		return dto.UserResponse{}, response.Blank("email")
	}
	if username == "" {
		return dto.UserResponse{}, response.Blank("username")
	}
	if password == "" {
		return dto.UserResponse{}, response.Blank("password")
	}

	emailTaken, err := s.userRepo.EmailTaken(email, 0)
	if err != nil {
		return dto.UserResponse{}, response.Internal(err)
	}
	usernameTaken, err := s.userRepo.UsernameTaken(username, 0)
	if err != nil {
		return dto.UserResponse{}, response.Internal(err)
	}
	if emailTaken || usernameTaken {
		opts := []response.ErrorOption{response.WithStatus(http.StatusUnprocessableEntity)}
		if emailTaken {
			opts = append(opts, response.WithFieldError("email", "has already been taken"))
		}
		if usernameTaken {
			opts = append(opts, response.WithFieldError("username", "has already been taken"))
		}
		return dto.UserResponse{}, response.NewBusinessError(opts...)
	}

	hashed, err := pkg.HashPassword(password)
	if err != nil {
		return dto.UserResponse{}, response.Internal(err)
	}

	image := req.User.Image
	if image == "" {
		image = user.DefaultImage
	}

	newUser := &user.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
		Image:        image,
		Bio:          req.User.Bio,
		Demo:         req.User.Demo,
	}
	if err := s.userRepo.Create(newUser); err != nil {
		return dto.UserResponse{}, response.Internal(err)
	}

	return s.userResponse(newUser, true)
}

// Login 邮箱密码登录
// 邮箱不存在与密码错误返回同一个错误
func (s *UserService) Login(req dto.LoginRequest) (dto.UserResponse, *response.BusinessError) {
	email := strings.TrimSpace(req.User.Email)
	password := strings.TrimSpace(req.User.Password)

	if email == "" {
		return dto.UserResponse{}, response.Blank("email")
	}
	if password == "" {
		return dto.UserResponse{}, response.Blank("password")
	}

	found, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.UserResponse{}, response.Internal(err)
	}

	if err != nil || !pkg.VerifyPassword(password, found.PasswordHash) {
		return dto.UserResponse{}, response.NewBusinessError(
			response.WithStatus(http.StatusForbidden),
			response.WithFieldError("email or password", "is invalid"),
		)
	}

	return s.userResponse(found, false)
}

// CurrentUser 查询当前用户并刷新令牌
func (s *UserService) CurrentUser(userID uint) (dto.UserResponse, *response.BusinessError) {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, response.NotFound("user")
		}
		return dto.UserResponse{}, response.Internal(err)
	}

	return s.userResponse(u, true)
}

// UpdateUser 更新当前用户，空字符串字段视为"不修改"
func (s *UserService) UpdateUser(userID uint, req dto.UpdateUserRequest) (dto.UserResponse, *response.BusinessError) {
	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, response.NotFound("user")
		}
		return dto.UserResponse{}, response.Internal(err)
	}

	if req.User.Email != "" && req.User.Email != u.Email {
		taken, err := s.userRepo.EmailTaken(req.User.Email, u.ID)
		if err != nil {
			return dto.UserResponse{}, response.Internal(err)
		}
		if taken {
			return dto.UserResponse{}, response.NewBusinessError(
				response.WithStatus(http.StatusUnprocessableEntity),
				response.WithFieldError("email", "has already been taken"),
			)
		}
		u.Email = req.User.Email
	}
	if req.User.Username != "" && req.User.Username != u.Username {
		taken, err := s.userRepo.UsernameTaken(req.User.Username, u.ID)
		if err != nil {
			return dto.UserResponse{}, response.Internal(err)
		}
		if taken {
			return dto.UserResponse{}, response.NewBusinessError(
				response.WithStatus(http.StatusUnprocessableEntity),
				response.WithFieldError("username", "has already been taken"),
			)
		}
		u.Username = req.User.Username
	}
	if req.User.Password != "" {
		hashed, err := pkg.HashPassword(req.User.Password)
		if err != nil {
			return dto.UserResponse{}, response.Internal(err)
		}
		u.PasswordHash = hashed
	}
	if req.User.Image != "" {
		u.Image = req.User.Image
	}
	if req.User.Bio != "" {
		u.Bio = req.User.Bio
	}

	if err := s.userRepo.Save(u); err != nil {
		return dto.UserResponse{}, response.Internal(err)
	}

	return s.userResponse(u, true)
}

// userResponse 组装用户响应并签发新令牌，登录响应不带 id
func (s *UserService) userResponse(u *user.User, withID bool) (dto.UserResponse, *response.BusinessError) {
	token, err := pkg.GenerateToken(u.ID)
	if err != nil {
		return dto.UserResponse{}, response.Internal(err)
	}

	resp := dto.UserResponse{
		Email:    u.Email,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
		Token:    token,
	}
	if withID {
		resp.ID = u.ID
	}
	return resp, nil
}
