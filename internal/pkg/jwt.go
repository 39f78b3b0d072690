package pkg

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thomasdhughes/realworld/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrNoToken      = errors.New("no token provided")
)

// UserClaim 载荷中的用户信息
type UserClaim struct {
	ID uint `json:"id"`
}

// Claims JWT 自定义声明
// 载荷格式为 {"user": {"id": N}, "exp": ...}
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// GenerateToken 为用户签发访问令牌
// 有效期为配置的天数（jwt.expire_days）
func GenerateToken(userID uint) (string, error) {
	expirationTime := time.Now().Add(time.Duration(config.Conf.JWT.ExpireDays) * 24 * time.Hour)

	claims := &Claims{
		User: UserClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.JWT.Secret))
}

// ParseToken 解析并验证访问令牌，返回用户ID
func ParseToken(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrNoToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.Conf.JWT.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.User.ID != 0 {
		return claims.User.ID, nil
	}

	return 0, ErrInvalidToken
}
