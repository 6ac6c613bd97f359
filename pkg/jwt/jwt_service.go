package jwt

import (
	"errors"
	"fmt"
	"time"

	"smart-recipes-backend/domain"
	"smart-recipes-backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

const tokenValidity = 7 * 24 * time.Hour

type (
	JWTService interface {
		GenerateTokenUser(email string, role string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetEmailByToken(token string) (string, string, error)
	}

	jwtUserClaim struct {
		Email string `json:"email"`
		Role  string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		issuer string
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		issuer: "SMARTCOOK",
	}
}

// getSecretKey reads the signing secret on every call so a late-loaded
// config.yaml still takes effect. An empty secret is a configuration
// failure, never an authentication failure.
func getSecretKey() (string, error) {
	secretKey := utils.GetConfig("JWT_SECRET")
	if secretKey == "" {
		return "", domain.ErrSecretNotConfigured
	}
	return secretKey, nil
}

func (j *jwtService) GenerateTokenUser(email string, role string) (string, error) {
	secretKey, err := getSecretKey()
	if err != nil {
		return "", err
	}

	claims := jwtUserClaim{
		email,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenValidity)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	secretKey, err := getSecretKey()
	if err != nil {
		return nil, err
	}
	return []byte(secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetEmailByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	return claims.Email, claims.Role, nil
}
