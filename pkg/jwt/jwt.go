package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTData struct {
	UserID string
	Name   string
	Role   string
}

type JWT struct {
	Secret string
}

func NewJWT(secret string) *JWT {
	return &JWT{Secret: secret}
}

func (j *JWT) Create(data JWTData) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": data.UserID,
		"name":    data.Name,
		"role":    data.Role,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	})
	return t.SignedString([]byte(j.Secret))
}

func (j *JWT) Parse(token string) (bool, *JWTData) {
	t, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.Secret), nil
	})
	if err != nil || !t.Valid {
		return false, nil
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return false, nil
	}
	data := &JWTData{}
	data.UserID, _ = claims["user_id"].(string)
	data.Name, _ = claims["name"].(string)
	data.Role, _ = claims["role"].(string)
	if data.UserID == "" {
		return false, nil
	}
	return true, data
}
