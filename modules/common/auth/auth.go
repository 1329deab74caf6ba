package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// 세션 쿠키 이름
const CookieName = "auth-token"

// 세션 유효기간 (30일)
const sessionDuration = 30 * 24 * time.Hour

// ErrNoSession - 세션 쿠키 없음 또는 검증 실패
var ErrNoSession = errors.New("no valid session")

// User - 세션에 담기는 사용자 정보
type User struct {
	Email   string `json:"email"`
	LoginAt string `json:"loginAt"`
}

// claims - JWT 클레임
type claims struct {
	Email   string `json:"email"`
	LoginAt string `json:"loginAt"`
	jwt.RegisteredClaims
}

// CreateSession - 서명된 세션 쿠키 발급
func CreateSession(w http.ResponseWriter, email, secret string, secure bool) (*User, error) {
	user := &User{
		Email:   email,
		LoginAt: time.Now().UTC().Format(time.RFC3339),
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email:   user.Email,
		LoginAt: user.LoginAt,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionDuration)),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionDuration.Seconds()),
	})

	return user, nil
}

// GetSession - 요청의 세션 쿠키 검증
func GetSession(r *http.Request, secret string) (*User, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	parsed, err := jwt.ParseWithClaims(cookie.Value, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrNoSession
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, ErrNoSession
	}

	return &User{Email: c.Email, LoginAt: c.LoginAt}, nil
}

// ClearSession - 세션 쿠키 제거
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
