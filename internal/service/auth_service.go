package service

import (
	"errors"
	"strings"
	"time"

	"github.com/lealtadcatamarcadigital-lang/reclamoschatbootdfc/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService is a static credential gate: one administrator account from
// configuration, no user database.
type AuthService struct {
	adminUser     string
	adminPassHash string
	sessionSecret string
}

func NewAuthService(adminUser, adminPassHash, sessionSecret string) *AuthService {
	return &AuthService{
		adminUser:     adminUser,
		adminPassHash: adminPassHash,
		sessionSecret: sessionSecret,
	}
}

func (a *AuthService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username != a.adminUser || !utils.CheckPassword(a.adminPassHash, password) {
		return "", ErrInvalidCredentials
	}
	return utils.SignJWT(a.sessionSecret, username, "admin", 24*time.Hour)
}
