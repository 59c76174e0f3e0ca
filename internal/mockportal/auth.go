package mockportal

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobhive/portal-client/internal/core/domain"
)

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	FullName    string `json:"full_name" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=job_seeker employer admin"`
	CompanyName string `json:"company_name"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return validationDetail(c, err)
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if s.state.accountByEmail(req.Email) != nil {
		return detail(c, http.StatusBadRequest, "Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := domain.User{
		ID:          s.state.id(),
		Role:        req.Role,
		FullName:    req.FullName,
		Email:       req.Email,
		CompanyName: req.CompanyName,
	}
	s.state.accounts[user.ID] = &account{User: user, PasswordHash: hash}

	token, err := s.mintToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, domain.AuthResult{Token: token, User: &user})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := s.validate.Struct(&req); err != nil {
		return validationDetail(c, err)
	}

	s.state.mu.Lock()
	acc := s.state.accountByEmail(req.Email)
	s.state.mu.Unlock()

	if acc == nil || bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(req.Password)) != nil {
		return detail(c, http.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := s.mintToken(acc.User)
	if err != nil {
		return err
	}
	user := acc.User
	return c.JSON(http.StatusOK, domain.AuthResult{Token: token, User: &user})
}

func (s *Server) handleMe(c echo.Context) error {
	user := currentUser(c)
	return c.JSON(http.StatusOK, user)
}

func (s *Server) mintToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// requireAuth validates the bearer token and injects the account into the
// request context. Rejections use the backend's 401 detail wording.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return detail(c, http.StatusUnauthorized, "Not authenticated")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(s.jwtSecret), nil
		})
		if err != nil || !tkn.Valid {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}

		sub, ok := claims["sub"].(float64)
		if !ok {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}

		s.state.mu.Lock()
		acc := s.state.accounts[int64(sub)]
		s.state.mu.Unlock()
		if acc == nil {
			return detail(c, http.StatusUnauthorized, "Could not validate credentials")
		}

		c.Set("user", acc.User)
		return next(c)
	}
}

// requireRole gates a route group on the authenticated user's role.
func requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if currentUser(c).Role != role {
				return detail(c, http.StatusForbidden, "Not enough permissions")
			}
			return next(c)
		}
	}
}

func currentUser(c echo.Context) domain.User {
	user, _ := c.Get("user").(domain.User)
	return user
}
