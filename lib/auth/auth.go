package auth

import (
	"hrms-backend/config"
	"hrms-backend/db"
	employeestore "hrms-backend/lib/employee/store"
	usersstore "hrms-backend/lib/users/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	authapimodels "hrms-backend/models/api/auth"
	dbmodels "hrms-backend/models/db"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Provider interface {
	Login(data authapimodels.LoginData) (view *authapimodels.TokenView, hMsg string, err error)
	Refresh(refreshToken string) (view *authapimodels.TokenView, hMsg string, err error)
	// CreateUser registers a user with a bcrypt-hashed password.
	CreateUser(rec dbmodels.User, password string) (id string, hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewHandlerWithTx(db.DB)
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return &handler{
		users:     usersstore.NewInstance(tx),
		employees: employeestore.NewInstance(tx),
	}
}

type handler struct {
	users     usersstore.Provider
	employees employeestore.Provider
}

func (h handler) Login(data authapimodels.LoginData) (*authapimodels.TokenView, string, error) {
	user, err := h.users.GetByEmail(data.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "Wrong email or password", nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)); err != nil {
		return nil, "Wrong email or password", nil
	}
	return h.issueTokens(user)
}

func (h handler) Refresh(refreshToken string) (*authapimodels.TokenView, string, error) {
	claims, err := parseRefreshClaims(refreshToken)
	if err != nil {
		return nil, "Invalid refresh token", nil
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, "Invalid refresh token", nil
	}
	user, err := h.users.GetByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "Invalid refresh token", nil
	}
	return h.issueTokens(user)
}

func (h handler) CreateUser(rec dbmodels.User, password string) (string, string, error) {
	if password == "" {
		return "", "Password is required", nil
	}
	existing, err := h.users.GetByEmail(rec.Email)
	if err != nil {
		return "", "", err
	}
	if existing != nil {
		return "", "A user with this email already exists", nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}
	rec.Password = string(hash)
	id, err := h.users.Create(rec)
	if err != nil {
		return "", "", err
	}
	return id, "", nil
}

func (h handler) issueTokens(user *dbmodels.User) (*authapimodels.TokenView, string, error) {
	employeeID := ""
	employee, err := h.employees.GetByUser(user.ID)
	if err != nil {
		return nil, "", err
	}
	if employee != nil {
		employeeID = employee.ID
	}
	access, err := authutils.GetToken(user.ID, user.GetFullName(), employeeID, user.Role)
	if err != nil {
		return nil, "", err
	}
	refresh, err := authutils.GetRefreshToken(user.ID, user.GetFullName())
	if err != nil {
		return nil, "", err
	}
	return &authapimodels.TokenView{
		AccessToken:  access,
		RefreshToken: refresh,
		Role:         string(user.Role),
		UserID:       user.ID,
		EmployeeID:   employeeID,
	}, "", nil
}

func parseRefreshClaims(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}
