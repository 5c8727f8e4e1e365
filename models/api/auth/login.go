package authapimodels

import "github.com/pkg/errors"

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginData) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type RefreshData struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshData) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("refresh token is required")
	}
	return nil
}

type RegisterData struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
}

func (r RegisterData) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("first and last name are required")
	}
	return nil
}

type TokenView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
	UserID       string `json:"user_id"`
	EmployeeID   string `json:"employee_id,omitempty"`
}
