package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrInvalidUserName = errors.New("invalid user name")
)

const MaxNameLength = 100

type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(strings.ToLower(raw))
	at := strings.Index(v, "@")
	if at <= 0 || at == len(v)-1 || !strings.Contains(v[at+1:], ".") {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) Value() string { return e.value }

type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if v == "" || len(v) > MaxNameLength {
		return Name{}, ErrInvalidUserName
	}
	return Name{value: v}, nil
}

func (n Name) Value() string { return n.value }

type Credentials struct {
	email    Email
	password string
}

func NewCredentials(email, pw string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if pw == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{email: e, password: pw}, nil
}

func (c Credentials) Email() Email     { return c.email }
func (c Credentials) Password() string { return c.password }
