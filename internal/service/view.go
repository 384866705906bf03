package service

import (
	"time"

	"github.com/iliyamo/user-account-service/internal/model"
)

// AccountView is the outward projection of an account returned by both
// sign-up and login. The password field carries the bcrypt hash: the
// original wire contract exposed it and that exposure is reproduced
// deliberately for compatibility (see DESIGN.md), never the raw password.
type AccountView struct {
	ID        string      `json:"id"`
	Created   time.Time   `json:"created"`
	LastLogin time.Time   `json:"lastLogin"`
	Token     string      `json:"token"`
	IsActive  bool        `json:"isActive"`
	Name      string      `json:"name,omitempty"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	Phones    []PhoneView `json:"phones,omitempty"`
}

// PhoneView is the outward projection of a phone record. The json field
// spellings (citycode, contrycode) are preserved from the original wire
// format.
type PhoneView struct {
	Number      int64  `json:"number"`
	CityCode    int    `json:"citycode"`
	CountryCode string `json:"contrycode"`
}

// projectAccount maps a persisted account onto its outward view.
func projectAccount(a *model.Account) *AccountView {
	v := &AccountView{
		ID:        a.ID,
		Created:   a.Created,
		LastLogin: a.LastLogin,
		Token:     a.Token,
		IsActive:  a.IsActive,
		Name:      a.Name,
		Email:     a.Email,
		Password:  a.PasswordHash,
	}
	for _, p := range a.Phones {
		v.Phones = append(v.Phones, PhoneView{
			Number:      p.Number,
			CityCode:    p.CityCode,
			CountryCode: p.CountryCode,
		})
	}
	return v
}
