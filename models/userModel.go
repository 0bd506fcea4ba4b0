package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FullName               string     `json:"fullName"`
	Phone                  string     `json:"phone" gorm:"uniqueIndex"`
	Email                  string     `json:"email" gorm:"uniqueIndex"`
	Location               string     `json:"location"`
	Password               string     `json:"password"`
	ProfilePicURL          string     `json:"profilePicUrl"`
	Role                   string     `json:"role"`
	AccountActivated       bool       `json:"accountActivated"`
	AccountActivationToken string     `json:"-"`
	PasswordResetToken     string     `json:"-"`
	CartItems              []CartItem `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders                 []Order    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type LoginData struct {
	// Identifier is either the phone number or the email address.
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
