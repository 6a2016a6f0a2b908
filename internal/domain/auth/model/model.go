package model

import (
	"time"
)

// User is the persisted credential record. Email is the identity key and
// carries a unique index; PasswordHash is the bcrypt digest, never the
// plaintext.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is the result of a successful login: a signed bearer token plus
// the user it identifies.
type Session struct {
	Token string
	User  User
}
