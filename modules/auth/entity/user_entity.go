package entity

import (
	"gotix-api/core/entity"
)

type User struct {
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	entity.BaseEntity
}
