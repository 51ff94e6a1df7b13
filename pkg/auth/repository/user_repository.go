package repository

import "farmlog/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByUsername(username string) (*entities.User, error)
}
