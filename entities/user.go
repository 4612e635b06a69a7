package entities

type UserField string

const (
	UserID       UserField = "_id"
	UserEmail    UserField = "email"
	UserPassword UserField = "password"
)
