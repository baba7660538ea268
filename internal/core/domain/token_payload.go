package domain

type TokenPayload struct {
	UserID int64
	Email  string
}
