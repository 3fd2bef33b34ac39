// Package models содержит структуры данных предметной области.
package models

// User представляет зарегистрированного пользователя.
//
// PasswordHash хранит bcrypt-хэш пароля и никогда не попадает в JSON-ответы.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// UserView — публичное представление пользователя для ответов API.
type UserView struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// View возвращает публичное представление пользователя без чувствительных полей.
func (u User) View() UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
	}
}
