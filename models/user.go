package models

// User представляет пользователя сервиса бронирования.
// Тэги `json` соответствуют полям, которые отдает бэкенд.
type User struct {
	ID          int64  `json:"id_user"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	BirthDate   string `json:"birth_date,omitempty"` // YYYY-MM-DD
}

// FullName возвращает имя и фамилию одной строкой для форм бронирования.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Session — одна атомарная запись сессии: пользователь и его bearer-токен.
// Сохраняется и очищается целиком, чтобы не оставлять "осиротевший" токен
// без пользователя (и наоборот).
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse представляет тело ответа при успешном входе.
// Бэкенд может не вернуть access_token при регистрации, поэтому поле
// используется и в RegisterResponse.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	User         *User  `json:"user"`
}

// RegisterRequest представляет тело запроса на регистрацию.
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD
	Role        string `json:"role"`
}

// RegisterResponse представляет тело ответа на регистрацию.
// access_token опционален: сервер вправе потребовать отдельный вход.
type RegisterResponse struct {
	Message     string `json:"message,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	User        *User  `json:"user"`
}

// PasswordChangeRequest представляет тело запроса на смену пароля.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
