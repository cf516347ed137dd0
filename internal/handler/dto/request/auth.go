package request

import "furnicraft/internal/usecase/commands"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password}
}
