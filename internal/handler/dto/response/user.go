package response

import "furnicraft/internal/usecase/queries"

type UserListResponse struct {
	Users      []*queries.UserView `json:"users"`
	Pagination UserPagination      `json:"pagination"`
}

func FromUserPage(p *queries.UserPage) UserListResponse {
	users := p.Users
	if users == nil {
		users = []*queries.UserView{}
	}
	return UserListResponse{Users: users, Pagination: FromUserPagination(p.Pagination)}
}

type LoginResponse struct {
	AccessToken string            `json:"accessToken"`
	ExpiresIn   int64             `json:"expiresIn"`
	User        *queries.UserView `json:"user"`
}
