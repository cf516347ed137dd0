package request

import (
	"furnicraft/internal/domain/user"
	"furnicraft/internal/usecase/commands"
	"furnicraft/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ListUsersQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1"`
	Search    string `form:"search"`
	Status    string `form:"status"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func (q *ListUsersQuery) ToFilter() (queries.UserFilter, error) {
	status, err := queries.ParseUserStatusFilter(q.Status)
	if err != nil {
		return queries.UserFilter{}, err
	}
	return queries.UserFilter{
		Search:    q.Search,
		Status:    status,
		SortBy:    queries.ParseUserSort(q.SortBy),
		SortOrder: queries.ParseSortOrder(q.SortOrder),
		Page:      queries.NewPageRequest(q.Page, q.Limit),
	}, nil
}

type UpdateUserProfileRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Email       *string          `json:"email"`
	Phone       *string          `json:"phone" binding:"omitempty,max=30"`
	Addresses   []user.Address   `json:"addresses"`
	Preferences user.Preferences `json:"preferences"`
}

func (r *UpdateUserProfileRequest) ToInput() (commands.UpdateProfileInput, error) {
	var in commands.UpdateProfileInput
	err := copier.CopyWithOption(&in, r, copier.Option{IgnoreEmpty: true})
	return in, err
}

type UpdateUserStatusRequest struct {
	UserID string `json:"userId"`
	Action string `json:"action"`
}
