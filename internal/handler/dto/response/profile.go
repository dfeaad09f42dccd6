package response

import (
	"libris/internal/usecase/queries"
)

type ProfileStatsResponse struct {
	ActiveReservations int64  `json:"active_reservations"`
	TotalBorrowed      int64  `json:"total_borrowed"`
	AccountStatus      string `json:"account_status"`
}

type ProfileResponse struct {
	User  UserResponse         `json:"user"`
	Stats ProfileStatsResponse `json:"stats"`
}

func FromProfileView(view *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		User: FromUserView(&view.User),
		Stats: ProfileStatsResponse{
			ActiveReservations: view.Stats.ActiveReservations,
			TotalBorrowed:      view.Stats.TotalBorrowed,
			AccountStatus:      view.Stats.AccountStatus,
		},
	}
}
