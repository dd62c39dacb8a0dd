package response

import (
	"salon-booking/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	Staff       *queries.AuthorizedStaffView `json:"staff,omitempty"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
