package response

import "safestore/internal/usecase/readmodel"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}

type RolesResponse struct {
	Roles []string `json:"roles"`
}
