package request

type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"max=120"`
	Phone    string `json:"phone" binding:"max=30"`
	Address  string `json:"address" binding:"max=255"`
}
