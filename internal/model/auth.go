package model

// AccessToken is the object embedded in every issued JWT.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
