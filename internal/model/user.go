package model

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Rank Rank   `json:"rank"`
}

type Rank struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	MinimumPoints uint64 `json:"minimum_points"`
}

type GetRanksRequest struct{}

type GetRanksResponse struct {
	Ranks []Rank `json:"ranks"`
}

type CreateRankRequest struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	MinimumPoints uint64 `json:"minimum_points"`
}

type CreateRankResponse struct {
	ID string `json:"id"`
}

type RegisterRequest struct {
	Name string `json:"name"`
}

type RegisterResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

type GetMeRequest struct{}

type GetMeResponse User
