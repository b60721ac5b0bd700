package model

type Chapter struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type CreateChapterRequest struct {
	Title    string `json:"title"`
	Position int    `json:"position"`
}

type CreateChapterResponse struct {
	ID string `json:"id"`
}

type GetChaptersRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetChaptersResponse struct {
	Chapters []Chapter `json:"chapters"`
}
