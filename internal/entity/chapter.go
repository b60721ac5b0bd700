package entity

// Chapter is a training chapter. Content management is owned by a collaborator
// service; the engine only needs the rows quizzes point at.
type Chapter struct {
	Base

	Title    string
	Position int
}
