package dto

type StatementRequestDTO struct {
	Year  int `validate:"min=2000,max=2100"`
	Month int `validate:"min=1,max=12"`
}
