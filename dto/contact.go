package dto

type ContactRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	CompanyName string `json:"companyName"`
	Message     string `json:"message" validate:"required"`
}
