package handler

// dateLayout is the wire format for date_of_birth.
const dateLayout = "2006-01-02"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---
//
// Transport-owned DTOs; intentionally separate from domain types so the JSON
// contract is not coupled to internal service changes.

type registerRequest struct {
	Name         string `json:"name"          validate:"required"`
	Email        string `json:"email"         validate:"required,email"`
	DateOfBirth  string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	MobileNumber string `json:"mobile_number" validate:"required"`
	Password     string `json:"password"      validate:"required"`
}

type registerResponse struct {
	Message string `json:"message"`
}

// loginRequest carries exactly one identifier in the common case; when both
// are present email takes precedence and phone_number is ignored.
type loginRequest struct {
	Email       string `json:"email,omitempty"        validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Password    string `json:"password"               validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	DateOfBirth  string `json:"date_of_birth"`
}
