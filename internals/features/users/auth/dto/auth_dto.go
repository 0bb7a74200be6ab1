package dto

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type StudentSignupRequest struct {
	UserName  string `json:"user_name" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Name      string `json:"name" validate:"required,max=100"`
	QID       string `json:"qid" validate:"required,max=32"`
	Course    string `json:"course" validate:"omitempty,max=100"`
	Section   string `json:"section" validate:"omitempty,max=32"`
	Programme string `json:"programme" validate:"omitempty,max=100"`
}

type TeacherSignupRequest struct {
	UserName   string `json:"user_name" validate:"required,min=3,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Name       string `json:"name" validate:"required,max=100"`
	Code       string `json:"code" validate:"required,max=32"`
	Department string `json:"department" validate:"omitempty,max=100"`
}

type ClubSignupRequest struct {
	UserName        string   `json:"user_name" validate:"required,min=3,max=50"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	ClubName        string   `json:"club_name" validate:"required,max=150"`
	ClubCode        string   `json:"club_code" validate:"required,max=32"`
	ClubEmail       string   `json:"club_email" validate:"required,email"`
	FacultyIncharge string   `json:"faculty_incharge" validate:"omitempty,max=100"`
	Tags            []string `json:"tags" validate:"omitempty,dive,max=40"`
}

// LoginResponse carries the access token plus the profile bits every client
// needs right after login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        any    `json:"user"`
}
