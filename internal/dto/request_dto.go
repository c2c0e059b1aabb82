package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Verified bool   `json:"verified"`
}

type ChangeEmailRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	NewEmail string `json:"new_email" binding:"required,email"`
	Code     string `json:"code" binding:"required,len=6"`
}

type RequestCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// StartSessionRequest opens a timed attempt. The user identity is supplied
// by the caller and attached verbatim to the emitted result.
type StartSessionRequest struct {
	TestType  string `json:"test_type" binding:"required,oneof=chapter mock"`
	TestID    string `json:"test_id" binding:"required"`
	TestName  string `json:"test_name" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
	UserName  string `json:"user_name" binding:"required"`
	UserEmail string `json:"user_email" binding:"omitempty,email"`
}

// RecordAnswerRequest selects one of the four options for a question.
// OptionIndex is a pointer so that option 0 still binds.
type RecordAnswerRequest struct {
	QuestionID  string `json:"question_id" binding:"required"`
	OptionIndex *int   `json:"option_index" binding:"required,min=0,max=3"`
}

// NavigateRequest moves the current-question pointer: "advance" steps by
// Direction (±1), "jump" goes straight to Index.
type NavigateRequest struct {
	Action    string `json:"action" binding:"required,oneof=advance jump"`
	Direction int    `json:"direction" binding:"omitempty,oneof=-1 1"`
	Index     *int   `json:"index"`
}
