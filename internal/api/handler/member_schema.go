package handler

// createMemberRequest mirrors the public registration form. There is no
// status field: applications always start out pending.
type createMemberRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	FullName    string `json:"fullName"    validate:"required"`
	Nickname    string `json:"nickname"`
	BirthDate   string `json:"birthDate"`
	BirthPlace  string `json:"birthPlace"`
	Address     string `json:"address"`
	Phone       string `json:"phone"       validate:"required"`
	CarType     string `json:"carType"     validate:"required"`
	CarYear     string `json:"carYear"`
	CarColor    string `json:"carColor"`
	PlateNumber string `json:"plateNumber" validate:"required"`
	ShirtSize   string `json:"shirtSize"   validate:"required,shirt_size"`
	Reason      string `json:"reason"`
}

// updateMemberStatusRequest is the admin approval-workflow payload.
type updateMemberStatusRequest struct {
	Status string `json:"status" validate:"required,member_status"`
}
