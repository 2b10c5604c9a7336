// internal/domain/models/youth.go
package models

// Youth is a registered club member.
//
// Guardians and Interests arrive as full nested objects on detail reads;
// form submissions send only the selected ids (repeated multipart fields).
type Youth struct {
	ID                 int64      `json:"id"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	Email              string     `json:"email,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	BirthDate          string     `json:"birth_date,omitempty"`
	Age                int        `json:"age,omitempty"`
	Grade              int        `json:"grade,omitempty"`
	LegalGender        string     `json:"legal_gender,omitempty"`
	VerificationStatus any        `json:"verification_status,omitempty"`
	Avatar             string     `json:"avatar,omitempty"`
	Club               int64      `json:"club,omitempty"`
	ClubName           string     `json:"club_name,omitempty"`
	Guardians          []Guardian `json:"guardians,omitempty"`
	Interests          []Interest `json:"interests,omitempty"`
	CreatedAt          string     `json:"created_at,omitempty"`
	UpdatedAt          string     `json:"updated_at,omitempty"`
}

// FullName joins first and last name for display.
func (y Youth) FullName() string {
	switch {
	case y.FirstName == "":
		return y.LastName
	case y.LastName == "":
		return y.FirstName
	default:
		return y.FirstName + " " + y.LastName
	}
}

// Guardian is a parent or legal guardian linked to one or more youths.
type Guardian struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Relation string `json:"relation,omitempty"`
}
