package auth

// Identity is the explicit caller identity passed into every write or
// profile operation. There is no ambient current-user lookup; handlers
// resolve the identity once and thread it through.
type Identity struct {
	UserID string // Auth provider user id
	Email  string // Account email, the member/applicant record key
}

// Valid reports whether the identity can key a record
func (i Identity) Valid() bool {
	return i.Email != ""
}
