package models

// Member defines the member model based on the 'members' table. A member
// record is keyed by its email and mutated one section at a time; every
// attribute group is nullable so that updating one section never
// disturbs another.
type Member struct {
	UserID   *string `json:"uid,omitempty" db:"uid"` // Auth provider identity (nullable for applicants)
	Name     *string `json:"name" db:"name"`
	Email    string  `json:"email" db:"email"`
	Phone    *string `json:"phone" db:"phone"`
	Birthday *string `json:"birthday" db:"birthday"` // Calendar date, YYYY-MM-DD

	// Address and school
	Street *string `json:"street" db:"street"`
	City   *string `json:"city" db:"city"`
	State  *string `json:"state" db:"state"`
	Zip    *string `json:"zip" db:"zip"`
	School *string `json:"school" db:"school"`
	Grade  *int    `json:"grade" db:"grade"`

	// About
	Picture     *string  `json:"picture" db:"picture"` // Blob store reference
	Instruments []string `json:"instruments" db:"instruments"`
	Bio         *string  `json:"bio" db:"bio"`

	// Parents
	Parent1Name  *string `json:"parent1name" db:"parent1name"`
	Parent1Email *string `json:"parent1email" db:"parent1email"`
	Parent1Phone *string `json:"parent1phone" db:"parent1phone"`
	Parent2Name  *string `json:"parent2name" db:"parent2name"`
	Parent2Email *string `json:"parent2email" db:"parent2email"`
	Parent2Phone *string `json:"parent2phone" db:"parent2phone"`

	Graduated bool `json:"graduated" db:"graduated"`
	Rejected  bool `json:"rejected" db:"rejected"`
}

// MusicianProfile is the public projection of a member used on the
// musicians page.
type MusicianProfile struct {
	Name        *string  `json:"name"`
	Picture     *string  `json:"picture"`
	Bio         *string  `json:"bio"`
	Grade       *int     `json:"grade"`
	Graduated   bool     `json:"graduated"`
	Instruments []string `json:"instruments"`
}
