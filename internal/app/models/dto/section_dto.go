package dto

import (
	"io"

	"github.com/bayms/backend/internal/pkg/validation"
)

// SectionInput is implemented by every profile section request. The set
// of implementations is closed; the orchestrator switches over it
// exhaustively.
type SectionInput interface {
	Section() validation.Section
}

// PersonalInformationSection carries the personal information form
// fields. The email identifies the record; changing it through this
// path is not honored.
type PersonalInformationSection struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Birthday *string `json:"birthday" validate:"omitempty,dateonly"`
}

// Section implements SectionInput
func (PersonalInformationSection) Section() validation.Section { return validation.SectionPersonal }

// LocationSchoolSection carries the address and school form fields
type LocationSchoolSection struct {
	Street *string `json:"street" validate:"omitempty,max=200"`
	City   *string `json:"city" validate:"omitempty,max=100"`
	State  *string `json:"state" validate:"omitempty,usstate"`
	Zip    *string `json:"zip" validate:"omitempty,uszip"`
	School *string `json:"school" validate:"omitempty,max=200"`
	Grade  *int    `json:"grade" validate:"omitempty,min=1,max=12"`
}

// Section implements SectionInput
func (LocationSchoolSection) Section() validation.Section { return validation.SectionLocation }

// AboutSection carries the picture, instrument tags, and biography. The
// picture travels outside the validated struct as a PictureUpload; its
// size bound is checked by the orchestrator before upload.
type AboutSection struct {
	Picture     *PictureUpload `json:"-"`
	Instruments []string       `json:"instruments" validate:"omitempty,dive,instrument"`
	Bio         *string        `json:"bio" validate:"omitempty,max=650"`
}

// Section implements SectionInput
func (AboutSection) Section() validation.Section { return validation.SectionAbout }

// Parent1InformationSection carries the first parent's contact fields
type Parent1InformationSection struct {
	Parent1Name  *string `json:"parent1name" validate:"omitempty,max=100"`
	Parent1Email *string `json:"parent1email" validate:"omitempty,email"`
	Parent1Phone *string `json:"parent1phone" validate:"omitempty,max=30"`
}

// Section implements SectionInput
func (Parent1InformationSection) Section() validation.Section { return validation.SectionParent1 }

// Parent2InformationSection carries the second parent's contact fields
type Parent2InformationSection struct {
	Parent2Name  *string `json:"parent2name" validate:"omitempty,max=100"`
	Parent2Email *string `json:"parent2email" validate:"omitempty,email"`
	Parent2Phone *string `json:"parent2phone" validate:"omitempty,max=30"`
}

// Section implements SectionInput
func (Parent2InformationSection) Section() validation.Section { return validation.SectionParent2 }

// PictureUpload is a transport-agnostic view of an uploaded profile
// picture. Controllers build it from the multipart file header.
type PictureUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// UpdatedFields reports which fields a section update touched
type UpdatedFields struct {
	Fields []string `json:"updatedFields"`
}
