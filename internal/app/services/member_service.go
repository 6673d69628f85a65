package services

import (
	"context"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/repositories"
)

// MemberLister is the subset of the member repository the member
// service needs.
type MemberLister interface {
	List(ctx context.Context, col repositories.Collection, orderBy string) ([]models.Member, error)
	ListPendingApplicants(ctx context.Context) ([]models.Member, error)
	ListMusicians(ctx context.Context) ([]models.MusicianProfile, error)
	UpdateFields(ctx context.Context, col repositories.Collection, email string, fields map[string]interface{}) error
}

// MemberService exposes member and applicant listings
type MemberService struct {
	members MemberLister
}

// NewMemberService creates a new MemberService
func NewMemberService(members MemberLister) *MemberService {
	return &MemberService{members: members}
}

// ListMembers retrieves the member roster, alphabetically by name
func (s *MemberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	return s.members.List(ctx, repositories.CollectionMembers, "name")
}

// ListApplicants retrieves pending applicants, alphabetically by name.
// Rejected applicants are excluded from the review roster.
func (s *MemberService) ListApplicants(ctx context.Context) ([]models.Member, error) {
	return s.members.ListPendingApplicants(ctx)
}

// RejectApplicant marks an application as rejected. The applicant record
// stays in place so the applicant can still see their status.
func (s *MemberService) RejectApplicant(ctx context.Context, email string) error {
	return s.members.UpdateFields(ctx, repositories.CollectionApplicants, email,
		map[string]interface{}{"rejected": true})
}

// ListMusicians retrieves the public musician roster
func (s *MemberService) ListMusicians(ctx context.Context) ([]models.MusicianProfile, error) {
	return s.members.ListMusicians(ctx)
}
