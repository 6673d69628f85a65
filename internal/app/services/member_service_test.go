package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/app/repositories"
)

type fakeMemberDirectory struct {
	members      []models.Member
	pending      []models.Member
	musicians    []models.MusicianProfile
	listCalls    []repositories.Collection
	pendingCalls int
	updates      []updateCall
	updateErr    error
}

func (f *fakeMemberDirectory) List(_ context.Context, col repositories.Collection, orderBy string) ([]models.Member, error) {
	f.listCalls = append(f.listCalls, col)
	return f.members, nil
}

func (f *fakeMemberDirectory) ListPendingApplicants(_ context.Context) ([]models.Member, error) {
	f.pendingCalls++
	return f.pending, nil
}

func (f *fakeMemberDirectory) ListMusicians(_ context.Context) ([]models.MusicianProfile, error) {
	return f.musicians, nil
}

func (f *fakeMemberDirectory) UpdateFields(_ context.Context, col repositories.Collection, email string, fields map[string]interface{}) error {
	f.updates = append(f.updates, updateCall{col: col, email: email, fields: fields})
	return f.updateErr
}

func TestListApplicantsExcludesRejected(t *testing.T) {
	directory := &fakeMemberDirectory{pending: []models.Member{
		{Email: "ana@example.com"},
		{Email: "ben@example.com"},
	}}
	svc := NewMemberService(directory)

	applicants, err := svc.ListApplicants(context.Background())

	require.NoError(t, err)
	assert.Len(t, applicants, 2)
	assert.Equal(t, 1, directory.pendingCalls, "the roster must come from the pending listing")
	assert.Empty(t, directory.listCalls, "a full collection scan would include rejected applicants")
}

func TestRejectApplicantSetsRejectedFlag(t *testing.T) {
	directory := &fakeMemberDirectory{}
	svc := NewMemberService(directory)

	err := svc.RejectApplicant(context.Background(), "ana@example.com")

	require.NoError(t, err)
	require.Len(t, directory.updates, 1)

	call := directory.updates[0]
	assert.Equal(t, repositories.CollectionApplicants, call.col)
	assert.Equal(t, "ana@example.com", call.email)
	assert.Equal(t, map[string]interface{}{"rejected": true}, call.fields,
		"a rejection flips the flag and touches nothing else")
}

func TestListMembersOrdersByName(t *testing.T) {
	directory := &fakeMemberDirectory{members: []models.Member{{Email: "ana@example.com"}}}
	svc := NewMemberService(directory)

	members, err := svc.ListMembers(context.Background())

	require.NoError(t, err)
	assert.Len(t, members, 1)
	require.Len(t, directory.listCalls, 1)
	assert.Equal(t, repositories.CollectionMembers, directory.listCalls[0])
}
