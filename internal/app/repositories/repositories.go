package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories contains all repositories
type Repositories struct {
	User      *UserRepository
	Member    *MemberRepository
	Event     *EventRepository
	Location  *LocationRepository
	Recording *RecordingRepository
	Highlight *HighlightRepository
}

// NewRepositories creates all repositories over one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      NewUserRepository(db),
		Member:    NewMemberRepository(db),
		Event:     NewEventRepository(db),
		Location:  NewLocationRepository(db),
		Recording: NewRecordingRepository(db),
		Highlight: NewHighlightRepository(db),
	}
}
