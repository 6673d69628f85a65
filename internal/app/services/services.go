package services

import (
	"github.com/bayms/backend/internal/app/repositories"
	"github.com/bayms/backend/internal/pkg/auth"
	"github.com/bayms/backend/internal/pkg/filestorage"
	"github.com/bayms/backend/internal/pkg/highlights"
)

// Services contains all services
type Services struct {
	Auth        *AuthService
	Profile     *ProfileService
	Member      *MemberService
	Performance *PerformanceService
	Event       *EventService
	Location    *LocationService
	Recording   *RecordingService
	Highlight   *HighlightService
}

// NewServices creates all services over the shared repositories,
// blob store, and JWT service.
func NewServices(repos *repositories.Repositories, storage filestorage.BlobStorage, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:        NewAuthService(repos.User, repos.Member, jwtService),
		Profile:     NewProfileService(repos.Member, storage),
		Member:      NewMemberService(repos.Member),
		Performance: NewPerformanceService(repos.Event, repos.Recording, repos.Highlight),
		Event:       NewEventService(repos.Event),
		Location:    NewLocationService(repos.Location),
		Recording:   NewRecordingService(repos.Recording, repos.Event),
		Highlight:   NewHighlightService(repos.Highlight, highlights.NewCache()),
	}
}
