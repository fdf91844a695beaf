package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

// Collection names match the reference portal's Firestore layout.
const (
	collMembershipRequests = "pendingMembers"
	collMembers            = "members"
	collProjects           = "projects"
	collProjectInterests   = "projectInterests"
	collProjectMembers     = "projectMembers"
	collEvents             = "events"
	collEventRsvps         = "eventRsvps"
	collSessions           = "sessions"
)

// Store bundles all repository implementations over a single Firestore
// client. The client is constructed once at process start and injected;
// there is no hidden package-level handle.
type Store struct {
	MembershipRequestRepository repository.MembershipRequestRepository
	MemberRepository            repository.MemberRepository
	ProjectRepository           repository.ProjectRepository
	ProjectInterestRepository   repository.ProjectInterestRepository
	ProjectMembershipRepository repository.ProjectMembershipRepository
	EventRepository             repository.EventRepository
	SessionRepository           repository.SessionRepository
}

// NewStore creates repositories backed by the given Firestore client
func NewStore(client *firestore.Client) *Store {
	return &Store{
		MembershipRequestRepository: NewMembershipRequestRepository(client),
		MemberRepository:            NewMemberRepository(client),
		ProjectRepository:           NewProjectRepository(client),
		ProjectInterestRepository:   NewProjectInterestRepository(client),
		ProjectMembershipRepository: NewProjectMembershipRepository(client),
		EventRepository:             NewEventRepository(client),
		SessionRepository:           NewSessionRepository(client),
	}
}

// NewClient connects to Firestore for the configured project. An empty
// credentials file falls back to application default credentials.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}

// mapError translates Firestore RPC failures into the domain taxonomy.
// Domain errors raised inside transaction callbacks pass through untouched.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if isDomainError(err) {
		return err
	}
	if status.Code(err) == codes.NotFound {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

func isDomainError(err error) bool {
	for _, derr := range []error{
		domain.ErrInvalidInput,
		domain.ErrNotFound,
		domain.ErrUnauthorized,
		domain.ErrAlreadyDecided,
		domain.ErrStoreUnavailable,
	} {
		if errors.Is(err, derr) {
			return true
		}
	}
	return false
}
