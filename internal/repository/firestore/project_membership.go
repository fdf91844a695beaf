package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type projectMembershipRepository struct {
	client *firestore.Client
}

func NewProjectMembershipRepository(client *firestore.Client) repository.ProjectMembershipRepository {
	return &projectMembershipRepository{client: client}
}

func (r *projectMembershipRepository) ListByUser(ctx context.Context, userID string) ([]domain.ProjectMembership, error) {
	iter := r.client.Collection(collProjectMembers).
		Where("userId", "==", userID).
		Documents(ctx)
	defer iter.Stop()

	var memberships []domain.ProjectMembership
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var m domain.ProjectMembership
		if err := snap.DataTo(&m); err != nil {
			return nil, mapError(err)
		}
		m.ID = snap.Ref.ID
		memberships = append(memberships, m)
	}
	return memberships, nil
}

func (r *projectMembershipRepository) CountByProject(ctx context.Context, projectID string) (int, error) {
	iter := r.client.Collection(collProjectMembers).
		Where("projectId", "==", projectID).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, mapError(err)
		}
		count++
	}
	return count, nil
}
