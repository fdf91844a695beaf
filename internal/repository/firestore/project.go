package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/repository"
)

type projectRepository struct {
	client *firestore.Client
}

func NewProjectRepository(client *firestore.Client) repository.ProjectRepository {
	return &projectRepository{client: client}
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	snap, err := r.client.Collection(collProjects).Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	var p domain.Project
	if err := snap.DataTo(&p); err != nil {
		return nil, mapError(err)
	}
	p.ID = snap.Ref.ID
	return &p, nil
}

func (r *projectRepository) SetMemberCount(ctx context.Context, id string, count int) error {
	_, err := r.client.Collection(collProjects).Doc(id).Update(ctx, []firestore.Update{
		{Path: "members", Value: count},
	})
	return mapError(err)
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	iter := r.client.Collection(collProjects).Documents(ctx)
	defer iter.Stop()

	var projects []domain.Project
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		var p domain.Project
		if err := snap.DataTo(&p); err != nil {
			return nil, mapError(err)
		}
		p.ID = snap.Ref.ID
		projects = append(projects, p)
	}
	return projects, nil
}
