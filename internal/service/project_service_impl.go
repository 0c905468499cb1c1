package service

import (
	"context"
	"fmt"
	"time"

	"github.com/artscollective/grantbook/internal/db"
	"github.com/artscollective/grantbook/internal/domain"
	"github.com/artscollective/grantbook/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	budgets  repository.BudgetRepo
	uow      db.UnitOfWork
}

func NewProjectService(projects repository.ProjectRepo, budgets repository.BudgetRepo, uow db.UnitOfWork) ProjectService {
	return &projectService{projects: projects, budgets: budgets, uow: uow}
}

// Create stores the project and its budget together.
func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := time.Now().UTC().Truncate(time.Second)
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	p.Budget = domain.ApplyBudgetDefaults(&p.Budget)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, p); err != nil {
			return err
		}
		return repository.NewSQLiteBudgetRepo(tx).Save(ctx, p.ID, p.Budget)
	})
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Budget, err = s.budgets.Load(ctx, p.ID); err != nil {
		return nil, fmt.Errorf("loading budget: %w", err)
	}
	return p, nil
}

func (s *projectService) Resolve(ctx context.Context, idOrPrefix string) (*domain.Project, error) {
	return s.projects.FindByIDPrefix(ctx, idOrPrefix)
}

func (s *projectService) List(ctx context.Context, includeArchived bool) ([]*domain.Project, error) {
	return s.projects.List(ctx, includeArchived)
}

func (s *projectService) Archive(ctx context.Context, id string) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Status = domain.ProjectArchived
	p.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) error {
	if !force {
		p, err := s.projects.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status != domain.ProjectArchived {
			return fmt.Errorf("project must be archived before deletion (use --force to override)")
		}
	}
	return s.projects.Delete(ctx, id)
}
