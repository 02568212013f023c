package gateway

import (
	"context"
	"net/http"

	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/transport"
)

type topicsGateway struct {
	doer transport.Doer
}

func NewTopicsGateway(doer transport.Doer) TopicsGateway {
	return &topicsGateway{doer: doer}
}

func (g *topicsGateway) List(ctx context.Context) ([]models.Topic, error) {
	var out []models.Topic
	if err := g.doer.Do(ctx, http.MethodGet, "/topics", nil, &out); err != nil {
		return nil, err
	}
	if err := validateAll("topic", out); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("fetched %d topics", len(out))
	return out, nil
}

func (g *topicsGateway) Get(ctx context.Context, id string) (*models.Topic, error) {
	path, err := entityPath("topics", id, "")
	if err != nil {
		return nil, err
	}
	var out models.Topic
	if err := g.doer.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if err := validate("topic", out); err != nil {
		return nil, err
	}
	return &out, nil
}

type sheetsGateway struct {
	doer transport.Doer
}

func NewSheetsGateway(doer transport.Doer) SheetsGateway {
	return &sheetsGateway{doer: doer}
}

func (g *sheetsGateway) List(ctx context.Context) ([]models.Sheet, error) {
	var out []models.Sheet
	if err := g.doer.Do(ctx, http.MethodGet, "/sheets", nil, &out); err != nil {
		return nil, err
	}
	if err := validateAll("sheet", out); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("fetched %d sheets", len(out))
	return out, nil
}

func (g *sheetsGateway) Get(ctx context.Context, id string) (*models.Sheet, error) {
	path, err := entityPath("sheets", id, "")
	if err != nil {
		return nil, err
	}
	var out models.Sheet
	if err := g.doer.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if err := validate("sheet", out); err != nil {
		return nil, err
	}
	return &out, nil
}

type problemsGateway struct {
	doer transport.Doer
}

func NewProblemsGateway(doer transport.Doer) ProblemsGateway {
	return &problemsGateway{doer: doer}
}

func (g *problemsGateway) List(ctx context.Context) ([]models.Problem, error) {
	var out []models.Problem
	if err := g.doer.Do(ctx, http.MethodGet, "/problems", nil, &out); err != nil {
		return nil, err
	}
	if err := validateAll("problem", out); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debug("fetched %d problems", len(out))
	return out, nil
}

func (g *problemsGateway) Get(ctx context.Context, id string) (*models.Problem, error) {
	path, err := entityPath("problems", id, "")
	if err != nil {
		return nil, err
	}
	var out models.Problem
	if err := g.doer.Do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	if err := validate("problem", out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *problemsGateway) MarkComplete(ctx context.Context, id string) (*models.Progress, error) {
	path, err := entityPath("problems", id, "/complete")
	if err != nil {
		return nil, err
	}
	var out models.Progress
	if err := g.doer.Do(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	if err := validate("progress", out); err != nil {
		logger.FromContext(ctx).WithField("problem_id", id).Error("progress response invalid: %v", err)
		return nil, err
	}
	// IDSet decoding already dropped duplicates; the completed id is always solved
	// whether or not the server echoed it.
	out.SolvedProblems = out.SolvedProblems.Add(id)
	logger.FromContext(ctx).WithField("problem_id", id).Info("problem marked complete, solved=%d", len(out.SolvedProblems))
	return &out, nil
}

type usersGateway struct {
	doer transport.Doer
}

func NewUsersGateway(doer transport.Doer) UsersGateway {
	return &usersGateway{doer: doer}
}

func (g *usersGateway) Profile(ctx context.Context) (*models.Profile, error) {
	var out models.Profile
	if err := g.doer.Do(ctx, http.MethodGet, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	if err := validate("profile", out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *usersGateway) PushProgress(ctx context.Context, update models.ProgressUpdate) error {
	return g.doer.Do(ctx, http.MethodPost, "/users/progress", update, nil)
}
