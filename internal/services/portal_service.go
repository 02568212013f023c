package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vytor/dsaportal/internal/errors"
	"github.com/vytor/dsaportal/internal/gateway"
	"github.com/vytor/dsaportal/internal/jobs"
	"github.com/vytor/dsaportal/internal/logger"
	"github.com/vytor/dsaportal/internal/models"
	"github.com/vytor/dsaportal/internal/session"
	"github.com/vytor/dsaportal/internal/transport"
)

// PortalService combines gateway results into the views the surfaces render.
type PortalService interface {
	DashboardStats(ctx context.Context) (*models.Dashboard, error)
	TopicWithProblems(ctx context.Context, topicID string) (*models.TopicDetail, error)
	ListTopics(ctx context.Context, level models.TopicLevel) ([]models.Topic, error)
	ListSheets(ctx context.Context) ([]models.Sheet, error)
	SheetDetail(ctx context.Context, sheetID string) (*models.SheetDetail, error)
	MarkComplete(ctx context.Context, problemID string) (*models.Identity, error)
}

type portalService struct {
	gw      gateway.Set
	session *session.Store
	queue   jobs.ProgressQueue
}

// NewPortalService creates a new PortalService. queue may be nil, in which case
// completed problems are not pushed to /users/progress.
func NewPortalService(gw gateway.Set, store *session.Store, queue jobs.ProgressQueue) PortalService {
	return &portalService{gw: gw, session: store, queue: queue}
}

func (s *portalService) DashboardStats(ctx context.Context) (*models.Dashboard, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing dashboard stats")

	var (
		identity *models.Identity
		profile  *models.Profile
		topics   []models.Topic
		catalog  []models.Problem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		identity, err = s.gw.Auth.Me(gctx)
		return err
	})
	g.Go(func() (err error) {
		profile, err = s.gw.Users.Profile(gctx)
		return err
	})
	g.Go(func() (err error) {
		topics, err = s.gw.Topics.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		catalog, err = s.gw.Problems.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn("dashboard fan-out failed: %v", err)
		return nil, err
	}

	dash := &models.Dashboard{
		Identity: *identity,
		Stats:    buildSnapshot(*identity, profile, topics, catalog),
		Activity: recentActivity(profile),
	}
	log.Debug("dashboard ready: solved=%d, attempted=%d, streak=%d",
		dash.Stats.SolvedCount, dash.Stats.AttemptedCount, dash.Stats.StreakDays)
	return dash, nil
}

func (s *portalService) TopicWithProblems(ctx context.Context, topicID string) (*models.TopicDetail, error) {
	log := logger.FromContext(ctx).WithField("topic_id", topicID)
	log.Debug("joining topic with problem catalog")

	var (
		topic   *models.Topic
		catalog []models.Problem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		topic, err = s.gw.Topics.Get(gctx, topicID)
		return err
	})
	g.Go(func() (err error) {
		catalog, err = s.gw.Problems.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	problems, unresolved := JoinTopicProblems(*topic, catalog)
	if unresolved > 0 {
		log.Debug("dropped %d unresolved problem references", unresolved)
	}
	return &models.TopicDetail{Topic: *topic, Problems: problems, Unresolved: unresolved}, nil
}

func (s *portalService) ListTopics(ctx context.Context, level models.TopicLevel) ([]models.Topic, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing topics: level=%s", level)

	if level == "" {
		level = models.LevelAll
	}
	if level != models.LevelAll && !level.Valid() {
		return nil, errors.NewValidationError("difficulty", "must be one of all, beginner, intermediate, advanced")
	}

	topics, err := s.gw.Topics.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterTopicsByDifficulty(topics, level), nil
}

func (s *portalService) ListSheets(ctx context.Context) ([]models.Sheet, error) {
	logger.FromContext(ctx).Debug("listing sheets")
	return s.gw.Sheets.List(ctx)
}

func (s *portalService) SheetDetail(ctx context.Context, sheetID string) (*models.SheetDetail, error) {
	log := logger.FromContext(ctx).WithField("sheet_id", sheetID)
	log.Debug("loading sheet detail")

	var (
		sheet    *models.Sheet
		identity *models.Identity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sheet, err = s.gw.Sheets.Get(gctx, sheetID)
		return err
	})
	g.Go(func() (err error) {
		identity, err = s.gw.Auth.Me(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.SheetDetail{
		Sheet:          *sheet,
		Progress:       ComputeSheetProgress(*sheet, *identity),
		EstimatedHours: EstimateHours(*sheet),
	}, nil
}

func (s *portalService) MarkComplete(ctx context.Context, problemID string) (*models.Identity, error) {
	log := logger.FromContext(ctx).WithField("problem_id", problemID)
	log.Debug("marking problem complete")

	current, token, ok := s.session.Snapshot()
	if !ok {
		return nil, errors.NewAuthError(0, "not signed in")
	}

	progress, err := s.gw.Problems.MarkComplete(transport.ContextWithToken(ctx, token), problemID)
	if err != nil {
		log.Warn("mark complete failed: %v", err)
		return nil, err
	}

	updated := current.WithProgress(*progress)
	if !s.session.UpdateIdentity(token, &updated) {
		// the session changed while the request was in flight
		log.Warn("session changed during mark complete, discarding progress")
		return nil, errors.NewSessionChangedError("session changed while marking the problem complete")
	}

	if s.queue != nil {
		push := jobs.ProgressPush{IdentityID: updated.ID, Token: token, ProblemID: problemID, Status: models.ProgressSolved}
		if err := s.queue.EnqueueProgress(push); err != nil {
			log.Warn("progress push not queued: %v", err)
		}
	}

	log.Info("problem marked complete: solved=%d", len(updated.SolvedProblems))
	return &updated, nil
}
