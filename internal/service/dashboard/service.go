package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opspulse/opspulse-backend-go/internal/domain/dashboard"
	"github.com/opspulse/opspulse-backend-go/internal/domain/metrics"
	"github.com/opspulse/opspulse-backend-go/internal/domain/user"
)

type DashboardServiceImpl struct {
	userRepo       user.Repository
	statsRepo      dashboard.StatsRepository
	metricsService metrics.Service

	// injectable clock, fixed in tests
	now func() time.Time
}

func NewDashboardService(userRepo user.Repository, statsRepo dashboard.StatsRepository, metricsService metrics.Service) dashboard.Service {
	return &DashboardServiceImpl{
		userRepo:       userRepo,
		statsRepo:      statsRepo,
		metricsService: metricsService,
		now:            time.Now,
	}
}

// GetTeamOverview implements dashboard.Service. Each member's monthly
// metrics are independent reads, so they run in parallel goroutines.
func (s *DashboardServiceImpl) GetTeamOverview(ctx context.Context, teamID string) (*dashboard.TeamOverviewResponse, error) {
	members, err := s.userRepo.ListByTeamAndRole(ctx, teamID, user.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	performances := make([]dashboard.MemberPerformance, len(members))

	g, gCtx := errgroup.WithContext(ctx)
	for i, member := range members {
		g.Go(func() error {
			m, err := s.metricsService.ComputeMetrics(gCtx, member.ID, metrics.PeriodMonth, member.LocationType)
			if err != nil {
				return err
			}
			performances[i] = dashboard.MemberPerformance{
				UserID:            member.ID,
				Name:              member.Name,
				LocationType:      string(member.LocationType),
				ProductivityScore: m.ProductivityScore,
				TotalHours:        m.TotalHours,
				AvgDailyHours:     m.AvgDailyHours,
				WorkingDays:       m.WorkingDays,
				Status:            performanceStatus(m.ProductivityScore),
				Metrics:           m,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &dashboard.TeamOverviewResponse{
		Team:              teamID,
		TotalMembers:      len(members),
		ActivityBreakdown: make(map[string]float64),
		Members:           performances,
	}

	var productivitySum float64
	for _, p := range performances {
		if p.WorkingDays == 0 {
			continue
		}
		overview.ActiveMembers++
		overview.TeamTotalHours += p.TotalHours
		productivitySum += p.ProductivityScore
		for activity, hours := range p.Metrics.ActivityBreakdown {
			overview.ActivityBreakdown[activity] += hours
		}
	}
	overview.AvgProductivity = productivitySum / float64(max(overview.ActiveMembers, 1))

	return overview, nil
}

// GetSystemStats implements dashboard.Service.
func (s *DashboardServiceImpl) GetSystemStats(ctx context.Context) (*dashboard.SystemStatsResponse, error) {
	today := s.now().Format("2006-01-02")

	stats := dashboard.SystemStatsResponse{Date: today}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.statsRepo.CountUsers(gCtx)
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountEntries(gCtx)
		stats.TotalEntries = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepo.CountActiveOn(gCtx, today)
		stats.ActiveToday = n
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

// performanceStatus maps a productivity score to the manager-view tier.
func performanceStatus(score float64) string {
	switch {
	case score >= 85:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "needs improvement"
	default:
		return "requires attention"
	}
}
