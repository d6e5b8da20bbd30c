package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/seedbed/incubator/internal/domain/meeting"
	"github.com/seedbed/incubator/internal/domain/startup"
	"github.com/seedbed/incubator/internal/domain/user"
	"github.com/seedbed/incubator/internal/importer"
)

// StartupRepository is a mock for startup.Repository.
type StartupRepository struct {
	mock.Mock
}

func (m *StartupRepository) Create(ctx context.Context, st *startup.Startup) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *StartupRepository) Get(ctx context.Context, id string) (*startup.Startup, error) {
	args := m.Called(ctx, id)
	if st, ok := args.Get(0).(*startup.Startup); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StartupRepository) GetByEmail(ctx context.Context, email string) (*startup.Startup, error) {
	args := m.Called(ctx, email)
	if st, ok := args.Get(0).(*startup.Startup); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StartupRepository) GetByNameFounder(ctx context.Context, name, founder string) (*startup.Startup, error) {
	args := m.Called(ctx, name, founder)
	if st, ok := args.Get(0).(*startup.Startup); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StartupRepository) Update(ctx context.Context, st *startup.Startup) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *StartupRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *StartupRepository) List(ctx context.Context, opts startup.ListOptions) ([]startup.Startup, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]startup.Startup); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StartupRepository) AddAchievement(ctx context.Context, a *startup.Achievement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *StartupRepository) HasAchievement(ctx context.Context, startupID, title string, achievedOn time.Time) (bool, error) {
	args := m.Called(ctx, startupID, title, achievedOn)
	return args.Bool(0), args.Error(1)
}

func (m *StartupRepository) ListAchievements(ctx context.Context, startupID string) ([]startup.Achievement, error) {
	args := m.Called(ctx, startupID)
	if list, ok := args.Get(0).([]startup.Achievement); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StartupRepository) AddProgressEntry(ctx context.Context, p *startup.ProgressEntry) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *StartupRepository) HasProgressEntry(ctx context.Context, startupID, metric string, value float64, recordedOn time.Time) (bool, error) {
	args := m.Called(ctx, startupID, metric, value, recordedOn)
	return args.Bool(0), args.Error(1)
}

func (m *StartupRepository) ListProgress(ctx context.Context, startupID string) ([]startup.ProgressEntry, error) {
	args := m.Called(ctx, startupID)
	if list, ok := args.Get(0).([]startup.ProgressEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StartupRepository) AddRevenueEntry(ctx context.Context, r *startup.RevenueEntry) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *StartupRepository) HasRevenueEntry(ctx context.Context, startupID string, amount float64, period string) (bool, error) {
	args := m.Called(ctx, startupID, amount, period)
	return args.Bool(0), args.Error(1)
}

func (m *StartupRepository) ListRevenue(ctx context.Context, startupID string) ([]startup.RevenueEntry, error) {
	args := m.Called(ctx, startupID)
	if list, ok := args.Get(0).([]startup.RevenueEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *StartupRepository) AddStageTransition(ctx context.Context, tr *startup.StageTransition) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}

func (m *StartupRepository) ListStageTransitions(ctx context.Context, startupID string) ([]startup.StageTransition, error) {
	args := m.Called(ctx, startupID)
	if list, ok := args.Get(0).([]startup.StageTransition); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// MeetingRepository is a mock for meeting.Repository.
type MeetingRepository struct {
	mock.Mock
}

func (m *MeetingRepository) Create(ctx context.Context, mt *meeting.Meeting) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

func (m *MeetingRepository) Get(ctx context.Context, id string) (*meeting.Meeting, error) {
	args := m.Called(ctx, id)
	if mt, ok := args.Get(0).(*meeting.Meeting); ok {
		return mt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) Update(ctx context.Context, mt *meeting.Meeting) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}

func (m *MeetingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MeetingRepository) ListByStartup(ctx context.Context, startupID string, kind meeting.Kind) ([]meeting.Meeting, error) {
	args := m.Called(ctx, startupID, kind)
	if list, ok := args.Get(0).([]meeting.Meeting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MeetingRepository) ExistsOnDate(ctx context.Context, startupID string, kind meeting.Kind, date time.Time) (bool, error) {
	args := m.Called(ctx, startupID, kind, date)
	return args.Bool(0), args.Error(1)
}

// UserRepository is a mock for user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserRepository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) AddToken(ctx context.Context, userID, tokenHash string) error {
	args := m.Called(ctx, userID, tokenHash)
	return args.Error(0)
}

func (m *UserRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*user.User, error) {
	args := m.Called(ctx, tokenHash)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// ImportStore is a mock for importer.Store. InTx is a passthrough: the
// closure runs against the mock itself, so expectations set on the mock
// cover calls made inside the transactional unit.
type ImportStore struct {
	mock.Mock
}

func (m *ImportStore) InTx(ctx context.Context, fn func(importer.Store) error) error {
	return fn(m)
}

func (m *ImportStore) FindStartupByEmail(ctx context.Context, email string) (*startup.Startup, error) {
	args := m.Called(ctx, email)
	if st, ok := args.Get(0).(*startup.Startup); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImportStore) FindStartupByNameFounder(ctx context.Context, name, founder string) (*startup.Startup, error) {
	args := m.Called(ctx, name, founder)
	if st, ok := args.Get(0).(*startup.Startup); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ImportStore) CreateStartup(ctx context.Context, st *startup.Startup) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *ImportStore) UpdateStartup(ctx context.Context, st *startup.Startup) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *ImportStore) HasAchievement(ctx context.Context, startupID, title string, achievedOn time.Time) (bool, error) {
	args := m.Called(ctx, startupID, title, achievedOn)
	return args.Bool(0), args.Error(1)
}

func (m *ImportStore) CreateAchievement(ctx context.Context, a *startup.Achievement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ImportStore) HasProgressEntry(ctx context.Context, startupID, metric string, value float64, recordedOn time.Time) (bool, error) {
	args := m.Called(ctx, startupID, metric, value, recordedOn)
	return args.Bool(0), args.Error(1)
}

func (m *ImportStore) CreateProgressEntry(ctx context.Context, p *startup.ProgressEntry) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ImportStore) HasRevenueEntry(ctx context.Context, startupID string, amount float64, period string) (bool, error) {
	args := m.Called(ctx, startupID, amount, period)
	return args.Bool(0), args.Error(1)
}

func (m *ImportStore) CreateRevenueEntry(ctx context.Context, r *startup.RevenueEntry) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ImportStore) CreateStageTransition(ctx context.Context, tr *startup.StageTransition) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}

func (m *ImportStore) HasMeetingOnDate(ctx context.Context, startupID string, kind meeting.Kind, date time.Time) (bool, error) {
	args := m.Called(ctx, startupID, kind, date)
	return args.Bool(0), args.Error(1)
}

func (m *ImportStore) CreateMeeting(ctx context.Context, mt *meeting.Meeting) error {
	args := m.Called(ctx, mt)
	return args.Error(0)
}
