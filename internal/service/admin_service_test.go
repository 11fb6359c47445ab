package service

import (
	"context"
	"testing"

	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports/mocks"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type adminTestDeps struct {
	svc         *AdminServiceImpl
	stakingRepo *mocks.MockStakingRepository
	roleRepo    *mocks.MockRoleRepository
	eventRepo   *mocks.MockEventRepository
	transactor  *mocks.MockDBTransactor
	pauseGate   *mocks.MockPauseGate
	ctrl        *gomock.Controller
}

func setupAdminService(t *testing.T) *adminTestDeps {
	ctrl := gomock.NewController(t)
	d := &adminTestDeps{
		stakingRepo: mocks.NewMockStakingRepository(ctrl),
		roleRepo:    mocks.NewMockRoleRepository(ctrl),
		eventRepo:   mocks.NewMockEventRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		pauseGate:   mocks.NewMockPauseGate(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAdminService(
		d.stakingRepo, d.roleRepo, d.eventRepo, d.transactor,
		d.pauseGate, nil, zerolog.Nop(),
	)
	return d
}

func TestAdminService_SetRewardRate_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	state := testStakingState()

	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stakingRepo.EXPECT().StateForUpdate(ctx, tx).Return(state, nil)
	d.stakingRepo.EXPECT().SaveState(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, saved *domain.StakingState) error {
			assert.Equal(t, uint64(750), saved.RewardRatePerYearBps)
			return nil
		})
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, ev *domain.Event) error {
			assert.Equal(t, domain.EventRewardRateChanged, ev.Kind)
			assert.Equal(t, "500", ev.Fields["old"])
			assert.Equal(t, "750", ev.Fields["new"])
			return nil
		})

	require.NoError(t, d.svc.SetRewardRate(ctx, admin, 750))
}

func TestAdminService_SetRewardRate_NotAdmin(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)

	err := d.svc.SetRewardRate(ctx, bob, 750)
	requireCode(t, err, "AUTH_001")
}

// A zero rate is a valid configuration: accrual simply stops.
func TestAdminService_SetRewardRate_Zero(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stakingRepo.EXPECT().StateForUpdate(ctx, tx).Return(testStakingState(), nil)
	d.stakingRepo.EXPECT().SaveState(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, saved *domain.StakingState) error {
			assert.Zero(t, saved.RewardRatePerYearBps)
			return nil
		})
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	require.NoError(t, d.svc.SetRewardRate(ctx, admin, 0))
}

func TestAdminService_SetMinStakingDuration_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.stakingRepo.EXPECT().StateForUpdate(ctx, tx).Return(testStakingState(), nil)
	d.stakingRepo.EXPECT().SaveState(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, saved *domain.StakingState) error {
			assert.Equal(t, uint64(3600), saved.MinStakingDurationSeconds)
			return nil
		})
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, ev *domain.Event) error {
			assert.Equal(t, domain.EventMinDurationSet, ev.Kind)
			return nil
		})

	require.NoError(t, d.svc.SetMinStakingDuration(ctx, admin, 3600))
}

func TestAdminService_AddMinter_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.roleRepo.EXPECT().AddMinter(ctx, tx, minter).Return(nil)
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, ev *domain.Event) error {
			assert.Equal(t, domain.EventMinterAdded, ev.Kind)
			assert.Equal(t, minter, ev.Account)
			return nil
		})

	require.NoError(t, d.svc.AddMinter(ctx, admin, minter))
}

func TestAdminService_AddMinter_NullMinter(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	err := d.svc.AddMinter(context.Background(), admin, domain.ZeroAddress)
	requireCode(t, err, "LED_001")
}

func TestAdminService_RemoveMinter_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.roleRepo.EXPECT().RemoveMinter(ctx, tx, minter).Return(nil)
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	require.NoError(t, d.svc.RemoveMinter(ctx, admin, minter))
}

func TestAdminService_TransferAdministrator_Success(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.roleRepo.EXPECT().SetAdministrator(ctx, tx, bob).Return(nil)
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, ev *domain.Event) error {
			assert.Equal(t, domain.EventAdminChanged, ev.Kind)
			assert.Equal(t, admin.String(), ev.Fields["old"])
			assert.Equal(t, bob.String(), ev.Fields["new"])
			return nil
		})

	require.NoError(t, d.svc.TransferAdministrator(ctx, admin, bob))
}

func TestAdminService_TransferAdministrator_NotAdmin(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)

	err := d.svc.TransferAdministrator(ctx, bob, bob)
	requireCode(t, err, "AUTH_001")
}

// Pausing must work while paused, otherwise the gate could never be lifted.
func TestAdminService_SetPaused(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)
	d.pauseGate.EXPECT().SetAllowed(ctx, false).Return(nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, ev *domain.Event) error {
			assert.Equal(t, domain.EventPauseToggled, ev.Kind)
			assert.Equal(t, "false", ev.Fields["operations_allowed"])
			return nil
		})

	require.NoError(t, d.svc.SetPaused(ctx, admin, false))
}

func TestAdminService_ListMinters(t *testing.T) {
	d := setupAdminService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.roleRepo.EXPECT().ListMinters(ctx).Return([]domain.Address{admin, minter}, nil)

	minters, err := d.svc.ListMinters(ctx)
	require.NoError(t, err)
	assert.Len(t, minters, 2)
}
