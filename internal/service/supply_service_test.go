package service

import (
	"context"
	"testing"

	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports/mocks"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type supplyTestDeps struct {
	svc         *SupplyServiceImpl
	supplyRepo  *mocks.MockSupplyRepository
	stakingRepo *mocks.MockStakingRepository
	balanceRepo *mocks.MockBalanceRepository
	roleRepo    *mocks.MockRoleRepository
	eventRepo   *mocks.MockEventRepository
	schemaRepo  *mocks.MockSchemaRepository
	transactor  *mocks.MockDBTransactor
	pauseGate   *mocks.MockPauseGate
	ctrl        *gomock.Controller
}

func setupSupplyService(t *testing.T) *supplyTestDeps {
	ctrl := gomock.NewController(t)
	d := &supplyTestDeps{
		supplyRepo:  mocks.NewMockSupplyRepository(ctrl),
		stakingRepo: mocks.NewMockStakingRepository(ctrl),
		balanceRepo: mocks.NewMockBalanceRepository(ctrl),
		roleRepo:    mocks.NewMockRoleRepository(ctrl),
		eventRepo:   mocks.NewMockEventRepository(ctrl),
		schemaRepo:  mocks.NewMockSchemaRepository(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		pauseGate:   mocks.NewMockPauseGate(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewSupplyService(
		d.supplyRepo, d.stakingRepo, d.balanceRepo, d.roleRepo,
		d.eventRepo, d.schemaRepo, d.transactor, d.pauseGate, nil, zerolog.Nop(),
	)
	return d
}

var (
	minter = domain.Address("acct:minter")
	bob    = domain.Address("acct:bob")
	admin  = domain.Address("acct:admin")
)

func TestSupplyService_Mint_Success(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	amount := uint256.NewInt(1_000)
	supply := &domain.SupplyState{TotalSupply: uint256.NewInt(500), MaxSupply: uint256.NewInt(10_000)}

	d.pauseGate.EXPECT().Allowed(ctx).Return(true, nil)
	d.roleRepo.EXPECT().IsMinter(ctx, minter).Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.supplyRepo.EXPECT().GetForUpdate(ctx, tx).Return(supply, nil)
	d.balanceRepo.EXPECT().Credit(ctx, tx, bob, amount).Return(nil)
	d.supplyRepo.EXPECT().Save(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, saved *domain.SupplyState) error {
			assert.Equal(t, "1500", saved.TotalSupply.Dec())
			return nil
		})
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, ev *domain.Event) error {
			assert.Equal(t, domain.EventMint, ev.Kind)
			assert.Equal(t, bob, ev.Account)
			assert.Equal(t, "1000", ev.Fields["amount"])
			return nil
		})

	err := d.svc.Mint(ctx, minter, bob, amount)
	require.NoError(t, err)
}

func TestSupplyService_Mint_NotMinter(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.pauseGate.EXPECT().Allowed(ctx).Return(true, nil)
	d.roleRepo.EXPECT().IsMinter(ctx, bob).Return(false, nil)

	err := d.svc.Mint(ctx, bob, bob, uint256.NewInt(1))
	requireCode(t, err, "AUTH_001")
}

func TestSupplyService_Mint_ExceedsCap(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	supply := &domain.SupplyState{TotalSupply: uint256.NewInt(9_500), MaxSupply: uint256.NewInt(10_000)}

	d.pauseGate.EXPECT().Allowed(ctx).Return(true, nil)
	d.roleRepo.EXPECT().IsMinter(ctx, minter).Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.supplyRepo.EXPECT().GetForUpdate(ctx, tx).Return(supply, nil)

	err := d.svc.Mint(ctx, minter, bob, uint256.NewInt(501))
	requireCode(t, err, "LED_004")
}

func TestSupplyService_Mint_ExactlyAtCap(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	supply := &domain.SupplyState{TotalSupply: uint256.NewInt(9_500), MaxSupply: uint256.NewInt(10_000)}

	d.pauseGate.EXPECT().Allowed(ctx).Return(true, nil)
	d.roleRepo.EXPECT().IsMinter(ctx, minter).Return(true, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.supplyRepo.EXPECT().GetForUpdate(ctx, tx).Return(supply, nil)
	d.balanceRepo.EXPECT().Credit(ctx, tx, bob, gomock.Any()).Return(nil)
	d.supplyRepo.EXPECT().Save(ctx, tx, gomock.Any()).Return(nil)
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).Return(nil)

	err := d.svc.Mint(ctx, minter, bob, uint256.NewInt(500))
	require.NoError(t, err)
}

func TestSupplyService_Mint_Paused(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.pauseGate.EXPECT().Allowed(ctx).Return(false, nil)

	err := d.svc.Mint(ctx, minter, bob, uint256.NewInt(1))
	requireCode(t, err, "LED_007")
}

func TestSupplyService_Mint_NullRecipient(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	err := d.svc.Mint(context.Background(), minter, domain.ZeroAddress, uint256.NewInt(1))
	requireCode(t, err, "LED_001")
}

func TestSupplyService_UpdateMaxSupply_Success(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	supply := &domain.SupplyState{TotalSupply: uint256.NewInt(5_000), MaxSupply: uint256.NewInt(10_000)}

	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.supplyRepo.EXPECT().GetForUpdate(ctx, tx).Return(supply, nil)
	d.supplyRepo.EXPECT().Save(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, saved *domain.SupplyState) error {
			assert.Equal(t, "20000", saved.MaxSupply.Dec())
			return nil
		})
	d.eventRepo.EXPECT().Append(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, ev *domain.Event) error {
			assert.Equal(t, domain.EventMaxSupplyChanged, ev.Kind)
			assert.Equal(t, "10000", ev.Fields["old"])
			assert.Equal(t, "20000", ev.Fields["new"])
			return nil
		})

	err := d.svc.UpdateMaxSupply(ctx, admin, uint256.NewInt(20_000))
	require.NoError(t, err)
}

func TestSupplyService_UpdateMaxSupply_BelowCirculation(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}
	supply := &domain.SupplyState{TotalSupply: uint256.NewInt(5_000), MaxSupply: uint256.NewInt(10_000)}

	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.supplyRepo.EXPECT().GetForUpdate(ctx, tx).Return(supply, nil)

	err := d.svc.UpdateMaxSupply(ctx, admin, uint256.NewInt(4_999))
	requireCode(t, err, "LED_002")
}

func TestSupplyService_UpdateMaxSupply_NotAdmin(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.roleRepo.EXPECT().Administrator(ctx).Return(admin, nil)

	err := d.svc.UpdateMaxSupply(ctx, bob, uint256.NewInt(20_000))
	requireCode(t, err, "AUTH_001")
}

func TestSupplyService_Overview(t *testing.T) {
	d := setupSupplyService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.supplyRepo.EXPECT().Get(ctx).Return(
		&domain.SupplyState{TotalSupply: uint256.NewInt(5_000), MaxSupply: uint256.NewInt(10_000)}, nil)
	d.stakingRepo.EXPECT().State(ctx).Return(
		&domain.StakingState{TotalStaked: uint256.NewInt(1_200)}, nil)
	d.schemaRepo.EXPECT().Version(ctx).Return(uint32(2), nil)

	ov, err := d.svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5000", ov.TotalSupply.Dec())
	assert.Equal(t, "1200", ov.TotalStaked.Dec())
	assert.Equal(t, uint32(2), ov.SchemaVersion)
}
