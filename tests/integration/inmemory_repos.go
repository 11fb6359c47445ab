package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stakeledger/internal/core/domain"
	"stakeledger/internal/core/ports"
	"stakeledger/pkg/apperror"

	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Balance Repo ---

type inMemoryBalanceRepo struct {
	mu       sync.RWMutex
	balances map[domain.Address]*uint256.Int
}

func newInMemoryBalanceRepo() *inMemoryBalanceRepo {
	return &inMemoryBalanceRepo{balances: make(map[domain.Address]*uint256.Int)}
}

func (r *inMemoryBalanceRepo) BalanceOf(ctx context.Context, addr domain.Address) (*uint256.Int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.balances[addr]
	if !ok {
		return uint256.NewInt(0), nil
	}
	return b.Clone(), nil
}

func (r *inMemoryBalanceRepo) BalanceOfForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*uint256.Int, error) {
	return r.BalanceOf(ctx, addr)
}

func (r *inMemoryBalanceRepo) Credit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount *uint256.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[addr]
	if !ok {
		b = uint256.NewInt(0)
	}
	r.balances[addr] = new(uint256.Int).Add(b, amount)
	return nil
}

func (r *inMemoryBalanceRepo) Debit(ctx context.Context, tx pgx.Tx, addr domain.Address, amount *uint256.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.balances[addr]
	if !ok || b.Lt(amount) {
		return apperror.ErrInsufficientBalance()
	}
	r.balances[addr] = new(uint256.Int).Sub(b, amount)
	return nil
}

func (r *inMemoryBalanceRepo) Transfer(ctx context.Context, tx pgx.Tx, from, to domain.Address, amount *uint256.Int) error {
	if err := r.Debit(ctx, tx, from, amount); err != nil {
		return err
	}
	return r.Credit(ctx, tx, to, amount)
}

func (r *inMemoryBalanceRepo) SumBalances(ctx context.Context) (*uint256.Int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sum := uint256.NewInt(0)
	for _, b := range r.balances {
		sum = new(uint256.Int).Add(sum, b)
	}
	return sum, nil
}

// --- In-Memory Supply Repo ---

type inMemorySupplyRepo struct {
	mu    sync.RWMutex
	state *domain.SupplyState
}

func newInMemorySupplyRepo() *inMemorySupplyRepo {
	return &inMemorySupplyRepo{}
}

func cloneSupply(s *domain.SupplyState) *domain.SupplyState {
	return &domain.SupplyState{
		TotalSupply: s.TotalSupply.Clone(),
		MaxSupply:   s.MaxSupply.Clone(),
	}
}

func (r *inMemorySupplyRepo) Get(ctx context.Context) (*domain.SupplyState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.state == nil {
		return nil, fmt.Errorf("supply state not initialized")
	}
	return cloneSupply(r.state), nil
}

func (r *inMemorySupplyRepo) GetForUpdate(ctx context.Context, tx pgx.Tx) (*domain.SupplyState, error) {
	return r.Get(ctx)
}

func (r *inMemorySupplyRepo) Save(ctx context.Context, tx pgx.Tx, state *domain.SupplyState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = cloneSupply(state)
	return nil
}

func (r *inMemorySupplyRepo) Init(ctx context.Context, tx pgx.Tx, state *domain.SupplyState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != nil {
		return fmt.Errorf("supply state already initialized")
	}
	r.state = cloneSupply(state)
	return nil
}

// --- In-Memory Staking Repo ---

type inMemoryStakingRepo struct {
	mu        sync.RWMutex
	state     *domain.StakingState
	positions map[domain.Address]*domain.StakePosition
}

func newInMemoryStakingRepo() *inMemoryStakingRepo {
	return &inMemoryStakingRepo{positions: make(map[domain.Address]*domain.StakePosition)}
}

func cloneStakingState(s *domain.StakingState) *domain.StakingState {
	return &domain.StakingState{
		RewardRatePerYearBps:      s.RewardRatePerYearBps,
		MinStakingDurationSeconds: s.MinStakingDurationSeconds,
		TotalStaked:               s.TotalStaked.Clone(),
	}
}

func clonePosition(p *domain.StakePosition) *domain.StakePosition {
	return &domain.StakePosition{
		Address:        p.Address,
		StakedAmount:   p.StakedAmount.Clone(),
		StakeStartedAt: p.StakeStartedAt,
		BankedReward:   p.BankedReward.Clone(),
	}
}

func (r *inMemoryStakingRepo) State(ctx context.Context) (*domain.StakingState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.state == nil {
		return nil, fmt.Errorf("staking state not initialized")
	}
	return cloneStakingState(r.state), nil
}

func (r *inMemoryStakingRepo) StateForUpdate(ctx context.Context, tx pgx.Tx) (*domain.StakingState, error) {
	return r.State(ctx)
}

func (r *inMemoryStakingRepo) SaveState(ctx context.Context, tx pgx.Tx, state *domain.StakingState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = cloneStakingState(state)
	return nil
}

func (r *inMemoryStakingRepo) InitState(ctx context.Context, tx pgx.Tx, state *domain.StakingState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != nil {
		return fmt.Errorf("staking state already initialized")
	}
	r.state = cloneStakingState(state)
	return nil
}

func (r *inMemoryStakingRepo) Position(ctx context.Context, addr domain.Address) (*domain.StakePosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.positions[addr]
	if !ok {
		return domain.NewStakePosition(addr), nil
	}
	return clonePosition(p), nil
}

func (r *inMemoryStakingRepo) PositionForUpdate(ctx context.Context, tx pgx.Tx, addr domain.Address) (*domain.StakePosition, error) {
	return r.Position(ctx, addr)
}

func (r *inMemoryStakingRepo) SavePosition(ctx context.Context, tx pgx.Tx, pos *domain.StakePosition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.positions[pos.Address] = clonePosition(pos)
	return nil
}

func (r *inMemoryStakingRepo) SumStaked(ctx context.Context) (*uint256.Int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sum := uint256.NewInt(0)
	for _, p := range r.positions {
		sum = new(uint256.Int).Add(sum, p.StakedAmount)
	}
	return sum, nil
}

// --- In-Memory Role Repo ---

type inMemoryRoleRepo struct {
	mu      sync.RWMutex
	admin   domain.Address
	minters map[domain.Address]struct{}
}

func newInMemoryRoleRepo() *inMemoryRoleRepo {
	return &inMemoryRoleRepo{minters: make(map[domain.Address]struct{})}
}

func (r *inMemoryRoleRepo) Administrator(ctx context.Context) (domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.admin, nil
}

func (r *inMemoryRoleRepo) SetAdministrator(ctx context.Context, tx pgx.Tx, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admin = addr
	return nil
}

func (r *inMemoryRoleRepo) IsMinter(ctx context.Context, addr domain.Address) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.minters[addr]
	return ok, nil
}

func (r *inMemoryRoleRepo) AddMinter(ctx context.Context, tx pgx.Tx, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.minters[addr] = struct{}{}
	return nil
}

func (r *inMemoryRoleRepo) RemoveMinter(ctx context.Context, tx pgx.Tx, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.minters, addr)
	return nil
}

func (r *inMemoryRoleRepo) ListMinters(ctx context.Context) ([]domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Address, 0, len(r.minters))
	for m := range r.minters {
		out = append(out, m)
	}
	return out, nil
}

// --- In-Memory Schema Repo ---

type inMemorySchemaRepo struct {
	mu         sync.RWMutex
	version    uint32
	partitions map[string]string // key -> namespace, key is UNIQUE
}

func newInMemorySchemaRepo() *inMemorySchemaRepo {
	return &inMemorySchemaRepo{partitions: make(map[string]string)}
}

func (r *inMemorySchemaRepo) EnsureSchema(ctx context.Context) error {
	return nil
}

func (r *inMemorySchemaRepo) Version(ctx context.Context) (uint32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version, nil
}

func (r *inMemorySchemaRepo) VersionForUpdate(ctx context.Context, tx pgx.Tx) (uint32, error) {
	return r.Version(ctx)
}

func (r *inMemorySchemaRepo) SetVersion(ctx context.Context, tx pgx.Tx, version uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.version = version
	return nil
}

func (r *inMemorySchemaRepo) RegisterPartition(ctx context.Context, tx pgx.Tx, version uint32, namespace, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.partitions[key]; ok && existing != namespace {
		return fmt.Errorf("partition key collision: %s vs %s", existing, namespace)
	}
	r.partitions[key] = namespace
	return nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events []domain.Event
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{}
}

func (r *inMemoryEventRepo) Append(ctx context.Context, tx pgx.Tx, event *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *inMemoryEventRepo) List(ctx context.Context, params ports.EventListParams) ([]domain.Event, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Newest first, matching the postgres repo's ordering.
	var result []domain.Event
	for i := len(r.events) - 1; i >= 0; i-- {
		ev := r.events[i]
		if params.Kind != nil && ev.Kind != *params.Kind {
			continue
		}
		if params.Account != nil && ev.Account != *params.Account {
			continue
		}
		result = append(result, ev)
	}
	total := int64(len(result))

	start := (params.Page - 1) * params.PageSize
	if start >= len(result) {
		return []domain.Event{}, total, nil
	}
	end := start + params.PageSize
	if end > len(result) {
		end = len(result)
	}
	return result[start:end], total, nil
}

// --- In-Memory Transactor (serializing) ---

// inMemoryTransactor emulates the supply-row lock with a single mutex held
// from Begin to Commit or Rollback, serializing all mutating operations the
// way SELECT FOR UPDATE does against real PostgreSQL. There is no undo: a
// failed operation must not have mutated anything before its first error.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &serialTx{release: &t.mu}, nil
}

// serialTx is a pgx.Tx that only manages the transactor's lock. Commit and
// the deferred Rollback both fire; the sync.Once keeps the unlock single.
type serialTx struct {
	release *sync.Mutex
	done    sync.Once
}

func (t *serialTx) Commit(ctx context.Context) error {
	t.done.Do(t.release.Unlock)
	return nil
}

func (t *serialTx) Rollback(ctx context.Context) error {
	t.done.Do(t.release.Unlock)
	return nil
}

func (t *serialTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *serialTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *serialTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *serialTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *serialTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *serialTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *serialTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *serialTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *serialTx) Conn() *pgx.Conn { return nil }

// --- Adjustable Clock ---

// testClock is a manually advanced clock so reward accrual and duration
// checks are deterministic in integration tests.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{now: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
