package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpHandler "stakeledger/internal/adapter/http/handler"
	redisStorage "stakeledger/internal/adapter/storage/redis"
	"stakeledger/internal/core/domain"
	"stakeledger/internal/service"
	"stakeledger/pkg/apperror"
	"stakeledger/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/holiman/uint256"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack on in-memory repos plus real
// Redis stores (miniredis). This exercises the HTTP layer, middleware,
// handlers, services, and the setup runs end-to-end.

const (
	testAPIKey = "test-api-key"
	adminAddr  = "acct:admin"
	aliceAddr  = "acct:alice"
	bobAddr    = "acct:bob"

	// At 500 bps over 3600s, a stake of 630,720,000 accrues exactly 3600:
	// 630720000 * 500 * 3600 / (10000 * 31536000) = 3600.
	stakeAmount    = "630720000"
	accruedPerHour = "3600"
)

type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	clock       *testClock
	balanceRepo *inMemoryBalanceRepo
	stakingRepo *inMemoryStakingRepo
	supplyRepo  *inMemorySupplyRepo
	upgradeSvc  *service.UpgradeServiceImpl
}

func newTestApp(t *testing.T) *testApp {
	return buildTestApp(t, false)
}

// newRateLimitedApp wires the Redis rate limit store the way production does;
// the default test app leaves it off so bursty tests don't trip it.
func newRateLimitedApp(t *testing.T) *testApp {
	return buildTestApp(t, true)
}

func buildTestApp(t *testing.T, withRateLimit bool) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	pauseGate := redisStorage.NewPauseGate(rdb)

	balanceRepo := newInMemoryBalanceRepo()
	supplyRepo := newInMemorySupplyRepo()
	stakingRepo := newInMemoryStakingRepo()
	roleRepo := newInMemoryRoleRepo()
	schemaRepo := newInMemorySchemaRepo()
	eventRepo := newInMemoryEventRepo()
	transactor := newInMemoryTransactor()

	clock := newTestClock(time.Unix(1_700_000_000, 0))
	log := logger.New("error", false)
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "stakeledger-test")

	params := service.SetupParams{
		Administrator:          adminAddr,
		InitialMaxSupply:       uint256.NewInt(10_000_000_000),
		RewardRateBps:          500,
		MinStakingDurationSecs: 3600,
	}

	upgradeSvc := service.NewUpgradeService(
		schemaRepo, supplyRepo, stakingRepo, roleRepo, eventRepo, transactor,
		logSwapHost{}, params, log,
	)
	ctx := context.Background()
	require.NoError(t, upgradeSvc.Setup(ctx, 1))
	require.NoError(t, upgradeSvc.Setup(ctx, 2))

	stakingSvc := service.NewStakingService(
		stakingRepo, supplyRepo, balanceRepo, eventRepo, transactor,
		pauseGate, clock, nil, log,
	)
	supplySvc := service.NewSupplyService(
		supplyRepo, stakingRepo, balanceRepo, roleRepo, eventRepo, schemaRepo,
		transactor, pauseGate, nil, log,
	)
	adminSvc := service.NewAdminService(
		stakingRepo, roleRepo, eventRepo, transactor, pauseGate, nil, log,
	)

	var rateLimitStore *redisStorage.RateLimitStore
	if withRateLimit {
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SupplySvc:      supplySvc,
		StakingSvc:     stakingSvc,
		AdminSvc:       adminSvc,
		UpgradeSvc:     upgradeSvc,
		TokenSvc:       tokenSvc,
		EventRepo:      eventRepo,
		APIKey:         testAPIKey,
		RateLimitStore: rateLimitStore,
		Logger:         log,
	})

	return &testApp{
		server:      httptest.NewServer(router),
		redis:       mr,
		clock:       clock,
		balanceRepo: balanceRepo,
		stakingRepo: stakingRepo,
		supplyRepo:  supplyRepo,
		upgradeSvc:  upgradeSvc,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

// logSwapHost is a no-op upgrade host for tests.
type logSwapHost struct{}

func (logSwapHost) Swap(ctx context.Context, newLogicHandle string) error { return nil }

// --- HTTP helpers ---

func (a *testApp) do(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data, _ := envelope["data"].(map[string]interface{})
	return data
}

func decodeErrorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.ErrorCode
}

func (a *testApp) token(t *testing.T, address string) string {
	t.Helper()
	body := fmt.Sprintf(`{"api_key":%q,"address":%q}`, testAPIKey, address)
	resp := a.do(t, http.MethodPost, "/api/v1/auth/token", "", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	return data["token"].(string)
}

func (a *testApp) mint(t *testing.T, to, amount string) {
	t.Helper()
	body := fmt.Sprintf(`{"to":%q,"amount":%q}`, to, amount)
	resp := a.do(t, http.MethodPost, "/api/v1/supply/mint", a.token(t, adminAddr), body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

// assertConservation checks the two accounting identities the ledger
// maintains: totalSupply equals the sum of all balances, and totalStaked
// equals both the custody balance and the sum of all staked positions.
func (a *testApp) assertConservation(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	supply, err := a.supplyRepo.Get(ctx)
	require.NoError(t, err)
	sumBalances, err := a.balanceRepo.SumBalances(ctx)
	require.NoError(t, err)
	assert.Equal(t, supply.TotalSupply.Dec(), sumBalances.Dec(), "totalSupply must equal the sum of all balances")

	staking, err := a.stakingRepo.State(ctx)
	require.NoError(t, err)
	custody, err := a.balanceRepo.BalanceOf(ctx, domain.CustodyAccount)
	require.NoError(t, err)
	sumStaked, err := a.stakingRepo.SumStaked(ctx)
	require.NoError(t, err)
	assert.Equal(t, staking.TotalStaked.Dec(), custody.Dec(), "totalStaked must equal the custody balance")
	assert.Equal(t, staking.TotalStaked.Dec(), sumStaked.Dec(), "totalStaked must equal the sum of all positions")
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_IssueToken(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token := app.token(t, aliceAddr)
	assert.NotEmpty(t, token)
}

func TestIntegration_IssueToken_WrongAPIKey(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	body := fmt.Sprintf(`{"api_key":"wrong","address":%q}`, aliceAddr)
	resp := app.do(t, http.MethodPost, "/api/v1/auth/token", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_003", decodeErrorCode(t, resp))
}

func TestIntegration_JWT_Unauthorized(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp := app.do(t, http.MethodPost, "/api/v1/staking/stake", "", `{"amount":"100"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIntegration_MintAndOverview(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.mint(t, aliceAddr, "1000000000")

	resp := app.do(t, http.MethodGet, "/api/v1/supply", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "1000000000", data["total_supply"])
	assert.Equal(t, "10000000000", data["max_supply"])
	assert.Equal(t, "0", data["total_staked"])
	assert.Equal(t, float64(2), data["schema_version"])

	// Alice's balance is publicly readable.
	resp2 := app.do(t, http.MethodGet, "/api/v1/accounts/"+aliceAddr, "", "")
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	pos := decodeData(t, resp2)
	assert.Equal(t, "1000000000", pos["balance"])

	app.assertConservation(t)
}

func TestIntegration_Mint_RequiresMinterRole(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	body := fmt.Sprintf(`{"to":%q,"amount":"100"}`, bobAddr)
	resp := app.do(t, http.MethodPost, "/api/v1/supply/mint", app.token(t, aliceAddr), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "AUTH_001", decodeErrorCode(t, resp))
}

func TestIntegration_StakeUnstakeLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.mint(t, aliceAddr, "1000000000")
	aliceToken := app.token(t, aliceAddr)

	// Stake.
	resp := app.do(t, http.MethodPost, "/api/v1/staking/stake", aliceToken,
		fmt.Sprintf(`{"amount":%q}`, stakeAmount))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	receipt := decodeData(t, resp)
	assert.Equal(t, stakeAmount, receipt["staked_amount"])
	app.assertConservation(t)

	// One hour later the position shows the accrued reward.
	app.clock.Advance(time.Hour)
	resp2 := app.do(t, http.MethodGet, "/api/v1/staking/position", aliceToken, "")
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	pos := decodeData(t, resp2)
	assert.Equal(t, stakeAmount, pos["staked_amount"])
	assert.Equal(t, accruedPerHour, pos["pending_reward"])

	// Full unstake after the minimum duration: principal back plus the
	// reward minted on top.
	resp3 := app.do(t, http.MethodPost, "/api/v1/staking/unstake", aliceToken,
		fmt.Sprintf(`{"amount":%q}`, stakeAmount))
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	receipt3 := decodeData(t, resp3)
	assert.Equal(t, "0", receipt3["staked_amount"])
	assert.Equal(t, accruedPerHour, receipt3["reward_computed"])
	assert.Equal(t, true, receipt3["reward_minted"])

	balance, err := app.balanceRepo.BalanceOf(context.Background(), aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, "1000003600", balance.Dec())
	app.assertConservation(t)
}

func TestIntegration_Unstake_BeforeMinimumDuration(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.mint(t, aliceAddr, "1000000000")
	aliceToken := app.token(t, aliceAddr)

	resp := app.do(t, http.MethodPost, "/api/v1/staking/stake", aliceToken, `{"amount":"1000"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	app.clock.Advance(30 * time.Minute)
	resp2 := app.do(t, http.MethodPost, "/api/v1/staking/unstake", aliceToken, `{"amount":"1000"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp2.StatusCode)
	assert.Equal(t, "LED_005", decodeErrorCode(t, resp2))

	// The rejected unstake left the position untouched.
	pos, err := app.stakingRepo.Position(context.Background(), aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, "1000", pos.StakedAmount.Dec())
	app.assertConservation(t)
}

// TestIntegration_RewardProportionality: two accounts staking at the same
// instant and rate accrue in proportion to their stakes.
func TestIntegration_RewardProportionality(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.mint(t, aliceAddr, "1000000000")
	app.mint(t, bobAddr, "2000000000")
	aliceToken := app.token(t, aliceAddr)
	bobToken := app.token(t, bobAddr)

	resp := app.do(t, http.MethodPost, "/api/v1/staking/stake", aliceToken,
		fmt.Sprintf(`{"amount":%q}`, stakeAmount))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp2 := app.do(t, http.MethodPost, "/api/v1/staking/stake", bobToken, `{"amount":"1261440000"}`)
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	resp2.Body.Close()

	app.clock.Advance(time.Hour)

	respA := app.do(t, http.MethodGet, "/api/v1/staking/position", aliceToken, "")
	require.Equal(t, http.StatusOK, respA.StatusCode)
	posA := decodeData(t, respA)
	respB := app.do(t, http.MethodGet, "/api/v1/staking/position", bobToken, "")
	require.Equal(t, http.StatusOK, respB.StatusCode)
	posB := decodeData(t, respB)

	assert.Equal(t, accruedPerHour, posA["pending_reward"])
	assert.Equal(t, "7200", posB["pending_reward"], "double the stake accrues double the reward")
}

func TestIntegration_ClaimRewards(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.mint(t, aliceAddr, "1000000000")
	aliceToken := app.token(t, aliceAddr)

	resp := app.do(t, http.MethodPost, "/api/v1/staking/stake", aliceToken,
		fmt.Sprintf(`{"amount":%q}`, stakeAmount))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	app.clock.Advance(time.Hour)
	resp2 := app.do(t, http.MethodPost, "/api/v1/staking/claim", aliceToken, "")
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	receipt := decodeData(t, resp2)
	assert.Equal(t, accruedPerHour, receipt["reward_computed"])
	assert.Equal(t, true, receipt["reward_minted"])

	// The claim reset the accrual clock; nothing pending right after.
	resp3 := app.do(t, http.MethodPost, "/api/v1/staking/claim", aliceToken, "")
	assert.Equal(t, http.StatusBadRequest, resp3.StatusCode)
	assert.Equal(t, "LED_002", decodeErrorCode(t, resp3))

	app.assertConservation(t)
}

// TestIntegration_RewardForfeitedAtCap pins the settlement behavior at the
// supply ceiling: the operation succeeds, the reward is computed and
// reported, but nothing is minted and the accrual is discarded.
func TestIntegration_RewardForfeitedAtCap(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.mint(t, aliceAddr, "1000000000")
	aliceToken := app.token(t, aliceAddr)

	resp := app.do(t, http.MethodPost, "/api/v1/staking/stake", aliceToken,
		fmt.Sprintf(`{"amount":%q}`, stakeAmount))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Pin the cap at the circulating supply so no reward can fit.
	resp2 := app.do(t, http.MethodPut, "/api/v1/supply/max", app.token(t, adminAddr),
		`{"max_supply":"1000000000"}`)
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	resp2.Body.Close()

	app.clock.Advance(time.Hour)
	resp3 := app.do(t, http.MethodPost, "/api/v1/staking/claim", aliceToken, "")
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	receipt := decodeData(t, resp3)
	assert.Equal(t, accruedPerHour, receipt["reward_computed"])
	assert.Equal(t, false, receipt["reward_minted"])

	// Supply untouched, banked reward discarded.
	supply, err := app.supplyRepo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1000000000", supply.TotalSupply.Dec())

	resp4 := app.do(t, http.MethodGet, "/api/v1/staking/position", aliceToken, "")
	require.Equal(t, http.StatusOK, resp4.StatusCode)
	pos := decodeData(t, resp4)
	assert.Equal(t, "0", pos["banked_reward"])
	assert.Equal(t, "0", pos["pending_reward"])

	app.assertConservation(t)
}

func TestIntegration_PauseBlocksStaking(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.mint(t, aliceAddr, "1000000")
	aliceToken := app.token(t, aliceAddr)
	adminToken := app.token(t, adminAddr)

	resp := app.do(t, http.MethodPut, "/api/v1/admin/pause", adminToken, `{"operations_allowed":false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp2 := app.do(t, http.MethodPost, "/api/v1/staking/stake", aliceToken, `{"amount":"1000"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp2.StatusCode)
	assert.Equal(t, "LED_007", decodeErrorCode(t, resp2))

	// Admin operations stay available while paused, so the gate can be lifted.
	resp3 := app.do(t, http.MethodPut, "/api/v1/admin/pause", adminToken, `{"operations_allowed":true}`)
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	resp3.Body.Close()

	resp4 := app.do(t, http.MethodPost, "/api/v1/staking/stake", aliceToken, `{"amount":"1000"}`)
	assert.Equal(t, http.StatusOK, resp4.StatusCode)
	resp4.Body.Close()
}

func TestIntegration_SetupNeverRegresses(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	ctx := context.Background()

	// Both setups already ran in newTestApp.
	err := app.upgradeSvc.Setup(ctx, 2)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INIT_001", appErr.Code)

	err = app.upgradeSvc.Setup(ctx, 1)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INIT_002", appErr.Code)

	resp := app.do(t, http.MethodGet, "/api/v1/admin/schema-version", app.token(t, adminAddr), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, float64(2), data["version"])
}

func TestIntegration_AdminRoleManagement(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	adminToken := app.token(t, adminAddr)
	aliceToken := app.token(t, aliceAddr)

	// Non-admin is rejected against stored roles.
	resp := app.do(t, http.MethodPut, "/api/v1/admin/reward-rate", aliceToken, `{"rate_bps":100}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "AUTH_001", decodeErrorCode(t, resp))

	// Grant bob the minter role, then bob can mint.
	resp2 := app.do(t, http.MethodPost, "/api/v1/admin/minters", adminToken,
		fmt.Sprintf(`{"address":%q}`, bobAddr))
	require.Equal(t, http.StatusCreated, resp2.StatusCode)
	resp2.Body.Close()

	body := fmt.Sprintf(`{"to":%q,"amount":"500"}`, aliceAddr)
	resp3 := app.do(t, http.MethodPost, "/api/v1/supply/mint", app.token(t, bobAddr), body)
	assert.Equal(t, http.StatusCreated, resp3.StatusCode)
	resp3.Body.Close()

	// Revoke and the next mint fails.
	resp4 := app.do(t, http.MethodDelete, "/api/v1/admin/minters/"+bobAddr, adminToken, "")
	require.Equal(t, http.StatusOK, resp4.StatusCode)
	resp4.Body.Close()

	resp5 := app.do(t, http.MethodPost, "/api/v1/supply/mint", app.token(t, bobAddr), body)
	assert.Equal(t, http.StatusForbidden, resp5.StatusCode)
	resp5.Body.Close()
}

func TestIntegration_EventLog(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.mint(t, aliceAddr, "1000000")
	aliceToken := app.token(t, aliceAddr)
	resp := app.do(t, http.MethodPost, "/api/v1/staking/stake", aliceToken, `{"amount":"1000"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The setup runs, the mint, and the stake are all on record.
	resp2 := app.do(t, http.MethodGet, "/api/v1/events?kind=stake", "", "")
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	data := decodeData(t, resp2)
	assert.Equal(t, float64(1), data["total"])
	items := data["items"].([]interface{})
	require.Len(t, items, 1)
	ev := items[0].(map[string]interface{})
	assert.Equal(t, "stake", ev["kind"])
	assert.Equal(t, aliceAddr, ev["account"])

	resp3 := app.do(t, http.MethodGet, "/api/v1/events", "", "")
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	all := decodeData(t, resp3)
	assert.GreaterOrEqual(t, all["total"].(float64), float64(4))
}

func TestIntegration_RateLimit(t *testing.T) {
	limited := newRateLimitedApp(t)
	defer limited.close()

	// auth_token allows 10/min per client. Fired fast enough, 25 attempts
	// cross at most one window boundary, so at least one must be rejected.
	rejected := 0
	for i := 0; i < 25; i++ {
		body := fmt.Sprintf(`{"api_key":%q,"address":%q}`, testAPIKey, aliceAddr)
		resp := limited.do(t, http.MethodPost, "/api/v1/auth/token", "", body)
		if resp.StatusCode == http.StatusTooManyRequests {
			rejected++
			assert.NotEmpty(t, resp.Header.Get("Retry-After"))
		}
		resp.Body.Close()
	}
	assert.Greater(t, rejected, 0, "rate limiter should reject bursts over the window limit")
}
