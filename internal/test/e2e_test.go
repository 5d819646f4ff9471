package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"casino-ledger/internal/config"
	"casino-ledger/internal/database"
	"casino-ledger/internal/handler"
	"casino-ledger/internal/jackpot"
	"casino-ledger/internal/ledger"
	"casino-ledger/internal/loyalty"
	"casino-ledger/internal/model"
	"casino-ledger/internal/notify"
	"casino-ledger/internal/repository/postgres"
	"casino-ledger/internal/revenue"
	"casino-ledger/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPool *pgxpool.Pool
	testCfg  *config.Config
)

const testPlayerID = 4

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	testCfg = cfg

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		fmt.Printf("failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	testPool = pool
	os.Exit(m.Run())
}

// setupE2E wipes the test player's state and wires a full handler stack
// against the test database. Redis-backed collaborators are wired against the
// configured address; when redis is absent those stages degrade best-effort
// and settlements still complete.
func setupE2E(t *testing.T) *handler.Handler {
	if testPool == nil {
		t.Skip("Database connection not available")
	}

	ctx := context.Background()
	for _, table := range []string{"transactions", "bonus_grants", "balances"} {
		_, err := testPool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE player_id = $1", table), testPlayerID)
		require.NoError(t, err)
	}

	logger := zerolog.Nop()

	balanceRepo := postgres.NewBalanceRepository(testPool)
	grantRepo := postgres.NewGrantRepository(testPool)
	transactionRepo := postgres.NewTransactionRepository(testPool)
	jackpotRepo := postgres.NewJackpotRepository(testPool)
	revenueRepo := postgres.NewRevenueRepository(testPool)
	txManager := postgres.NewTransactionManager(testPool)

	rdb := redis.NewClient(&redis.Options{Addr: testCfg.Redis.Addr})

	ldg := ledger.New(txManager, balanceRepo, logger)
	wageringManager := service.NewWageringManager(ldg, grantRepo, transactionRepo, testCfg.Wagering, logger)
	allocator := service.NewBonusAllocator(grantRepo, logger)
	validator := service.NewLimitsValidator(transactionRepo, testCfg.Limits)
	jackpotService := jackpot.NewService(jackpotRepo, testCfg.Jackpot, logger)
	loyaltyService := loyalty.NewService(rdb, testCfg.Loyalty, logger)
	revenueService := revenue.NewService(revenueRepo, logger)
	notifier := notify.NewRedisPublisher(rdb, logger)

	settlementService := service.NewSettlementOrchestrator(
		ldg, wageringManager, allocator, validator,
		jackpotService, loyaltyService, revenueService, notifier,
		transactionRepo, time.Second, logger,
	)
	walletService := service.NewWalletService(ldg, wageringManager, grantRepo, transactionRepo, notifier, testCfg.Wagering, logger)

	return handler.NewHandler(settlementService, walletService, jackpotService, nil, testCfg.Auth, logger)
}

func authHeader(t *testing.T) string {
	t.Helper()
	claims := &handler.SessionClaims{
		PlayerID: testPlayerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testCfg.Auth.JWTSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Source-Type", "game")
	req.Header.Set("Authorization", authHeader(t))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test_DepositWagerWithdrawFlow walks the full lifecycle: deposit, clear the
// deposit wagering requirement by betting, then withdraw the remainder.
func Test_DepositWagerWithdrawFlow(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	// Deposit 100.00
	w := doJSON(t, router, "POST", "/api/v1/wallet/deposits",
		model.DepositRequest{PlayerID: testPlayerID, Amount: 10000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Withdrawing before wagering is refused.
	w = doJSON(t, router, "POST", "/api/v1/wallet/withdrawals",
		model.WithdrawalRequest{PlayerID: testPlayerID, Amount: 5000})
	assert.Equal(t, http.StatusConflict, w.Code)
	var errResp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &errResp)
	assert.Equal(t, "WAGERING_INCOMPLETE", errResp.Code)

	// One bet for the full deposit clears the requirement.
	w = doJSON(t, router, "POST", "/api/v1/bets", model.BetRequest{
		Wager:   model.WagerRequest{PlayerID: testPlayerID, GameID: "slots-1", WagerAmount: 10000},
		Outcome: model.GameOutcome{WinAmount: 5000},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var result model.SettlementResult
	json.Unmarshal(w.Body.Bytes(), &result)
	assert.Equal(t, model.SettlementSettled, result.Status)
	assert.Equal(t, int64(5000), result.RealBalance)

	// Now the withdrawal goes through.
	w = doJSON(t, router, "POST", "/api/v1/wallet/withdrawals",
		model.WithdrawalRequest{PlayerID: testPlayerID, Amount: 5000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var wallet model.WalletResponse
	json.Unmarshal(w.Body.Bytes(), &wallet)
	assert.Zero(t, wallet.Balance.RealBalance)
}

// Test_ConcurrentBets_SingleStakeFits verifies:
// - Concurrent bets against one balance never oversell it
// - Exactly one stake fits; the rest are cleanly rejected
// - No 500 errors occur
// - All goroutines start simultaneously via barrier channel
func Test_ConcurrentBets_SingleStakeFits(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	const numRequests = 10

	w := doJSON(t, router, "POST", "/api/v1/wallet/deposits",
		model.DepositRequest{PlayerID: testPlayerID, Amount: 1000})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := authHeader(t)
	reqBody, err := json.Marshal(model.BetRequest{
		Wager:   model.WagerRequest{PlayerID: testPlayerID, GameID: "slots-1", WagerAmount: 600},
		Outcome: model.GameOutcome{WinAmount: 0},
	})
	require.NoError(t, err)

	// Channel to synchronize goroutine start
	barrier := make(chan struct{})

	type result struct {
		statusCode int
		errCode    string
	}
	results := make(chan result, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)

	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()

			// Wait for barrier to open
			<-barrier

			req, _ := http.NewRequest("POST", "/api/v1/bets", bytes.NewBuffer(reqBody))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Source-Type", "game")
			req.Header.Set("Authorization", token)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			var errResp model.ErrorResponse
			json.Unmarshal(w.Body.Bytes(), &errResp)

			results <- result{statusCode: w.Code, errCode: errResp.Code}
		}()
	}

	// All goroutines start simultaneously
	close(barrier)

	wg.Wait()
	close(results)

	var settled, rejected, unexpected int
	for res := range results {
		assert.NotEqual(t, http.StatusInternalServerError, res.statusCode, "No 500 errors")

		switch {
		case res.statusCode == http.StatusCreated:
			settled++
		case res.statusCode == http.StatusBadRequest && res.errCode == "INSUFFICIENT_FUNDS":
			rejected++
		default:
			unexpected++
			t.Logf("Unexpected response: status=%d, code=%s", res.statusCode, res.errCode)
		}
	}

	assert.Equal(t, 1, settled, "Exactly one stake fits the balance")
	assert.Equal(t, numRequests-1, rejected, "All other bets are rejected for insufficient funds")
	assert.Equal(t, 0, unexpected, "No unexpected responses")

	var realBalance int64
	err = testPool.QueryRow(context.Background(),
		"SELECT real_balance FROM balances WHERE player_id = $1", testPlayerID).Scan(&realBalance)
	require.NoError(t, err)
	assert.Equal(t, int64(400), realBalance, "Balance debited exactly once")
}

// Test_BonusLifecycle verifies grant, bonus-funded betting and the audit
// trail it leaves behind.
func Test_BonusLifecycle(t *testing.T) {
	h := setupE2E(t)
	router := h.SetupRoutes()

	w := doJSON(t, router, "POST", "/api/v1/wallet/bonuses",
		model.BonusGrantRequest{PlayerID: testPlayerID, Amount: 200})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var wallet model.WalletResponse
	json.Unmarshal(w.Body.Bytes(), &wallet)
	assert.Equal(t, int64(200), wallet.Balance.BonusBalance)

	// A bonus-funded losing bet consumes the oldest grant.
	w = doJSON(t, router, "POST", "/api/v1/bets", model.BetRequest{
		Wager:   model.WagerRequest{PlayerID: testPlayerID, GameID: "slots-1", WagerAmount: 100, Policy: "bonus"},
		Outcome: model.GameOutcome{WinAmount: 0},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var result model.SettlementResult
	json.Unmarshal(w.Body.Bytes(), &result)
	assert.Equal(t, int64(100), result.BonusDrawn)
	assert.Equal(t, int64(100), result.BonusBalance)

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/v1/players/%d/grants", testPlayerID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var grants []*model.BonusGrant
	json.Unmarshal(w.Body.Bytes(), &grants)
	require.Len(t, grants, 1)
	assert.Equal(t, int64(100), grants[0].RemainingAmount)
	assert.Equal(t, int64(100), grants[0].WageredAmount)

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/v1/players/%d/transactions", testPlayerID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list model.TransactionListResponse
	json.Unmarshal(w.Body.Bytes(), &list)
	require.GreaterOrEqual(t, list.Total, 2)
	assert.Equal(t, model.TypeBet, list.Transactions[0].Type)
	assert.Equal(t, int64(-100), list.Transactions[0].Amount)
}
