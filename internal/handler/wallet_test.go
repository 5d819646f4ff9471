package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"casino-ledger/internal/model"
	mocks "casino-ledger/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newWalletRouter(t *testing.T) (*mocks.WalletService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	mockSvc := mocks.NewWalletService(t)
	h := &Handler{walletService: mockSvc, logger: zerolog.Nop()}

	router := gin.New()
	router.POST("/wallet/deposits", h.Deposit)
	router.POST("/wallet/withdrawals", h.Withdraw)
	router.POST("/wallet/bonuses", h.GrantBonus)
	router.GET("/players/:id/balance", h.GetBalance)
	router.GET("/players/:id/transactions", h.GetTransactions)
	return mockSvc, router
}

func TestHandler_Deposit_Success(t *testing.T) {
	mockSvc, router := newWalletRouter(t)

	mockSvc.On("Deposit", mock.Anything, mock.MatchedBy(func(req *model.DepositRequest) bool {
		return req.PlayerID == 1 && req.Amount == 1000
	})).Return(&model.WalletResponse{
		Balance: &model.BalanceRecord{PlayerID: 1, RealBalance: 1000, DepositWageringRemaining: 1000},
	}, nil)

	body, _ := json.Marshal(model.DepositRequest{PlayerID: 1, Amount: 1000})
	req, _ := http.NewRequest(http.MethodPost, "/wallet/deposits", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.WalletResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(1000), resp.Balance.RealBalance)
}

func TestHandler_Withdraw_WageringIncomplete(t *testing.T) {
	mockSvc, router := newWalletRouter(t)

	mockSvc.On("Withdraw", mock.Anything, mock.Anything).Return(nil, model.ErrWageringIncomplete)

	body, _ := json.Marshal(model.WithdrawalRequest{PlayerID: 1, Amount: 500})
	req, _ := http.NewRequest(http.MethodPost, "/wallet/withdrawals", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "WAGERING_INCOMPLETE", resp.Code)
}

func TestHandler_GrantBonus_Success(t *testing.T) {
	mockSvc, router := newWalletRouter(t)

	mockSvc.On("GrantBonus", mock.Anything, mock.MatchedBy(func(req *model.BonusGrantRequest) bool {
		return req.PlayerID == 7 && req.Amount == 200 && req.FreeSpins == 10
	})).Return(&model.WalletResponse{
		Balance: &model.BalanceRecord{PlayerID: 7, BonusBalance: 200, BonusWageringRemaining: 4000, FreeSpinsRemaining: 10},
	}, nil)

	body, _ := json.Marshal(model.BonusGrantRequest{PlayerID: 7, Amount: 200, FreeSpins: 10})
	req, _ := http.NewRequest(http.MethodPost, "/wallet/bonuses", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.WalletResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, int64(200), resp.Balance.BonusBalance)
}

func TestHandler_GetBalance_NotFound(t *testing.T) {
	mockSvc, router := newWalletRouter(t)

	mockSvc.On("GetBalance", mock.Anything, int64(99)).Return(nil, model.ErrPlayerNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/players/99/balance", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "PLAYER_NOT_FOUND", resp.Code)
}

func TestHandler_GetBalance_BadID(t *testing.T) {
	_, router := newWalletRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/players/abc/balance", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetTransactions_Paginated(t *testing.T) {
	mockSvc, router := newWalletRouter(t)

	mockSvc.On("GetTransactions", mock.Anything, int64(1), 2, 0).Return([]*model.TransactionRecord{
		{ID: "t2", PlayerID: 1, Type: model.TypeWin, Amount: 300},
		{ID: "t1", PlayerID: 1, Type: model.TypeBet, Amount: -400},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/players/1/transactions?limit=2", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.TransactionListResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp.Transactions, 2)
	assert.Equal(t, 2, resp.Limit)
}
