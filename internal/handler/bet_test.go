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

func newBetRouter(t *testing.T) (*Handler, *mocks.SettlementService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	mockSvc := mocks.NewSettlementService(t)
	h := &Handler{settlementService: mockSvc, logger: zerolog.Nop()}

	router := gin.New()
	router.POST("/bets", h.PlaceBet)
	return h, mockSvc, router
}

func TestHandler_PlaceBet_Settled(t *testing.T) {
	_, mockSvc, router := newBetRouter(t)

	mockSvc.On("PlaceWager", mock.Anything, mock.Anything, mock.Anything).Return(&model.SettlementResult{
		BetID:       "01J3ZK3V9",
		Status:      model.SettlementSettled,
		WagerAmount: 1000,
		WinAmount:   250,
	}, nil)

	reqBody := model.BetRequest{
		Wager:   model.WagerRequest{PlayerID: 1, GameID: "slots-1", WagerAmount: 1000},
		Outcome: model.GameOutcome{WinAmount: 250},
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/bets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Source-Type", "game")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.SettlementResult
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, model.SettlementSettled, resp.Status)
	assert.Equal(t, int64(250), resp.WinAmount)
}

func TestHandler_PlaceBet_Partial_Accepted(t *testing.T) {
	_, mockSvc, router := newBetRouter(t)

	mockSvc.On("PlaceWager", mock.Anything, mock.Anything, mock.Anything).Return(&model.SettlementResult{
		BetID:  "01J3ZK3V9",
		Status: model.SettlementPartial,
		Reason: "partial settlement: audit append failed",
	}, nil)

	reqBody := model.BetRequest{
		Wager:   model.WagerRequest{PlayerID: 1, GameID: "slots-1", WagerAmount: 1000},
		Outcome: model.GameOutcome{WinAmount: 0},
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/bets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Source-Type", "game")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp model.SettlementResult
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, model.SettlementPartial, resp.Status)
}

func TestHandler_PlaceBet_InsufficientFunds(t *testing.T) {
	_, mockSvc, router := newBetRouter(t)

	mockSvc.On("PlaceWager", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, model.ErrInsufficientFunds)

	reqBody := model.BetRequest{
		Wager:   model.WagerRequest{PlayerID: 1, GameID: "slots-1", WagerAmount: 1000},
		Outcome: model.GameOutcome{WinAmount: 0},
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/bets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Source-Type", "game")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INSUFFICIENT_FUNDS", resp.Code)
}

func TestHandler_PlaceBet_UnknownOrigin(t *testing.T) {
	_, _, router := newBetRouter(t)

	reqBody := model.BetRequest{
		Wager:   model.WagerRequest{PlayerID: 1, GameID: "slots-1", WagerAmount: 1000},
		Outcome: model.GameOutcome{WinAmount: 0},
	}
	body, _ := json.Marshal(reqBody)

	req, _ := http.NewRequest(http.MethodPost, "/bets", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Source-Type", "payment")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_SOURCE_TYPE", resp.Code)
}

func TestHandler_PlaceBet_InvalidBody(t *testing.T) {
	_, _, router := newBetRouter(t)

	req, _ := http.NewRequest(http.MethodPost, "/bets", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Source-Type", "game")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
}
