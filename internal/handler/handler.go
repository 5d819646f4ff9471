package handler

import (
	"errors"
	"net/http"

	"casino-ledger/internal/config"
	"casino-ledger/internal/jackpot"
	"casino-ledger/internal/model"
	"casino-ledger/internal/notify"
	"casino-ledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	settlementService service.SettlementService
	walletService     service.WalletService
	jackpotService    *jackpot.Service
	hub               *notify.Hub
	authCfg           config.AuthConfig
	logger            zerolog.Logger
}

func NewHandler(
	settlementService service.SettlementService,
	walletService service.WalletService,
	jackpotService *jackpot.Service,
	hub *notify.Hub,
	authCfg config.AuthConfig,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		settlementService: settlementService,
		walletService:     walletService,
		jackpotService:    jackpotService,
		hub:               hub,
		authCfg:           authCfg,
		logger:            logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		gin.Recovery(),
	)

	// Swagger and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Realtime push; the token identifies the player.
	router.GET("/ws", AuthMiddleware(h.authCfg.JWTSecret), h.HandleWebSocket)

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(AuthMiddleware(h.authCfg.JWTSecret))

	v1.POST("/bets", h.PlaceBet)

	wallet := v1.Group("/wallet")
	wallet.POST("/deposits", h.Deposit)
	wallet.POST("/withdrawals", h.Withdraw)
	wallet.POST("/bonuses", h.GrantBonus)
	wallet.POST("/free-spin-wins", h.FreeSpinWin)

	players := v1.Group("/players")
	players.GET("/:id/balance", h.GetBalance)
	players.GET("/:id/grants", h.GetGrants)
	players.GET("/:id/transactions", h.GetTransactions)

	v1.GET("/jackpots", h.GetJackpots)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_FUNDS"
	case errors.Is(err, model.ErrValidationFailed):
		status = http.StatusBadRequest
		code = "VALIDATION_FAILED"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidPolicy):
		status = http.StatusBadRequest
		code = "INVALID_POLICY"
	case errors.Is(err, model.ErrWageringIncomplete):
		status = http.StatusConflict
		code = "WAGERING_INCOMPLETE"
		resp.Details = "Deposit wagering requirement must be met before withdrawing"
	case errors.Is(err, model.ErrLedgerConflict):
		status = http.StatusConflict
		code = "LEDGER_CONFLICT"
		resp.Details = "Concurrent balance mutation, retry the request"
	case errors.Is(err, model.ErrPlayerNotFound):
		status = http.StatusNotFound
		code = "PLAYER_NOT_FOUND"
	case errors.Is(err, model.ErrGrantNotFound):
		status = http.StatusNotFound
		code = "GRANT_NOT_FOUND"
	case errors.Is(err, model.ErrTransactionNotFound):
		status = http.StatusNotFound
		code = "TRANSACTION_NOT_FOUND"
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "UNAUTHORIZED"
	}
	resp.Code = code

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("internal server error")
	}

	c.JSON(status, resp)
}
