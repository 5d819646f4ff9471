package handler

import (
	"net/http"
	"strconv"

	"casino-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// Deposit
// @Summary Deposit real money
// @Description Credits the real balance and extends the deposit wagering requirement
// @Tags wallet
// @Accept json
// @Produce json
// @Param deposit body model.DepositRequest true "Deposit details"
// @Success 201 {object} model.WalletResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /wallet/deposits [post]
func (h *Handler) Deposit(c *gin.Context) {
	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}
	if req.PlayerID == 0 {
		req.PlayerID = c.GetInt64("player_id")
	}

	resp, err := h.walletService.Deposit(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Withdraw
// @Summary Request a withdrawal
// @Description Debits the real balance; outstanding bonus money and wagering obligations are forfeited
// @Tags wallet
// @Accept json
// @Produce json
// @Param withdrawal body model.WithdrawalRequest true "Withdrawal details"
// @Success 201 {object} model.WalletResponse
// @Failure 400 {object} model.ErrorResponse "Insufficient funds"
// @Failure 409 {object} model.ErrorResponse "Wagering incomplete"
// @Router /wallet/withdrawals [post]
func (h *Handler) Withdraw(c *gin.Context) {
	var req model.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}
	if req.PlayerID == 0 {
		req.PlayerID = c.GetInt64("player_id")
	}

	resp, err := h.walletService.Withdraw(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GrantBonus
// @Summary Grant a bonus
// @Description Creates a bonus grant with its wagering goal and credits the bonus balance
// @Tags wallet
// @Accept json
// @Produce json
// @Param bonus body model.BonusGrantRequest true "Bonus details"
// @Success 201 {object} model.WalletResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /wallet/bonuses [post]
func (h *Handler) GrantBonus(c *gin.Context) {
	var req model.BonusGrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}
	if req.PlayerID == 0 {
		req.PlayerID = c.GetInt64("player_id")
	}

	resp, err := h.walletService.GrantBonus(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// FreeSpinWin
// @Summary Credit a free-spin win
// @Description Credits a free-spin payout to the bonus balance with its own wagering requirement
// @Tags wallet
// @Accept json
// @Produce json
// @Param win body model.FreeSpinWinRequest true "Free-spin win details"
// @Success 201 {object} model.WalletResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /wallet/free-spin-wins [post]
func (h *Handler) FreeSpinWin(c *gin.Context) {
	var req model.FreeSpinWinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}
	if req.PlayerID == 0 {
		req.PlayerID = c.GetInt64("player_id")
	}

	resp, err := h.walletService.FreeSpinWin(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetBalance
// @Summary Get player balance
// @Description Returns both balance pools and the outstanding wagering requirements
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} model.BalanceRecord
// @Failure 404 {object} model.ErrorResponse "Player not found"
// @Router /players/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || playerID <= 0 {
		h.handleError(c, model.ErrPlayerNotFound)
		return
	}

	rec, err := h.walletService.GetBalance(c.Request.Context(), playerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetGrants
// @Summary List player bonus grants
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {array} model.BonusGrant
// @Failure 404 {object} model.ErrorResponse "Player not found"
// @Router /players/{id}/grants [get]
func (h *Handler) GetGrants(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || playerID <= 0 {
		h.handleError(c, model.ErrPlayerNotFound)
		return
	}

	grants, err := h.walletService.GetGrants(c.Request.Context(), playerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, grants)
}

// GetTransactions
// @Summary Get player transaction history
// @Description Returns a paginated list of audit-log records for a player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Failure 404 {object} model.ErrorResponse "Player not found"
// @Router /players/{id}/transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	playerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || playerID <= 0 {
		h.handleError(c, model.ErrPlayerNotFound)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.walletService.GetTransactions(c.Request.Context(), playerID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: transactions,
		Total:        len(transactions),
		Limit:        limit,
		Offset:       offset,
	})
}

// GetJackpots
// @Summary Get progressive jackpot pools
// @Tags jackpots
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /jackpots [get]
func (h *Handler) GetJackpots(c *gin.Context) {
	pools, err := h.jackpotService.Pools(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pools)
}
