package handler

import (
	"net/http"

	"casino-ledger/internal/model"

	"github.com/gin-gonic/gin"
)

// PlaceBet
// @Summary Place and settle a wager
// @Description Runs the full settlement pipeline for a wager with a known game outcome
// @Tags bets
// @Accept json
// @Produce json
// @Param Source-Type header string true "Submitting system" Enums(game, server)
// @Param bet body model.BetRequest true "Wager and outcome"
// @Success 201 {object} model.SettlementResult "Settled"
// @Success 202 {object} model.SettlementResult "Partially settled, reconciliation required"
// @Failure 400 {object} model.ErrorResponse "Rejected"
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Router /bets [post]
func (h *Handler) PlaceBet(c *gin.Context) {
	origin, err := model.ParseBetOrigin(c.GetHeader("Source-Type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid Source-Type header",
			Code:  "INVALID_SOURCE_TYPE",
		})
		return
	}

	var req model.BetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	if req.Wager.PlayerID == 0 {
		req.Wager.PlayerID = c.GetInt64("player_id")
	}
	if req.Wager.SessionID == "" {
		req.Wager.SessionID = c.GetString("session_id")
	}

	result, err := h.settlementService.PlaceWager(c.Request.Context(), &req.Wager, &req.Outcome)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Info().
		Str("origin", origin.String()).
		Str("bet_id", result.BetID).
		Str("status", string(result.Status)).
		Msg("bet processed")

	statusCode := http.StatusCreated
	if result.Status == model.SettlementPartial {
		// Money moved but part of the pipeline did not complete; the caller
		// must see the committed state and the distinct status.
		statusCode = http.StatusAccepted
	}
	c.JSON(statusCode, result)
}
