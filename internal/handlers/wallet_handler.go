package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyvoyager/internal/models"
	"skyvoyager/internal/services"
)

// WalletResponse wraps the wallet
type WalletResponse struct {
	Wallet models.Wallet `json:"wallet"`
}

// WalletHandler serves the mock wallet.
type WalletHandler struct {
	walletService services.WalletServicer
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletService services.WalletServicer) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// GetWallet returns the balance and the transaction log, newest first.
// @Summary     Get wallet
// @Tags        wallet
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} WalletResponse
// @Router      /wallet [get]
func (h *WalletHandler) GetWallet(c *gin.Context) {
	wallet, err := h.walletService.GetWallet(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, WalletResponse{Wallet: *wallet})
}
