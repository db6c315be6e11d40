package handler

import (
	"dashboard/internal/delivery/api/response"
	"dashboard/internal/domain/query"
	"dashboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WalletLedgerHandlerParams holds dependencies for WalletLedgerHandler, injected by Fx.
type WalletLedgerHandlerParams struct {
	fx.In

	WalletLedgerUC usecase.WalletLedgerUsecase
	Pager          query.Pager
}

// WalletLedgerHandler serves the wallet ledger
type WalletLedgerHandler struct {
	walletLedgerUC usecase.WalletLedgerUsecase
	pager          query.Pager
}

// NewWalletLedgerHandler is the constructor for WalletLedgerHandler
func NewWalletLedgerHandler(params WalletLedgerHandlerParams) *WalletLedgerHandler {
	return &WalletLedgerHandler{
		walletLedgerUC: params.WalletLedgerUC,
		pager:          params.Pager,
	}
}

// ListWalletLedger handles GET /api/v1/wallet-ledger
func (h *WalletLedgerHandler) ListWalletLedger(c echo.Context) error {
	page, err := h.walletLedgerUC.ListWalletLedger(c.Request().Context(), listQuery(c, h.pager))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, page)
}
