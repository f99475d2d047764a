// Package handler provides the HTTP handlers of the symbollist feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_dashboard/internal/feature/symbollist/domain/entity"
	"crypto_dashboard/internal/feature/symbollist/transport/http/dto"
	"crypto_dashboard/internal/platform/http/response"
)

// SymbolUsecase is the symbol lookup the handler depends on.
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler serves the tracked symbol list.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a SymbolHandler.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List returns the active symbols.
//
// GET /api/symbols
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{Code: s.Code, BaseAsset: s.BaseAsset, QuoteAsset: s.QuoteAsset})
	}
	c.JSON(http.StatusOK, dto.SymbolListResponse{Success: true, Data: out, Total: len(out)})
}
