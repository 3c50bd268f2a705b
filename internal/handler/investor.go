package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"investor-commitments/internal/service"
	"investor-commitments/internal/util"

	"github.com/gin-gonic/gin"
)

// InvestorHandler serves the investor read endpoints.
type InvestorHandler struct {
	Service *service.InvestorService
}

func NewInvestorHandler(svc *service.InvestorService) *InvestorHandler {
	return &InvestorHandler{Service: svc}
}

// ListInvestors returns all investors with their commitment totals.
func (h *InvestorHandler) ListInvestors(c *gin.Context) {
	investors, err := h.Service.ListInvestors()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list investors")
		return
	}
	util.Success(c, util.Response{
		"investors": investors,
	})
}

// ListCommitments returns one investor's commitments, optionally filtered
// by the asset_class query parameter (exact match). The service reports an
// empty result as an empty slice; this boundary turns that into a 404.
func (h *InvestorHandler) ListCommitments(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid investor id")
		return
	}
	assetClass := c.Query("asset_class")

	commitments, err := h.Service.ListCommitments(uint(id), assetClass)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list commitments")
		return
	}
	if len(commitments) == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound,
			fmt.Sprintf("no commitments found for investor %d", id))
		return
	}

	util.Success(c, util.Response{
		"commitments": commitments,
	})
}
