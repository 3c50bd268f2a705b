package handler

import (
	"net/http"

	"investor-commitments/internal/service"
	"investor-commitments/internal/util"

	"github.com/gin-gonic/gin"
)

// AssetClassHandler serves the asset class listing.
type AssetClassHandler struct {
	Service *service.InvestorService
}

func NewAssetClassHandler(svc *service.InvestorService) *AssetClassHandler {
	return &AssetClassHandler{Service: svc}
}

// ListAssetClasses returns the distinct asset classes, sorted ascending.
func (h *AssetClassHandler) ListAssetClasses(c *gin.Context) {
	assetClasses, err := h.Service.ListAssetClasses()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list asset classes")
		return
	}
	util.Success(c, util.Response{
		"asset_classes": assetClasses,
	})
}
