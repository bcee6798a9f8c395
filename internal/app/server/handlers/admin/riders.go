package admin

import (
	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/domains/apimodel/request"
	"threadly/console/internal/app/domains/apimodel/response"
	"threadly/console/internal/app/pkg/ginx"
)

// ListRiders 骑手列表接口
// GET /api/admin/riders?search=&status=
func (h *AdminHandler) ListRiders(c *gin.Context) {
	var req request.ListFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	riders, err := h.verification.Riders(c.Request.Context(), req.ToFilterState())
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromRiderEntities(riders))
}

// ListVerifiedRiders 已认证骑手列表接口
// GET /api/admin/verified-riders
func (h *AdminHandler) ListVerifiedRiders(c *gin.Context) {
	var req request.ListFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	riders, err := h.verification.VerifiedRiders(c.Request.Context(), req.ToFilterState())
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromRiderEntities(riders))
}

// VerifyRider 审核骑手接口
// PUT /api/admin/riders/:id/verify
func (h *AdminHandler) VerifyRider(c *gin.Context) {
	riderID := c.Param("id")
	if riderID == "" {
		ginx.BadRequest(c, "rider id required")
		return
	}

	var req request.VerifyRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.verification.ReviewRider(c.Request.Context(), riderID, req.Approve, req.Remarks); err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}
