package admin

import (
	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/domains/apimodel/request"
	"threadly/console/internal/app/domains/apimodel/response"
	"threadly/console/internal/app/pkg/ginx"
)

// ListQuotations 报价单列表接口
// GET /api/admin/quotation-submissions?search=&status=
func (h *AdminHandler) ListQuotations(c *gin.Context) {
	var req request.ListFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	quotes, err := h.quotation.List(c.Request.Context(), req.ToFilterState())
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromQuotationEntities(quotes))
}

// ApproveQuotation 批准报价接口，上游失败时错误信息原样返回
// POST /api/admin/quotation-submissions/:id/approve
func (h *AdminHandler) ApproveQuotation(c *gin.Context) {
	quotationID := c.Param("id")
	if quotationID == "" {
		ginx.BadRequest(c, "quotation id required")
		return
	}

	if err := h.quotation.Approve(c.Request.Context(), quotationID); err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}

// RejectQuotation 驳回报价接口
// POST /api/admin/quotation-submissions/:id/reject
func (h *AdminHandler) RejectQuotation(c *gin.Context) {
	quotationID := c.Param("id")
	if quotationID == "" {
		ginx.BadRequest(c, "quotation id required")
		return
	}

	var req request.RejectQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	if err := h.quotation.Reject(c.Request.Context(), quotationID, req.Remarks); err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}
