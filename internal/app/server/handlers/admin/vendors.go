package admin

import (
	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/domains/apimodel/request"
	"threadly/console/internal/app/domains/apimodel/response"
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/pkg/ginx"
)

// ListVendors 商户列表接口
// GET /api/admin/vendors?search=&status=
func (h *AdminHandler) ListVendors(c *gin.Context) {
	var req request.ListFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	vendors, err := h.verification.Vendors(c.Request.Context(), req.ToFilterState())
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromVendorEntities(vendors))
}

// ListRejectedVendors 被驳回商户列表接口
// GET /api/admin/rejected-vendors
func (h *AdminHandler) ListRejectedVendors(c *gin.Context) {
	var req request.ListFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	vendors, err := h.verification.RejectedVendors(c.Request.Context(), req.ToFilterState())
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromVendorEntities(vendors))
}

// ApproveVendorDocument 批准商户证件接口
// POST /api/admin/vendors/:id/documents/approve
func (h *AdminHandler) ApproveVendorDocument(c *gin.Context) {
	h.reviewVendorDocument(c, true)
}

// RejectVendorDocument 驳回商户证件接口
// POST /api/admin/vendors/:id/documents/reject
func (h *AdminHandler) RejectVendorDocument(c *gin.Context) {
	h.reviewVendorDocument(c, false)
}

func (h *AdminHandler) reviewVendorDocument(c *gin.Context, approve bool) {
	vendorID := c.Param("id")
	if vendorID == "" {
		ginx.BadRequest(c, "vendor id required")
		return
	}

	var req request.ReviewDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	err := h.verification.ReviewVendorDocument(c.Request.Context(), vendorID, etvendor.DocType(req.DocType), approve, req.Remarks)
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}
