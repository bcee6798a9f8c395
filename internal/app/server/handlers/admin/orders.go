package admin

import (
	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/domains/apimodel/request"
	"threadly/console/internal/app/domains/apimodel/response"
	"threadly/console/internal/app/pkg/ginx"
)

// ListProductionOrders 生产订单列表接口
// GET /api/admin/production-orders?search=&status=
func (h *AdminHandler) ListProductionOrders(c *gin.Context) {
	var req request.ListFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	orders, err := h.production.List(c.Request.Context(), req.ToFilterState())
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntities(orders))
}

// Board 生产看板接口，订单与商户并发拉取
// GET /api/admin/board
func (h *AdminHandler) Board(c *gin.Context) {
	data, err := h.production.Board(c.Request.Context())
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, &response.BoardResponse{
		Orders:  response.FromOrderEntities(data.Orders),
		Vendors: response.FromVendorEntities(data.Vendors),
	})
}

// AssignVendor 指派商户接口
// POST /api/admin/assign-vendor
func (h *AdminHandler) AssignVendor(c *gin.Context) {
	var req request.AssignVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.production.AssignVendor(c.Request.Context(), req.OrderID, req.VendorID); err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}
