package order

import (
	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/domains/apimodel/request"
	"threadly/console/internal/app/domains/apimodel/response"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/services/svproduction"
	"threadly/console/internal/app/pkg/ginx"
)

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	production *svproduction.ProductionService
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(production *svproduction.ProductionService) *OrderHandler {
	return &OrderHandler{
		production: production,
	}
}

// Submit 提交生产订单接口，尺码合计不等于总数时直接拒绝
// POST /api/orders
func (h *OrderHandler) Submit(c *gin.Context) {
	var req request.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	created, err := h.production.SubmitOrder(c.Request.Context(),
		req.CustomerName, req.ProductType, req.Customization, req.Notes,
		req.Quantity, req.SizeBreakup)
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(created))
}

// AdvanceStage 推进生产阶段接口，只允许前进一步
// PUT /api/orders/:id/status
func (h *OrderHandler) AdvanceStage(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order id required")
		return
	}

	var req request.AdvanceStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	err := h.production.AdvanceStage(c.Request.Context(), orderID, etstatus.ProductionStage(req.Stage))
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}
