package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/domains/apimodel/request"
	"threadly/console/internal/app/pkg/ginx"
	"threadly/console/internal/app/view"
)

// 控制台 HTML 片段接口：前端直接把返回体插入容器节点
// 空数据与过滤后无匹配是两种不同文案，由渲染层区分

// OrdersView 生产订单表格片段
// GET /admin/views/orders?search=&status=
func (h *AdminHandler) OrdersView(c *gin.Context) {
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

	all, _ := h.production.Snapshot().Get()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(view.RenderOrderTable(orders, len(all))))
}

// VendorsView 商户卡片片段
// GET /admin/views/vendors?search=&status=
func (h *AdminHandler) VendorsView(c *gin.Context) {
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

	all, _ := h.verification.VendorSnapshot().Get()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(view.RenderVendorCards(vendors, len(all))))
}

// RidersView 骑手列表片段
// GET /admin/views/riders?search=&status=
func (h *AdminHandler) RidersView(c *gin.Context) {
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

	all, _ := h.verification.RiderSnapshot().Get()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(view.RenderRiderRows(riders, len(all))))
}
