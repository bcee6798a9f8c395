package rider

import (
	"io"

	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/domains/apimodel/request"
	"threadly/console/internal/app/domains/apimodel/response"
	"threadly/console/internal/app/domains/entity/etdelivery"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/pkg/ginx"
)

// Assigned 已指派配送单列表接口
// GET /api/rider/deliveries/assigned?search=&status=
func (h *RiderHandler) Assigned(c *gin.Context) {
	var req request.ListFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		ginx.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	riderID, _ := ctx.Value("user_id").(string)

	deliveries, err := h.delivery.Assigned(ctx, riderID, req.ToFilterState())
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, response.FromDeliveryEntities(deliveries))
}

// UpdateStatus 更新配送状态接口，流水线只允许前进一步
// PUT /api/rider/delivery/:id/status
func (h *RiderHandler) UpdateStatus(c *gin.Context) {
	deliveryID := c.Param("id")
	if deliveryID == "" {
		ginx.BadRequest(c, "delivery id required")
		return
	}

	var req request.UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	err := h.delivery.UpdateStatus(c.Request.Context(), deliveryID, etstatus.DeliveryStatus(req.Status))
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}

// UpdateLocation 上报位置接口
// PUT /api/rider/delivery/:id/location
func (h *RiderHandler) UpdateLocation(c *gin.Context) {
	deliveryID := c.Param("id")
	if deliveryID == "" {
		ginx.BadRequest(c, "delivery id required")
		return
	}

	var req request.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	if err := h.delivery.UpdateLocation(c.Request.Context(), deliveryID, req.Lat, req.Lng); err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, nil)
}

// UploadPickupProof 上传取货凭证接口（multipart，字段 proof）
// POST /api/rider/delivery/:id/pickup-proof
func (h *RiderHandler) UploadPickupProof(c *gin.Context) {
	h.uploadProof(c, etdelivery.ProofPickup)
}

// UploadDeliveryProof 上传送达凭证接口（multipart，字段 proof）
// POST /api/rider/delivery/:id/delivery-proof
func (h *RiderHandler) UploadDeliveryProof(c *gin.Context) {
	h.uploadProof(c, etdelivery.ProofDelivery)
}

func (h *RiderHandler) uploadProof(c *gin.Context, kind etdelivery.ProofKind) {
	deliveryID := c.Param("id")
	if deliveryID == "" {
		ginx.BadRequest(c, "delivery id required")
		return
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		ginx.BadRequest(c, "proof file required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ginx.BadRequest(c, "cannot read proof file")
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize+1))
	if err != nil {
		ginx.BadRequest(c, "cannot read proof file")
		return
	}

	proofURL, err := h.delivery.UploadProof(c.Request.Context(), deliveryID, kind,
		fileHeader.Filename, fileHeader.Size, payload)
	if err != nil {
		ginx.FromError(c, err)
		return
	}

	ginx.Success(c, &response.UploadResponse{FileURL: proofURL})
}
