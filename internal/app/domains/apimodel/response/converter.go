package response

import (
	"threadly/console/internal/app/domains/entity/etdelivery"
	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etquote"
	"threadly/console/internal/app/domains/entity/etrider"
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/infra/session"
)

// FromVendorEntity 从领域对象转换为响应 DTO
func FromVendorEntity(v *etvendor.Vendor) *VendorResponse {
	resp := &VendorResponse{
		ID:             v.ID,
		Name:           v.Name,
		BusinessName:   v.BusinessName,
		Email:          v.Email,
		Phone:          v.Phone,
		Status:         string(v.Status),
		CommissionRate: v.CommissionRate.String(),
		AdminRemarks:   v.AdminRemarks,
		SubmittedAt:    v.SubmittedAt,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}

	// 按固定证件顺序输出，响应字段顺序稳定
	resp.Documents = make([]*DocumentResponse, 0, len(v.Documents))
	for _, dt := range etvendor.RequiredDocTypes {
		d, ok := v.Documents[dt]
		if !ok {
			continue
		}
		resp.Documents = append(resp.Documents, &DocumentResponse{
			Type:         string(dt),
			Status:       string(d.Status),
			FileName:     d.FileName,
			FileURL:      d.FileURL,
			AdminRemarks: d.AdminRemarks,
			UploadedAt:   d.UploadedAt,
		})
	}
	return resp
}

// FromVendorEntities 批量转换
func FromVendorEntities(vendors []*etvendor.Vendor) []*VendorResponse {
	out := make([]*VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, FromVendorEntity(v))
	}
	return out
}

// FromRiderEntity 从领域对象转换为响应 DTO
func FromRiderEntity(r *etrider.Rider) *RiderResponse {
	resp := &RiderResponse{
		ID:           r.ID,
		Name:         r.Name,
		Phone:        r.Phone,
		VehiclePlate: r.VehiclePlate,
		Status:       string(r.Status),
		AdminRemarks: r.AdminRemarks,
		SubmittedAt:  r.SubmittedAt,
	}

	resp.Documents = make([]*DocumentResponse, 0, len(r.Documents))
	for _, dt := range etrider.RequiredDocTypes {
		d, ok := r.Documents[dt]
		if !ok {
			continue
		}
		resp.Documents = append(resp.Documents, &DocumentResponse{
			Type:         string(dt),
			Status:       string(d.Status),
			FileName:     d.FileName,
			FileURL:      d.FileURL,
			AdminRemarks: d.AdminRemarks,
			UploadedAt:   d.UploadedAt,
		})
	}
	return resp
}

// FromRiderEntities 批量转换
func FromRiderEntities(riders []*etrider.Rider) []*RiderResponse {
	out := make([]*RiderResponse, 0, len(riders))
	for _, r := range riders {
		out = append(out, FromRiderEntity(r))
	}
	return out
}

// FromOrderEntity 从领域对象转换为响应 DTO
func FromOrderEntity(o *etorder.ProductionOrder) *OrderResponse {
	return &OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		VendorID:      o.VendorID,
		VendorName:    o.VendorName,
		Stage:         string(o.Stage),
		StageProgress: o.StageProgress(),
		Quantity:      o.Quantity,
		SizeBreakup:   o.SizeBreakup,
		ProductType:   o.ProductType,
		Customization: o.Customization,
		Deadline:      o.Deadline,
		Notes:         o.Notes,
		Photos:        o.Photos,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// FromOrderEntities 批量转换
func FromOrderEntities(orders []*etorder.ProductionOrder) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrderEntity(o))
	}
	return out
}

// FromQuotationEntity 从领域对象转换为响应 DTO
func FromQuotationEntity(q *etquote.Quotation) *QuotationResponse {
	return &QuotationResponse{
		ID:             q.ID,
		OrderID:        q.OrderID,
		VendorID:       q.VendorID,
		VendorName:     q.VendorName,
		Amount:         q.Amount.String(),
		CommissionRate: q.CommissionRate.String(),
		Status:         string(q.Status),
		Remarks:        q.Remarks,
		SubmittedAt:    q.SubmittedAt,
		DecidedAt:      q.DecidedAt,
	}
}

// FromQuotationEntities 批量转换
func FromQuotationEntities(quotes []*etquote.Quotation) []*QuotationResponse {
	out := make([]*QuotationResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuotationEntity(q))
	}
	return out
}

// FromDeliveryEntity 从领域对象转换为响应 DTO
func FromDeliveryEntity(d *etdelivery.Delivery) *DeliveryResponse {
	resp := &DeliveryResponse{
		ID:               d.ID,
		OrderID:          d.OrderID,
		RiderID:          d.RiderID,
		Status:           string(d.Status),
		PickupAddress:    d.PickupAddress,
		DropAddress:      d.DropAddress,
		CustomerName:     d.CustomerName,
		CustomerPhone:    d.CustomerPhone,
		PickupProofURL:   d.PickupProofURL,
		DeliveryProofURL: d.DeliveryProofURL,
		AssignedAt:       d.AssignedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if d.Location != nil {
		resp.Location = &LocationResponse{
			Lat:        d.Location.Lat,
			Lng:        d.Location.Lng,
			RecordedAt: d.Location.RecordedAt,
		}
	}
	return resp
}

// FromDeliveryEntities 批量转换
func FromDeliveryEntities(deliveries []*etdelivery.Delivery) []*DeliveryResponse {
	out := make([]*DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, FromDeliveryEntity(d))
	}
	return out
}

// FromSession 从会话转换为登录态响应
func FromSession(sessionID string, sess *session.Session) *SessionResponse {
	return &SessionResponse{
		SessionID: sessionID,
		UserID:    sess.UserID,
		Username:  sess.Username,
		Role:      sess.Role,
		Token:     sess.Token,
	}
}
