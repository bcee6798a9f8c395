package etrider

import (
	"errors"
	"time"

	"threadly/console/internal/app/domains/entity/etstatus"
)

// 错误定义
var (
	ErrInvalidRiderID    = errors.New("rider ID cannot be empty")
	ErrInvalidTransition = errors.New("invalid verification status transition")
)

// DocType 骑手证件类型
type DocType string

const (
	DocTypeDrivingLicense DocType = "driving_license"
	DocTypeVehicleRC      DocType = "vehicle_rc"
	DocTypeAadhaar        DocType = "aadhaar_card"
)

// RequiredDocTypes 审核前必须上传的证件
var RequiredDocTypes = []DocType{DocTypeDrivingLicense, DocTypeVehicleRC, DocTypeAadhaar}

// DocumentRecord 证件记录
type DocumentRecord struct {
	Status       etstatus.DocumentStatus
	FileName     string
	FileURL      string
	AdminRemarks string
	UploadedAt   time.Time
}

// Rider 骑手聚合根（领域对象）
type Rider struct {
	ID           string
	Name         string
	Phone        string
	VehiclePlate string
	Status       etstatus.DocumentStatus // 整体认证状态
	Documents    map[DocType]*DocumentRecord
	SubmittedAt  time.Time
	AdminRemarks string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewRider 创建骑手（工厂方法）
func NewRider(id, name, phone string) (*Rider, error) {
	if id == "" {
		return nil, ErrInvalidRiderID
	}

	return &Rider{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Status:    etstatus.DocStatusNotSubmitted,
		Documents: make(map[DocType]*DocumentRecord),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// CanReview 审核前的状态校验，不修改聚合
func (r *Rider) CanReview(approve bool) error {
	target := etstatus.DocStatusApproved
	if !approve {
		target = etstatus.DocStatusRejected
	}
	if !etstatus.CanTransition(r.Status, target) {
		return ErrInvalidTransition
	}
	return nil
}

// Review 管理员整体审核（领域行为）
// 通过 -> approved；驳回 -> rejected，允许之后重新提交
func (r *Rider) Review(approve bool, remarks string) error {
	if err := r.CanReview(approve); err != nil {
		return err
	}

	target := etstatus.DocStatusApproved
	if !approve {
		target = etstatus.DocStatusRejected
	}

	r.Status = target
	r.AdminRemarks = remarks
	r.UpdatedAt = time.Now()
	return nil
}

// Verified 骑手是否已通过认证
func (r *Rider) Verified() bool {
	return r.Status == etstatus.DocStatusApproved
}
