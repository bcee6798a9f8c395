package svverification

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"threadly/console/internal/app/domains/entity/etrider"
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/domains/repo/rprider"
	"threadly/console/internal/app/domains/repo/rpvendor"
	"threadly/console/internal/app/domains/store"
	"threadly/console/internal/app/infra/notify"
	"threadly/console/internal/app/pkg/errorx"
	"threadly/console/internal/app/pkg/logger"
)

// fileTooLargeMessage 文件超限提示，必须在任何上游调用前返回
const fileTooLargeMessage = "File size must be under 5MB"

// VerificationService 认证服务，负责商户/骑手认证流程编排
// 所有变更成功后丢弃快照并重新回源（不保留乐观状态）
type VerificationService struct {
	vendors       rpvendor.VendorRepository
	riders        rprider.RiderRepository
	pubsub        *notify.PubSub
	notifyChannel string
	maxFileSize   int64

	vendorSnap   *store.Store[*etvendor.Vendor]
	rejectedSnap *store.Store[*etvendor.Vendor]
	riderSnap    *store.Store[*etrider.Rider]
	verifiedSnap *store.Store[*etrider.Rider]

	sf     singleflight.Group
	logger logger.Logger
}

// NewVerificationService 创建认证服务实例
func NewVerificationService(
	vendors rpvendor.VendorRepository,
	riders rprider.RiderRepository,
	pubsub *notify.PubSub,
	notifyChannel string,
	maxFileSize int64,
	log logger.Logger,
) *VerificationService {
	return &VerificationService{
		vendors:       vendors,
		riders:        riders,
		pubsub:        pubsub,
		notifyChannel: notifyChannel,
		maxFileSize:   maxFileSize,
		vendorSnap:    store.New[*etvendor.Vendor](),
		rejectedSnap:  store.New[*etvendor.Vendor](),
		riderSnap:     store.New[*etrider.Rider](),
		verifiedSnap:  store.New[*etrider.Rider](),
		logger:        log,
	}
}

// Vendors 商户列表（回源后按条件过滤）
func (s *VerificationService) Vendors(ctx context.Context, f filter.State) ([]*etvendor.Vendor, error) {
	if err := s.RefreshVendors(ctx); err != nil {
		return nil, err
	}

	items, _ := s.vendorSnap.Get()
	return filterVendors(items, f), nil
}

// RejectedVendors 被驳回的商户列表
func (s *VerificationService) RejectedVendors(ctx context.Context, f filter.State) ([]*etvendor.Vendor, error) {
	// 合并并发刷新，避免重复回源
	_, err, _ := s.sf.Do("rejected-vendors", func() (interface{}, error) {
		items, err := s.vendors.ListRejected(ctx)
		if err != nil {
			return nil, err
		}
		s.rejectedSnap.Set(items)
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := s.rejectedSnap.Get()
	return filterVendors(items, f), nil
}

// RefreshVendors 回源刷新商户快照（并发触发只执行一次）
// 失败时保留上一份快照
func (s *VerificationService) RefreshVendors(ctx context.Context) error {
	_, err, _ := s.sf.Do("vendors", func() (interface{}, error) {
		items, err := s.vendors.List(ctx)
		if err != nil {
			return nil, err
		}
		s.vendorSnap.Set(items)
		return nil, nil
	})
	return err
}

// Riders 待审核骑手列表
func (s *VerificationService) Riders(ctx context.Context, f filter.State) ([]*etrider.Rider, error) {
	if err := s.RefreshRiders(ctx); err != nil {
		return nil, err
	}

	items, _ := s.riderSnap.Get()
	return filterRiders(items, f), nil
}

// VerifiedRiders 已认证骑手列表
func (s *VerificationService) VerifiedRiders(ctx context.Context, f filter.State) ([]*etrider.Rider, error) {
	_, err, _ := s.sf.Do("verified-riders", func() (interface{}, error) {
		items, err := s.riders.ListVerified(ctx)
		if err != nil {
			return nil, err
		}
		s.verifiedSnap.Set(items)
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := s.verifiedSnap.Get()
	return filterRiders(items, f), nil
}

// RefreshRiders 回源刷新骑手快照
func (s *VerificationService) RefreshRiders(ctx context.Context) error {
	_, err, _ := s.sf.Do("riders", func() (interface{}, error) {
		items, err := s.riders.List(ctx)
		if err != nil {
			return nil, err
		}
		s.riderSnap.Set(items)
		return nil, nil
	})
	return err
}

// UploadDocument 上传商户认证证件
// 文件大小校验必须在任何上游调用之前完成
func (s *VerificationService) UploadDocument(ctx context.Context, vendorID string, docType etvendor.DocType, fileName string, size int64, payload []byte, extra map[string]string) (*etvendor.DocumentRecord, error) {
	if !docType.Valid() {
		return nil, errorx.Validation(etvendor.ErrUnknownDocType.Error())
	}
	if size > s.maxFileSize {
		return nil, errorx.Validation(fileTooLargeMessage)
	}

	doc, err := s.vendors.UploadDocument(ctx, vendorID, docType, fileName, payload, extra)
	if err != nil {
		return nil, err
	}

	s.vendorSnap.Clear()
	return doc, nil
}

// SubmitForReview 提交证件审核
func (s *VerificationService) SubmitForReview(ctx context.Context, vendorID string) error {
	if err := s.vendors.SubmitForReview(ctx, vendorID); err != nil {
		return err
	}

	s.vendorSnap.Clear()
	return nil
}

// Status 查询商户认证状态
func (s *VerificationService) Status(ctx context.Context, vendorID string) (*etvendor.Vendor, error) {
	return s.vendors.VerificationStatus(ctx, vendorID)
}

// ReviewVendorDocument 管理员审核商户单个证件
// 先走领域校验（状态必须可转换），再发起上游变更
// 校验不修改快照里的聚合，上游失败后重试不受本地状态影响
func (s *VerificationService) ReviewVendorDocument(ctx context.Context, vendorID string, docType etvendor.DocType, approve bool, remarks string) error {
	if vendor, ok := s.vendorSnap.Find(func(v *etvendor.Vendor) bool { return v.ID == vendorID }); ok {
		if err := vendor.CanReviewDocument(docType, approve); err != nil {
			return errorx.Validation(err.Error())
		}
	}

	if err := s.vendors.ReviewDocument(ctx, vendorID, docType, approve, remarks); err != nil {
		return err
	}

	s.vendorSnap.Clear()
	s.publishChange(ctx, vendorID, "vendor", approve)
	return nil
}

// ReviewRider 管理员审核骑手
// 校验不修改快照里的聚合，上游失败后重试不受本地状态影响
func (s *VerificationService) ReviewRider(ctx context.Context, riderID string, approve bool, remarks string) error {
	if rider, ok := s.riderSnap.Find(func(r *etrider.Rider) bool { return r.ID == riderID }); ok {
		if err := rider.CanReview(approve); err != nil {
			return errorx.Validation(err.Error())
		}
	}

	if err := s.riders.Verify(ctx, riderID, approve, remarks); err != nil {
		return err
	}

	s.riderSnap.Clear()
	s.verifiedSnap.Clear()
	s.publishChange(ctx, riderID, "rider", approve)
	return nil
}

// publishChange 发布认证状态变更通知（失败只记录日志，不影响主流程）
func (s *VerificationService) publishChange(ctx context.Context, userID, role string, approve bool) {
	if s.pubsub == nil {
		return
	}

	status := "approved"
	if !approve {
		status = "rejected"
	}
	notice := &notify.VerificationNotice{
		UserID:    userID,
		Role:      role,
		Status:    status,
		Timestamp: time.Now().Unix(),
	}
	if err := s.pubsub.PublishVerificationChanged(ctx, s.notifyChannel, notice); err != nil {
		s.logger.Warnf(ctx, "[Verification] publish change failed: user=%s, error=%v", userID, err)
	}
}

// VendorSnapshot 商户快照存储（供刷新 Worker 订阅）
func (s *VerificationService) VendorSnapshot() *store.Store[*etvendor.Vendor] {
	return s.vendorSnap
}

// RiderSnapshot 骑手快照存储（供刷新 Worker 订阅）
func (s *VerificationService) RiderSnapshot() *store.Store[*etrider.Rider] {
	return s.riderSnap
}

// filterVendors 按名称/商号/邮箱/手机号子串 + 状态过滤
func filterVendors(items []*etvendor.Vendor, f filter.State) []*etvendor.Vendor {
	return filter.Apply(items, f,
		func(v *etvendor.Vendor) []string {
			return []string{v.Name, v.BusinessName, v.Email, v.Phone}
		},
		func(v *etvendor.Vendor) string { return string(v.Status) },
	)
}

// filterRiders 按姓名/手机号/车牌子串 + 状态过滤
func filterRiders(items []*etrider.Rider, f filter.State) []*etrider.Rider {
	return filter.Apply(items, f,
		func(r *etrider.Rider) []string {
			return []string{r.Name, r.Phone, r.VehiclePlate}
		},
		func(r *etrider.Rider) string { return string(r.Status) },
	)
}
