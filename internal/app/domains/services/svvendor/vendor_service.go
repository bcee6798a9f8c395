package svvendor

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/singleflight"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/domains/repo/rpvendor"
	"threadly/console/internal/app/infra/session"
	"threadly/console/internal/app/pkg/logger"
)

// VendorService 商户工作台服务：资料与订单
// 资料回源后写入会话缓存，上游不可用时可用缓存兜底展示
type VendorService struct {
	vendors  rpvendor.VendorRepository
	sessions *session.Store
	sf       singleflight.Group
	logger   logger.Logger
}

// NewVendorService 创建商户工作台服务实例
func NewVendorService(vendors rpvendor.VendorRepository, sessions *session.Store, log logger.Logger) *VendorService {
	return &VendorService{
		vendors:  vendors,
		sessions: sessions,
		logger:   log,
	}
}

// Profile 拉取商户资料，成功后刷新会话缓存
func (s *VendorService) Profile(ctx context.Context, sessionID, vendorID string) (*etvendor.Vendor, error) {
	v, err := s.vendors.GetProfile(ctx, vendorID)
	if err != nil {
		// 回源失败时退回会话缓存，避免工作台整页空白
		if cached := s.cachedProfile(ctx, sessionID); cached != nil {
			s.logger.Warnf(ctx, "profile fallback to session cache: vendor=%s err=%v", vendorID, err)
			return cached, nil
		}
		return nil, err
	}

	s.cacheProfile(ctx, sessionID, v)
	return v, nil
}

// UpdateProfile 更新商户资料并同步会话缓存
func (s *VendorService) UpdateProfile(ctx context.Context, sessionID string, v *etvendor.Vendor) error {
	if err := s.vendors.UpdateProfile(ctx, v); err != nil {
		return err
	}

	s.cacheProfile(ctx, sessionID, v)
	return nil
}

// Orders 拉取商户订单，status 为空表示全部
func (s *VendorService) Orders(ctx context.Context, vendorID, status string, f filter.State) ([]*etorder.ProductionOrder, error) {
	v, err, _ := s.sf.Do("orders:"+vendorID+":"+status, func() (interface{}, error) {
		return s.vendors.ListOrders(ctx, vendorID, status)
	})
	if err != nil {
		return nil, err
	}

	orders := v.([]*etorder.ProductionOrder)
	return filter.Apply(orders, f,
		func(o *etorder.ProductionOrder) []string {
			return []string{o.ID, o.CustomerName, o.ProductType}
		},
		func(o *etorder.ProductionOrder) string { return string(o.Stage) },
	), nil
}

func (s *VendorService) cacheProfile(ctx context.Context, sessionID string, v *etvendor.Vendor) {
	if sessionID == "" {
		return
	}

	blob, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.sessions.CacheProfile(ctx, sessionID, blob); err != nil {
		s.logger.Warnf(ctx, "cache profile failed: %v", err)
	}
}

func (s *VendorService) cachedProfile(ctx context.Context, sessionID string) *etvendor.Vendor {
	if sessionID == "" {
		return nil
	}

	blob, err := s.sessions.CachedProfile(ctx, sessionID)
	if err != nil || len(blob) == 0 {
		return nil
	}

	var v etvendor.Vendor
	if err := json.Unmarshal(blob, &v); err != nil {
		return nil
	}
	return &v
}
