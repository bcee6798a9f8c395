package svverification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etrider"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/pkg/errorx"
	"threadly/console/internal/app/pkg/logger"
)

const testMaxFileSize = 5 * 1024 * 1024

// stubVendorRepo 计数型商户仓储桩
type stubVendorRepo struct {
	vendors        []*etvendor.Vendor
	reviewFailures int
	uploadCalls    int
	reviewCalls    int
	listCalls      int
}

func (s *stubVendorRepo) List(ctx context.Context) ([]*etvendor.Vendor, error) {
	s.listCalls++
	return s.vendors, nil
}

func (s *stubVendorRepo) ListRejected(ctx context.Context) ([]*etvendor.Vendor, error) {
	return nil, nil
}

func (s *stubVendorRepo) GetProfile(ctx context.Context, vendorID string) (*etvendor.Vendor, error) {
	return nil, errorx.ErrVendorNotFound
}

func (s *stubVendorRepo) UpdateProfile(ctx context.Context, vendor *etvendor.Vendor) error {
	return nil
}

func (s *stubVendorRepo) UploadDocument(ctx context.Context, vendorID string, docType etvendor.DocType, fileName string, payload []byte, extra map[string]string) (*etvendor.DocumentRecord, error) {
	s.uploadCalls++
	return &etvendor.DocumentRecord{Status: etstatus.DocStatusUploaded, FileName: fileName}, nil
}

func (s *stubVendorRepo) SubmitForReview(ctx context.Context, vendorID string) error {
	return nil
}

func (s *stubVendorRepo) VerificationStatus(ctx context.Context, vendorID string) (*etvendor.Vendor, error) {
	return nil, errorx.ErrVendorNotFound
}

func (s *stubVendorRepo) ReviewDocument(ctx context.Context, vendorID string, docType etvendor.DocType, approve bool, remarks string) error {
	s.reviewCalls++
	if s.reviewFailures > 0 {
		s.reviewFailures--
		return errorx.Upstream(503, "service unavailable")
	}
	return nil
}

func (s *stubVendorRepo) ListOrders(ctx context.Context, vendorID string, status string) ([]*etorder.ProductionOrder, error) {
	return nil, nil
}

// stubRiderRepo 计数型骑手仓储桩
type stubRiderRepo struct {
	riders         []*etrider.Rider
	verifyFailures int
	verifyCalls    int
}

func (s *stubRiderRepo) List(ctx context.Context) ([]*etrider.Rider, error) {
	return s.riders, nil
}

func (s *stubRiderRepo) ListVerified(ctx context.Context) ([]*etrider.Rider, error) {
	return nil, nil
}

func (s *stubRiderRepo) Verify(ctx context.Context, riderID string, approve bool, remarks string) error {
	s.verifyCalls++
	if s.verifyFailures > 0 {
		s.verifyFailures--
		return errorx.Upstream(503, "service unavailable")
	}
	return nil
}

func newService(t *testing.T, vendors *stubVendorRepo, riders *stubRiderRepo) *VerificationService {
	log, err := logger.NewZapLogger("error")
	require.NoError(t, err)
	return NewVerificationService(vendors, riders, nil, "verification_status_changed", testMaxFileSize, log)
}

func TestUploadDocumentSizeLimit(t *testing.T) {
	vendors := &stubVendorRepo{}
	svc := newService(t, vendors, &stubRiderRepo{})
	ctx := context.Background()

	t.Run("oversize rejected before any upstream call", func(t *testing.T) {
		_, err := svc.UploadDocument(ctx, "VEN-1", etvendor.DocTypeGST, "big.pdf", testMaxFileSize+1, nil, nil)
		require.Error(t, err)
		assert.Equal(t, "File size must be under 5MB", err.Error())
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
		assert.Zero(t, vendors.uploadCalls)
	})

	t.Run("unknown doc type rejected before upstream", func(t *testing.T) {
		_, err := svc.UploadDocument(ctx, "VEN-1", etvendor.DocType("passport"), "p.pdf", 100, nil, nil)
		require.Error(t, err)
		assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
		assert.Zero(t, vendors.uploadCalls)
	})

	t.Run("exact limit passes through", func(t *testing.T) {
		doc, err := svc.UploadDocument(ctx, "VEN-1", etvendor.DocTypeGST, "ok.pdf", testMaxFileSize, []byte("x"), nil)
		require.NoError(t, err)
		assert.Equal(t, etstatus.DocStatusUploaded, doc.Status)
		assert.Equal(t, 1, vendors.uploadCalls)
	})
}

func TestUploadInvalidatesSnapshot(t *testing.T) {
	v, err := etvendor.NewVendor("VEN-1", "Arun", "arun@example.com")
	require.NoError(t, err)
	vendors := &stubVendorRepo{vendors: []*etvendor.Vendor{v}}
	svc := newService(t, vendors, &stubRiderRepo{})
	ctx := context.Background()

	_, err = svc.Vendors(ctx, filter.State{})
	require.NoError(t, err)
	assert.False(t, svc.VendorSnapshot().Empty())

	_, err = svc.UploadDocument(ctx, "VEN-1", etvendor.DocTypeGST, "gst.pdf", 100, []byte("x"), nil)
	require.NoError(t, err)
	assert.True(t, svc.VendorSnapshot().Empty())
}

func TestReviewVendorDocumentDomainGuard(t *testing.T) {
	v, err := etvendor.NewVendor("VEN-1", "Arun", "arun@example.com")
	require.NoError(t, err)
	require.NoError(t, v.AttachDocument(etvendor.DocTypeGST, "gst.pdf", "http://files/gst.pdf", nil))
	require.NoError(t, v.ReviewDocument(etvendor.DocTypeGST, true, ""))

	vendors := &stubVendorRepo{vendors: []*etvendor.Vendor{v}}
	svc := newService(t, vendors, &stubRiderRepo{})
	ctx := context.Background()

	_, err = svc.Vendors(ctx, filter.State{})
	require.NoError(t, err)

	// 已通过的证件再驳回：领域校验先拦截，不触达上游
	err = svc.ReviewVendorDocument(ctx, "VEN-1", etvendor.DocTypeGST, false, "late")
	require.Error(t, err)
	assert.Equal(t, errorx.KindValidation, errorx.KindOf(err))
	assert.Zero(t, vendors.reviewCalls)
}

func TestReviewVendorDocumentRetryAfterUpstreamFailure(t *testing.T) {
	v, err := etvendor.NewVendor("VEN-1", "Arun", "arun@example.com")
	require.NoError(t, err)
	require.NoError(t, v.AttachDocument(etvendor.DocTypeGST, "gst.pdf", "http://files/gst.pdf", nil))

	vendors := &stubVendorRepo{vendors: []*etvendor.Vendor{v}, reviewFailures: 1}
	svc := newService(t, vendors, &stubRiderRepo{})
	ctx := context.Background()

	_, err = svc.Vendors(ctx, filter.State{})
	require.NoError(t, err)

	// 第一次上游失败：快照里的证件状态必须保持不变
	err = svc.ReviewVendorDocument(ctx, "VEN-1", etvendor.DocTypeGST, true, "ok")
	require.Error(t, err)
	assert.Equal(t, errorx.KindUpstream, errorx.KindOf(err))
	assert.Equal(t, etstatus.DocStatusUploaded, v.Documents[etvendor.DocTypeGST].Status)
	assert.False(t, svc.VendorSnapshot().Empty())

	// 重试必须再次走到上游并成功
	require.NoError(t, svc.ReviewVendorDocument(ctx, "VEN-1", etvendor.DocTypeGST, true, "ok"))
	assert.Equal(t, 2, vendors.reviewCalls)
	assert.True(t, svc.VendorSnapshot().Empty())
}

func TestReviewRiderRetryAfterUpstreamFailure(t *testing.T) {
	r, err := etrider.NewRider("RDR-1", "Ravi", "9876543210")
	require.NoError(t, err)
	r.Status = etstatus.DocStatusUnderReview

	riders := &stubRiderRepo{riders: []*etrider.Rider{r}, verifyFailures: 1}
	svc := newService(t, &stubVendorRepo{}, riders)
	ctx := context.Background()

	_, err = svc.Riders(ctx, filter.State{})
	require.NoError(t, err)

	// 第一次上游失败：快照里的骑手状态必须保持不变
	err = svc.ReviewRider(ctx, "RDR-1", true, "ok")
	require.Error(t, err)
	assert.Equal(t, errorx.KindUpstream, errorx.KindOf(err))
	assert.Equal(t, etstatus.DocStatusUnderReview, r.Status)

	// 重试必须再次走到上游并成功
	require.NoError(t, svc.ReviewRider(ctx, "RDR-1", true, "ok"))
	assert.Equal(t, 2, riders.verifyCalls)
}

func TestReviewRiderClearsSnapshots(t *testing.T) {
	r, err := etrider.NewRider("RDR-1", "Ravi", "9876543210")
	require.NoError(t, err)
	r.Status = etstatus.DocStatusUnderReview

	riders := &stubRiderRepo{riders: []*etrider.Rider{r}}
	svc := newService(t, &stubVendorRepo{}, riders)
	ctx := context.Background()

	_, err = svc.Riders(ctx, filter.State{})
	require.NoError(t, err)
	assert.False(t, svc.RiderSnapshot().Empty())

	require.NoError(t, svc.ReviewRider(ctx, "RDR-1", true, "ok"))
	assert.Equal(t, 1, riders.verifyCalls)
	assert.True(t, svc.RiderSnapshot().Empty())
}

func TestVendorsFilter(t *testing.T) {
	v1, _ := etvendor.NewVendor("VEN-1", "Sharma", "arun@example.com")
	v2, _ := etvendor.NewVendor("VEN-2", "Verma", "verma@example.com")
	v2.Status = etstatus.DocStatusUnderReview

	vendors := &stubVendorRepo{vendors: []*etvendor.Vendor{v1, v2}}
	svc := newService(t, vendors, &stubRiderRepo{})
	ctx := context.Background()

	out, err := svc.Vendors(ctx, filter.State{SearchTerm: "sharma"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "VEN-1", out[0].ID)

	out, err = svc.Vendors(ctx, filter.State{Status: string(etstatus.DocStatusUnderReview)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "VEN-2", out[0].ID)
}
