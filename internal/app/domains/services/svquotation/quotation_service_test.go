package svquotation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etquote"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/pkg/errorx"
	"threadly/console/internal/app/pkg/logger"
)

// quoteOrderRepo 只关心报价相关调用的仓储桩
type quoteOrderRepo struct {
	quotations []*etquote.Quotation
	decideErr  error

	approveCalls int
	rejectCalls  int
}

func (q *quoteOrderRepo) ListProduction(ctx context.Context) ([]*etorder.ProductionOrder, error) {
	return nil, nil
}

func (q *quoteOrderRepo) Create(ctx context.Context, order *etorder.ProductionOrder) error {
	return nil
}

func (q *quoteOrderRepo) AssignVendor(ctx context.Context, orderID, vendorID string) error {
	return nil
}

func (q *quoteOrderRepo) UpdateStage(ctx context.Context, orderID string, stage etstatus.ProductionStage) error {
	return nil
}

func (q *quoteOrderRepo) ListQuotations(ctx context.Context) ([]*etquote.Quotation, error) {
	return q.quotations, nil
}

func (q *quoteOrderRepo) ApproveQuotation(ctx context.Context, quotationID string) error {
	q.approveCalls++
	return q.decideErr
}

func (q *quoteOrderRepo) RejectQuotation(ctx context.Context, quotationID, remarks string) error {
	q.rejectCalls++
	return q.decideErr
}

func newQuotationService(t *testing.T, repo *quoteOrderRepo) *QuotationService {
	log, err := logger.NewZapLogger("error")
	require.NoError(t, err)
	return NewQuotationService(repo, log)
}

func mustQuotation(t *testing.T, id, vendorName string) *etquote.Quotation {
	t.Helper()
	q, err := etquote.NewQuotation(id, "ORD-1", "VEN-1", decimal.NewFromInt(1200), decimal.NewFromInt(10))
	require.NoError(t, err)
	q.VendorName = vendorName
	return q
}

func TestListFilter(t *testing.T) {
	q1 := mustQuotation(t, "QUO-1", "Sharma Prints")
	q2 := mustQuotation(t, "QUO-2", "Verma Textiles")
	q2.Status = etstatus.QuotationApproved

	repo := &quoteOrderRepo{quotations: []*etquote.Quotation{q1, q2}}
	svc := newQuotationService(t, repo)
	ctx := context.Background()

	out, err := svc.List(ctx, filter.State{SearchTerm: "verma"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "QUO-2", out[0].ID)

	out, err = svc.List(ctx, filter.State{Status: string(etstatus.QuotationPending)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "QUO-1", out[0].ID)
}

func TestDecisionPassesUpstreamErrorVerbatim(t *testing.T) {
	repo := &quoteOrderRepo{decideErr: errorx.Upstream(409, "Quotation already decided")}
	svc := newQuotationService(t, repo)
	ctx := context.Background()

	err := svc.Approve(ctx, "QUO-1")
	require.Error(t, err)
	assert.Equal(t, "Quotation already decided", err.Error())
	assert.Equal(t, errorx.KindUpstream, errorx.KindOf(err))
	assert.Equal(t, 1, repo.approveCalls)

	err = svc.Reject(ctx, "QUO-1", "too expensive")
	require.Error(t, err)
	assert.Equal(t, "Quotation already decided", err.Error())
	assert.Equal(t, 1, repo.rejectCalls)
}

func TestDecisionDropsSnapshot(t *testing.T) {
	repo := &quoteOrderRepo{quotations: []*etquote.Quotation{mustQuotation(t, "QUO-1", "Sharma Prints")}}
	svc := newQuotationService(t, repo)
	ctx := context.Background()

	_, err := svc.List(ctx, filter.State{})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, "QUO-1"))
	items, _ := svc.List(ctx, filter.State{})
	require.Len(t, items, 1)
}
