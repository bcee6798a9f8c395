package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"threadly/console/internal/app/config"
	"threadly/console/internal/app/domains/entity/etorder"
	"threadly/console/internal/app/domains/entity/etquote"
	"threadly/console/internal/app/domains/entity/etstatus"
	"threadly/console/internal/app/domains/entity/etvendor"
	"threadly/console/internal/app/domains/filter"
	"threadly/console/internal/app/domains/services/svproduction"
	"threadly/console/internal/app/pkg/logger"
	"threadly/console/internal/app/view"
)

var (
	configPath = flag.String("config", "./config/config.yaml", "配置文件路径")
	skipConfig = flag.Bool("skip-config", true, "跳过配置加载（纯内存模式）")
)

func main() {
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("  FastTest - Console 快速测试工具")
	fmt.Println("========================================")

	if !*skipConfig {
		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("❌ Failed to load config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Config loaded: %s\n", cfg.App.Name)
	} else {
		fmt.Println("⚠️  Skip-config mode: In-memory fixtures only")
	}

	log, err := logger.NewZapLogger("info")
	if err != nil {
		fmt.Printf("❌ Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	orders := newFakeOrderRepo()
	vendors := newFakeVendorRepo()
	production := svproduction.NewProductionService(orders, vendors, log)

	// 场景 1：尺码合计不等于总数，提交被拒绝且不触达上游
	fmt.Println("\n--- 场景 1: 尺码数量校验 ---")
	_, err = production.SubmitOrder(ctx, "Arun", "t-shirt", "", "", 100, map[string]int{"S": 30, "M": 30})
	if err != nil {
		fmt.Printf("✅ Rejected as expected: %v (upstream calls: %d)\n", err, orders.createCalls)
	} else {
		fmt.Println("❌ Expected quantity mismatch rejection")
	}

	// 场景 2：正常提交
	fmt.Println("\n--- 场景 2: 正常提交订单 ---")
	created, err := production.SubmitOrder(ctx, "Arun", "t-shirt", "front print", "", 100, map[string]int{"S": 40, "M": 60})
	if err != nil {
		fmt.Printf("❌ Submit failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Order created: %s stage=%s\n", created.ID, created.Stage)

	// 场景 3：阶段只能前进一步
	fmt.Println("\n--- 场景 3: 阶段推进 ---")
	if err := production.AdvanceStage(ctx, created.ID, etstatus.StagePrinting); err != nil {
		fmt.Printf("✅ Skip-ahead rejected: %v\n", err)
	} else {
		fmt.Println("❌ Expected skip-ahead rejection")
	}
	if err := production.AdvanceStage(ctx, created.ID, etstatus.StageAccepted); err != nil {
		fmt.Printf("❌ Single-step advance failed: %v\n", err)
	} else {
		fmt.Println("✅ Single-step advance accepted")
	}

	// 场景 4：过滤 + 渲染
	fmt.Println("\n--- 场景 4: 过滤与渲染 ---")
	list, err := production.List(ctx, filter.State{SearchTerm: "arun"})
	if err != nil {
		fmt.Printf("❌ List failed: %v\n", err)
		os.Exit(1)
	}
	all, _ := production.Snapshot().Get()
	html := view.RenderOrderTable(list, len(all))
	fmt.Printf("✅ Rendered %d/%d orders, %d bytes of HTML\n", len(list), len(all), len(html))

	fmt.Println("\n========================================")
	fmt.Println("  FastTest complete")
	fmt.Println("========================================")
}

var errFixtureNotFound = errors.New("fixture order not found")

// fakeOrderRepo 内存订单仓储，替代上游 API
type fakeOrderRepo struct {
	items       map[string]*etorder.ProductionOrder
	createCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{items: make(map[string]*etorder.ProductionOrder)}
}

func (f *fakeOrderRepo) ListProduction(ctx context.Context) ([]*etorder.ProductionOrder, error) {
	out := make([]*etorder.ProductionOrder, 0, len(f.items))
	for _, o := range f.items {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *etorder.ProductionOrder) error {
	f.createCalls++
	f.items[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) AssignVendor(ctx context.Context, orderID, vendorID string) error {
	if o, ok := f.items[orderID]; ok {
		return o.AssignVendor(vendorID, "fixture vendor")
	}
	return errFixtureNotFound
}

func (f *fakeOrderRepo) UpdateStage(ctx context.Context, orderID string, stage etstatus.ProductionStage) error {
	if o, ok := f.items[orderID]; ok {
		return o.Advance(stage)
	}
	return errFixtureNotFound
}

func (f *fakeOrderRepo) ListQuotations(ctx context.Context) ([]*etquote.Quotation, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ApproveQuotation(ctx context.Context, quotationID string) error {
	return nil
}

func (f *fakeOrderRepo) RejectQuotation(ctx context.Context, quotationID, remarks string) error {
	return nil
}

// fakeVendorRepo 内存商户仓储，只服务看板联查
type fakeVendorRepo struct {
	items []*etvendor.Vendor
}

func newFakeVendorRepo() *fakeVendorRepo {
	v, _ := etvendor.NewVendor("VEN-1", "Sharma", "arun@example.com")
	v.BusinessName = "Sharma Apparels"
	v.Status = etstatus.DocStatusApproved
	v.CommissionRate = decimal.NewFromInt(10)
	return &fakeVendorRepo{items: []*etvendor.Vendor{v}}
}

func (f *fakeVendorRepo) List(ctx context.Context) ([]*etvendor.Vendor, error) {
	return f.items, nil
}

func (f *fakeVendorRepo) ListRejected(ctx context.Context) ([]*etvendor.Vendor, error) {
	return nil, nil
}

func (f *fakeVendorRepo) GetProfile(ctx context.Context, vendorID string) (*etvendor.Vendor, error) {
	return f.items[0], nil
}

func (f *fakeVendorRepo) UpdateProfile(ctx context.Context, vendor *etvendor.Vendor) error {
	return nil
}

func (f *fakeVendorRepo) UploadDocument(ctx context.Context, vendorID string, docType etvendor.DocType, fileName string, payload []byte, extra map[string]string) (*etvendor.DocumentRecord, error) {
	return &etvendor.DocumentRecord{Status: etstatus.DocStatusUploaded, FileName: fileName}, nil
}

func (f *fakeVendorRepo) SubmitForReview(ctx context.Context, vendorID string) error {
	return nil
}

func (f *fakeVendorRepo) VerificationStatus(ctx context.Context, vendorID string) (*etvendor.Vendor, error) {
	return f.items[0], nil
}

func (f *fakeVendorRepo) ReviewDocument(ctx context.Context, vendorID string, docType etvendor.DocType, approve bool, remarks string) error {
	return nil
}

func (f *fakeVendorRepo) ListOrders(ctx context.Context, vendorID string, status string) ([]*etorder.ProductionOrder, error) {
	return nil, nil
}
