package etvendor

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"threadly/console/internal/app/domains/entity/etstatus"
)

// 错误定义
var (
	ErrInvalidVendorID   = errors.New("vendor ID cannot be empty")
	ErrMissingDocuments  = errors.New("all required documents must be uploaded before submission")
	ErrInvalidTransition = errors.New("invalid verification status transition")
	ErrDocumentFinalized = errors.New("approved document cannot be modified")
	ErrUnknownDocType    = errors.New("unknown document type")
)

// DocType 证件类型
type DocType string

const (
	DocTypeGST       DocType = "gst_certificate"
	DocTypePAN       DocType = "pan_card"
	DocTypeAadhaar   DocType = "aadhaar_card"
	DocTypeBankProof DocType = "bank_proof"
)

// RequiredDocTypes 提交审核前必须上传的证件
var RequiredDocTypes = []DocType{DocTypeGST, DocTypePAN, DocTypeAadhaar, DocTypeBankProof}

// Valid 判断是否为已知证件类型
func (t DocType) Valid() bool {
	for _, dt := range RequiredDocTypes {
		if dt == t {
			return true
		}
	}
	return false
}

// DocumentRecord 证件记录（归属于 Vendor，创建后不会独立删除）
type DocumentRecord struct {
	Status       etstatus.DocumentStatus
	FileName     string
	FileURL      string
	Extra        map[string]string // 证件附加字段（证件号等）
	AdminRemarks string
	UploadedAt   time.Time
}

// Vendor 商户聚合根（领域对象）
type Vendor struct {
	ID             string
	Name           string
	BusinessName   string
	Email          string
	Phone          string
	Status         etstatus.DocumentStatus // 整体认证状态
	Documents      map[DocType]*DocumentRecord
	CommissionRate decimal.Decimal
	SubmittedAt    time.Time
	AdminRemarks   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewVendor 创建商户（工厂方法）
func NewVendor(id, name, email string) (*Vendor, error) {
	if id == "" {
		return nil, ErrInvalidVendorID
	}

	return &Vendor{
		ID:        id,
		Name:      name,
		Email:     email,
		Status:    etstatus.DocStatusNotSubmitted,
		Documents: make(map[DocType]*DocumentRecord),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

// AttachDocument 记录一次证件上传（领域行为）
// 已驳回的证件允许重新上传，覆盖文件引用并回到 uploaded
func (v *Vendor) AttachDocument(docType DocType, fileName, fileURL string, extra map[string]string) error {
	if !docType.Valid() {
		return ErrUnknownDocType
	}

	existing, ok := v.Documents[docType]
	if ok {
		if existing.Status.Final() {
			return ErrDocumentFinalized
		}
		if existing.Status == etstatus.DocStatusRejected &&
			!etstatus.CanTransition(existing.Status, etstatus.DocStatusUploaded) {
			return ErrInvalidTransition
		}
	}

	v.Documents[docType] = &DocumentRecord{
		Status:     etstatus.DocStatusUploaded,
		FileName:   fileName,
		FileURL:    fileURL,
		Extra:      extra,
		UploadedAt: time.Now(),
	}
	v.UpdatedAt = time.Now()
	return nil
}

// ClearDocumentFile 移除证件文件引用（记录本身保留）
func (v *Vendor) ClearDocumentFile(docType DocType) error {
	doc, ok := v.Documents[docType]
	if !ok {
		return ErrUnknownDocType
	}
	if doc.Status.Final() {
		return ErrDocumentFinalized
	}

	doc.FileName = ""
	doc.FileURL = ""
	doc.Status = etstatus.DocStatusPending
	v.UpdatedAt = time.Now()
	return nil
}

// SubmitForReview 提交审核（领域行为）
// 所有必需证件都已上传才允许提交
func (v *Vendor) SubmitForReview() error {
	for _, dt := range RequiredDocTypes {
		doc, ok := v.Documents[dt]
		if !ok || doc.FileURL == "" {
			return ErrMissingDocuments
		}
	}

	if !etstatus.CanTransition(v.Status, etstatus.DocStatusUnderReview) {
		return ErrInvalidTransition
	}

	v.Status = etstatus.DocStatusUnderReview
	v.SubmittedAt = time.Now()
	v.UpdatedAt = time.Now()
	return nil
}

// CanReviewDocument 审核前的状态校验，不修改聚合
func (v *Vendor) CanReviewDocument(docType DocType, approve bool) error {
	doc, ok := v.Documents[docType]
	if !ok {
		return ErrUnknownDocType
	}

	target := etstatus.DocStatusApproved
	if !approve {
		target = etstatus.DocStatusRejected
	}
	if !etstatus.CanTransition(doc.Status, target) {
		return ErrInvalidTransition
	}
	return nil
}

// ReviewDocument 管理员审核单个证件（领域行为）
func (v *Vendor) ReviewDocument(docType DocType, approve bool, remarks string) error {
	if err := v.CanReviewDocument(docType, approve); err != nil {
		return err
	}

	doc := v.Documents[docType]
	target := etstatus.DocStatusApproved
	if !approve {
		target = etstatus.DocStatusRejected
	}

	doc.Status = target
	doc.AdminRemarks = remarks
	v.UpdatedAt = time.Now()
	return nil
}

// AllDocumentsApproved 所有必需证件是否均已通过
func (v *Vendor) AllDocumentsApproved() bool {
	for _, dt := range RequiredDocTypes {
		doc, ok := v.Documents[dt]
		if !ok || doc.Status != etstatus.DocStatusApproved {
			return false
		}
	}
	return true
}
