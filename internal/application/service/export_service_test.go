package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/entity"
	"github.com/smartinvoice/smartinvoice-api/internal/domain/enum"
	"github.com/smartinvoice/smartinvoice-api/pkg/apperror"
	"github.com/smartinvoice/smartinvoice-api/pkg/pagination"
	"github.com/smartinvoice/smartinvoice-api/pkg/pdfrender"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profile        *entity.Profile
	getErr         error
	updateUsageErr error

	created       []*entity.Profile
	usageUpdates  []int
	planUpdates   []planUpdate
	updatePlanErr error
}

type planUpdate struct {
	plan   enum.PlanType
	expiry *time.Time
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	f.created = append(f.created, profile)
	f.profile = profile
	return nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	f.profile = profile
	return nil
}

func (f *fakeProfileRepo) UpdateUsage(ctx context.Context, userID uuid.UUID, usedDocs int) error {
	if f.updateUsageErr != nil {
		return f.updateUsageErr
	}
	f.usageUpdates = append(f.usageUpdates, usedDocs)
	if f.profile != nil {
		f.profile.FreeDocsUsed = usedDocs
	}
	return nil
}

func (f *fakeProfileRepo) UpdatePlan(ctx context.Context, userID uuid.UUID, plan enum.PlanType, expiry *time.Time) error {
	if f.updatePlanErr != nil {
		return f.updatePlanErr
	}
	f.planUpdates = append(f.planUpdates, planUpdate{plan: plan, expiry: expiry})
	return nil
}

type fakeExportRepo struct {
	records   []*entity.ExportRecord
	createErr error
}

func (f *fakeExportRepo) Create(ctx context.Context, record *entity.ExportRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeExportRepo) ListByUserID(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.ExportRecord, int64, error) {
	out := make([]entity.ExportRecord, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeExportRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return int64(len(f.records)), nil
}

type fakeRenderer struct {
	renderCalls int
	err         error
}

func (f *fakeRenderer) Render(view pdfrender.DocumentView) ([]byte, error) {
	f.renderCalls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func newExportFixture(profile *entity.Profile) (*ExportService, *fakeProfileRepo, *fakeExportRepo, *fakeRenderer) {
	profileRepo := &fakeProfileRepo{profile: profile}
	exportRepo := &fakeExportRepo{}
	renderer := &fakeRenderer{}
	profileService := NewProfileService(profileRepo, 5)
	svc := NewExportService(profileService, profileRepo, exportRepo, NewDocumentService(), renderer)
	return svc, profileRepo, exportRepo, renderer
}

func testDraft() *entity.DocumentDraft {
	draft := entity.NewDocumentDraft()
	draft.Items = []entity.LineItem{
		{Description: "Consulting", Quantity: 2, UnitPrice: 150},
	}
	return draft
}

func TestExportSuccessIncrementsUsageOnce(t *testing.T) {
	userID := uuid.New()
	profile := entity.DefaultProfile(userID)
	profile.FreeDocsUsed = 2

	svc, profileRepo, exportRepo, _ := newExportFixture(profile)

	result, err := svc.Export(context.Background(), userID, testDraft())
	require.NoError(t, err)

	assert.Equal(t, enum.ExportStateIdle, result.State)
	assert.Equal(t, enum.AccessAllowed, result.Decision)
	assert.Equal(t, "invoice.pdf", result.FileName)
	assert.NotEmpty(t, result.PDF)
	assert.Equal(t, 3, result.UsedDocs)

	// Exactly one counter write, set to the incremented value
	require.Len(t, profileRepo.usageUpdates, 1)
	assert.Equal(t, 3, profileRepo.usageUpdates[0])

	// One audit record with the computed total
	require.Len(t, exportRepo.records, 1)
	record := exportRepo.records[0]
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, enum.DocumentTypeInvoice, record.DocumentType)
	assert.Equal(t, "AED", record.Currency)
	assert.Equal(t, int64(30000), record.Total)
}

func TestExportPaidAccountsStillCountDocuments(t *testing.T) {
	userID := uuid.New()
	profile := entity.DefaultProfile(userID)
	profile.PlanType = enum.PlanTypeLifetime
	profile.FreeDocsUsed = 40

	svc, profileRepo, _, _ := newExportFixture(profile)

	result, err := svc.Export(context.Background(), userID, testDraft())
	require.NoError(t, err)

	assert.Equal(t, enum.ExportStateIdle, result.State)
	assert.Equal(t, 41, result.UsedDocs)
	require.Len(t, profileRepo.usageUpdates, 1)
	assert.Equal(t, 41, profileRepo.usageUpdates[0])
}

func TestExportDeniedWhenFreeLimitReached(t *testing.T) {
	userID := uuid.New()
	profile := entity.DefaultProfile(userID)
	profile.FreeDocsUsed = 5

	svc, profileRepo, exportRepo, renderer := newExportFixture(profile)

	result, err := svc.Export(context.Background(), userID, testDraft())
	require.NoError(t, err)

	assert.Equal(t, enum.ExportStateDeniedLimitReached, result.State)
	assert.Equal(t, enum.AccessBlockedLimitReached, result.Decision)
	assert.Empty(t, result.PDF)
	assert.Equal(t, 5, result.UsedDocs)

	// Denial is a terminal result: nothing rendered, nothing written
	assert.Zero(t, renderer.renderCalls)
	assert.Empty(t, profileRepo.usageUpdates)
	assert.Empty(t, exportRepo.records)
}

func TestExportDeniedWhenYearlyPlanExpired(t *testing.T) {
	userID := uuid.New()
	expiry := time.Now().Add(-time.Hour)
	profile := entity.DefaultProfile(userID)
	profile.PlanType = enum.PlanTypeYearly
	profile.SubscriptionExpiry = &expiry

	svc, _, _, renderer := newExportFixture(profile)

	result, err := svc.Export(context.Background(), userID, testDraft())
	require.NoError(t, err)

	assert.Equal(t, enum.ExportStateDeniedExpired, result.State)
	assert.Equal(t, enum.AccessBlockedExpired, result.Decision)
	assert.Zero(t, renderer.renderCalls)
}

func TestExportDeniedWhenLifetimePlanLapsed(t *testing.T) {
	userID := uuid.New()
	expiry := time.Now().Add(-time.Hour)
	profile := entity.DefaultProfile(userID)
	profile.PlanType = enum.PlanTypeLifetime
	profile.SubscriptionExpiry = &expiry

	svc, _, _, renderer := newExportFixture(profile)

	result, err := svc.Export(context.Background(), userID, testDraft())
	require.NoError(t, err)

	// A recorded past expiry lapses the plan whatever its nominal type
	assert.Equal(t, enum.ExportStateDeniedExpired, result.State)
	assert.Zero(t, renderer.renderCalls)
}

func TestExportRenderFailureDoesNotConsumeAllowance(t *testing.T) {
	userID := uuid.New()
	profile := entity.DefaultProfile(userID)
	profile.FreeDocsUsed = 1

	svc, profileRepo, exportRepo, renderer := newExportFixture(profile)
	renderer.err = errors.New("font missing")

	result, err := svc.Export(context.Background(), userID, testDraft())
	require.Error(t, err)
	assert.Nil(t, result)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 500, appErr.Code)

	assert.Empty(t, profileRepo.usageUpdates)
	assert.Empty(t, exportRepo.records)
}

func TestExportSurvivesUsagePersistenceFailure(t *testing.T) {
	userID := uuid.New()
	profile := entity.DefaultProfile(userID)
	profile.FreeDocsUsed = 0

	svc, profileRepo, exportRepo, _ := newExportFixture(profile)
	profileRepo.updateUsageErr = errors.New("connection reset")
	exportRepo.createErr = errors.New("connection reset")

	result, err := svc.Export(context.Background(), userID, testDraft())
	require.NoError(t, err)

	// The export itself still succeeds with the optimistic counter
	assert.Equal(t, enum.ExportStateIdle, result.State)
	assert.Equal(t, 1, result.UsedDocs)
	assert.NotEmpty(t, result.PDF)
}

func TestExportCreatesDefaultProfileForNewUser(t *testing.T) {
	userID := uuid.New()

	svc, profileRepo, _, _ := newExportFixture(nil)

	result, err := svc.Export(context.Background(), userID, testDraft())
	require.NoError(t, err)

	assert.Equal(t, enum.ExportStateIdle, result.State)
	assert.Equal(t, 1, result.UsedDocs)
	require.Len(t, profileRepo.created, 1)
	assert.Equal(t, enum.PlanTypeFree, profileRepo.created[0].PlanType)
}

func TestListExportsReturnsHistory(t *testing.T) {
	userID := uuid.New()
	profile := entity.DefaultProfile(userID)

	svc, _, exportRepo, _ := newExportFixture(profile)
	exportRepo.records = []*entity.ExportRecord{
		{UserID: userID, DocumentType: enum.DocumentTypeInvoice, DocumentNumber: "INV-001", Currency: "AED", Total: 10000},
		{UserID: userID, DocumentType: enum.DocumentTypeQuotation, DocumentNumber: "QUOTE-001", Currency: "AED", Total: 5000},
	}

	result, err := svc.ListExports(context.Background(), userID, pagination.DefaultPagination())
	require.NoError(t, err)

	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Pagination.Total)
}
