package handler

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/middleware"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
	"github.com/AliAzlanAziz/fyp-portal-api/internal/service"
	"github.com/AliAzlanAziz/fyp-portal-api/pkg/export"
)

type stubContractStore struct {
	contracts map[string]*models.Contract
}

func (m *stubContractStore) FindByID(ctx context.Context, id string) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (m *stubContractStore) FindActiveByRegistrationID(ctx context.Context, regID string) (*models.Contract, error) {
	for _, c := range m.contracts {
		if c.IsClosed || (c.Acceptance != models.AcceptanceNotResponded && c.Acceptance != models.AcceptanceAccepted) {
			continue
		}
		if c.StudentOneRegID == regID || c.StudentTwoRegID == regID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *stubContractStore) CountActiveAccepted(ctx context.Context, advisorID string) (int, error) {
	return 0, nil
}

func (m *stubContractStore) ListByStudent(ctx context.Context, studentID string, status models.AcceptanceStatus) ([]models.Contract, error) {
	var list []models.Contract
	for _, c := range m.contracts {
		if c.StudentID == studentID && c.Acceptance == status {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (m *stubContractStore) ListByAdvisor(ctx context.Context, advisorID string, status models.AcceptanceStatus) ([]models.Contract, error) {
	var list []models.Contract
	for _, c := range m.contracts {
		if c.AdvisorID == advisorID && c.Acceptance == status {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (m *stubContractStore) Create(ctx context.Context, contract *models.Contract) error {
	contract.ID = "created"
	cp := *contract
	m.contracts[contract.ID] = &cp
	return nil
}

func (m *stubContractStore) UpdateAcceptanceIf(ctx context.Context, id string, expected, next models.AcceptanceStatus) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok || c.Acceptance != expected || c.IsClosed {
		return nil, sql.ErrNoRows
	}
	c.Acceptance = next
	cp := *c
	return &cp, nil
}

func (m *stubContractStore) CloseIf(ctx context.Context, id string, expected models.AcceptanceStatus) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok || c.Acceptance != expected || c.IsClosed {
		return nil, sql.ErrNoRows
	}
	c.IsClosed = true
	cp := *c
	return &cp, nil
}

func (m *stubContractStore) UpdateAdvisorForm(ctx context.Context, id string, form models.AdvisorForm) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	designation := form.Designation
	c.FormDesignation = &designation
	cp := *c
	return &cp, nil
}

func (m *stubContractStore) UpdateMarks(ctx context.Context, id string, patch models.MarksPatch) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok || c.IsClosed {
		return nil, sql.ErrNoRows
	}
	if patch.Advisor != nil {
		c.AdvisorMarks = patch.Advisor
	}
	if patch.Mid != nil {
		c.MidMarks = patch.Mid
	}
	if patch.Final != nil {
		c.FinalMarks = patch.Final
	}
	cp := *c
	return &cp, nil
}

type stubPanelMembership struct{}

func (stubPanelMembership) MemberIDs(ctx context.Context, panelID string) ([]string, error) {
	return nil, nil
}

type stubPartyReader struct{}

func (stubPartyReader) FindByID(ctx context.Context, id string) (*models.User, error) {
	return &models.User{ID: id, FullName: "Someone"}, nil
}

func newContractServiceFixture(store *stubContractStore) *service.ContractService {
	policy := service.ContractPolicy{AdvisorCapacity: 5, MarksMin: 0, AdvisorMarksMax: 20, MidMarksMax: 30, FinalMarksMax: 50}
	return service.NewContractService(store, stubPanelMembership{}, stubPartyReader{}, policy, nil, nil)
}

func seededStore() *stubContractStore {
	return &stubContractStore{contracts: map[string]*models.Contract{
		"c-1": {
			ID:              "c-1",
			StudentID:       "stu-1",
			AdvisorID:       "adv-1",
			ProjectName:     "Project",
			StudentOneRegID: "FA18-001",
			StudentTwoRegID: "FA18-002",
			Acceptance:      models.AcceptanceAccepted,
		},
	}}
}

func testContext(t *testing.T, method, target string, body []byte, claims *models.JWTClaims, params gin.Params) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, target, nil)
	}
	c.Request = req
	c.Params = params
	if claims != nil {
		c.Set(middleware.ContextUserKey, claims)
	}
	return c, w
}

func TestStudentRequestAdvisorInvalidJSON(t *testing.T) {
	handler := NewStudentHandler(newContractServiceFixture(seededStore()), nil, nil)

	c, w := testContext(t, http.MethodPost, "/student/request/advisor", []byte(`{"advisor_id":`),
		&models.JWTClaims{UserID: "stu-1", RegistrationID: "FA18-001"}, nil)
	handler.RequestAdvisor(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentCloseRequestRequiresPendingState(t *testing.T) {
	store := seededStore()
	handler := NewStudentHandler(newContractServiceFixture(store), nil, nil)

	// The agreement is already accepted; only the advisor may close it now.
	c, w := testContext(t, http.MethodPost, "/student/close/request/c-1", nil,
		&models.JWTClaims{UserID: "stu-1", Role: models.RoleStudent, RegistrationID: "FA18-001"},
		gin.Params{{Key: "id", Value: "c-1"}})
	handler.CloseRequest(c)
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
	assert.False(t, store.contracts["c-1"].IsClosed)
}

func TestStudentRequestsRejectsUnknownStatus(t *testing.T) {
	handler := NewStudentHandler(newContractServiceFixture(seededStore()), nil, nil)

	c, w := testContext(t, http.MethodGet, "/student/requests?status=PENDING", nil,
		&models.JWTClaims{UserID: "stu-1", Role: models.RoleStudent}, nil)
	handler.Requests(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvisorAcceptForeignContract(t *testing.T) {
	handler := NewAdvisorHandler(newContractServiceFixture(seededStore()), export.NewPDFExporter(), nil)

	c, w := testContext(t, http.MethodPost, "/advisor/accept/request/c-1", nil,
		&models.JWTClaims{UserID: "adv-9", Role: models.RoleAdvisor},
		gin.Params{{Key: "id", Value: "c-1"}})
	handler.Accept(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdvisorSubmitMarksOutOfRange(t *testing.T) {
	store := seededStore()
	handler := NewAdvisorHandler(newContractServiceFixture(store), export.NewPDFExporter(), nil)

	c, w := testContext(t, http.MethodPost, "/advisor/contract/marks/c-1", []byte(`{"marks": 25}`),
		&models.JWTClaims{UserID: "adv-1", Role: models.RoleAdvisor},
		gin.Params{{Key: "id", Value: "c-1"}})
	handler.SubmitMarks(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, store.contracts["c-1"].AdvisorMarks)
}

func TestAdvisorSubmitMarksOK(t *testing.T) {
	store := seededStore()
	handler := NewAdvisorHandler(newContractServiceFixture(store), export.NewPDFExporter(), nil)

	c, w := testContext(t, http.MethodPost, "/advisor/contract/marks/c-1", []byte(`{"marks": 18}`),
		&models.JWTClaims{UserID: "adv-1", Role: models.RoleAdvisor},
		gin.Params{{Key: "id", Value: "c-1"}})
	handler.SubmitMarks(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, store.contracts["c-1"].AdvisorMarks)
	assert.Equal(t, 18, *store.contracts["c-1"].AdvisorMarks)
}

func TestAdvisorExportSheetRendersPDF(t *testing.T) {
	store := seededStore()
	handler := NewAdvisorHandler(newContractServiceFixture(store), export.NewPDFExporter(), nil)

	c, w := testContext(t, http.MethodGet, "/advisor/contract/sheet/c-1", nil,
		&models.JWTClaims{UserID: "adv-1", Role: models.RoleAdvisor},
		gin.Params{{Key: "id", Value: "c-1"}})
	handler.ExportSheet(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestPanelSubmitMarksInvalidJSON(t *testing.T) {
	handler := NewPanelHandler(newContractServiceFixture(seededStore()), nil, nil)

	c, w := testContext(t, http.MethodPost, "/panel/contract/marks/c-1", []byte(`{"mid":`),
		&models.JWTClaims{UserID: "pan-1", Role: models.RolePanel},
		gin.Params{{Key: "id", Value: "c-1"}})
	handler.SubmitMarks(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPanelSubmitMarksWithoutMembership(t *testing.T) {
	handler := NewPanelHandler(newContractServiceFixture(seededStore()), nil, nil)

	c, w := testContext(t, http.MethodPost, "/panel/contract/marks/c-1", []byte(`{"mid": 20}`),
		&models.JWTClaims{UserID: "pan-1", Role: models.RolePanel},
		gin.Params{{Key: "id", Value: "c-1"}})
	handler.SubmitMarks(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
