package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AliAzlanAziz/fyp-portal-api/internal/models"
	appErrors "github.com/AliAzlanAziz/fyp-portal-api/pkg/errors"
)

type mockContractStore struct {
	contracts map[string]*models.Contract
	nextID    int
}

func newMockContractStore() *mockContractStore {
	return &mockContractStore{contracts: make(map[string]*models.Contract)}
}

func (m *mockContractStore) FindByID(ctx context.Context, id string) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (m *mockContractStore) FindActiveByRegistrationID(ctx context.Context, regID string) (*models.Contract, error) {
	for _, c := range m.contracts {
		if c.IsClosed {
			continue
		}
		if c.Acceptance != models.AcceptanceNotResponded && c.Acceptance != models.AcceptanceAccepted {
			continue
		}
		if c.StudentOneRegID == regID || c.StudentTwoRegID == regID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockContractStore) CountActiveAccepted(ctx context.Context, advisorID string) (int, error) {
	count := 0
	for _, c := range m.contracts {
		if c.AdvisorID == advisorID && c.Acceptance == models.AcceptanceAccepted && !c.IsClosed {
			count++
		}
	}
	return count, nil
}

func (m *mockContractStore) ListByStudent(ctx context.Context, studentID string, status models.AcceptanceStatus) ([]models.Contract, error) {
	var list []models.Contract
	for _, c := range m.contracts {
		if c.StudentID == studentID && c.Acceptance == status {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (m *mockContractStore) ListByAdvisor(ctx context.Context, advisorID string, status models.AcceptanceStatus) ([]models.Contract, error) {
	var list []models.Contract
	for _, c := range m.contracts {
		if c.AdvisorID == advisorID && c.Acceptance == status {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (m *mockContractStore) Create(ctx context.Context, contract *models.Contract) error {
	if contract.ID == "" {
		m.nextID++
		contract.ID = string(rune('a' + m.nextID))
	}
	cp := *contract
	m.contracts[contract.ID] = &cp
	return nil
}

func (m *mockContractStore) UpdateAcceptanceIf(ctx context.Context, id string, expected, next models.AcceptanceStatus) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok || c.Acceptance != expected || c.IsClosed {
		return nil, sql.ErrNoRows
	}
	c.Acceptance = next
	cp := *c
	return &cp, nil
}

func (m *mockContractStore) CloseIf(ctx context.Context, id string, expected models.AcceptanceStatus) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok || c.Acceptance != expected || c.IsClosed {
		return nil, sql.ErrNoRows
	}
	c.IsClosed = true
	cp := *c
	return &cp, nil
}

func (m *mockContractStore) UpdateAdvisorForm(ctx context.Context, id string, form models.AdvisorForm) (*models.Contract, error) {
	c, ok := m.contracts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	designation, department, qualification := form.Designation, form.Department, form.Qualification
	c.FormDesignation = &designation
	c.FormDepartment = &department
	c.FormQualification = &qualification
	c.FormCompensation = form.Compensation
	c.FormTools = form.Tools
	cp := *c
	return &cp, nil
}

func (m *mockContractStore) UpdateMarks(ctx context.Context, id string, patch models.MarksPatch) (*models.Contract, error) {
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

type mockPanelMembership struct {
	members map[string][]string
}

func (m *mockPanelMembership) MemberIDs(ctx context.Context, panelID string) ([]string, error) {
	return m.members[panelID], nil
}

type mockPartyReader struct {
	users map[string]*models.User
}

func (m *mockPartyReader) FindByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func testPolicy() ContractPolicy {
	return ContractPolicy{AdvisorCapacity: 5, MarksMin: 0, AdvisorMarksMax: 20, MidMarksMax: 30, FinalMarksMax: 50}
}

func strPtr(s string) *string { return &s }

func newContractFixture(store *mockContractStore) (*ContractService, *mockPartyReader, *mockPanelMembership) {
	dept := "CS"
	regOne := "FA18-001"
	parties := &mockPartyReader{users: map[string]*models.User{
		"adv-1": {ID: "adv-1", FullName: "Dr. Rizwan", Role: models.RoleAdvisor, Department: &dept},
		"stu-1": {ID: "stu-1", FullName: "Ayesha", Role: models.RoleStudent, RegistrationID: &regOne},
	}}
	panels := &mockPanelMembership{members: map[string][]string{}}
	svc := NewContractService(store, panels, parties, testPolicy(), nil, nil)
	return svc, parties, panels
}

func studentClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "stu-1", Role: models.RoleStudent, RegistrationID: "FA18-001"}
}

func advisorClaims() *models.JWTClaims {
	return &models.JWTClaims{UserID: "adv-1", Role: models.RoleAdvisor}
}

func selectRequest() SelectAdvisorRequest {
	return SelectAdvisorRequest{
		AdvisorID:   "adv-1",
		ProjectName: "Smart Irrigation",
		StudentOne:  models.GroupMember{Name: "Ayesha", RegistrationID: "FA18-001"},
		StudentTwo:  models.GroupMember{Name: "Bilal", RegistrationID: "FA18-002"},
	}
}

func TestSelectAdvisorCreatesPendingContract(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)

	contract, err := svc.SelectAdvisor(context.Background(), studentClaims(), selectRequest())
	require.NoError(t, err)
	assert.Equal(t, models.AcceptanceNotResponded, contract.Acceptance)
	assert.False(t, contract.IsClosed)
	assert.Equal(t, "stu-1", contract.StudentID)
	assert.Equal(t, "adv-1", contract.AdvisorID)
}

func TestSelectAdvisorRequesterMustBeExactlyOneMember(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)

	neither := selectRequest()
	neither.StudentOne.RegistrationID = "FA18-009"
	_, err := svc.SelectAdvisor(context.Background(), &models.JWTClaims{UserID: "stu-1", RegistrationID: "FA18-111"}, neither)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidParticipant.Code, appErrors.FromError(err).Code)

	both := selectRequest()
	both.StudentTwo.RegistrationID = "FA18-001"
	_, err = svc.SelectAdvisor(context.Background(), studentClaims(), both)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidParticipant.Code, appErrors.FromError(err).Code)
}

func TestSelectAdvisorUnknownAdvisor(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)

	req := selectRequest()
	req.AdvisorID = "missing"
	_, err := svc.SelectAdvisor(context.Background(), studentClaims(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSelectAdvisorRejectsDuplicateActiveContract(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	_, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	// Requester already holds a pending request.
	_, err = svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateRequest.Code, appErrors.FromError(err).Code)

	// The partner's registration id is also blocked, even for a different
	// requester naming them second.
	partner := &models.JWTClaims{UserID: "stu-2", Role: models.RoleStudent, RegistrationID: "FA18-003"}
	req := SelectAdvisorRequest{
		AdvisorID:   "adv-1",
		ProjectName: "Other Project",
		StudentOne:  models.GroupMember{Name: "Chand", RegistrationID: "FA18-003"},
		StudentTwo:  models.GroupMember{Name: "Bilal", RegistrationID: "FA18-002"},
	}
	_, err = svc.SelectAdvisor(ctx, partner, req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateRequest.Code, appErrors.FromError(err).Code)
}

func TestSelectAdvisorAllowedAfterRejection(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)
	_, err = svc.Reject(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)

	// A rejected contract is terminal and no longer counts as active.
	_, err = svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)
}

func TestSelectAdvisorCapacity(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	// Advisor already holds K-1 accepted agreements.
	for i := 0; i < 4; i++ {
		store.contracts[string(rune('A'+i))] = &models.Contract{
			ID:         string(rune('A' + i)),
			AdvisorID:  "adv-1",
			Acceptance: models.AcceptanceAccepted,
		}
	}

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)
	_, err = svc.Accept(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)

	// At K the next request is refused.
	other := &models.JWTClaims{UserID: "stu-9", Role: models.RoleStudent, RegistrationID: "FA18-900"}
	req := SelectAdvisorRequest{
		AdvisorID:   "adv-1",
		ProjectName: "Overflow",
		StudentOne:  models.GroupMember{Name: "Nine", RegistrationID: "FA18-900"},
		StudentTwo:  models.GroupMember{Name: "Ten", RegistrationID: "FA18-901"},
	}
	_, err = svc.SelectAdvisor(ctx, other, req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrCapacityExceeded.Code, appErrors.FromError(err).Code)
}

func TestAcceptIsNotIdempotent(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	accepted, err := svc.Accept(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AcceptanceAccepted, accepted.Acceptance)

	// The second accept finds the precondition gone and fails; the stored
	// state is untouched.
	_, err = svc.Accept(ctx, advisorClaims(), contract.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErrors.FromError(err).Code)
	assert.Equal(t, models.AcceptanceAccepted, store.contracts[contract.ID].Acceptance)
	assert.False(t, store.contracts[contract.ID].IsClosed)
}

func TestCloseByStudentOnlyWhilePending(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	closed, err := svc.CloseByStudent(ctx, studentClaims(), contract.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
	assert.Equal(t, models.AcceptanceNotResponded, closed.Acceptance)
}

func TestCloseRejectedContractFails(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)
	_, err = svc.Reject(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)

	_, err = svc.CloseByStudent(ctx, studentClaims(), contract.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErrors.FromError(err).Code)

	_, err = svc.CloseByAdvisor(ctx, advisorClaims(), contract.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErrors.FromError(err).Code)
	assert.False(t, store.contracts[contract.ID].IsClosed)
}

func TestCloseByAdvisorRequiresAccepted(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	_, err = svc.CloseByAdvisor(ctx, advisorClaims(), contract.ID)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErrors.FromError(err).Code)

	_, err = svc.Accept(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)

	closed, err := svc.CloseByAdvisor(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
}

func TestSubmitAdvisorMarksRange(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)
	_, err = svc.Accept(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)

	_, err = svc.SubmitAdvisorMarks(ctx, advisorClaims(), contract.ID, 21)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidMarks.Code, appErrors.FromError(err).Code)
	assert.Nil(t, store.contracts[contract.ID].AdvisorMarks)

	_, err = svc.SubmitAdvisorMarks(ctx, advisorClaims(), contract.ID, -1)
	require.Error(t, err)
	assert.Nil(t, store.contracts[contract.ID].AdvisorMarks)

	updated, err := svc.SubmitAdvisorMarks(ctx, advisorClaims(), contract.ID, 18)
	require.NoError(t, err)
	require.NotNil(t, updated.AdvisorMarks)
	assert.Equal(t, 18, *updated.AdvisorMarks)
}

func TestSubmitAdvisorMarksBlockedWhenClosed(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)
	_, err = svc.Accept(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)
	_, err = svc.CloseByAdvisor(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)

	_, err = svc.SubmitAdvisorMarks(ctx, advisorClaims(), contract.ID, 10)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErrors.FromError(err).Code)
}

func TestSubmitPanelMarks(t *testing.T) {
	store := newMockContractStore()
	svc, _, panels := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)
	_, err = svc.Accept(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)

	panelID := "panel-1"
	store.contracts[contract.ID].PanelID = &panelID
	panels.members[panelID] = []string{"pan-1", "pan-2"}

	member := &models.JWTClaims{UserID: "pan-1", Role: models.RolePanel}
	outsider := &models.JWTClaims{UserID: "pan-9", Role: models.RolePanel}

	mid := 25
	_, err = svc.SubmitPanelMarks(ctx, outsider, contract.ID, PanelMarksRequest{Mid: &mid})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)

	_, err = svc.SubmitPanelMarks(ctx, member, contract.ID, PanelMarksRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	tooHigh := 51
	_, err = svc.SubmitPanelMarks(ctx, member, contract.ID, PanelMarksRequest{Final: &tooHigh})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidMarks.Code, appErrors.FromError(err).Code)

	final := 45
	updated, err := svc.SubmitPanelMarks(ctx, member, contract.ID, PanelMarksRequest{Mid: &mid, Final: &final})
	require.NoError(t, err)
	require.NotNil(t, updated.MidMarks)
	require.NotNil(t, updated.FinalMarks)
	assert.Equal(t, 25, *updated.MidMarks)
	assert.Equal(t, 45, *updated.FinalMarks)
}

func TestSubmitPanelMarksWithoutAssignedPanel(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	mid := 10
	member := &models.JWTClaims{UserID: "pan-1", Role: models.RolePanel}
	_, err = svc.SubmitPanelMarks(ctx, member, contract.ID, PanelMarksRequest{Mid: &mid})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestGuardsDoNotLeakExistence(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	stranger := &models.JWTClaims{UserID: "adv-9", Role: models.RoleAdvisor}

	_, errMissing := svc.Accept(ctx, stranger, "does-not-exist")
	_, errForeign := svc.Accept(ctx, stranger, contract.ID)
	require.Error(t, errMissing)
	require.Error(t, errForeign)

	// An unknown id and someone else's contract are indistinguishable.
	missing := appErrors.FromError(errMissing)
	foreign := appErrors.FromError(errForeign)
	assert.Equal(t, missing.Code, foreign.Code)
	assert.Equal(t, missing.Message, foreign.Message)
	assert.Equal(t, missing.Status, foreign.Status)

	otherStudent := &models.JWTClaims{UserID: "stu-9", Role: models.RoleStudent, RegistrationID: "FA18-999"}
	_, errMissing = svc.GetForStudent(ctx, otherStudent, "does-not-exist")
	_, errForeign = svc.GetForStudent(ctx, otherStudent, contract.ID)
	assert.Equal(t, appErrors.FromError(errMissing).Code, appErrors.FromError(errForeign).Code)
}

func TestRoleScopedProjections(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	studentViews, err := svc.ListForStudent(ctx, studentClaims(), models.AcceptanceNotResponded)
	require.NoError(t, err)
	require.Len(t, studentViews, 1)
	require.NotNil(t, studentViews[0].Advisor)
	assert.Equal(t, "adv-1", studentViews[0].Advisor.ID)
	assert.Equal(t, "Dr. Rizwan", studentViews[0].Advisor.FullName)

	advisorViews, err := svc.ListForAdvisor(ctx, advisorClaims(), models.AcceptanceNotResponded)
	require.NoError(t, err)
	require.Len(t, advisorViews, 1)
	require.NotNil(t, advisorViews[0].Student)
	assert.Equal(t, "stu-1", advisorViews[0].Student.ID)

	detail, err := svc.GetForStudent(ctx, studentClaims(), contract.ID)
	require.NoError(t, err)
	assert.Equal(t, "FA18-001", detail.StudentOne.RegistrationID)
	assert.Equal(t, "FA18-002", detail.StudentTwo.RegistrationID)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)

	_, err := svc.ListForStudent(context.Background(), studentClaims(), "PENDING")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestAdvisorFormLifecycle(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	// The form may be filled before the advisor responds.
	compensation := 0
	form := models.AdvisorForm{
		Designation:   "Assistant Professor",
		Department:    "CS",
		Qualification: "PhD",
		Compensation:  &compensation,
		Tools:         strPtr("Arduino, Python"),
	}
	updated, err := svc.SubmitAdvisorForm(ctx, advisorClaims(), contract.ID, form)
	require.NoError(t, err)
	require.NotNil(t, updated.FormDesignation)
	assert.Equal(t, "Assistant Professor", *updated.FormDesignation)

	view, err := svc.GetAdvisorForm(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Compensation)
	assert.Equal(t, 0, *view.Compensation)
	require.NotNil(t, view.Tools)
	assert.Equal(t, "Arduino, Python", *view.Tools)
}

func TestSupervisionLifecycleEndToEnd(t *testing.T) {
	store := newMockContractStore()
	svc, _, panels := newContractFixture(store)
	ctx := context.Background()

	contract, err := svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	accepted, err := svc.Accept(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AcceptanceAccepted, accepted.Acceptance)

	_, err = svc.SubmitAdvisorForm(ctx, advisorClaims(), contract.ID, models.AdvisorForm{
		Designation: "Professor", Department: "CS", Qualification: "PhD",
	})
	require.NoError(t, err)

	_, err = svc.SubmitAdvisorMarks(ctx, advisorClaims(), contract.ID, 17)
	require.NoError(t, err)

	panelID := "panel-1"
	store.contracts[contract.ID].PanelID = &panelID
	panels.members[panelID] = []string{"pan-1"}
	mid, final := 24, 41
	member := &models.JWTClaims{UserID: "pan-1", Role: models.RolePanel}
	_, err = svc.SubmitPanelMarks(ctx, member, contract.ID, PanelMarksRequest{Mid: &mid, Final: &final})
	require.NoError(t, err)

	closed, err := svc.CloseByAdvisor(ctx, advisorClaims(), contract.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)

	// Everything after closure is refused.
	_, err = svc.SubmitAdvisorMarks(ctx, advisorClaims(), contract.ID, 15)
	require.Error(t, err)
	_, err = svc.CloseByAdvisor(ctx, advisorClaims(), contract.ID)
	require.Error(t, err)

	// And the group may start a fresh request.
	_, err = svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)
}

func TestActiveByRegistrationID(t *testing.T) {
	store := newMockContractStore()
	svc, _, _ := newContractFixture(store)
	ctx := context.Background()

	_, err := svc.ActiveByRegistrationID(ctx, "FA18-001")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	_, err = svc.SelectAdvisor(ctx, studentClaims(), selectRequest())
	require.NoError(t, err)

	found, err := svc.ActiveByRegistrationID(ctx, "FA18-002")
	require.NoError(t, err)
	assert.Equal(t, "FA18-002", found.StudentTwoRegID)
}
