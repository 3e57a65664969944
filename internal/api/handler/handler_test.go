package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"clubportal/backend/internal/api/handler"
	"clubportal/backend/internal/auth"
	"clubportal/backend/internal/complaint"
	"clubportal/backend/internal/models"
	"clubportal/backend/internal/store"
)

type fixture struct {
	router *gin.Engine
	store  *store.Memory
	tokens *auth.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemory()
	store.Seed(st)

	tokens := auth.NewTokenManager([]byte("test-secret"))
	h := handler.NewHandler(
		complaint.NewService(st),
		auth.NewService(st, tokens, 0),
		tokens,
		st,
		nil,
	)

	router := gin.New()
	h.RegisterRoutes(router)

	return &fixture{router: router, store: st, tokens: tokens}
}

// tokenFor issues a session token for a seeded account.
func (f *fixture) tokenFor(t *testing.T, userID string) string {
	t.Helper()
	user, err := f.store.GetUserByID(userID)
	if err != nil {
		t.Fatalf("unknown seeded user %s: %v", userID, err)
	}
	token, err := f.tokens.Issue(user)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	return token
}

func (f *fixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var payload *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		payload = bytes.NewBuffer(data)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"member_id": "102030",
		"password":  "member123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/auth/login", "", gin.H{
		"member_id": "102030",
		"password":  "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationRequired(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/complaints", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodGet, "/api/complaints", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateComplaint(t *testing.T) {
	f := newFixture(t)
	token := f.tokenFor(t, "u1")

	w := f.do(http.MethodPost, "/api/complaints", token, gin.H{
		"category": "FOOD",
		"subject":  "Cold meals in the cafeteria",
		"details":  "Lunch was served cold twice this week.",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.StatusNew, created.Status)
	assert.Equal(t, models.CategoryFood, created.Category)
	assert.Equal(t, models.PriorityMedium, created.Priority)
	assert.Equal(t, "u1", created.UserID)
	assert.Len(t, created.History, 1)
}

func TestCreateComplaintForbiddenForAdmin(t *testing.T) {
	f := newFixture(t)
	token := f.tokenFor(t, "a1")

	w := f.do(http.MethodPost, "/api/complaints", token, gin.H{
		"subject": "Filed by staff",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListComplaintsScopedByRole(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/complaints", f.tokenFor(t, "u1"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var own []models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &own))
	assert.Len(t, own, 1)
	assert.Equal(t, "u1", own[0].UserID)

	w = f.do(http.MethodGet, "/api/complaints", f.tokenFor(t, "s1"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var all []models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	w = f.do(http.MethodGet, "/api/complaints?status=SOLVED", f.tokenFor(t, "s1"), nil)
	var solved []models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &solved))
	assert.Len(t, solved, 1)
	assert.Equal(t, "REQ-2023-084", solved[0].ID)
}

func TestGetComplaintOwnership(t *testing.T) {
	f := newFixture(t)

	// u1 owns REQ-2023-084 but not REQ-2023-089.
	w := f.do(http.MethodGet, "/api/complaints/REQ-2023-084", f.tokenFor(t, "u1"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/api/complaints/REQ-2023-089", f.tokenFor(t, "u1"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodGet, "/api/complaints/REQ-2023-089", f.tokenFor(t, "s1"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/api/complaints/REQ-0000-000", f.tokenFor(t, "s1"), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransitionStatus(t *testing.T) {
	f := newFixture(t)
	token := f.tokenFor(t, "a1")

	w := f.do(http.MethodPut, "/api/complaints/REQ-2023-089/status", token, gin.H{
		"status": "SOLVED",
		"note":   "Treadmill belt replaced",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.StatusSolved, updated.Status)
	assert.Equal(t, "Treadmill belt replaced", updated.ResolutionNotes)
	assert.Equal(t, models.StatusSolved, updated.History[0].Status)
}

func TestTransitionStatusForbiddenForMember(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPut, "/api/complaints/REQ-2023-084/status", f.tokenFor(t, "u1"), gin.H{
		"status": "CLOSED",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTransitionStatusUnknownComplaint(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPut, "/api/complaints/REQ-0000-000/status", f.tokenFor(t, "a1"), gin.H{
		"status": "CLOSED",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssignTask(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPut, "/api/complaints/REQ-2023-089/assignment", f.tokenFor(t, "a1"), gin.H{
		"staff_name":          "Tarek Ali",
		"expected_resolution": "2023-11-20",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Complaint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.StatusInProgress, updated.Status)
	assert.Equal(t, "Tarek Ali", updated.AssignedTo)
	assert.NotNil(t, updated.AssignmentDate)
}

func TestAddMessage(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/complaints/REQ-2023-084/messages", f.tokenFor(t, "u1"), gin.H{
		"text": "Any update on this?",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var msg models.ChatMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "u1", msg.SenderID)
	assert.Equal(t, "Any update on this?", msg.Text)
}

func TestAddMessageOnAnotherMembersComplaint(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/complaints/REQ-2023-089/messages", f.tokenFor(t, "u1"), gin.H{
		"text": "Not mine",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddFeedback(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/complaints/REQ-2023-084/feedback", f.tokenFor(t, "u1"), gin.H{
		"rating":   5,
		"feedback": "Quick and friendly",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(http.MethodPost, "/api/complaints/REQ-2023-084/feedback", f.tokenFor(t, "u1"), gin.H{
		"rating": 9,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdatePriority(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPut, "/api/complaints/REQ-2023-089/priority", f.tokenFor(t, "a1"), gin.H{
		"priority": "URGENT",
	})
	assert.Equal(t, http.StatusNoContent, w.Code)

	updated, err := f.store.GetComplaint("REQ-2023-089")
	assert.NoError(t, err)
	assert.Equal(t, models.PriorityUrgent, updated.Priority)
}

func TestNotificationFeed(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/notifications", f.tokenFor(t, "u1"), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var feed []models.Notification
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.NotEmpty(t, feed)
	for i, n := range feed {
		assert.NotContains(t, n.ID, "REQ-2023-089", "members only see their own complaints in the feed")
		if i > 0 {
			assert.False(t, n.Timestamp.After(feed[i-1].Timestamp), "feed must be newest first")
		}
	}
}

func TestSubmitSubscriptionIsPublic(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/subscriptions", "", gin.H{
		"applicant_name": "Mona Adel",
		"member_id":      "778899",
		"phone_number":   "01234567890",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, f.store.SubscriptionRequests(), 2)
}

func TestDecideSubscriptionOnce(t *testing.T) {
	f := newFixture(t)
	token := f.tokenFor(t, "a1")

	w := f.do(http.MethodPut, "/api/subscriptions/SUB-101/decision", token, gin.H{
		"approve": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var decided models.SubscriptionRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decided))
	assert.Equal(t, models.SubscriptionApproved, decided.Status)

	// The decision is final; a second one conflicts.
	w = f.do(http.MethodPut, "/api/subscriptions/SUB-101/decision", token, gin.H{
		"approve": false,
		"reason":  "changed my mind",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDecideSubscriptionForbiddenForStaff(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPut, "/api/subscriptions/SUB-101/decision", f.tokenFor(t, "s1"), gin.H{
		"approve": true,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateAnnouncement(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/announcements", f.tokenFor(t, "a1"), gin.H{
		"title":     "Pool closed Friday",
		"content":   "Annual maintenance.",
		"category":  "ALERT",
		"is_urgent": true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, f.store.Announcements(), 3)
}

func TestExportComplaints(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/admin/complaints/export", f.tokenFor(t, "a1"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	body := w.Body.Bytes()
	assert.True(t, bytes.HasPrefix(body, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(body), fmt.Sprintf("REQ-2023-084;%s", "Ahmed Mohamed"))
}

func TestExportForbiddenForMember(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/admin/complaints/export", f.tokenFor(t, "u1"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
