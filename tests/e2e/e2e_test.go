package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turfbook/internal/database"
	"turfbook/internal/middleware"
	"turfbook/internal/modules/auth"
	"turfbook/internal/modules/booking"
	"turfbook/internal/modules/catalog"
	"turfbook/internal/modules/payment"
	"turfbook/internal/modules/review"
	"turfbook/internal/modules/team"
	jwtsvc "turfbook/internal/pkg/jwt"
	"turfbook/internal/repository"
)

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupRouter(t *testing.T) *gin.Engine {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	userRepo := repository.NewUserRepository(db)
	fieldRepo := repository.NewFieldRepository(db)
	slotRepo := repository.NewTimeSlotRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	catalogHandler := catalog.NewHandler(catalog.NewService(fieldRepo, slotRepo, reviewRepo, bookingRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, fieldRepo, slotRepo, teamRepo))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, fieldRepo))
	teamHandler := team.NewHandler(team.NewService(teamRepo, bookingRepo))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, fieldRepo, bookingRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	catalogHandler.RegisterPublicRoutes(v1)
	bookingHandler.RegisterPublicRoutes(v1)
	teamHandler.RegisterPublicRoutes(v1)
	reviewHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Auth(jwtService))
	{
		authHandler.RegisterProtectedRoutes(protected)
		bookingHandler.RegisterRoutes(protected)
		paymentHandler.RegisterRoutes(protected)
		teamHandler.RegisterRoutes(protected)
		reviewHandler.RegisterProtectedRoutes(protected)

		owner := protected.Group("/owner")
		owner.Use(middleware.FieldOwnerOnly())
		{
			catalogHandler.RegisterOwnerRoutes(owner)
		}
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp TestResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	}
	return w, resp
}

func registerAndLogin(t *testing.T, r *gin.Engine, username, role string) string {
	w, _ := doJSON(t, r, "POST", "/api/v1/auth/register", "", gin.H{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
		"name":     "Test " + username,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp := doJSON(t, r, "POST", "/api/v1/auth/login", "", gin.H{
		"username": username,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// Walks the whole paid-booking journey: an owner lists a field, one player
// reserves a slot, a second player hits the conflict, the first pays over
// bkash and ends up Confirmed with a BK-prefixed transaction id, and a
// repeat payment replays the same transaction.
func TestBookingAndPaymentFlow(t *testing.T) {
	r := setupRouter(t)

	ownerToken := registerAndLogin(t, r, "karim", "field_owner")
	player1 := registerAndLogin(t, r, "rafiq", "player")
	player2 := registerAndLogin(t, r, "tanvir", "player")

	// owner lists a $40/hr field
	w, resp := doJSON(t, r, "POST", "/api/v1/owner/fields", ownerToken, gin.H{
		"name":              "Mirpur Cricket Ground",
		"field_type":        "Cricket",
		"location":          "Mirpur, Dhaka",
		"cost_per_hour":     40,
		"availability_type": "Paid",
		"capacity":          22,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	field := resp.Data["field"].(map[string]interface{})
	fieldID := int64(field["id"].(float64))

	// the default slot templates came with it
	w, resp = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/fields/%d", fieldID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	slots := resp.Data["time_slots"].([]interface{})
	require.Len(t, slots, 11)
	slotID := int64(slots[0].(map[string]interface{})["id"].(float64))

	date := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	// player 1 reserves: 40 * 1.5 = 60.00, pending until paid
	w, resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/book/%d", fieldID), player1, gin.H{
		"booking_date":  date,
		"time_slot_id":  slotID,
		"players_count": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := resp.Data["booking"].(map[string]interface{})
	bookingID := int64(b["id"].(float64))
	assert.Equal(t, "Pending", b["status"])
	assert.Equal(t, 60.0, b["total_cost"])

	// player 2 wants the same slot on the same date
	w, resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/book/%d", fieldID), player2, gin.H{
		"booking_date":  date,
		"time_slot_id":  slotID,
		"players_count": 6,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "BOOKING_CONFLICT", resp.Error.Code)

	// the day view shows the slot as booked
	w, resp = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/fields/%d/availability?date=%s", fieldID, date), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	day := resp.Data["slots"].([]interface{})
	assert.True(t, day[0].(map[string]interface{})["is_booked"].(bool))

	// player 1 pays over bkash
	w, resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/payment/%d", bookingID), player1, gin.H{
		"payment_method": "bkash",
		"mobile":         "01812345678",
		"pin":            "4321",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	p := resp.Data["payment"].(map[string]interface{})
	txnID := p["transaction_id"].(string)
	assert.Equal(t, "BK", txnID[:2])
	assert.Equal(t, 60.0, p["amount"])
	assert.Equal(t, "bKash", resp.Data["payment_method"])

	w, resp = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/bookings/%d", bookingID), player1, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Confirmed", resp.Data["booking"].(map[string]interface{})["status"])

	// paying again replays the stored payment, same transaction id
	w, resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/payment/%d", bookingID), player1, gin.H{
		"payment_method": "bkash",
		"mobile":         "01812345678",
		"pin":            "4321",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, resp.Data["already_paid"])
	assert.Equal(t, txnID, resp.Data["payment"].(map[string]interface{})["transaction_id"])
}

func TestFreeFieldAutoConfirmsAndRejectsPayment(t *testing.T) {
	r := setupRouter(t)

	ownerToken := registerAndLogin(t, r, "karim", "field_owner")
	player := registerAndLogin(t, r, "rafiq", "player")

	w, resp := doJSON(t, r, "POST", "/api/v1/owner/fields", ownerToken, gin.H{
		"name":              "Gulshan Community Court",
		"field_type":        "Basketball",
		"location":          "Gulshan, Dhaka",
		"availability_type": "Free",
		"capacity":          10,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	fieldID := int64(resp.Data["field"].(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/fields/%d", fieldID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	slotID := int64(resp.Data["time_slots"].([]interface{})[0].(map[string]interface{})["id"].(float64))

	date := time.Now().Format("2006-01-02")
	w, resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/book/%d", fieldID), player, gin.H{
		"booking_date":  date,
		"time_slot_id":  slotID,
		"players_count": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	b := resp.Data["booking"].(map[string]interface{})
	bookingID := int64(b["id"].(float64))
	assert.Equal(t, "Confirmed", b["status"])
	assert.Equal(t, 0.0, b["total_cost"])

	w, resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/payment/%d", bookingID), player, gin.H{
		"payment_method": "nagad",
		"mobile":         "01712345678",
		"pin":            "1234",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "NO_PAYMENT_REQUIRED", resp.Error.Code)
}

func TestOwnerRoutesRejectPlayers(t *testing.T) {
	r := setupRouter(t)

	player := registerAndLogin(t, r, "rafiq", "player")

	w, _ := doJSON(t, r, "POST", "/api/v1/owner/fields", player, gin.H{
		"name":              "Sneaky Field",
		"field_type":        "Football",
		"location":          "Dhaka",
		"cost_per_hour":     10,
		"availability_type": "Paid",
		"capacity":          10,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTeamFormationJoinFlow(t *testing.T) {
	r := setupRouter(t)

	ownerToken := registerAndLogin(t, r, "karim", "field_owner")
	captain := registerAndLogin(t, r, "rafiq", "player")
	joiner := registerAndLogin(t, r, "tanvir", "player")

	w, resp := doJSON(t, r, "POST", "/api/v1/owner/fields", ownerToken, gin.H{
		"name":              "Community Court",
		"field_type":        "Basketball",
		"location":          "Gulshan, Dhaka",
		"availability_type": "Free",
		"capacity":          10,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	fieldID := int64(resp.Data["field"].(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/fields/%d", fieldID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	slotID := int64(resp.Data["time_slots"].([]interface{})[0].(map[string]interface{})["id"].(float64))

	// booking with a recruiting team attached; free field confirms instantly
	date := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	w, _ = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/book/%d", fieldID), captain, gin.H{
		"booking_date":  date,
		"time_slot_id":  slotID,
		"players_count": 4,
		"team": gin.H{
			"looking_for_players": true,
			"required_players":    6,
			"skill_level":         "Intermediate",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/fields/%d/teams", fieldID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	teams := resp.Data["teams"].([]interface{})
	require.Len(t, teams, 1)
	teamID := int64(teams[0].(map[string]interface{})["id"].(float64))

	w, _ = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/join-team/%d", teamID), joiner, gin.H{
		"message": "count me in",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// repeat request is refused without creating a duplicate
	w, resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/join-team/%d", teamID), joiner, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ALREADY_REQUESTED", resp.Error.Code)

	w, resp = doJSON(t, r, "GET", fmt.Sprintf("/api/v1/bookings/manage-team/%d", teamID), captain, nil)
	require.Equal(t, http.StatusOK, w.Code)
	requests := resp.Data["join_requests"].([]interface{})
	require.Len(t, requests, 1)
	requestID := int64(requests[0].(map[string]interface{})["id"].(float64))

	w, resp = doJSON(t, r, "POST", fmt.Sprintf("/api/v1/bookings/manage-team/%d", teamID), captain, gin.H{
		"request_id": requestID,
		"action":     "accept",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Accepted", resp.Data["join_request"].(map[string]interface{})["status"])
}
