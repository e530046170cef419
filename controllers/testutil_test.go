package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/mkim2178/My-Jet/middlewares"
	"github.com/mkim2178/My-Jet/models"
	"github.com/mkim2178/My-Jet/stores"
)

var testSecret = []byte("controller-test-secret")

// memUserStore is an in-memory UserStore that also backs the mileage
// ledger.
type memUserStore struct {
	users map[string]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]*models.User{}}
}

func (m *memUserStore) FindByLoginID(_ context.Context, loginID string) (*models.User, error) {
	user, ok := m.users[loginID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memUserStore) Create(_ context.Context, user models.User) error {
	if _, ok := m.users[user.LoginID]; ok {
		return stores.ErrDuplicateLoginID
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return stores.ErrDuplicateEmail
		}
	}
	m.users[user.LoginID] = &user
	return nil
}

func (m *memUserStore) Delete(_ context.Context, loginID string) error {
	delete(m.users, loginID)
	return nil
}

func (m *memUserStore) AdjustMileage(_ context.Context, loginID string, delta int) error {
	if user, ok := m.users[loginID]; ok {
		user.Mileage += delta
	}
	return nil
}

func (m *memUserStore) SetMileage(_ context.Context, loginID string, value int) error {
	if user, ok := m.users[loginID]; ok {
		user.Mileage = value
	}
	return nil
}

// memTicketStore is an in-memory TicketStore.
type memTicketStore struct {
	tickets []models.Ticket
}

func (m *memTicketStore) Create(_ context.Context, ticket models.Ticket) error {
	m.tickets = append(m.tickets, ticket)
	return nil
}

func (m *memTicketStore) FindAllByOwner(_ context.Context, owner string) ([]models.Ticket, error) {
	var result []models.Ticket
	for _, t := range m.tickets {
		if t.OwnerLoginID == owner {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *memTicketStore) DeleteAllByOwner(_ context.Context, owner string) error {
	var kept []models.Ticket
	for _, t := range m.tickets {
		if t.OwnerLoginID != owner {
			kept = append(kept, t)
		}
	}
	m.tickets = kept
	return nil
}

func (m *memTicketStore) DeleteOneByOwnerAndDate(_ context.Context, owner, date string) (bool, error) {
	for i, t := range m.tickets {
		if t.OwnerLoginID == owner && t.DepartureDate == date {
			m.tickets = append(m.tickets[:i], m.tickets[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *memTicketStore) CountByOwnerAndDate(_ context.Context, owner, date string) (int64, error) {
	var count int64
	for _, t := range m.tickets {
		if t.OwnerLoginID == owner && t.DepartureDate == date {
			count++
		}
	}
	return count, nil
}

// newTestServer wires the controllers over in-memory stores with the same
// routes the router package registers.
func newTestServer() (*gin.Engine, *memUserStore, *memTicketStore) {
	gin.SetMode(gin.TestMode)

	users := newMemUserStore()
	tickets := &memTicketStore{}
	ledger := stores.NewMileageLedger(users)
	userController := NewUserController(users, tickets, ledger, testSecret)
	ticketController := NewTicketController(tickets, ledger)

	r := gin.New()
	r.POST("/token", userController.Token)
	r.POST("/create-user", userController.Register)
	r.POST("/login_result", userController.LoginResult)
	r.GET("/logout", userController.Logout)
	r.GET("/index", userController.Index)

	auth := middlewares.AuthMiddleware(testSecret, users)
	r.POST("/delete-my-account-post-confirm", auth, userController.DeleteAccount)
	r.POST("/create-ticket", auth, ticketController.CreateTicket)
	r.GET("/my-tickets", auth, ticketController.MyTickets)
	r.GET("/private", auth, ticketController.Private)
	r.POST("/cancel-every-ticket-post-confirm", auth, ticketController.CancelAll)
	r.POST("/cancel-one-ticket-post-confirm", auth, ticketController.CancelOne)

	return r, users, tickets
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPath(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, loginID, email, password string) {
	t.Helper()
	w := postForm(r, "/create-user", url.Values{
		"login_id":   {loginID},
		"email":      {email},
		"birth_date": {"19990101"},
		"sex":        {"female"},
		"full_name":  {"Test User"},
		"password":   {password},
	})
	require.Equal(t, http.StatusFound, w.Code)
}

// expiredTokenCookie builds an access_token cookie whose JWT expired a
// minute ago.
func expiredTokenCookie(t *testing.T) *http.Cookie {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: "access_token", Value: "Bearer " + token}
}

// loginUser logs in through /login_result and returns the access_token
// cookie.
func loginUser(t *testing.T, r *gin.Engine, loginID, password string) *http.Cookie {
	t.Helper()
	w := postForm(r, "/login_result", url.Values{
		"login_id": {loginID},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == "access_token" {
			return c
		}
	}
	t.Fatal("no access_token cookie set")
	return nil
}
