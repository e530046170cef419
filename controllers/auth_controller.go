package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkim2178/My-Jet/middlewares"
	"github.com/mkim2178/My-Jet/models"
	"github.com/mkim2178/My-Jet/stores"
	"github.com/mkim2178/My-Jet/utils"
	"github.com/mkim2178/My-Jet/validations"
)

// loginTokenTTL is the lifetime of tokens issued through the login flow.
const loginTokenTTL = 10 * time.Minute

type UserController struct {
	users   UserStore
	tickets TicketStore
	ledger  MileageLedger
	secret  []byte
}

func NewUserController(users UserStore, tickets TicketStore, ledger MileageLedger, secret []byte) *UserController {
	return &UserController{users: users, tickets: tickets, ledger: ledger, secret: secret}
}

// authenticate resolves credentials to a user, or nil if the login id is
// unknown or the password is wrong. Both failures look identical to the
// caller.
func (uc *UserController) authenticate(c *gin.Context, loginID, password string) (*models.User, error) {
	user, err := uc.users.FindByLoginID(c.Request.Context(), loginID)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(password, user.HashedPassword) {
		return nil, nil
	}
	return user, nil
}

// Token issues a bearer JWT for valid credentials.
// POST /token, form fields: username, password.
func (uc *UserController) Token(c *gin.Context) {
	var req validations.TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.authenticate(c, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to authenticate user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect Login ID or Password."})
		return
	}

	token, err := utils.GenerateToken(uc.secret, user.LoginID, loginTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, models.Token{AccessToken: token, TokenType: "bearer"})
}

// Register creates a new user account with zero mileage.
// POST /create-user, form fields: login_id, email, birth_date, sex,
// full_name, password.
func (uc *UserController) Register(c *gin.Context) {
	var req validations.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	newUser := models.User{
		LoginID:        req.LoginID,
		Email:          req.Email,
		BirthDate:      req.BirthDate,
		Sex:            req.Sex,
		FullName:       req.FullName,
		HashedPassword: hashedPassword,
		Mileage:        0,
	}

	err = uc.users.Create(c.Request.Context(), newUser)
	switch {
	case errors.Is(err, stores.ErrDuplicateLoginID):
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Login ID: %s is already registered. Please use a different Login ID.", req.LoginID)})
		return
	case errors.Is(err, stores.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Email: %s is already registered. Please use a different email.", req.Email)})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.Redirect(http.StatusFound, "/index")
}

// LoginResult authenticates form credentials and stores the token in an
// HTTP-only cookie as "Bearer <jwt>".
// POST /login_result, form fields: login_id, password.
func (uc *UserController) LoginResult(c *gin.Context) {
	var req validations.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.authenticate(c, req.LoginID, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to authenticate user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect Login ID or Password."})
		return
	}

	token, err := utils.GenerateToken(uc.secret, user.LoginID, loginTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.SetCookie("access_token", "Bearer "+token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/index")
}

// Logout clears the token cookie. The token itself stays valid until it
// expires; there is no revocation list.
// GET /logout.
func (uc *UserController) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/index")
}

// Index is the public status page: a greeting when the visitor holds a
// valid token, a login prompt otherwise.
// GET /index.
func (uc *UserController) Index(c *gin.Context) {
	status := "Sign up or Login!"
	needToLogin := true

	if tokenString, err := c.Cookie("access_token"); err == nil {
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		loginID, parseErr := utils.ParseToken(uc.secret, tokenString)
		switch {
		case errors.Is(parseErr, utils.ErrTokenExpired):
			status = "Your token has expired. Login again!"
		case parseErr == nil:
			user, findErr := uc.users.FindByLoginID(c.Request.Context(), loginID)
			if findErr == nil && user != nil {
				status = fmt.Sprintf("Hello, %s.", user.LoginID)
				needToLogin = false
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"user_status": status, "need_to_login": needToLogin})
}

// DeleteAccount cancels every ticket, zeroes the mileage and deletes the
// user, then clears the cookie. The steps run sequentially with no
// rollback: a failure partway leaves the earlier steps applied.
// POST /delete-my-account-post-confirm, requires auth.
func (uc *UserController) DeleteAccount(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "couldn't validate credentials"})
		return
	}

	ctx := c.Request.Context()
	if err := uc.tickets.DeleteAllByOwner(ctx, user.LoginID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tickets"})
		return
	}
	if err := uc.ledger.OnCancelAll(ctx, user.LoginID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset mileage"})
		return
	}
	if err := uc.users.Delete(ctx, user.LoginID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}

	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/index")
}
