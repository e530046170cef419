package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkim2178/My-Jet/middlewares"
	"github.com/mkim2178/My-Jet/models"
	"github.com/mkim2178/My-Jet/validations"
)

type TicketController struct {
	tickets TicketStore
	ledger  MileageLedger
}

func NewTicketController(tickets TicketStore, ledger MileageLedger) *TicketController {
	return &TicketController{tickets: tickets, ledger: ledger}
}

// CreateTicket books a flight for the current user and credits the
// booking reward. Rejected with 409 when the endpoints match or the user
// already flies on that date.
// POST /create-ticket, form fields: starting_point, ending_point,
// departure_date, jet_type. Requires auth.
func (tc *TicketController) CreateTicket(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "couldn't validate credentials"})
		return
	}

	var req validations.CreateTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket := models.Ticket{
		StartingPoint: req.StartingPoint,
		EndingPoint:   req.EndingPoint,
		DepartureDate: req.DepartureDate,
		JetType:       req.JetType,
		OwnerLoginID:  user.LoginID,
	}

	ctx := c.Request.Context()
	valid, err := validations.TicketIsValid(ctx, tc.tickets, ticket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate ticket"})
		return
	}
	if !valid {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf(
			"Invalid Ticket Information: Check your flight schedule on %s (You can't book two flights per day). Check the starting and ending points (They should be different).",
			req.DepartureDate)})
		return
	}

	if err := tc.tickets.Create(ctx, ticket); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create ticket"})
		return
	}
	if err := tc.ledger.OnBooking(ctx, user.LoginID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update mileage"})
		return
	}

	c.Redirect(http.StatusFound, "/private")
}

// MyTickets lists the current user's tickets keyed "Ticket 1", "Ticket 2",
// and so on.
// GET /my-tickets, requires auth.
func (tc *TicketController) MyTickets(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "couldn't validate credentials"})
		return
	}

	tickets, err := tc.tickets.FindAllByOwner(c.Request.Context(), user.LoginID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tickets"})
		return
	}
	if len(tickets) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "You don't have any tickets!"})
		return
	}

	response := gin.H{}
	for i, ticket := range tickets {
		response[fmt.Sprintf("Ticket %d", i+1)] = ticket
	}
	c.JSON(http.StatusOK, response)
}

// Private shows the current user's profile, mileage and tickets.
// GET /private, requires auth.
func (tc *TicketController) Private(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "couldn't validate credentials"})
		return
	}

	tickets, err := tc.tickets.FindAllByOwner(c.Request.Context(), user.LoginID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tickets"})
		return
	}

	userTickets := gin.H{}
	for i, ticket := range tickets {
		userTickets[fmt.Sprintf("Ticket %d", i+1)] = ticket
	}

	c.JSON(http.StatusOK, gin.H{
		"login_id":         user.LoginID,
		"email":            user.Email,
		"birth_date":       user.BirthDate,
		"sex":              user.Sex,
		"full_name":        user.FullName,
		"user_mileage":     user.Mileage,
		"user_tickets":     userTickets,
		"show_cancel_menu": len(tickets) > 0,
	})
}

// CancelAll deletes every ticket the user owns and resets the mileage to
// zero.
// POST /cancel-every-ticket-post-confirm, requires auth.
func (tc *TicketController) CancelAll(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "couldn't validate credentials"})
		return
	}

	ctx := c.Request.Context()
	if err := tc.tickets.DeleteAllByOwner(ctx, user.LoginID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tickets"})
		return
	}
	if err := tc.ledger.OnCancelAll(ctx, user.LoginID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset mileage"})
		return
	}

	c.Redirect(http.StatusFound, "/private")
}

// CancelOne deletes the user's ticket on the given departure date and
// debits the booking reward. The delete is scoped to the owner, so a date
// booked only by someone else is a 404 and the mileage stays untouched.
// POST /cancel-one-ticket-post-confirm, form field: cancel_date. Requires
// auth.
func (tc *TicketController) CancelOne(c *gin.Context) {
	user, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "couldn't validate credentials"})
		return
	}

	var req validations.CancelTicketRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	deleted, err := tc.tickets.DeleteOneByOwnerAndDate(ctx, user.LoginID, req.CancelDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete ticket"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("You don't have a flight on %s", req.CancelDate)})
		return
	}
	if err := tc.ledger.OnCancelOne(ctx, user.LoginID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update mileage"})
		return
	}

	c.Redirect(http.StatusFound, "/private")
}
