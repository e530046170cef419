package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mkim2178/My-Jet/config"
	"github.com/mkim2178/My-Jet/controllers"
	"github.com/mkim2178/My-Jet/middlewares"
	"github.com/mkim2178/My-Jet/stores"
)

func TicketRoutes(r *gin.Engine, client *mongo.Client, db string, secret []byte) {
	userStore := stores.NewUserStore(config.GetCollection(client, db, "users"))
	ticketStore := stores.NewTicketStore(config.GetCollection(client, db, "tickets"))
	ledger := stores.NewMileageLedger(userStore)
	ticketController := controllers.NewTicketController(ticketStore, ledger)

	auth := middlewares.AuthMiddleware(secret, userStore)
	r.POST("/create-ticket", auth, ticketController.CreateTicket)
	r.GET("/my-tickets", auth, ticketController.MyTickets)
	r.GET("/private", auth, ticketController.Private)
	r.POST("/cancel-every-ticket-post-confirm", auth, ticketController.CancelAll)
	r.POST("/cancel-one-ticket-post-confirm", auth, ticketController.CancelOne)
}
