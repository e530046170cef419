package router

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mkim2178/My-Jet/config"
	"github.com/mkim2178/My-Jet/controllers"
	"github.com/mkim2178/My-Jet/middlewares"
	"github.com/mkim2178/My-Jet/stores"
)

func UserRoutes(r *gin.Engine, client *mongo.Client, db string, secret []byte) {
	userStore := stores.NewUserStore(config.GetCollection(client, db, "users"))
	ticketStore := stores.NewTicketStore(config.GetCollection(client, db, "tickets"))
	ledger := stores.NewMileageLedger(userStore)
	userController := controllers.NewUserController(userStore, ticketStore, ledger, secret)

	r.POST("/token", userController.Token)
	r.POST("/create-user", userController.Register)
	r.POST("/login_result", userController.LoginResult)
	r.GET("/logout", userController.Logout)
	r.GET("/index", userController.Index)

	auth := middlewares.AuthMiddleware(secret, userStore)
	r.POST("/delete-my-account-post-confirm", auth, userController.DeleteAccount)
}
