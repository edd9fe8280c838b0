package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sports-academy/backend/internal/handlers"
	"github.com/sports-academy/backend/internal/middleware"
	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store"
	"github.com/sports-academy/backend/internal/utils"
)

// SetupRouter wires every route with its guard chain.
func SetupRouter(s store.Store, secret []byte, intents handlers.IntentCreator, mailer *utils.Mailer) *mux.Router {
	router := mux.NewRouter()

	authed := middleware.RequireAuth(secret)
	admin := middleware.Require(middleware.HasRole(s, models.RoleAdmin))
	instructor := middleware.Require(middleware.HasRole(s, models.RoleInstructor))

	tokenHandler := handlers.NewTokenHandler(secret)
	classHandler := handlers.NewClassHandler(s)
	referenceHandler := handlers.NewReferenceHandler(s)
	userHandler := handlers.NewUserHandler(s)
	cartHandler := handlers.NewCartHandler(s)
	enrollmentHandler := handlers.NewEnrollmentHandler(s, mailer)
	paymentHandler := handlers.NewPaymentHandler(intents)

	// liveness
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("sports is running"))
	}).Methods("GET")

	router.HandleFunc("/jwt", tokenHandler.IssueToken).Methods("POST")

	// public reference data
	router.HandleFunc("/classes", classHandler.PopularClasses).Methods("GET")
	router.HandleFunc("/category", referenceHandler.Categories).Methods("GET")
	router.HandleFunc("/instructors", referenceHandler.Instructors).Methods("GET")
	router.HandleFunc("/reviews", referenceHandler.Reviews).Methods("GET")
	router.HandleFunc("/allClasses", classHandler.ApprovedOfferings).Methods("GET")

	// class offerings
	router.Handle("/getClasses", authed(http.HandlerFunc(classHandler.AllOfferings))).Methods("GET")
	router.Handle("/getClasses/{email}", authed(instructor(http.HandlerFunc(classHandler.OfferingsByInstructor)))).Methods("GET")
	router.Handle("/createClasses", authed(instructor(http.HandlerFunc(classHandler.CreateOffering)))).Methods("POST")
	router.Handle("/updateClasses/{id}", authed(instructor(http.HandlerFunc(classHandler.UpdateOffering)))).Methods("PUT")
	router.Handle("/deleteClass/{id}", authed(instructor(http.HandlerFunc(classHandler.DeleteOffering)))).Methods("DELETE")
	router.Handle("/sendFeedback/{id}", authed(admin(http.HandlerFunc(classHandler.SendFeedback)))).Methods("PUT")
	router.Handle("/approveClass/{id}", authed(admin(http.HandlerFunc(classHandler.ApproveClass)))).Methods("PATCH")

	// cart
	router.Handle("/selectedClass", authed(http.HandlerFunc(cartHandler.SelectedClass))).Methods("GET")
	router.Handle("/addToCarts", authed(http.HandlerFunc(cartHandler.AddToCart))).Methods("POST")
	router.Handle("/removeClasses/{id}", authed(http.HandlerFunc(cartHandler.RemoveClass))).Methods("DELETE")

	// users
	router.Handle("/findUsers", authed(admin(http.HandlerFunc(userHandler.FindUsers)))).Methods("GET")
	router.Handle("/userRole/{email}", authed(http.HandlerFunc(userHandler.UserRole))).Methods("GET")
	router.Handle("/addUsers", authed(http.HandlerFunc(userHandler.AddUser))).Methods("POST")
	router.Handle("/users/admin/{id}", authed(admin(http.HandlerFunc(userHandler.MakeAdmin)))).Methods("PATCH")
	router.Handle("/users/instructor/{id}", authed(admin(http.HandlerFunc(userHandler.MakeInstructor)))).Methods("PATCH")

	// payment + enrollment
	router.Handle("/create_payment_intent", authed(http.HandlerFunc(paymentHandler.CreatePaymentIntent))).Methods("POST")
	router.Handle("/enrolled", authed(http.HandlerFunc(enrollmentHandler.Enroll))).Methods("POST")
	router.Handle("/getEnrolledClasses", authed(http.HandlerFunc(enrollmentHandler.EnrolledClasses))).Methods("GET")

	return router
}
