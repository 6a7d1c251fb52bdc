package http

import (
	"net/http"
	"os"
	"path/filepath"

	"hospital-portal/internal/delivery/http/handler"
	"hospital-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	staticDir          string
	authHandler        *handler.AuthHandler
	wizardHandler      *handler.WizardHandler
	appointmentHandler *handler.AppointmentHandler
	slotHandler        *handler.SlotHandler
	productHandler     *handler.ProductHandler
	cartHandler        *handler.CartHandler
	orderHandler       *handler.OrderHandler
	addressHandler     *handler.AddressHandler
	authMiddleware     *middleware.AuthMiddleware
	guardMiddleware    *middleware.GuardMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	staticDir string,
	authHandler *handler.AuthHandler,
	wizardHandler *handler.WizardHandler,
	appointmentHandler *handler.AppointmentHandler,
	slotHandler *handler.SlotHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	addressHandler *handler.AddressHandler,
	authMiddleware *middleware.AuthMiddleware,
	guardMiddleware *middleware.GuardMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		staticDir:          staticDir,
		authHandler:        authHandler,
		wizardHandler:      wizardHandler,
		appointmentHandler: appointmentHandler,
		slotHandler:        slotHandler,
		productHandler:     productHandler,
		cartHandler:        cartHandler,
		orderHandler:       orderHandler,
		addressHandler:     addressHandler,
		authMiddleware:     authMiddleware,
		guardMiddleware:    guardMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login/patient", r.authHandler.LoginPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login/doctor", r.authHandler.LoginDoctor).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/refresh", r.authHandler.Refresh).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	// Booking wizard
	patient.HandleFunc("/booking", r.wizardHandler.Start).Methods(http.MethodPost)
	patient.HandleFunc("/booking", r.wizardHandler.Current).Methods(http.MethodGet)
	patient.HandleFunc("/booking", r.wizardHandler.Cancel).Methods(http.MethodDelete)
	patient.HandleFunc("/booking/patient-info", r.wizardHandler.SubmitPatientInfo).Methods(http.MethodPost)
	patient.HandleFunc("/booking/date", r.wizardHandler.SelectDate).Methods(http.MethodPost)
	patient.HandleFunc("/booking/slot", r.wizardHandler.SelectSlot).Methods(http.MethodPost)
	patient.HandleFunc("/booking/back", r.wizardHandler.Back).Methods(http.MethodPost)
	patient.HandleFunc("/booking/confirm", r.wizardHandler.Confirm).Methods(http.MethodPost)

	// Appointments
	patient.HandleFunc("/appointments", r.appointmentHandler.GetMySchedule).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)
	patient.HandleFunc("/slots", r.slotHandler.GetAvailableSlots).Methods(http.MethodGet)

	// Medicine shop
	patient.HandleFunc("/products", r.productHandler.GetProducts).Methods(http.MethodGet)
	patient.HandleFunc("/cart", r.cartHandler.GetCart).Methods(http.MethodGet)
	patient.HandleFunc("/cart/items", r.cartHandler.AddItem).Methods(http.MethodPost)
	patient.HandleFunc("/cart/items", r.cartHandler.UpdateQuantity).Methods(http.MethodPatch)
	patient.HandleFunc("/cart/items/{productId}", r.cartHandler.RemoveItem).Methods(http.MethodDelete)
	patient.HandleFunc("/cart/delivery-method", r.cartHandler.SetDeliveryMethod).Methods(http.MethodPut)
	patient.HandleFunc("/cart/address", r.cartHandler.SelectAddress).Methods(http.MethodPut)
	patient.HandleFunc("/cart/checkout", r.cartHandler.Checkout).Methods(http.MethodPost)

	// Orders and payment
	patient.HandleFunc("/orders", r.orderHandler.GetMyOrders).Methods(http.MethodGet)
	patient.HandleFunc("/orders/{id}/pay", r.orderHandler.Pay).Methods(http.MethodPost)
	patient.HandleFunc("/orders/{id}/confirm-payment", r.orderHandler.ConfirmPayment).Methods(http.MethodPost)

	// Delivery addresses
	patient.HandleFunc("/addresses", r.addressHandler.GetMyAddresses).Methods(http.MethodGet)
	patient.HandleFunc("/addresses", r.addressHandler.CreateAddress).Methods(http.MethodPost)
	patient.HandleFunc("/addresses/{id}", r.addressHandler.UpdateAddress).Methods(http.MethodPut)
	patient.HandleFunc("/addresses/{id}", r.addressHandler.DeleteAddress).Methods(http.MethodDelete)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/appointments", r.appointmentHandler.GetDoctorSchedule).Methods(http.MethodGet)
	doctor.HandleFunc("/appointments/{id}/ready", r.appointmentHandler.MarkReady).Methods(http.MethodPatch)
	doctor.HandleFunc("/appointments/{id}/waiting-for-prescription", r.appointmentHandler.MarkWaitingForPrescription).Methods(http.MethodPatch)
	doctor.HandleFunc("/appointments/{id}/completed", r.appointmentHandler.MarkCompleted).Methods(http.MethodPatch)

	doctor.HandleFunc("/slots", r.slotHandler.GetMySlots).Methods(http.MethodGet)
	doctor.HandleFunc("/slots", r.slotHandler.CreateSlot).Methods(http.MethodPost)
	doctor.HandleFunc("/slots/{id}", r.slotHandler.EditSlot).Methods(http.MethodPut)
	doctor.HandleFunc("/slots/{id}", r.slotHandler.DeleteSlot).Methods(http.MethodDelete)

	doctor.HandleFunc("/deliveries", r.orderHandler.GetDeliveryBoard).Methods(http.MethodGet)
	doctor.HandleFunc("/deliveries/{id}/confirm", r.orderHandler.ConfirmDelivery).Methods(http.MethodPatch)

	// Page routes: everything else serves the front-end behind the guard.
	pages := r.guardMiddleware.Guard(http.HandlerFunc(r.servePage))
	r.router.PathPrefix("/").Handler(pages)

	// Add middleware applied to the whole tree
	r.router.Use(middleware.RequestID)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

// servePage serves the built front-end: real files as-is, anything else falls
// back to index.html so client-side routes resolve.
func (r *Router) servePage(w http.ResponseWriter, req *http.Request) {
	requested := filepath.Join(r.staticDir, filepath.Clean("/"+req.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		http.ServeFile(w, req, requested)
		return
	}

	index := filepath.Join(r.staticDir, "index.html")
	if _, err := os.Stat(index); err == nil {
		http.ServeFile(w, req, index)
		return
	}

	http.NotFound(w, req)
}
