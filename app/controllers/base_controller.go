package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/unrolled/render"
	"github.com/urfave/cli"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/oussama2210/intimate-essentials-shop/app/delivery"
	"github.com/oussama2210/intimate-essentials-shop/app/location"
	"github.com/oussama2210/intimate-essentials-shop/app/models"
	"github.com/oussama2210/intimate-essentials-shop/app/ordering"
	"github.com/oussama2210/intimate-essentials-shop/database/seeders"
)

type Server struct {
	DB        *gorm.DB
	Router    *mux.Router
	AppConfig *AppConfig

	Catalog *location.Catalog
	Engine  *delivery.Engine
	Orders  OrderService

	// Sessions is injectable so the admin auth story is not tied to a
	// single-process cookie store in other deployments.
	Sessions sessions.Store

	render   *render.Render
	validate *validator.Validate
}

// OrderService is what the boundary needs from the order transaction
// coordinator; handler tests substitute a stub.
type OrderService interface {
	Create(ctx context.Context, in ordering.CreateOrderInput) (*models.Order, error)
}

type AppConfig struct {
	AppName string
	AppEnv  string
	AppPort string
	AppURL  string
}

type DBConfig struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

// Result is the JSON envelope every endpoint responds with.
type Result struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

const sessionAdmin = "admin-session"

func (server *Server) Initialize(appConfig AppConfig, dbConfig DBConfig) {
	fmt.Println("Welcome to " + appConfig.AppName)

	server.initializeDB(dbConfig)
	server.initializeCore()
	server.initializeAppConfig(appConfig)
	server.initializeRoutes()
}

func (server *Server) Run(addr string) {
	fmt.Printf("Listening to port %s", addr)
	log.Fatal(http.ListenAndServe(addr, server.Router))
}

func (server *Server) initializeDB(dbConfig DBConfig) {
	var err error
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Africa/Algiers",
		dbConfig.DBHost, dbConfig.DBUser, dbConfig.DBPassword, dbConfig.DBName, dbConfig.DBPort)
	// TranslateError maps unique violations onto gorm.ErrDuplicatedKey,
	// which the order store relies on to detect tracking-number races.
	server.DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed on connecting to the database server")
	}
}

// initializeCore wires the location catalog, pricing engine and order
// coordinator. Pricing constants may be overridden through the environment.
func (server *Server) initializeCore() {
	server.Catalog = location.NewCatalog()
	server.Engine = delivery.NewEngine(server.Catalog, delivery.ConfigFromEnv())
	server.Orders = ordering.NewCoordinator(ordering.NewGormStore(server.DB), server.Catalog, server.Engine)
	server.Sessions = sessions.NewCookieStore([]byte(os.Getenv("SESSION_KEY")))
	server.render = render.New()
	server.validate = validator.New(validator.WithRequiredStructEnabled())
}

func (server *Server) initializeAppConfig(appConfig AppConfig) {
	server.AppConfig = &appConfig
}

func (server *Server) dbMigrate() {
	for _, model := range models.RegisterModels() {
		err := server.DB.AutoMigrate(model.Model)
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println("Database migrate successfully")
}

func (server *Server) InitCommands(config AppConfig, dbConfig DBConfig) {
	server.initializeDB(dbConfig)

	cmdApp := cli.NewApp()
	cmdApp.Commands = []cli.Command{
		{
			Name: "db:migrate",
			Action: func(c *cli.Context) error {
				server.dbMigrate()
				return nil
			},
		},
		{
			Name: "db:seed",
			Action: func(c *cli.Context) error {
				err := seeders.DBSeed(server.DB)
				if err != nil {
					log.Fatal(err)
				}

				return nil
			},
		},
		{
			Name: "db:fake",
			Action: func(c *cli.Context) error {
				err := seeders.DBFake(server.DB)
				if err != nil {
					log.Fatal(err)
				}

				return nil
			},
		},
	}

	err := cmdApp.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func (server *Server) respondData(w http.ResponseWriter, status int, data interface{}) {
	_ = server.render.JSON(w, status, Result{Success: true, Data: data})
}

func (server *Server) respondMessage(w http.ResponseWriter, status int, data interface{}, message string) {
	_ = server.render.JSON(w, status, Result{Success: true, Data: data, Message: message})
}

func (server *Server) respondError(w http.ResponseWriter, status int, code string, message string) {
	_ = server.render.JSON(w, status, Result{Success: false, Error: &APIError{Code: code, Message: message}})
}

func (server *Server) respondValidationError(w http.ResponseWriter, code string, err error) {
	details := validationDetails(err)
	_ = server.render.JSON(w, http.StatusBadRequest, Result{
		Success: false,
		Error:   &APIError{Code: code, Message: "Invalid input data", Details: details},
	})
}

// validationDetails flattens validator errors into field-level messages.
func validationDetails(err error) []map[string]string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []map[string]string{{"message": err.Error()}}
	}

	var details []map[string]string
	for _, fe := range verrs {
		details = append(details, map[string]string{
			"field":   fe.Field(),
			"message": fieldErrorMessage(fe),
		})
	}
	return details
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s validation", fe.Field(), fe.Tag())
	}
}

func ComparePassword(password string, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

func MakePassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	return string(hashedPassword), err
}
