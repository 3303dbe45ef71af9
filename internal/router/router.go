package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/exercise-server/internal/accordion"
	"github.com/saulo-duarte/exercise-server/internal/auth"
	"github.com/saulo-duarte/exercise-server/internal/classroom"
	"github.com/saulo-duarte/exercise-server/internal/directory"
	_ "github.com/saulo-duarte/exercise-server/internal/docs"
	"github.com/saulo-duarte/exercise-server/internal/middlewares"
	"github.com/saulo-duarte/exercise-server/internal/navigation"
	"github.com/saulo-duarte/exercise-server/internal/quizbuilder"
	"github.com/saulo-duarte/exercise-server/internal/session"
	"github.com/saulo-duarte/exercise-server/internal/statusbadge"
	"github.com/saulo-duarte/exercise-server/internal/studentcard"
	"github.com/saulo-duarte/exercise-server/internal/tabs"
)

type RouterConfig struct {
	Store          *session.Store
	AllowedOrigins []string

	AuthHandler        *auth.Handler
	NavigationHandler  *navigation.Handler
	StudentCardHandler *studentcard.Handler
	StatusHandler      *statusbadge.Handler
	AccordionHandler   *accordion.Handler
	DirectoryHandler   *directory.Handler
	TabsHandler        *tabs.Handler
	ClassroomHandler   *classroom.Handler
	QuizHandler        *quizbuilder.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/exercises", cfg.NavigationHandler.ListExercises)
	r.Post("/sessions", cfg.AuthHandler.CreateSession)

	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(cfg.Store))

		r.Delete("/sessions", cfg.AuthHandler.EndSession)
		r.Mount("/navigation", navigation.Routes(cfg.NavigationHandler))

		r.Route("/pages", func(r chi.Router) {
			r.Mount("/student-card", studentcard.Routes(cfg.StudentCardHandler))
			r.Mount("/status", statusbadge.Routes(cfg.StatusHandler))
			r.Mount("/accordion", accordion.Routes(cfg.AccordionHandler))
			r.Mount("/directory", directory.Routes(cfg.DirectoryHandler))
			r.Mount("/tabs", tabs.Routes(cfg.TabsHandler))
			r.Mount("/classroom", classroom.Routes(cfg.ClassroomHandler))
			r.Mount("/quiz", quizbuilder.Routes(cfg.QuizHandler))
		})
	})
	return r
}
