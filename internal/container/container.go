package container

import (
	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/exercise-server/internal/accordion"
	"github.com/saulo-duarte/exercise-server/internal/auth"
	"github.com/saulo-duarte/exercise-server/internal/classroom"
	"github.com/saulo-duarte/exercise-server/internal/config"
	"github.com/saulo-duarte/exercise-server/internal/directory"
	"github.com/saulo-duarte/exercise-server/internal/navigation"
	"github.com/saulo-duarte/exercise-server/internal/navigator"
	"github.com/saulo-duarte/exercise-server/internal/quizbuilder"
	"github.com/saulo-duarte/exercise-server/internal/router"
	"github.com/saulo-duarte/exercise-server/internal/routes"
	"github.com/saulo-duarte/exercise-server/internal/session"
	"github.com/saulo-duarte/exercise-server/internal/statusbadge"
	"github.com/saulo-duarte/exercise-server/internal/studentcard"
	"github.com/saulo-duarte/exercise-server/internal/tabs"
)

type Container struct {
	Config *config.Config
	Store  *session.Store
	Router *chi.Mux
}

// Pages maps every exercise route to the constructor of its page state.
func Pages() map[routes.Key]navigator.Factory {
	return map[routes.Key]navigator.Factory{
		routes.StudentCard:     func() any { return studentcard.NewPage() },
		routes.StatusIndicator: func() any { return statusbadge.NewPage() },
		routes.Accordion:       func() any { return accordion.NewPage() },
		routes.FilterableList:  func() any { return directory.NewPage() },
		routes.Tabs:            func() any { return tabs.NewPage() },
		routes.MiniClassroom:   func() any { return classroom.NewPage() },
		routes.QuizBuilder:     func() any { return quizbuilder.NewPage() },
	}
}

func New(cfg *config.Config) *Container {
	config.Init(cfg)
	auth.Init(cfg.SessionSecret)

	store := session.NewStore(Pages(), cfg.SessionTTL)

	r := router.New(router.RouterConfig{
		Store:              store,
		AllowedOrigins:     cfg.AllowedOrigins,
		AuthHandler:        auth.NewHandler(store, cfg.SessionTTL),
		NavigationHandler:  navigation.NewHandler(),
		StudentCardHandler: studentcard.NewHandler(),
		StatusHandler:      statusbadge.NewHandler(),
		AccordionHandler:   accordion.NewHandler(),
		DirectoryHandler:   directory.NewHandler(),
		TabsHandler:        tabs.NewHandler(),
		ClassroomHandler:   classroom.NewHandler(),
		QuizHandler:        quizbuilder.NewHandler(),
	})

	return &Container{
		Config: cfg,
		Store:  store,
		Router: r,
	}
}
