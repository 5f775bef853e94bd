package container

import (
	"fmt"
	"sync"
	"sync/atomic"

	"teahouse-backend/internal/config"

	"teahouse-backend/internal/domains/brew"
	brewHandler "teahouse-backend/internal/domains/brew/handler"
	brewRepo "teahouse-backend/internal/domains/brew/repository"
	brewService "teahouse-backend/internal/domains/brew/service"
	"teahouse-backend/internal/domains/steep"
	steepHandler "teahouse-backend/internal/domains/steep/handler"
	steepRepo "teahouse-backend/internal/domains/steep/repository"
	steepService "teahouse-backend/internal/domains/steep/service"
	"teahouse-backend/internal/domains/tea"
	teaHandler "teahouse-backend/internal/domains/tea/handler"
	teaRepo "teahouse-backend/internal/domains/tea/repository"
	teaService "teahouse-backend/internal/domains/tea/service"
	"teahouse-backend/internal/domains/teapot"
	teapotHandler "teahouse-backend/internal/domains/teapot/handler"
	teapotRepo "teahouse-backend/internal/domains/teapot/repository"
	teapotService "teahouse-backend/internal/domains/teapot/service"
)

// Container holds the whole dependency graph. The stores are explicit
// instances, never package globals: a fresh container is a fresh,
// empty fixture, which is also what tests construct per case.
type Container struct {
	Config *config.Config

	// Ready gates /health/ready; the server flips it after startup.
	Ready atomic.Bool

	TeapotRepo teapot.TeapotRepository
	TeaRepo    tea.TeaRepository
	BrewRepo   brew.BrewRepository
	SteepRepo  steep.SteepRepository

	TeapotService teapot.TeapotService
	TeaService    tea.TeaService
	BrewService   brew.BrewService
	SteepService  steep.SteepService

	TeapotHandler *teapotHandler.TeapotHandler
	TeaHandler    *teaHandler.TeaHandler
	BrewHandler   *brewHandler.BrewHandler
	SteepHandler  *steepHandler.SteepHandler
}

// NewContainer builds the dependency graph bottom-up: config, stores,
// services, handlers.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c := &Container{Config: cfg}

	c.TeapotRepo = teapotRepo.NewMemoryTeapotRepository()
	c.TeaRepo = teaRepo.NewMemoryTeaRepository()
	c.BrewRepo = brewRepo.NewMemoryBrewRepository()
	c.SteepRepo = steepRepo.NewMemorySteepRepository()

	// One mutex shared by exactly two operations: steep creation and
	// brew cascade delete. See the service comments.
	brewGuard := &sync.Mutex{}

	c.TeapotService = teapotService.NewTeapotService(c.TeapotRepo)
	c.TeaService = teaService.NewTeaService(c.TeaRepo)
	c.BrewService = brewService.NewBrewService(c.BrewRepo, c.TeapotRepo, c.TeaRepo, c.SteepRepo, brewGuard)
	c.SteepService = steepService.NewSteepService(c.SteepRepo, c.BrewRepo, brewGuard)

	c.TeapotHandler = teapotHandler.NewTeapotHandler(c.TeapotService)
	c.TeaHandler = teaHandler.NewTeaHandler(c.TeaService)
	c.BrewHandler = brewHandler.NewBrewHandler(c.BrewService)
	c.SteepHandler = steepHandler.NewSteepHandler(c.SteepService)

	return c, nil
}
