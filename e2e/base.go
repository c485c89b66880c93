package e2e

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"

	"inbox-lab/domain/event"
	"inbox-lab/eventbus"
	"inbox-lab/repositories"
)

// Stack is the wired daemon, minus the process boundary: a fresh database,
// the store, the subscription repository and the bus, rebuilt per test.
type Stack struct {
	DB            *badger.DB
	Store         *repositories.EventRepository
	Subscriptions *repositories.SubscriptionRepository
	Bus           *eventbus.Bus
	Deliveries    chan event.StoredEvent
}

type BaseInboxSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseInboxSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// Step prints a colorized header for the current scenario step in logs
func (s *BaseInboxSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// NewStack opens a throwaway database and wires the full event pipeline on it.
func (s *BaseInboxSuite) NewStack() *Stack {
	req := s.Require()
	log := logs.GetLoggerFromString(s.Config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	store := repositories.NewEventRepository(db, log)
	return &Stack{
		DB:            db,
		Store:         store,
		Subscriptions: repositories.NewSubscriptionRepository(db),
		Bus:           eventbus.New(store, log),
		Deliveries:    make(chan event.StoredEvent, 16),
	}
}
