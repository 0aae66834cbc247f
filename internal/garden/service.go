package garden

import (
	"context"
	"fmt"
	"time"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/domain"
	"github.com/pipstudio/kitchengarden/internal/event"
	"github.com/pipstudio/kitchengarden/internal/logger"
)

// HarvestResult describes what a successful harvest produced.
type HarvestResult struct {
	Vegetable domain.VegetableID `json:"vegetable"`
	Yield     int                `json:"yield"`
	XPAwarded int                `json:"xp_awarded"`
}

// Service defines the interface for garden operations. Every method
// validates fully before mutating the shared PlayerProgress, so a failed
// intent leaves the garden untouched.
type Service interface {
	Plant(ctx context.Context, p *domain.PlayerProgress, plotID int, veg domain.VegetableID) error
	Water(ctx context.Context, p *domain.PlayerProgress, plotID int) error
	Harvest(ctx context.Context, p *domain.PlayerProgress, plotID int) (*HarvestResult, error)
	PlotState(p *domain.PlayerProgress, plotID int) (domain.PlotState, error)
	GrowthProgress(p *domain.PlayerProgress, plotID int) (float64, error)
	Refresh(p *domain.PlayerProgress)
}

type service struct {
	catalog *catalog.Catalog
	bus     event.Bus
	now     func() time.Time
}

// NewService creates a new garden service.
func NewService(cat *catalog.Catalog, bus event.Bus) Service {
	return &service{
		catalog: cat,
		bus:     bus,
		now:     time.Now,
	}
}

// NewServiceWithClock creates a garden service with an injected clock,
// used by tests to drive growth deterministically.
func NewServiceWithClock(cat *catalog.Catalog, bus event.Bus, now func() time.Time) Service {
	return &service{
		catalog: cat,
		bus:     bus,
		now:     now,
	}
}

// plot fetches a plot by slot index and normalizes its state to the
// current instant before the caller inspects it.
func (s *service) plot(p *domain.PlayerProgress, plotID int, now time.Time) (*domain.Plot, domain.VegetableType, error) {
	plot := p.Plot(plotID)
	if plot == nil {
		return nil, domain.VegetableType{}, fmt.Errorf("%w: %d", domain.ErrPlotNotFound, plotID)
	}

	var veg domain.VegetableType
	if !plot.IsEmpty() {
		var err error
		veg, err = s.catalog.Vegetable(plot.Vegetable)
		if err != nil {
			return nil, domain.VegetableType{}, err
		}
		plot.State = stateAt(plot, veg, now)
	}
	return plot, veg, nil
}

func (s *service) Plant(ctx context.Context, p *domain.PlayerProgress, plotID int, vegID domain.VegetableID) error {
	log := logger.FromContext(ctx)
	now := s.now()

	plot, _, err := s.plot(p, plotID, now)
	if err != nil {
		return err
	}
	veg, err := s.catalog.Vegetable(vegID)
	if err != nil {
		return err
	}

	if !plot.IsEmpty() {
		return fmt.Errorf("%w: plot %d is %s", domain.ErrInvalidState, plotID, plot.State)
	}
	if p.SeedCount(vegID) < 1 {
		return fmt.Errorf("%w: no %s seeds", domain.ErrInsufficientSeeds, vegID)
	}

	p.Seeds[vegID]--
	planted := now
	plot.State = domain.PlotGrowing
	plot.Vegetable = vegID
	plot.PlantedAt = &planted
	plot.LastWateredAt = nil
	plot.Paused = 0

	log.Info("Vegetable planted", "plot", plotID, "vegetable", vegID, "growth_duration", veg.GrowthDuration)
	s.publish(ctx, event.NewPlotPlantedEvent(plotID, vegID, now))
	return nil
}

func (s *service) Water(ctx context.Context, p *domain.PlayerProgress, plotID int) error {
	log := logger.FromContext(ctx)
	now := s.now()

	plot, veg, err := s.plot(p, plotID, now)
	if err != nil {
		return err
	}
	if plot.State != domain.PlotNeedsWater {
		return fmt.Errorf("%w: plot %d is %s, watering only helps a thirsty plant", domain.ErrInvalidState, plotID, plot.State)
	}

	// Bank the span spent thirsty so growth resumes where it left off.
	deadline := plot.LastCaredAt().Add(veg.WaterInterval)
	if now.After(deadline) {
		plot.Paused += now.Sub(deadline)
	}
	watered := now
	plot.LastWateredAt = &watered
	plot.State = stateAt(plot, veg, now)

	log.Info("Plot watered", "plot", plotID, "vegetable", plot.Vegetable, "paused_total", plot.Paused)
	s.publish(ctx, event.NewPlotWateredEvent(plotID, plot.Vegetable, now))
	return nil
}

func (s *service) Harvest(ctx context.Context, p *domain.PlayerProgress, plotID int) (*HarvestResult, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	plot, veg, err := s.plot(p, plotID, now)
	if err != nil {
		return nil, err
	}
	if plot.State != domain.PlotReady {
		return nil, fmt.Errorf("%w: plot %d is %s, nothing to pick", domain.ErrInvalidState, plotID, plot.State)
	}

	vegID := plot.Vegetable
	p.Harvested[vegID] += veg.Yield
	p.XP += veg.HarvestXP
	p.TotalHarvests++
	plot.Clear()

	result := &HarvestResult{
		Vegetable: vegID,
		Yield:     veg.Yield,
		XPAwarded: veg.HarvestXP,
	}

	log.Info("Plot harvested", "plot", plotID, "vegetable", vegID, "yield", veg.Yield, "xp", veg.HarvestXP)
	s.publish(ctx, event.NewPlotHarvestedEvent(plotID, vegID, veg.Yield, veg.HarvestXP, now))
	return result, nil
}

func (s *service) PlotState(p *domain.PlayerProgress, plotID int) (domain.PlotState, error) {
	plot, _, err := s.plot(p, plotID, s.now())
	if err != nil {
		return "", err
	}
	return plot.State, nil
}

func (s *service) GrowthProgress(p *domain.PlayerProgress, plotID int) (float64, error) {
	now := s.now()
	plot, veg, err := s.plot(p, plotID, now)
	if err != nil {
		return 0, err
	}
	if plot.IsEmpty() {
		return 0, nil
	}
	return growthProgress(plot, veg, now), nil
}

// Refresh normalizes every plot's stored state to the current instant.
// Display layers call this before rendering the garden.
func (s *service) Refresh(p *domain.PlayerProgress) {
	now := s.now()
	for i := range p.Plots {
		plot := &p.Plots[i]
		if plot.IsEmpty() {
			continue
		}
		veg, err := s.catalog.Vegetable(plot.Vegetable)
		if err != nil {
			continue
		}
		plot.State = stateAt(plot, veg, now)
	}
}

func (s *service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Event delivery failed", "type", e.Type, "error", err)
	}
}
