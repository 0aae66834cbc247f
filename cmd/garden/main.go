// Command garden is an interactive console front end for the game engine,
// useful for playing through the progression loop without the mobile UI.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pipstudio/kitchengarden/internal/catalog"
	"github.com/pipstudio/kitchengarden/internal/config"
	"github.com/pipstudio/kitchengarden/internal/event"
	"github.com/pipstudio/kitchengarden/internal/game"
	"github.com/pipstudio/kitchengarden/internal/logger"
	"github.com/pipstudio/kitchengarden/internal/naming"
	"github.com/pipstudio/kitchengarden/internal/progress"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "kitchen-garden", cfg.Version, cfg.Environment, cfg.Environment == "dev"))

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", cfg.CatalogPath, err)
		}
	}

	backend, err := progress.NewGdataBackend(cfg.AppName)
	if err != nil {
		log.Fatalf("Failed to open save storage: %v", err)
	}
	store := progress.NewStore(backend, cat, cfg.PlotCount)

	ctx := logger.WithSessionID(context.Background(), logger.GenerateSessionID())
	bus := event.NewMemoryBus()
	session := game.NewSession(ctx, cat, store, bus)
	finder := naming.NewFinder(cat)

	fmt.Println("Pip's Kitchen Garden - type 'help' for commands")
	repl(ctx, session, finder)

	if err := session.Save(ctx); err != nil {
		log.Printf("Warning: final save failed: %v", err)
	}
}

func repl(ctx context.Context, session *game.Session, finder *naming.Finder) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "garden":
			printGarden(session)
		case "status":
			printStatus(session)
		case "plant":
			runPlant(ctx, session, finder, args)
		case "water":
			runPlotCommand(args, func(plotID int) error { return session.Water(ctx, plotID) })
		case "harvest":
			runHarvest(ctx, session, args)
		case "buy":
			runBuy(ctx, session, finder, args)
		case "sell":
			runSell(ctx, session, finder, args)
		case "seeds":
			runBuySeeds(ctx, session, finder, args)
		case "cook":
			runCook(ctx, session, finder, args)
		case "recipes":
			printRecipes(session)
		case "save":
			if err := session.Save(ctx); err != nil {
				fmt.Printf("save failed: %v\n", err)
			} else {
				fmt.Println("saved")
			}
		default:
			fmt.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  garden                   show plots
  status                   show coins, level, health, badges
  recipes                  show cookable recipes
  plant <plot> <veg>       plant a seed
  water <plot>             water a thirsty plot
  harvest <plot>           pick a ready plot
  seeds <veg> [qty]        buy seeds
  buy <item> [qty]         buy a pantry item
  sell <item> [qty]        sell a pantry item back
  cook <recipe>            cook a dish
  save                     save progress
  quit                     save and exit`)
}

func parsePlotID(args []string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("plot number required")
	}
	return strconv.Atoi(args[0])
}

func parseQuantity(args []string, idx int) int {
	if len(args) > idx {
		if q, err := strconv.Atoi(args[idx]); err == nil {
			return q
		}
	}
	return 1
}

func runPlotCommand(args []string, fn func(plotID int) error) {
	plotID, err := parsePlotID(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := fn(plotID); err != nil {
		fmt.Println(err)
	}
}

func runPlant(ctx context.Context, session *game.Session, finder *naming.Finder, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: plant <plot> <vegetable>")
		return
	}
	plotID, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("bad plot number %q\n", args[0])
		return
	}
	veg, ok := finder.Vegetable(strings.Join(args[1:], " "))
	if !ok {
		fmt.Printf("unknown vegetable %q\n", strings.Join(args[1:], " "))
		return
	}
	if err := session.Plant(ctx, plotID, veg); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("planted %s in plot %d\n", veg, plotID)
}

func runHarvest(ctx context.Context, session *game.Session, args []string) {
	plotID, err := parsePlotID(args)
	if err != nil {
		fmt.Println(err)
		return
	}
	result, err := session.Harvest(ctx, plotID)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("picked %d %s (+%d xp)\n", result.Yield, result.Vegetable, result.XPAwarded)
}

func runBuy(ctx context.Context, session *game.Session, finder *naming.Finder, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: buy <item> [qty]")
		return
	}
	item, ok := finder.PantryItem(args[0])
	if !ok {
		fmt.Printf("unknown pantry item %q\n", args[0])
		return
	}
	cost, err := session.BuyItem(ctx, item, parseQuantity(args, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("bought %s for %d coins\n", item, cost)
}

func runSell(ctx context.Context, session *game.Session, finder *naming.Finder, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: sell <item> [qty]")
		return
	}
	if item, ok := finder.PantryItem(args[0]); ok {
		refund, err := session.SellItem(ctx, item, parseQuantity(args, 1))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("sold %s for %d coins\n", item, refund)
		return
	}
	if veg, ok := finder.Vegetable(args[0]); ok {
		value, err := session.SellVegetable(ctx, veg, parseQuantity(args, 1))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("sold %s for %d coins\n", veg, value)
		return
	}
	fmt.Printf("unknown item %q\n", args[0])
}

func runBuySeeds(ctx context.Context, session *game.Session, finder *naming.Finder, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: seeds <vegetable> [qty]")
		return
	}
	veg, ok := finder.Vegetable(args[0])
	if !ok {
		fmt.Printf("unknown vegetable %q\n", args[0])
		return
	}
	cost, err := session.BuySeeds(ctx, veg, parseQuantity(args, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("bought %s seeds for %d coins\n", veg, cost)
}

func runCook(ctx context.Context, session *game.Session, finder *naming.Finder, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: cook <recipe>")
		return
	}
	recipe, ok := finder.Recipe(strings.Join(args, " "))
	if !ok {
		fmt.Printf("unknown recipe %q\n", strings.Join(args, " "))
		return
	}
	result, err := session.Cook(ctx, recipe)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("cooked %s: %d star(s), +%d xp, +%d coins\n", result.Recipe, result.Stars, result.XPAwarded, result.CoinsEarned)
	if result.LeveledUp {
		fmt.Printf("level up! now level %d\n", result.NewLevel)
	}
}

func printGarden(session *game.Session) {
	p := session.Progress()
	for _, plot := range p.Plots {
		if plot.IsEmpty() {
			fmt.Printf("  plot %d: empty\n", plot.ID)
			continue
		}
		pct, _ := session.GrowthProgress(plot.ID)
		fmt.Printf("  plot %d: %s (%s, %.0f%%)\n", plot.ID, plot.Vegetable, plot.State, pct*100)
	}
}

func printStatus(session *game.Session) {
	p := session.Progress()
	fmt.Printf("coins: %d  level: %d  xp: %d\n", p.Coins, p.Level, p.XP)
	fmt.Printf("health: energy %d, strength %d, brains %d, bones %d, teeth %d, tummy %d\n",
		p.Health.Energy, p.Health.Strength, p.Health.Brains, p.Health.Bones, p.Health.Teeth, p.Health.Tummy)
	fmt.Printf("harvests: %d  dishes: %d  badges: %d\n", p.TotalHarvests, p.TotalDishes, len(p.Badges))
}

func printRecipes(session *game.Session) {
	p := session.Progress()
	cookable := make(map[string]bool)
	for _, r := range session.CookableRecipes() {
		cookable[string(r.ID)] = true
	}
	for id := range p.UnlockedRecipes {
		marker := " "
		if cookable[string(id)] {
			marker = "*"
		}
		fmt.Printf("  %s %s (%d star(s))\n", marker, id, p.StarRating(id))
	}
	fmt.Println("  * = cookable now")
}
