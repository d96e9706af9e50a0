package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/GardenIdle_Go/internal/catalog"
	"github.com/osse101/GardenIdle_Go/internal/economy"
	"github.com/osse101/GardenIdle_Go/internal/garden"
	"github.com/osse101/GardenIdle_Go/internal/handler"
	"github.com/osse101/GardenIdle_Go/internal/persistence"
)

const confirmYes = "yes"

var errNotConfirmed = errors.New("reset not confirmed")

// env is what every command works against
type env struct {
	ctx   context.Context
	store *persistence.Store
	cat   *catalog.Catalog
	in    io.Reader
	out   io.Writer
	now   func() time.Time
}

// exportCmd prints the current save as a portable blob
type exportCmd struct{ env *env }

func (c *exportCmd) Name() string        { return "export" }
func (c *exportCmd) Description() string { return "Print the current save as a portable text blob" }

func (c *exportCmd) Run(_ []string) error {
	snap, source := c.env.store.Load(c.env.ctx)
	if source == persistence.SourceFresh {
		PrintWarning(c.env.out, "No usable save found; exporting a fresh garden")
	}
	blob, err := c.env.store.ExportPortable(snap)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintln(c.env.out, blob)
	return nil
}

// importCmd reads a portable blob from stdin and saves it as the primary
type importCmd struct{ env *env }

func (c *importCmd) Name() string        { return "import" }
func (c *importCmd) Description() string { return "Replace the save with a portable blob read from stdin" }

func (c *importCmd) Run(_ []string) error {
	data, err := io.ReadAll(c.env.in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	snap, err := c.env.store.ImportPortable(c.env.ctx, strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	PrintSuccess(c.env.out, "Imported save %s", snap.SaveID)
	return nil
}

// summaryCmd prints a readable overview of the save
type summaryCmd struct{ env *env }

func (c *summaryCmd) Name() string        { return "summary" }
func (c *summaryCmd) Description() string { return "Show currency, plots and prestige of the save" }

func (c *summaryCmd) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(c.env.out)
	lang := fs.String("lang", "en", "language used for number formatting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("invalid -lang %q: %w", *lang, err)
	}
	p := message.NewPrinter(tag)

	snap, source := c.env.store.Load(c.env.ctx)
	engine := garden.NewEngine(c.env.cat, garden.WithClock(c.env.now))
	engine.Load(snap.State, snap.Achievements)
	engine.Reconcile(c.env.ctx, engine.Now())
	reward, _ := engine.PendingOfflineReward()
	s := engine.CurrentState()

	PrintHeader(c.env.out, "Garden")
	fmt.Fprintf(c.env.out, "Source:          %s\n", source)
	fmt.Fprintf(c.env.out, "Currency:        %s\n", handler.FormatAmount(p, s.Currency))
	fmt.Fprintf(c.env.out, "Lifetime earned: %s\n", handler.FormatAmount(p, s.LifetimeEarned))
	fmt.Fprintf(c.env.out, "Prestige:        %d (points %s, %s)\n",
		s.PrestigeCount, handler.FormatAmount(p, s.PrestigePoints), handler.FormatMultiplier(p, economy.PrestigeMultiplier(s.PrestigePoints)))

	occupied := 0
	for _, plot := range s.Plots {
		if plot.Crop != nil {
			occupied++
		}
	}
	fmt.Fprintf(c.env.out, "Plots:           %d/%d planted\n", occupied, len(s.Plots))

	unlocked, total := engine.AchievementCounts()
	fmt.Fprintf(c.env.out, "Achievements:    %d/%d\n", unlocked, total)

	if !reward.IsZero() {
		PrintInfo(c.env.out, "Offline reward waiting: %s from %d plants",
			handler.FormatAmount(p, reward.Currency), reward.PlantsMatured)
	}
	return nil
}

// resetCmd overwrites the save with a fresh garden after confirmation
type resetCmd struct{ env *env }

func (c *resetCmd) Name() string        { return "reset" }
func (c *resetCmd) Description() string { return "Overwrite the save with a fresh garden" }

func (c *resetCmd) Run(_ []string) error {
	PrintWarning(c.env.out, "This replaces the current save. The previous one is kept as the backup.")
	fmt.Fprintf(c.env.out, "Type '%s' to continue: ", confirmYes)

	line, err := bufio.NewReader(c.env.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if strings.TrimSpace(line) != confirmYes {
		return errNotConfirmed
	}

	if err := c.env.store.Save(c.env.ctx, persistence.FreshSnapshot(c.env.now())); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	PrintSuccess(c.env.out, "Garden reset")
	return nil
}
