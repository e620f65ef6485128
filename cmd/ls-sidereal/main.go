// Command ls-sidereal casts sidereal charts and solves solar/lunar returns.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/litescript/ls-sidereal/internal/astro"
	"github.com/litescript/ls-sidereal/internal/chart"
	"github.com/litescript/ls-sidereal/internal/config"
	"github.com/litescript/ls-sidereal/internal/ephem"
	"github.com/litescript/ls-sidereal/internal/julian"
	"github.com/litescript/ls-sidereal/internal/returns"
	"github.com/litescript/ls-sidereal/internal/ui"
)

// CLI flags for headless modes
var (
	positionsMode bool
	housesMode    bool
	returnBody    string
	watchInterval time.Duration
)

func main() {
	dateStr := flag.String("date", "now", "Chart instant, RFC3339 UTC (e.g. 2024-06-15T08:30:00Z) or 'now'")
	lat := flag.Float64("lat", 0, "Observer latitude in degrees (north positive)")
	lon := flag.Float64("lon", 0, "Observer longitude in degrees (east positive)")
	site := flag.String("site", "", "Observer site name for display")
	natalPath := flag.String("natal", "", "Natal chart TOML file")
	ayanamsaName := flag.String("ayanamsa", "lahiri", "Ayanamsa strategy (lahiri, linear)")
	window := flag.Float64("window", 10, "Return search window in days")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&positionsMode, "positions", false, "Print positions table instead of TUI")
	flag.BoolVar(&housesMode, "houses", false, "Print house cusps instead of TUI")
	flag.StringVar(&returnBody, "return", "", "Solve the next return for a body (sun, moon)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat positions at interval (e.g. 30s)")
	flag.Parse()

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           parseLevel(*logLevel),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	instant, err := parseInstant(*dateStr)
	if err != nil {
		logger.Error("Invalid -date", "err", err)
		os.Exit(2)
	}

	ay, err := astro.ParseAyanamsa(*ayanamsaName)
	if err != nil {
		logger.Error("Invalid -ayanamsa", "name", *ayanamsaName, "err", err)
		os.Exit(2)
	}
	obs := astro.Observer{LatDeg: *lat, LonDeg: *lon, Name: *site}

	// A natal file supplies the observer and the return target.
	var natal *returns.NatalPoint
	if *natalPath != "" {
		nf, err := config.Load(*natalPath)
		if err != nil {
			logger.Error("Loading natal file", "path", *natalPath, "err", err)
			os.Exit(2)
		}
		obs = nf.Site()

		birth := nf.Instant()
		natal = &returns.NatalPoint{
			Body:         ephem.Sun,
			LongitudeDeg: astro.Normalize360(ephem.SunLongitude(birth) - ay.OffsetDeg(birth)),
		}
		logger.Debug("Natal chart loaded",
			"site", obs.Name, "jd", float64(birth), "sun", natal.LongitudeDeg)
	}

	// Headless modes: no TUI. A non-TTY stdout also forces headless.
	headless := positionsMode || housesMode || returnBody != "" || watchInterval > 0
	if !headless && !term.IsTerminal(int(os.Stdout.Fd())) {
		positionsMode = true
		headless = true
	}

	if headless {
		if err := runHeadless(ctx, instant, obs, ay, natal, *natalPath, *window, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(instant, obs, ay, natal)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles all headless modes.
func runHeadless(ctx context.Context, instant julian.Instant, obs astro.Observer,
	ay astro.Ayanamsa, natal *returns.NatalPoint, natalPath string,
	window float64, logger *charmlog.Logger) error {

	if returnBody != "" {
		return runReturn(ctx, instant, ay, natal, natalPath, window, logger)
	}

	outputOnce := func(t julian.Instant) error {
		snap, err := chart.Cast(t, obs, ay)
		if err != nil {
			return err
		}
		if housesMode {
			chart.WriteHouses(os.Stdout, snap)
			return nil
		}
		if watchInterval > 0 {
			chart.WritePositionsLine(os.Stdout, snap)
			return nil
		}
		chart.WriteTable(os.Stdout, snap)
		return nil
	}

	if watchInterval == 0 {
		return outputOnce(instant)
	}

	// Watch mode: recompute for the current moment at each tick.
	if err := outputOnce(julian.FromTime(time.Now())); err != nil {
		return err
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := outputOnce(julian.FromTime(time.Now())); err != nil {
				return err
			}
		}
	}
}

// runReturn solves the next return of a body after the chart instant.
func runReturn(ctx context.Context, instant julian.Instant, ay astro.Ayanamsa,
	natal *returns.NatalPoint, natalPath string, window float64,
	logger *charmlog.Logger) error {

	if natalPath == "" || natal == nil {
		return fmt.Errorf("-return requires a -natal file")
	}

	body, err := ephem.ParseBody(returnBody)
	if err != nil {
		return fmt.Errorf("unknown body %q", returnBody)
	}

	// The natal point carries the Sun; recompute the target for the
	// requested body from the same birth data.
	nf, err := config.Load(natalPath)
	if err != nil {
		return err
	}
	birth := nf.Instant()
	tropical, err := ephem.Longitude(body, birth)
	if err != nil {
		return err
	}
	target := astro.Normalize360(tropical - ay.OffsetDeg(birth))

	logger.Debug("Solving return",
		"body", body, "target", target, "start", float64(instant), "window", window)

	res, err := returns.FindReturn(returns.Search{
		Body:       body,
		TargetDeg:  target,
		Start:      instant,
		WindowDays: window,
		Ayanamsa:   ay,
		Cancel:     func() bool { return ctx.Err() != nil },
	})
	if err != nil {
		return err
	}

	civil, err := res.Instant.Civil()
	if err != nil {
		return err
	}

	fmt.Printf("%s return: %04d-%02d-%02d %02d:%02d:%02d UTC (JD %.5f)\n",
		body, civil.Year, civil.Month, civil.Day, civil.Hour, civil.Minute, civil.Second,
		float64(res.Instant))
	fmt.Printf("target %.4f°  error %.6f°  iterations %d\n",
		target, res.SeparationDeg, res.Iterations)
	return nil
}

// parseInstant parses the -date flag.
func parseInstant(s string) (julian.Instant, error) {
	if s == "" || s == "now" {
		return julian.FromTime(time.Now()), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Also accept a bare date.
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return 0, err
		}
	}
	return julian.FromTime(t), nil
}

func parseLevel(s string) charmlog.Level {
	switch s {
	case "debug":
		return charmlog.DebugLevel
	case "warn":
		return charmlog.WarnLevel
	case "error":
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}
