package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"sapientino/internal/grid"
	"sapientino/internal/storage"
	sapientinoapi "sapientino/pkg/sapientino"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "play":
		return runPlay(ctx, args[1:])
	case "episodes":
		return runEpisodes(ctx, args[1:])
	case "trace":
		return runTrace(ctx, args[1:])
	case "report":
		return runReport(ctx, args[1:])
	case "validate-map":
		return runValidateMap(args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: sapientinoctl <run|play|episodes|trace|report|validate-map> [flags]", msg)
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "episode config file (JSON)")
	mapPath := fs.String("map", "", "map file (overrides the built-in default map)")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "sapientino.db", "sqlite database path")
	horizon := fs.Int("horizon", 100, "episode step limit")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random policy seed")
	trace := fs.Bool("trace", false, "record the per-step trace")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req, err := buildRunRequest(*configPath, *mapPath)
	if err != nil {
		return err
	}
	req.Horizon = *horizon
	req.Seed = *seed
	req.RecordTrace = *trace

	client, err := sapientinoapi.NewClient(ctx, sapientinoapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.RunEpisode(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("episode %s: %d steps, total reward %.3f\n", summary.EpisodeID, summary.Steps, summary.TotalReward)
	for color, n := range summary.BeepCounts {
		fmt.Printf("  beeps on %s: %d\n", color, n)
	}
	return nil
}

func runPlay(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	configPath := fs.String("config", "", "episode config file (JSON)")
	mapPath := fs.String("map", "", "map file (overrides the built-in default map)")
	script := fs.String("script", "", "comma-separated action codes per tick, e.g. 2,2,3,4")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *script == "" {
		return usageError("play requires -script")
	}

	req, err := buildRunRequest(*configPath, *mapPath)
	if err != nil {
		return err
	}
	env, err := sapientinoapi.NewEnvironment(req.Config)
	if err != nil {
		return err
	}

	actions, err := parseScript(*script, len(env.ActionSizes()))
	if err != nil {
		return err
	}

	env.Reset()
	for tick, tickActions := range actions {
		if err := ctx.Err(); err != nil {
			return err
		}
		observations, reward, err := env.Step(tickActions)
		if err != nil {
			return err
		}
		commands := env.State().LastCommands()
		for i, obs := range observations {
			fmt.Printf("tick %d agent %d %s: cell (%d,%d) color %s reward %.3f\n",
				tick, i, commands[i], obs.DiscreteX, obs.DiscreteY, grid.Color(obs.Color), reward)
		}
	}
	fmt.Printf("total reward: %.3f over %d steps\n", env.State().Score(), env.State().Steps())
	return nil
}

func runEpisodes(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("episodes", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "sapientino.db", "sqlite database path")
	limit := fs.Int("limit", 20, "maximum episodes to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := sapientinoapi.NewClient(ctx, sapientinoapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	episodes, err := client.Episodes(ctx, *limit)
	if err != nil {
		return err
	}
	for _, episode := range episodes {
		age := episode.CreatedAtUTC
		if created, err := time.Parse(time.RFC3339Nano, episode.CreatedAtUTC); err == nil {
			age = humanize.Time(created)
		}
		fmt.Printf("%s  map=%s agents=%d steps=%s reward=%.3f  %s\n",
			episode.ID, episode.MapName, episode.Agents,
			humanize.Comma(int64(episode.Steps)), episode.TotalReward, age)
	}
	return nil
}

func runTrace(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "sapientino.db", "sqlite database path")
	episodeID := fs.String("episode", "", "episode id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *episodeID == "" {
		return usageError("trace requires -episode")
	}

	client, err := sapientinoapi.NewClient(ctx, sapientinoapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	trace, ok, err := client.Trace(ctx, *episodeID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no trace recorded for episode %s", *episodeID)
	}
	return json.NewEncoder(os.Stdout).Encode(trace)
}

func runReport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "sapientino.db", "sqlite database path")
	limit := fs.Int("limit", 0, "episodes to include, 0 for all")
	asJSON := fs.Bool("json", false, "emit the report as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := sapientinoapi.NewClient(ctx, sapientinoapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	report, err := client.Report(ctx, *limit)
	if err != nil {
		return err
	}
	if *asJSON {
		return json.NewEncoder(os.Stdout).Encode(report)
	}
	fmt.Print(report.Render())
	return nil
}

func runValidateMap(args []string) error {
	fs := flag.NewFlagSet("validate-map", flag.ContinueOnError)
	mapPath := fs.String("map", "", "map file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mapPath == "" {
		return usageError("validate-map requires -map")
	}

	g, err := grid.ParseFile(*mapPath)
	if err != nil {
		return err
	}
	fmt.Printf("ok: %d rows x %d columns\n", g.Rows(), g.Columns())
	return nil
}
