// Command luxe is the local-first CLI for the Luxe Vision timeline and
// style tools. All data lives in the local store; when a database DSN is
// configured, writes are mirrored best-effort to the hosted backend.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	u "github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/audio"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/config"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/migrate"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/mirror"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/repository/local"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/repository/postgres"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/service"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/storage/kv"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// app bundles the wired services for command handlers.
type app struct {
	log      *zap.Logger
	timeline service.TimelineService
	styles   service.StyleService
	gen      service.GenerationService
	mir      *mirror.Mirror

	projects *local.ProjectRepo
	styleDB  *local.StyleRepo
	prompts  *local.PromptRepo
}

// newApp wires the local store, the services, and (when a DSN is present)
// the Postgres mirror. The returned func releases resources.
func newApp(ctx context.Context, cfg *config.Config) (*app, func(), error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, err
	}

	store, err := kv.NewFileStore(cfg.DataDir)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	var mir *mirror.Mirror
	if cfg.DatabaseDSN != "" {
		if err := migrate.Up(ctx, cfg.DatabaseDSN); err != nil {
			logger.Warn("mirror migrations failed, continuing offline", zap.Error(err))
		} else if db, err := postgres.New(ctx, cfg.DatabaseDSN); err != nil {
			logger.Warn("mirror unavailable, continuing offline", zap.Error(err))
		} else {
			mir = mirror.New(db, logger)
		}
	}

	an, err := audio.NewAnalyzer(cfg.Analyzer)
	if err != nil {
		mir.Close()
		_ = logger.Sync()
		return nil, nil, err
	}

	projects := local.NewProjectRepo(store)
	styleRepo := local.NewStyleRepo(store)
	prompts := local.NewPromptRepo(store)

	a := &app{
		log:      logger,
		timeline: service.NewTimelineService(projects, mir, an),
		styles:   service.NewStyleService(styleRepo, mir),
		gen:      service.NewGenerationService(prompts, mir, cfg.GenerationDelay()),
		mir:      mir,
		projects: projects,
		styleDB:  styleRepo,
		prompts:  prompts,
	}
	cleanup := func() {
		a.mir.Close()
		_ = logger.Sync()
	}
	return a, cleanup, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `luxe CLI
Usage:
  luxe [-config file] [-data dir] [-dsn url] <cmd> [args]

Timeline:
  create      -name <name>
  ls
  show        -id <project>
  rm          -id <project>
  kf-add      -project <id> -time <sec> -prompt <text>
  kf-edit     -project <id> -id <uuid> [-time s] [-prompt t] [-transition fade|morph|zoom|pan|dissolve] [-transition-dur s]
  kf-rm       -project <id> -id <uuid>
  preview     -project <id>
  export      -project <id>
  audioreact  -project <id> -audio <url>

Styles:
  style-add   -user <id> -name <name> -image <url>
  style-ls    [-user <id>]
  style-rm    -id <uuid>
  mix         -ids <uuid,uuid,...> -ratios <r,r,...> [-prompt <base> -intensity <0..100>]

Generation:
  generate    -prompt <text> -kind image|video|speech
  history     [-n <limit>]

Misc:
  sync
  version
`)
	os.Exit(2)
}

// main dispatches subcommands against the wired services.
func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	dataDir := flag.String("data", "", "local data directory")
	dsn := flag.String("dsn", "", "PostgreSQL DSN for the mirror (overrides config)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	if cmd == "version" {
		fmt.Printf("luxe %s (%s)\n", version, buildDate)
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fail(err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *dsn != "" {
		cfg.DatabaseDSN = *dsn
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, cleanup, err := newApp(ctx, cfg)
	if err != nil {
		fail(err)
	}
	defer cleanup()

	switch cmd {

	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		name := fs.String("name", "", "project name")
		_ = fs.Parse(args)
		p, err := a.timeline.CreateProject(ctx, *name)
		if err != nil {
			fail(err)
		}
		printJSON(p)

	case "ls":
		list, err := a.timeline.ListProjects(ctx)
		if err != nil {
			fail(err)
		}
		printJSON(list)

	case "show":
		fs := flag.NewFlagSet("show", flag.ExitOnError)
		id := fs.String("id", "", "project id")
		_ = fs.Parse(args)
		p, err := a.timeline.GetProject(ctx, *id)
		if err != nil {
			fail(err)
		}
		printJSON(p)

	case "rm":
		fs := flag.NewFlagSet("rm", flag.ExitOnError)
		id := fs.String("id", "", "project id")
		_ = fs.Parse(args)
		if err := a.timeline.DeleteProject(ctx, *id); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "kf-add":
		fs := flag.NewFlagSet("kf-add", flag.ExitOnError)
		project := fs.String("project", "", "project id")
		at := fs.Float64("time", 0, "keyframe time (seconds)")
		prompt := fs.String("prompt", "", "keyframe prompt")
		_ = fs.Parse(args)
		kf, err := a.timeline.AddKeyframe(ctx, *project, *at, *prompt)
		if err != nil {
			fail(err)
		}
		printJSON(kf)

	case "kf-edit":
		cmdKeyframeEdit(ctx, a, args)

	case "kf-rm":
		fs := flag.NewFlagSet("kf-rm", flag.ExitOnError)
		project := fs.String("project", "", "project id")
		id := fs.String("id", "", "keyframe id")
		_ = fs.Parse(args)
		kid, err := u.FromString(*id)
		if err != nil {
			fail(fmt.Errorf("bad keyframe id: %w", err))
		}
		if err := a.timeline.DeleteKeyframe(ctx, *project, kid); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "preview":
		fs := flag.NewFlagSet("preview", flag.ExitOnError)
		project := fs.String("project", "", "project id")
		_ = fs.Parse(args)
		segs, err := a.timeline.Preview(ctx, *project)
		if err != nil {
			fail(err)
		}
		printJSON(segs)

	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		project := fs.String("project", "", "project id")
		_ = fs.Parse(args)
		out, err := a.timeline.ExportFrames(ctx, *project)
		if err != nil {
			fail(err)
		}
		printJSON(out)

	case "audioreact":
		fs := flag.NewFlagSet("audioreact", flag.ExitOnError)
		project := fs.String("project", "", "project id")
		audioURL := fs.String("audio", "", "audio url")
		_ = fs.Parse(args)
		if err := a.timeline.GenerateAudioReactive(ctx, *project, *audioURL); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "style-add":
		cmdStyleAdd(ctx, a, args)
	case "style-ls":
		cmdStyleList(ctx, a, args)
	case "style-rm":
		cmdStyleRemove(ctx, a, args)
	case "mix":
		cmdMix(ctx, a, args)
	case "generate":
		cmdGenerate(ctx, a, args)
	case "history":
		cmdHistory(ctx, a, args)
	case "sync":
		cmdSync(ctx, a)

	default:
		usage()
	}
}

// cmdKeyframeEdit builds a KeyframePatch from only the flags that were set.
func cmdKeyframeEdit(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("kf-edit", flag.ExitOnError)
	project := fs.String("project", "", "project id")
	id := fs.String("id", "", "keyframe id")
	at := fs.Float64("time", 0, "keyframe time (seconds)")
	prompt := fs.String("prompt", "", "keyframe prompt")
	transition := fs.String("transition", "", "transition type")
	transitionDur := fs.Float64("transition-dur", 0, "transition duration (seconds)")
	_ = fs.Parse(args)

	kid, err := u.FromString(*id)
	if err != nil {
		fail(fmt.Errorf("bad keyframe id: %w", err))
	}

	var patch model.KeyframePatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "time":
			patch.Time = at
		case "prompt":
			patch.Prompt = prompt
		case "transition":
			tr := model.TransitionType(*transition)
			patch.TransitionType = &tr
		case "transition-dur":
			patch.TransitionDuration = transitionDur
		}
	})

	if err := a.timeline.UpdateKeyframe(ctx, *project, kid, patch); err != nil {
		fail(err)
	}
	fmt.Println("ok")
}

// cmdSync pushes every local collection to the mirror.
func cmdSync(ctx context.Context, a *app) {
	if a.mir == nil {
		fail(errors.New("no mirror configured (set -dsn or LUXE_DATABASE_URL)"))
	}
	projects, err := a.projects.List(ctx)
	if err != nil {
		fail(err)
	}
	styles, err := a.styleDB.List(ctx, "")
	if err != nil {
		fail(err)
	}
	prompts, err := a.prompts.List(ctx, 0)
	if err != nil {
		fail(err)
	}
	if err := a.mir.Sync(ctx, projects, styles, prompts); err != nil {
		fail(err)
	}
	fmt.Printf("synced %d projects, %d styles, %d prompts\n", len(projects), len(styles), len(prompts))
}
