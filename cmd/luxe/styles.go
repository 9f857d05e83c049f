package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	u "github.com/gofrs/uuid/v5"

	"github.com/melbazpeach-source/luxe-vision-mobile/internal/model"
	"github.com/melbazpeach-source/luxe-vision-mobile/internal/stylemix"
)

// ------- parsing helpers -------

// parseIDList splits a comma-separated list of UUIDs.
func parseIDList(s string) ([]u.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty id list")
	}
	parts := strings.Split(s, ",")
	out := make([]u.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := u.FromString(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad id %q: %w", p, err)
		}
		out = append(out, id)
	}
	return out, nil
}

// parseRatios splits a comma-separated list of numbers. Any positive scale
// works; the mixer normalizes.
func parseRatios(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty ratio list")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad ratio %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ------- commands -------

func cmdStyleAdd(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("style-add", flag.ExitOnError)
	user := fs.String("user", "", "user id")
	name := fs.String("name", "", "style name")
	image := fs.String("image", "", "reference image url")
	_ = fs.Parse(args)

	ref, err := a.styles.CreateStyle(ctx, *user, *name, *image)
	if err != nil {
		fail(err)
	}
	printJSON(ref)
}

func cmdStyleList(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("style-ls", flag.ExitOnError)
	user := fs.String("user", "", "filter by user id")
	_ = fs.Parse(args)

	list, err := a.styles.ListStyles(ctx, *user)
	if err != nil {
		fail(err)
	}
	printJSON(list)
}

func cmdStyleRemove(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("style-rm", flag.ExitOnError)
	id := fs.String("id", "", "style id")
	_ = fs.Parse(args)

	sid, err := u.FromString(*id)
	if err != nil {
		fail(fmt.Errorf("bad style id: %w", err))
	}
	if err := a.styles.DeleteStyle(ctx, sid); err != nil {
		fail(err)
	}
	fmt.Println("ok")
}

// cmdMix blends styles and optionally applies the result to a base prompt.
func cmdMix(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("mix", flag.ExitOnError)
	ids := fs.String("ids", "", "comma-separated style ids")
	ratios := fs.String("ratios", "", "comma-separated ratios (any scale)")
	prompt := fs.String("prompt", "", "base prompt to style (optional)")
	intensity := fs.Int("intensity", 80, "style intensity 0..100")
	_ = fs.Parse(args)

	idList, err := parseIDList(*ids)
	if err != nil {
		fail(err)
	}
	ratioList, err := parseRatios(*ratios)
	if err != nil {
		fail(err)
	}

	features, err := a.styles.Mix(ctx, idList, ratioList)
	if err != nil {
		fail(err)
	}
	if *prompt == "" {
		printJSON(features)
		return
	}
	fmt.Println(stylemix.ApplyToPrompt(*prompt, features, *intensity))
}

func cmdGenerate(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	prompt := fs.String("prompt", "", "generation prompt")
	kind := fs.String("kind", "image", "image|video|speech")
	_ = fs.Parse(args)

	entry, err := a.gen.Generate(ctx, *prompt, model.GenerationKind(*kind))
	if err != nil {
		fail(err)
	}
	printJSON(entry)
}

func cmdHistory(ctx context.Context, a *app, args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	n := fs.Int("n", 0, "max entries (0 = all)")
	_ = fs.Parse(args)

	list, err := a.gen.History(ctx, *n)
	if err != nil {
		fail(err)
	}
	printJSON(list)
}
