package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-blazonry/pkg/document"
	"github.com/goliatone/go-blazonry/pkg/orchestrator"
)

func main() {
	renderer := flag.String("renderer", "shield", "renderer to use (shield or blazon)")
	shieldType := flag.String("shield", "", "shield outline (heater, oval, banner); empty selects the default")
	output := flag.String("output", "", "output file (stdout if empty)")
	source := flag.String("source", "composition.yaml", "composition document path or URL")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	gen := orchestrator.New(
		orchestrator.WithLoader(document.NewLoader(document.WithHTTPFallback(30 * time.Second))),
	)

	result, err := gen.Generate(ctx, orchestrator.Request{
		Source:     src,
		Renderer:   *renderer,
		ShieldType: *shieldType,
		ChargeFailure: func(chargeID string, err error) {
			fmt.Fprintf(os.Stderr, "warning: charge %s skipped: %v\n", chargeID, err)
		},
	})
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "advisory: %s\n", warning)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result.Output, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(string(result.Output))
	}
}

func parseSource(raw string) document.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return document.SourceFromURL(path)
	}
	return document.SourceFromFile(path)
}
