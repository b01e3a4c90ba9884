package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-blazonry/pkg/document"
	"github.com/goliatone/go-blazonry/pkg/orchestrator"
	"github.com/goliatone/go-blazonry/pkg/prompt"
)

func main() {
	shieldType := flag.String("shield", "", "shield outline (heater, oval, banner); empty selects the default")
	imageOut := flag.String("image", "shield.svg", "file for the rendered SVG")
	docOut := flag.String("save", "", "optionally save the composition document")
	flag.Parse()

	ctx := context.Background()

	composer, err := prompt.NewComposer()
	if err != nil {
		log.Fatalf("Failed to start composer: %v", err)
	}

	comp, err := composer.Compose(ctx)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		log.Fatalf("Failed to compose: %v", err)
	}

	gen := orchestrator.New()

	image, err := gen.Generate(ctx, orchestrator.Request{
		Composition: &comp,
		Renderer:    "shield",
		ShieldType:  *shieldType,
		ChargeFailure: func(chargeID string, err error) {
			fmt.Fprintf(os.Stderr, "warning: charge %s skipped: %v\n", chargeID, err)
		},
	})
	if err != nil {
		log.Fatalf("Failed to render shield: %v", err)
	}
	if err := os.WriteFile(*imageOut, image.Output, 0o644); err != nil {
		log.Fatalf("Failed to write image: %v", err)
	}
	fmt.Printf("Shield written to %s\n", *imageOut)

	text, err := gen.Generate(ctx, orchestrator.Request{
		Composition: &comp,
		Renderer:    "blazon",
	})
	if err != nil {
		log.Fatalf("Failed to render blazon: %v", err)
	}
	fmt.Println(string(text.Output))

	for _, warning := range text.Warnings {
		fmt.Fprintf(os.Stderr, "advisory: %s\n", warning)
	}

	if *docOut != "" {
		raw, err := document.Encode(comp)
		if err != nil {
			log.Fatalf("Failed to encode composition: %v", err)
		}
		if err := os.WriteFile(*docOut, raw, 0o644); err != nil {
			log.Fatalf("Failed to save composition: %v", err)
		}
		fmt.Printf("Composition saved to %s\n", *docOut)
	}
}
