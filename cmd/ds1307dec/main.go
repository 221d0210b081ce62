// cmd/ds1307dec/main.go
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/tamzrod/ds1307-decoder/internal/config"
	"github.com/tamzrod/ds1307-decoder/internal/decoder"
	"github.com/tamzrod/ds1307-decoder/internal/i2c"
	"github.com/tamzrod/ds1307-decoder/internal/render"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: ds1307dec <config.yaml> <capture.jsonl|->")
	}

	cfgPath := os.Args[1]
	capPath := os.Args[2]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	// --------------------
	// Build decoder pipeline
	// --------------------

	opts, err := decoder.Build(cfg.Decoder)
	if err != nil {
		log.Fatalf("decoder build failed: %v", err)
	}

	sink := &render.TextWriter{Out: os.Stdout, Width: render.DefaultWidth}

	dec, err := decoder.New(opts, sink)
	if err != nil {
		log.Fatalf("decoder build failed: %v", err)
	}

	// --------------------
	// Stream the capture
	// --------------------

	in := os.Stdin
	if capPath != "-" {
		f, err := os.Open(capPath)
		if err != nil {
			log.Fatalf("capture open failed: %v", err)
		}
		defer f.Close()
		in = f
	}

	r := i2c.NewReader(in)
	for {
		ev, err := r.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			log.Fatalf("capture read failed: %v", err)
		}
		dec.Decode(ev)
	}
}
