// Command sitemapgen writes a sitemap or a sitemap index described by a YAML manifest.
//
//	sitemapgen [--strict=false] [--indent] [-o sitemap.xml] manifest.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/polyglottis/sitemap/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("sitemapgen: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) (err error) {
	config, args, err := LoadConfig(args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return errors.New("usage: sitemapgen [flags] manifest.yaml")
	}

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()
	manifest, err := ReadManifest(in)
	if err != nil {
		return err
	}

	out := stdout
	if config.Output != "" {
		f, cerr := os.Create(config.Output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = f
	}

	if err := manifest.Write(ctx, sitemap.NewWriter(config.WriterOptions()), out); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	if config.Output != "" {
		log.Printf("wrote %s", config.Output)
	}
	return nil
}
