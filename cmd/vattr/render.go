package main

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vattr/internal/config"
	"github.com/vango-dev/vattr/internal/demo"
	"github.com/vango-dev/vattr/internal/publish"
	"github.com/vango-dev/vattr/pkg/render"
	"github.com/vango-dev/vattr/pkg/vdom"
)

type renderOptions struct {
	pretty  bool
	hydrate bool
	page    bool
	publish string
	name    string
}

func renderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [state]",
		Short: "Render a demo state to HTML",
		Long: `Render one state of the demo application to HTML.

States: initial (default), sample, empty.

Only static attributes appear in the output. Property calls and event
listeners are left to the live client; interactive elements carry
data-on-* markers and, with --hydrate, a data-hid.

Examples:
  vattr render
  vattr render sample --pretty
  vattr render --page --publish=dist
  vattr render --page --publish=s3://my-bucket/site/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("pretty") {
				opts.pretty = cfg.Render.Pretty
			}
			if !cmd.Flags().Changed("hydrate") {
				opts.hydrate = cfg.Render.Hydrate
			}
			state := ""
			if len(args) > 0 {
				state = args[0]
			}
			return runRender(cmd, cfg, opts, state)
		},
	}

	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().BoolVar(&opts.hydrate, "hydrate", false, "Emit data-hid on every element")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Render a complete HTML document")
	cmd.Flags().StringVar(&opts.publish, "publish", "", "Write to a directory or s3://bucket/prefix instead of stdout")
	cmd.Flags().StringVar(&opts.name, "name", "index.html", "Document name when publishing")

	return cmd
}

func runRender(cmd *cobra.Command, cfg *config.Config, opts *renderOptions, state string) error {
	model, err := demo.State(state)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())

	body := demo.View(model)
	if opts.hydrate {
		vdom.AssignAllHIDs(body, vdom.NewHIDGenerator())
	}

	r := render.NewRenderer[vdom.Event, demo.Msg](render.RendererConfig{
		Pretty: opts.pretty,
		Indent: cfg.Render.Indent,
		Logger: logger,
	})

	var buf bytes.Buffer
	if opts.page {
		err = r.RenderPage(&buf, render.Page[vdom.Event, demo.Msg]{
			Title: pageTitle(cfg),
			Body:  body,
		})
	} else {
		err = r.RenderToWriter(&buf, body)
		buf.WriteByte('\n')
	}
	if err != nil {
		return err
	}

	if opts.publish == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := publish.Open(ctx, opts.publish, publish.Options{
		Region:   cfg.Publish.Region,
		Endpoint: cfg.Publish.Endpoint,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	loc, err := store.Put(ctx, opts.name, buf.Bytes())
	if err != nil {
		return err
	}
	success(cmd.OutOrStdout(), "Published %s (%d bytes)", loc, buf.Len())
	return nil
}

func pageTitle(cfg *config.Config) string {
	if cfg.Name != "" {
		return cfg.Name
	}
	return "vattr todo"
}
