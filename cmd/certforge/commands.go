package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/certforge/pkg/archive"
	"github.com/dmitrymomot/certforge/pkg/asset"
	"github.com/dmitrymomot/certforge/pkg/batch"
	"github.com/dmitrymomot/certforge/pkg/layout"
	"github.com/dmitrymomot/certforge/pkg/recipient"
	"github.com/dmitrymomot/certforge/pkg/storage"
)

// errInvalidRecipients is returned when recipients miss required values.
var errInvalidRecipients = errors.New("recipients are missing required values")

// app carries state shared by all subcommands.
type app struct {
	cfg     Config
	log     *slog.Logger
	envFile string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "certforge",
		Short:         "Render certificate batches from a layout and a recipient list",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.envFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = cfg.newLogger(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(
		a.keysCmd(),
		a.validateCmd(),
		a.previewCmd(),
		a.batchCmd(),
	)
	return root
}

func (a *app) keysCmd() *cobra.Command {
	var layoutPath string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the placeholder keys a layout requires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lay, err := layout.LoadFile(layoutPath)
			if err != nil {
				return err
			}
			for _, k := range lay.PlaceholderKeys() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout document (json or yaml)")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}

func (a *app) validateCmd() *cobra.Command {
	var in inputs

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that every recipient has values for the layout's placeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lay, recipients, err := in.load()
			if err != nil {
				return err
			}

			res := recipient.Validate(recipients, lay.PlaceholderKeys())
			out := cmd.OutOrStdout()
			for _, msg := range res.Errors {
				fmt.Fprintln(out, msg)
			}
			if !res.Valid {
				return fmt.Errorf("%w: %d problem(s)", errInvalidRecipients, len(res.Errors))
			}
			fmt.Fprintf(out, "%d recipient(s) valid\n", len(recipients))
			return nil
		},
	}
	in.register(cmd)
	return cmd
}

func (a *app) previewCmd() *cobra.Command {
	var (
		in    inputs
		index int
		out   string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a single recipient to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lay, recipients, err := in.load()
			if err != nil {
				return err
			}
			if index < 0 || index >= len(recipients) {
				return fmt.Errorf("index %d out of range, have %d recipient(s)", index, len(recipients))
			}

			gen, err := a.generator(in.layoutPath)
			if err != nil {
				return err
			}

			data, err := gen.Preview(cmd.Context(), lay, recipients[index])
			if err != nil {
				return err
			}
			if out == "" {
				out = batch.EntryName(recipients[index].Name)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write preview: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().IntVarP(&index, "index", "i", 0, "0-based recipient index")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path (default: certificate_<name>.png)")
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	var (
		in           inputs
		outDir       string
		strict       bool
		disambiguate bool
		store        bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Render every recipient and write the zip archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lay, recipients, err := in.load()
			if err != nil {
				return err
			}

			res := recipient.Validate(recipients, lay.PlaceholderKeys())
			for _, msg := range res.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			if !res.Valid && strict {
				return fmt.Errorf("%w: %d problem(s)", errInvalidRecipients, len(res.Errors))
			}

			opts := []batch.Option{}
			if disambiguate {
				opts = append(opts, batch.WithCollisionPolicy(archive.Disambiguate))
			}
			if store {
				opts = append(opts, batch.WithCompression(archive.Store))
			}
			gen, err := a.generator(in.layoutPath, opts...)
			if err != nil {
				return err
			}

			art, err := gen.Generate(cmd.Context(), lay, recipients, progressPrinter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}

			p, err := art.Save(outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d certificate(s), %d bytes)\n", p, len(art.Entries), art.Size())
			return nil
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write the archive into")
	cmd.Flags().BoolVar(&strict, "strict", false, "abort when recipients miss placeholder values")
	cmd.Flags().BoolVar(&disambiguate, "disambiguate", false, "keep certificates whose names collide as name_2.png, name_3.png, ...")
	cmd.Flags().BoolVar(&store, "store", false, "store entries without compression")
	return cmd
}

// generator wires the asset loader and logger into a batch generator.
func (a *app) generator(layoutPath string, opts ...batch.Option) (*batch.Generator, error) {
	baseDir := a.cfg.AssetsDir
	if baseDir == "" {
		baseDir = filepath.Dir(layoutPath)
	}

	routerOpts := []asset.Option{
		asset.WithBaseDir(baseDir),
		asset.WithMaxSize(a.cfg.MaxAssetSize),
	}
	if a.cfg.Storage.Enabled() {
		s3, err := storage.New(a.cfg.Storage)
		if err != nil {
			return nil, err
		}
		routerOpts = append(routerOpts, asset.WithFetcher(s3))
	}

	var loader asset.Loader = asset.NewRouter(routerOpts...)
	if a.cfg.AssetCacheSize > 0 {
		loader = asset.NewCached(loader, a.cfg.AssetCacheSize)
	}

	return batch.New(append([]batch.Option{
		batch.WithLoader(loader),
		batch.WithLogger(a.log),
	}, opts...)...), nil
}

// progressPrinter writes one line per progress event.
func progressPrinter(w io.Writer) batch.ProgressFunc {
	return func(p batch.Progress) {
		switch {
		case p.Status == batch.StatusError:
			fmt.Fprintf(w, "[%d/%d] failed: %s\n", p.Current, p.Total, p.Error)
		case p.Status == batch.StatusComplete:
			fmt.Fprintf(w, "[%d/%d] complete\n", p.Current, p.Total)
		case p.CurrentName != "":
			fmt.Fprintf(w, "[%d/%d] %s\n", p.Current+1, p.Total, p.CurrentName)
		}
	}
}

// inputs are the document flags shared by several commands.
type inputs struct {
	layoutPath     string
	recipientsPath string
}

func (in *inputs) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.layoutPath, "layout", "l", "", "layout document (json or yaml)")
	cmd.Flags().StringVarP(&in.recipientsPath, "recipients", "r", "", "recipient document (json or yaml)")
	_ = cmd.MarkFlagRequired("layout")
	_ = cmd.MarkFlagRequired("recipients")
}

func (in *inputs) load() (*layout.Layout, []recipient.Recipient, error) {
	lay, err := layout.LoadFile(in.layoutPath)
	if err != nil {
		return nil, nil, err
	}
	recipients, err := recipient.LoadFile(in.recipientsPath)
	if err != nil {
		return nil, nil, err
	}
	return lay, recipients, nil
}
