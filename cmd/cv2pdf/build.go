package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// resolveConfig layers defaults, the config file, environment variables and
// flags, then validates the result. Without --config, a cv2pdf.yaml found in
// the usual places is used if present.
func resolveConfig(f *cliFlags, env *Environment, logger *log.Logger) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(logger, env.Environ())

	name := f.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	var cfg *config.Config
	if name != "" {
		var err error
		if cfg, err = config.LoadConfig(name); err != nil {
			return nil, err
		}
		logger.Debug("loaded config", "name", name)
	} else {
		loaded, err := config.LoadConfig(config.DefaultConfigName)
		switch {
		case err == nil:
			cfg = loaded
			logger.Debug("loaded config", "name", config.DefaultConfigName)
		case errors.Is(err, config.ErrConfigNotFound):
			cfg = config.DefaultConfig()
		default:
			return nil, err
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies CLI flags over config values. Only flags that were
// set take effect.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.input.data != "" {
		cfg.Input.Data = f.input.data
	}
	if f.input.photo != "" {
		cfg.Input.Photo = f.input.photo
	}
	if f.input.style != "" {
		cfg.Style.Stylesheet = f.input.style
	}
	if f.output != "" {
		cfg.Output.Dir = f.output
	}
	if len(f.langs) > 0 {
		cfg.Languages = f.langs
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.htmlOnly {
		cfg.Output.HTMLOnly = true
	}
	if f.withCertifications {
		cfg.Document.IncludeCertifications = true
	}

	if f.pdf.backend != "" {
		cfg.PDF.Backend = f.pdf.backend
	}
	if f.pdf.timeout != "" {
		cfg.PDF.Timeout = f.pdf.timeout
	}
	if f.pdf.pageSize != "" {
		cfg.PDF.Page.Size = f.pdf.pageSize
	}
	if f.pdf.margin != marginUnset {
		cfg.PDF.Page.Margin = f.pdf.margin
	}
	if f.pdf.maxPages != maxPagesUnset {
		cfg.PDF.MaxPages = f.pdf.maxPages
	}
}

// runBuild renders every configured language to HTML and PDF.
func runBuild(ctx context.Context, f *cliFlags, env *Environment) error {
	logger := newLogger(env.Stderr, logLevel(f.common))
	prog := newProgress(logger)

	cfg, err := resolveConfig(f, env, logger)
	if err != nil {
		return err
	}

	resume, err := cv2pdf.LoadResume(cfg.Input.Data)
	if err != nil {
		return err
	}
	logger.Debug("loaded data", "path", cfg.Input.Data)

	loader, err := cv2pdf.NewAssetLoader(cfg.Assets.BasePath)
	if err != nil {
		return fmt.Errorf("%w: asset path: %v", config.ErrInvalidConfig, err)
	}
	css, err := cv2pdf.LoadStylesheet(cfg.Style.Stylesheet, loader)
	if err != nil {
		return err
	}
	templates, err := cv2pdf.NewRenderer(loader)
	if err != nil {
		return err
	}

	photo, ok := cv2pdf.EmbedPhoto(cfg.Input.Photo)
	if !ok {
		logger.Debug("no photo, rendering without", "path", cfg.Input.Photo)
	}

	page := &cv2pdf.PageSettings{Size: cfg.PDF.Page.Size, Margin: cfg.PDF.Page.Margin}
	timeout := cfg.TimeoutDuration()
	pdf, err := env.NewPDFRenderer(cfg.PDF.Backend, page, timeout)
	if err != nil {
		return err
	}

	svc := cv2pdf.New(
		cv2pdf.WithRenderer(pdf),
		cv2pdf.WithTemplates(templates),
		cv2pdf.WithPageSettings(page),
		cv2pdf.WithTimeout(timeout),
		cv2pdf.WithLogger(logger),
	)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn("closing browser", "err", err)
		}
	}()

	artifacts, err := svc.Generate(ctx, resume, cv2pdf.GenerateOptions{
		Languages: cfg.Languages,
		OutputDir: cfg.Output.Dir,
		Document: cv2pdf.DocumentOptions{
			CSS:                   css,
			PhotoURI:              photo,
			IncludeCertifications: cfg.Document.IncludeCertifications,
		},
		HTMLOnly: cfg.Output.HTMLOnly,
		MaxPages: cfg.PDF.MaxPages,
	})
	printArtifacts(env, artifacts, f.common.quiet)
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Generated %d language(s)", len(artifacts)))
	return nil
}

// printArtifacts lists written files on stdout.
func printArtifacts(env *Environment, artifacts []cv2pdf.Artifact, quiet bool) {
	if quiet {
		return
	}
	for _, a := range artifacts {
		fmt.Fprintln(env.Stdout, a.HTMLPath)
		if a.PDFPath != "" {
			fmt.Fprintln(env.Stdout, a.PDFPath)
		}
	}
}

// runValidate loads the config and data file without rendering.
func runValidate(_ context.Context, f *cliFlags, env *Environment) error {
	logger := newLogger(env.Stderr, logLevel(f.common))

	cfg, err := resolveConfig(f, env, logger)
	if err != nil {
		return err
	}
	resume, err := cv2pdf.LoadResume(cfg.Input.Data)
	if err != nil {
		return err
	}

	for _, lang := range cfg.Languages {
		if _, err := cv2pdf.LabelsFor(lang); err != nil {
			return err
		}
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "%s: valid (%s)\n", cfg.Input.Data, resume.Meta.Name)
	}
	return nil
}
