package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-ghbutton/pkg/button"
	"github.com/goliatone/go-ghbutton/pkg/config"
	"github.com/goliatone/go-ghbutton/pkg/page"
	"github.com/goliatone/go-ghbutton/pkg/prompt"
	"github.com/goliatone/go-ghbutton/pkg/resources"
)

func (a *app) renderCmd() *cobra.Command {
	var f requestFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the anchor markup and script tag for one button",
		Example: `  ghbutton render --type star --user octo --repo demo
  ghbutton render -t follow -u octo --no-count --locale es`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := f.document()
			if err != nil {
				return err
			}
			if len(doc.Buttons) > 1 {
				return fmt.Errorf("%w in %s: use ghbutton page to render them", errMultipleButtons, f.configPath)
			}
			req, _ := doc.First()
			req = f.overlay(cmd.Flags(), req)

			if f.interactive {
				req, err = a.ask(cmd, req)
				if err != nil {
					return err
				}
			}

			catalog, err := a.catalog()
			if err != nil {
				return err
			}

			registry := resources.NewRegistry(resources.WithLogger(a.logger))
			opts := append(f.buttonOptions(), button.WithLogger(a.logger))
			markup, err := button.New(opts...).Render(cmd.Context(), button.RenderContext{
				Locale:     a.locale(doc),
				Translator: catalog,
				Resources:  registry,
			}, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, markup)
			for _, tag := range registry.Tags(resources.PositionEnd) {
				fmt.Fprintln(out, tag)
			}
			return nil
		},
	}
	bindRequestFlags(cmd.Flags(), &f)
	return cmd
}

func (a *app) pageCmd() *cobra.Command {
	var (
		f     requestFlags
		title string
	)
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Print a standalone HTML page with one or more buttons",
		Example: `  ghbutton page --config buttons.yaml
  ghbutton page --type watch --user octo --repo demo --title "Demo"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := f.document()
			if err != nil {
				return err
			}
			if err := f.singleButton(cmd.Flags(), doc); err != nil {
				return err
			}
			if len(doc.Buttons) == 1 {
				doc.Buttons[0] = f.overlay(cmd.Flags(), doc.Buttons[0])
			}
			if f.interactive {
				doc.Buttons[0], err = a.ask(cmd, doc.Buttons[0])
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("title") {
				doc.Title = title
			}

			catalog, err := a.catalog()
			if err != nil {
				return err
			}

			renderer, err := page.New(
				page.WithLocale(a.locale(doc)),
				page.WithTitle(doc.Title),
				page.WithTranslator(catalog),
				page.WithLogger(a.logger),
				page.WithButtonRenderer(button.New(append(f.buttonOptions(), button.WithLogger(a.logger))...)),
			)
			if err != nil {
				return err
			}
			html, err := renderer.Render(cmd.Context(), doc.Buttons)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(html)
			return err
		},
	}
	bindRequestFlags(cmd.Flags(), &f)
	cmd.Flags().StringVar(&title, "title", "", "page title (defaults to the translated title)")
	return cmd
}

func (a *app) ask(cmd *cobra.Command, defaults button.Request) (button.Request, error) {
	asker := prompt.New(
		prompt.WithPromptDriver(prompt.NewSurveyDriver(cmd.ErrOrStderr())),
		prompt.WithLogger(a.logger),
	)
	return asker.AskRequest(cmd.Context(), defaults)
}

// locale prefers --locale over the config document.
func (a *app) locale(doc config.Document) string {
	if a.flags.locale != "" {
		return a.flags.locale
	}
	return doc.Locale
}
