package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/wbreza/drawkit/internal/config"
	"github.com/wbreza/drawkit/internal/layout"
	"github.com/wbreza/drawkit/ux"
)

func newRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Render a layout through a dynamic and/or typed screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			return run(cmd.OutOrStdout(), c)
		},
	}

	runCmd.Flags().StringP("layout", "l", "", "Path to a layout yaml file (default: built-in demo)")
	runCmd.Flags().StringP("mode", "m", config.ModeBoth, "Collection to render with: dynamic, typed or both")
	runCmd.Flags().StringP("title", "t", "", "Title printed above each screen")

	return runCmd
}

type screen interface {
	Run()
}

// run builds every requested screen before rendering any of them, so a
// layout error never leaves partial output behind.
func run(writer io.Writer, c config.Config) error {
	if c.Layout == "" {
		return runDemo(writer, c)
	}

	document, err := layout.Load(c.Layout)
	if err != nil {
		return err
	}

	if c.Title == "" {
		c.Title = document.Title
	}

	log.Printf("Rendering %d widgets from %s in %s mode\n", len(document.Widgets), c.Layout, c.Mode)

	options := &ux.ScreenOptions{Writer: writer, Title: c.Title}
	screens := []screen{}

	if c.Mode == config.ModeDynamic || c.Mode == config.ModeBoth {
		dynamic, err := dynamicScreen(document, options)
		if err != nil {
			return err
		}

		screens = append(screens, dynamic)
	}

	if c.Mode == config.ModeTyped || c.Mode == config.ModeBoth {
		typed, err := typedScreen(document, options)
		switch {
		case err == nil:
			screens = append(screens, typed)
		case c.Mode == config.ModeBoth && errors.Is(err, layout.ErrMixedKinds):
			log.Printf("Skipping typed screen: %v\n", err)
		default:
			return err
		}
	}

	for _, s := range screens {
		s.Run()
	}

	return nil
}

// runDemo draws a mixed screen and a screen of buttons.
func runDemo(writer io.Writer, c config.Config) error {
	options := &ux.ScreenOptions{Writer: writer, Title: c.Title}
	screens := []screen{}

	if c.Mode == config.ModeDynamic || c.Mode == config.ModeBoth {
		dynamic, err := dynamicScreen(layout.Demo(), options)
		if err != nil {
			return err
		}

		screens = append(screens, dynamic)
	}

	if c.Mode == config.ModeTyped || c.Mode == config.ModeBoth {
		button := ux.Button{Width: 50, Height: 20, Label: "ok"}
		screens = append(screens, ux.NewTypedScreen(options, button, button))
	}

	for _, s := range screens {
		s.Run()
	}

	return nil
}

func dynamicScreen(document *layout.Document, options *ux.ScreenOptions) (*ux.Screen, error) {
	components, err := document.Components()
	if err != nil {
		return nil, err
	}

	return ux.NewScreen(options, components...), nil
}

// typedScreen picks the TypedScreen instantiation matching the layout's single widget kind.
// An empty layout yields an empty screen; its element type is never observed.
func typedScreen(document *layout.Document, options *ux.ScreenOptions) (screen, error) {
	if len(document.Widgets) == 0 {
		return ux.NewTypedScreen[ux.Button](options), nil
	}

	kind, err := document.Kind()
	if err != nil {
		return nil, fmt.Errorf("typed mode: %w", err)
	}

	switch kind {
	case layout.KindButton:
		buttons, err := layout.Typed[ux.Button](document)
		if err != nil {
			return nil, err
		}

		return ux.NewTypedScreen(options, buttons...), nil
	case layout.KindSelectBox:
		selectBoxes, err := layout.Typed[ux.SelectBox](document)
		if err != nil {
			return nil, err
		}

		return ux.NewTypedScreen(options, selectBoxes...), nil
	default:
		return nil, fmt.Errorf("%w: '%s'", layout.ErrUnknownKind, kind)
	}
}
