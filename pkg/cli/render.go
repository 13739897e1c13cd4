package cli

import (
	"context"
	"io"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/telcochurn/churnboard/pkg/cli/config"
	"github.com/telcochurn/churnboard/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var (
		dashboardCfg config.Dashboard
		output       string
		fragment     bool
	)

	flags := joinFlags(
		dashboardCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file path (default: stdout)",
				Destination: &output,
			},
			&cli.BoolFlag{
				Name:        "fragment",
				Usage:       "Render only the dashboard markup without the surrounding document",
				Destination: &fragment,
			},
		},
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render the dashboard page as static HTML",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			source, err := dashboardCfg.Configure(ctx)
			if err != nil {
				return err
			}

			uc := usecase.NewDashboard(source)
			if output == "" {
				w := c.Root().Writer
				if w == nil {
					w = os.Stdout
				}
				if err := renderDashboard(ctx, uc, w, fragment); err != nil {
					return err
				}
			} else if err := renderToFile(ctx, uc, output, fragment); err != nil {
				return err
			}

			ctxlog.From(ctx).Debug("Dashboard rendered", "output", output, "fragment", fragment)
			return nil
		},
	}
}

func renderToFile(ctx context.Context, uc *usecase.Dashboard, path string, fragment bool) error {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}

	if err := renderDashboard(ctx, uc, f, fragment); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close output file", goerr.V("path", path))
	}
	return nil
}

func renderDashboard(ctx context.Context, uc *usecase.Dashboard, w io.Writer, fragment bool) error {
	var (
		out string
		err error
	)
	if fragment {
		out, err = uc.RenderApp(ctx)
	} else {
		out, err = uc.RenderPage(ctx)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to render dashboard")
	}

	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return goerr.Wrap(err, "failed to write dashboard")
	}
	return nil
}
