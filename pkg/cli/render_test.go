package cli_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/telcochurn/churnboard/pkg/cli"
)

func runRender(t *testing.T, args ...string) string {
	t.Helper()
	out := filepath.Join(t.TempDir(), "dashboard.html")

	argv := append([]string{"churnboard", "--log-format", "json", "render", "-o", out}, args...)
	gt.NoError(t, cli.Run(context.Background(), argv)).Required()

	data, err := os.ReadFile(out)
	gt.NoError(t, err).Required()
	return string(data)
}

func TestRender(t *testing.T) {
	t.Run("default page", func(t *testing.T) {
		html := runRender(t)
		gt.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
		gt.Equal(t, strings.Count(html, "<!DOCTYPE html>"), 1)
		gt.S(t, html).Contains("Telco Customer Churn Dashboard")
		gt.S(t, html).Contains("The current churn rate is: 15.5%")
	})

	t.Run("churn rate flag", func(t *testing.T) {
		html := runRender(t, "--churn-rate", "0")
		gt.S(t, html).Contains("The current churn rate is: 0%")
	})

	t.Run("fragment only", func(t *testing.T) {
		html := runRender(t, "--fragment", "--churn-rate", "100")
		gt.False(t, strings.Contains(html, "<html"))
		gt.S(t, html).Contains("The current churn rate is: 100%")
	})

	t.Run("dashboard config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dashboard.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("churn_rate: 42\n"), 0o600)).Required()

		html := runRender(t, "--dashboard-config", path)
		gt.S(t, html).Contains("The current churn rate is: 42%")
	})

	t.Run("invalid log level", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{"churnboard", "--log-level", "loud", "render"})
		gt.Error(t, err)
	})

	t.Run("missing dashboard config", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "dashboard.html")
		err := cli.Run(context.Background(), []string{
			"churnboard", "--log-format", "json", "render",
			"-o", out, "--dashboard-config", filepath.Join(t.TempDir(), "nope.yaml"),
		})
		gt.Error(t, err)
	})
}

func TestRenderToStdoutWithDebugLogs(t *testing.T) {
	r, w, err := os.Pipe()
	gt.NoError(t, err).Required()

	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	done := make(chan string)
	go func() {
		data, _ := io.ReadAll(r)
		done <- string(data)
	}()

	runErr := cli.Run(context.Background(), []string{
		"churnboard", "--log-level", "debug", "--log-format", "json", "render",
	})
	os.Stdout = origStdout
	gt.NoError(t, w.Close())
	stdout := <-done

	gt.NoError(t, runErr).Required()
	gt.True(t, strings.HasPrefix(stdout, "<!DOCTYPE html>"))
	gt.False(t, strings.Contains(stdout, `"level":"DEBUG"`))
	gt.S(t, stdout).Contains("The current churn rate is: 15.5%")
}

func TestRenderOutputFileErrors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing-dir", "dashboard.html")
	err := cli.Run(context.Background(), []string{
		"churnboard", "--log-format", "json", "render", "-o", out,
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("CLI execution failed")

	_, statErr := os.Stat(out)
	gt.True(t, os.IsNotExist(statErr))
}
