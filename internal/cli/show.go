package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nagygr/shortcuts/internal/config"
	"github.com/nagygr/shortcuts/internal/pipeline"
	"github.com/nagygr/shortcuts/internal/render"
	"github.com/nagygr/shortcuts/internal/watcher"
)

var (
	showIndex int
	showHTML  bool
	showMode  string
	showWatch bool
)

func init() {
	showCmd.Flags().IntVar(&showIndex, "index", -1, "Select the application by its position in the registry (0-based)")
	showCmd.Flags().BoolVar(&showHTML, "html", false, "Render as an HTML table (same as --mode html)")
	showCmd.Flags().StringVar(&showMode, "mode", "", "Output mode: plain or html (default from settings)")
	showCmd.Flags().BoolVar(&showWatch, "watch", false, "Re-render whenever the application's config file changes")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print the shortcuts of one application",
	Long: `Print the shortcuts of one application. The application is selected by
name (the first one with that name), by --index, or defaults to the first
application in the registry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 && showIndex >= 0 {
		return fmt.Errorf("specify either an application name or --index, not both")
	}

	mode, err := showRenderMode()
	if err != nil {
		return err
	}

	p, err := loadPipeline(out, mode)
	if err != nil {
		return err
	}

	index := 0
	switch {
	case len(args) == 1:
		index, err = p.Lookup(args[0])
		if err != nil {
			fmt.Fprint(out, render.Error(mode, pipeline.StageFor(err), err))
			return &reportedError{err: err}
		}
	case showIndex >= 0:
		index = showIndex
	}

	rendered, err := p.Show(index, mode)
	fmt.Fprint(out, rendered)

	if showWatch {
		return watchApplication(cmd, p, index, mode)
	}
	if err != nil {
		return &reportedError{err: err}
	}
	return nil
}

// showRenderMode resolves the output mode from flags, then settings.
func showRenderMode() (render.Mode, error) {
	if showHTML {
		return render.ModeHTML, nil
	}
	if showMode != "" {
		return render.ParseMode(showMode)
	}
	return config.Mode()
}

// watchApplication re-renders the application at index after every change
// to its config file until interrupted.
func watchApplication(cmd *cobra.Command, p *pipeline.Pipeline, index int, mode render.Mode) error {
	apps := p.Applications()
	if index < 0 || index >= len(apps) {
		return fmt.Errorf("cannot watch: no application at index %d", index)
	}
	target := p.Resolve(apps[index])

	w, err := watcher.New(watcher.DefaultConfig(target))
	if err != nil {
		return err
	}
	defer w.Stop()

	changes, err := w.Start()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl-C to stop)\n", target)
	for {
		select {
		case <-changes:
			logger.Info("config file changed", zap.String("application", apps[index].Name), zap.String("path", target))
			fmt.Fprint(cmd.OutOrStdout(), p.RenderAt(index, mode))
		case err := <-w.Errors():
			logger.Warn("watch error", zap.Error(err))
		case <-ctx.Done():
			return nil
		}
	}
}
