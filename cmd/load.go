package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/heathj/htmlattrs/config"
	"github.com/heathj/htmlattrs/html"
	"github.com/heathj/htmlattrs/metrics"
	"github.com/heathj/htmlattrs/script"
	"github.com/heathj/htmlattrs/spec"
)

type loadOptions struct {
	click       []string
	showMetrics bool
}

func newLoadCommand(loadConfig func() (config.Config, error)) *cobra.Command {
	var opts loadOptions

	cmd := &cobra.Command{
		Use:   "load <file.html>",
		Short: "Load a document and report the handlers and data attributes it binds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open document")
			}
			defer f.Close()
			return runLoad(cmd.OutOrStdout(), f, c, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.click, "click", nil, "ids of elements to click after loading")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "print dispatch counters")
	return cmd
}

func runLoad(out io.Writer, r io.Reader, c config.Config, opts loadOptions) error {
	reg := prometheus.NewRegistry()
	collector := metrics.New(metrics.WithRegistry(reg), metrics.WithNamespace(c.Metrics.Namespace))

	var cx spec.ScriptContext
	if c.Script.Enabled {
		rt := script.New()
		if err := rt.VM().Set("console", map[string]interface{}{
			"log": func(args ...interface{}) { fmt.Fprintln(out, args...) },
		}); err != nil {
			return errors.Wrap(err, "install console")
		}
		cx = rt
	}

	w := spec.NewWindow(c.Window.URL, cx, spec.WithInstrumentation(collector))
	elements, err := html.Load(w.Document(), r)
	if err != nil {
		return err
	}

	tag := color.New(color.FgCyan, color.Bold)
	handler := color.New(color.FgYellow)
	data := color.New(color.FgGreen)
	for _, e := range elements {
		tag.Fprintf(out, "<%s>", e.QualifiedName())
		if e.ID != "" {
			fmt.Fprintf(out, " #%s", e.ID)
		}
		fmt.Fprintln(out)
		for _, name := range e.GetAttributeNames() {
			if len(name) > 2 && name[:2] == "on" && e.HasEventHandler(name[2:]) {
				handler.Fprintf(out, "  handler %s\n", name[2:])
			}
		}
		for _, key := range e.Dataset().Keys() {
			v, _ := e.Dataset().Get(key)
			data.Fprintf(out, "  dataset.%s = %q\n", key, v)
		}
	}

	for _, id := range opts.click {
		e := html.ByID(elements, id)
		if e == nil {
			return errors.Errorf("no element with id %q", id)
		}
		e.Click()
	}
	for _, href := range w.NavigationRequests() {
		fmt.Fprintf(out, "navigate %s\n", href)
	}

	if opts.showMetrics {
		return printMetrics(out, reg)
	}
	return nil
}

func printMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			label := ""
			for _, lp := range m.GetLabel() {
				label += fmt.Sprintf("{%s=%q}", lp.GetName(), lp.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s%s %g", mf.GetName(), label, m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
