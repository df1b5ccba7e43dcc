package cmd

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abx-navigator/internal/navigator"
	"github.com/ziadkadry99/abx-navigator/internal/urlstate"
	"github.com/ziadkadry99/abx-navigator/internal/view"
)

var renderHTML bool

var renderCmd = &cobra.Command{
	Use:   "render [url]",
	Short: "Render the view for a navigator URL to stdout",
	Long: `Builds the view a browser would see for the given URL (for example
"/?doc=data/docs/penicillins.json") and prints it as plain text, or as the
full HTML page with --html. Without an argument the landing view is rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg, nil)

		address := &url.URL{Path: "/"}
		if len(args) == 1 {
			address, err = url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parsing url %q: %w", args[0], err)
			}
		}

		loader, err := newLoaderFromConfig(cfg, logger, nil)
		if err != nil {
			return err
		}
		msgs, err := newMessages(cfg)
		if err != nil {
			return err
		}

		nav := navigator.New(loader, urlstate.NewAddressBar(address), navigator.Options{
			ManifestPath: cfg.ManifestPath,
			Messages:     msgs,
			Logger:       logger,
		})
		bootErr := nav.Bootstrap(cmd.Context())

		out := cmd.OutOrStdout()
		if renderHTML {
			if err := view.Page(out, nav.View(), view.PageOptions{Lang: msgs.Lang(), Links: queryLinks{}}); err != nil {
				return err
			}
		} else {
			v := nav.View()
			fmt.Fprintf(out, "%s\n\n", v.Header.Title)
			fmt.Fprint(out, view.Text(v.Content))
		}

		if bootErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", bootErr)
		}
		return nil
	},
}

// queryLinks points navigation entries at deep-link URLs, which is all a
// standalone page can offer without the action endpoints.
type queryLinks struct{}

func (queryLinks) Part(p string) string {
	return urlstate.Merge(nil, urlstate.Set(urlstate.KeyPart, p)).String()
}

func (queryLinks) Document(p string) string {
	return urlstate.Merge(nil, urlstate.Set(urlstate.KeyDoc, p)).String()
}

func (queryLinks) Back() string { return "/" }

func init() {
	renderCmd.Flags().BoolVar(&renderHTML, "html", false, "print the full HTML page instead of text")
	rootCmd.AddCommand(renderCmd)
}
