package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/testreport/pkg/config"
	"github.com/devicelab-dev/testreport/pkg/logger"
	"github.com/devicelab-dev/testreport/pkg/report"
	"github.com/devicelab-dev/testreport/pkg/request"
)

var generateCommand = &cli.Command{
	Name:      "generate",
	Usage:     "Generate an HTML report from a runner data file",
	ArgsUsage: "<data-file>",
	Description: `Read a JSON report payload, render the matching report variant
(single test, batch, or suite), and write a timestamped HTML artifact plus a
"latest" pointer.

The output directory is resolved in order: the payload's REPORT_PATH
environment override, --output, the workspace config.yaml reportPath, then
<home>/reports. Relative paths resolve against the testreport home.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			Aliases: []string{"d"},
			Usage:   "Path to the JSON data file (alternative to the positional argument)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output directory for reports (default: <home>/reports)",
		},
		&cli.StringFlag{
			Name:  "title",
			Usage: "Report title",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to workspace config.yaml",
		},
	},
	Action: runGenerate,
}

func runGenerate(c *cli.Context) error {
	dataPath := c.String("data")
	if dataPath == "" {
		dataPath = c.Args().First()
	}
	if dataPath == "" {
		return errors.New("a data file is required: testreport generate <data-file>")
	}

	home := config.GetHome()
	initLogger(c.Bool("verbose"))
	defer logger.Close()

	cfg, err := loadConfig(c.String("config"), home)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	req, err := request.ReadDataFile(dataPath, home)
	if err != nil {
		return err
	}

	artifact, err := report.Generate(req, report.Options{
		OutputDir:   firstNonEmpty(c.String("output"), cfg.ReportPath),
		Home:        home,
		Title:       firstNonEmpty(c.String("title"), cfg.Title),
		Style:       cfg.ReportStyle,
		Environment: cfg.Environment,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, artifact.ReportPath)
	return nil
}

func loadConfig(path, home string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromDir(home)
}

// initLogger sets up the file logger. Logging is best-effort; a failure to
// create the log file never blocks report generation.
func initLogger(verbose bool) {
	logsDir := config.GetLogsDir()
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return
	}
	if err := logger.Init(filepath.Join(logsDir, "testreport.log")); err != nil {
		return
	}
	logger.SetVerbose(verbose)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
