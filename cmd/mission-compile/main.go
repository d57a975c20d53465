// mission-compile merges operator overrides into the mission template and
// writes a timestamped mission file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/logging"
	"github.com/23Nimbus/aether-wraith-isr-fleet/internal/missions"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		templatePath string
		outDir       string
		objective    string
		zone         string
		priority     int
		overrides    string
	)

	flags := pflag.NewFlagSet("mission-compile", pflag.ContinueOnError)
	flags.StringVar(&templatePath, "template", filepath.Join("missions", "mission_template.yaml"), "path to the mission template")
	flags.StringVar(&outDir, "out-dir", "missions", "directory for compiled missions")
	flags.StringVar(&objective, "objective", "", "mission objective")
	flags.StringVar(&zone, "zone", "", "target zone identifier")
	flags.IntVar(&priority, "priority", 0, "priority tier (1-5, lower is higher priority)")
	flags.StringVar(&overrides, "overrides", "", "path to a YAML/JSON node config override file")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	logger := logging.New("mission-compile")

	template, err := missions.LoadTemplate(templatePath)
	if err != nil {
		return err
	}
	nodeConfig, err := missions.ParseNodeConfigFile(overrides)
	if err != nil {
		return err
	}

	ov := missions.Overrides{
		Objective:  objective,
		TargetZone: zone,
		NodeConfig: nodeConfig,
	}
	if flags.Changed("priority") {
		ov.Priority = &priority
	}

	compiled := missions.Merge(template, ov)
	path, err := missions.Save(outDir, compiled, time.Now())
	if err != nil {
		return err
	}
	logger.Printf("mission saved to %s", path)
	return nil
}
