package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/cottand/midir/hierarchy"
	"github.com/cottand/midir/ir"
	"github.com/cottand/midir/typing"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var MinimizeCmd = &cobra.Command{
	Use:          "minimize fixture.yaml",
	Short:        "Minimize a candidate typing list against a declared hierarchy",
	RunE:         runMinimize,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	noMinimize        *bool
	strictDedup       *bool
	finalizeSurvivors *bool
	parallelThreshold *int
)

func init() {
	noMinimize = MinimizeCmd.Flags().Bool("no-minimize", false, "identity pass: print candidates unpruned")
	strictDedup = MinimizeCmd.Flags().Bool("strict-dedup", false, "also remove exact duplicate candidates")
	finalizeSurvivors = MinimizeCmd.Flags().BoolP("finalize", "f", false, "legalize surviving typings for final code")
	parallelThreshold = MinimizeCmd.Flags().Int("parallel-threshold", typing.DefaultParallelThreshold, "candidate count above which the parallel strategy runs")
}

// fixture is the YAML debugging format: a hierarchy of declared supertype
// edges, the method's locals, and one candidate typing per entry mapping
// local name to type name. Locals a typing does not mention stay at null.
type fixture struct {
	Profile   string              `yaml:"profile"`
	Hierarchy map[string][]string `yaml:"hierarchy"`
	Locals    []string            `yaml:"locals"`
	Typings   []map[string]string `yaml:"typings"`
}

func runMinimize(command *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "reading fixture")
	}
	var fx fixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return errors.Wrap(err, "parsing fixture")
	}
	lines, err := minimizeFixture(fx)
	if err != nil {
		return err
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(command.OutOrStdout(), line)
	}
	return nil
}

func minimizeFixture(fx fixture) ([]string, error) {
	profile, err := ir.ParseProfile(fx.Profile)
	if err != nil {
		return nil, err
	}
	universe := ir.UniverseFor(profile)
	graph, err := hierarchy.NewGraph(universe, fx.Hierarchy)
	if err != nil {
		return nil, errors.Wrap(err, "building hierarchy")
	}

	byName := make(map[string]ir.Local, len(fx.Locals))
	locals := make([]ir.Local, len(fx.Locals))
	for i, name := range fx.Locals {
		l := ir.Local{Name: name, Num: i}
		locals[i] = l
		byName[name] = l
	}

	strategy := typing.NewDefaultStrategy(graph, universe, typing.Options{
		Disabled:          *noMinimize,
		ParallelThreshold: *parallelThreshold,
		StrictDedup:       *strictDedup,
	})

	candidates := make(typing.Candidates, 0, len(fx.Typings))
	for i, entry := range fx.Typings {
		tg := strategy.NewTyping(locals)
		for name, typeName := range entry {
			l, ok := byName[name]
			if !ok {
				return nil, errors.Errorf("typing %d assigns unknown local %q", i, name)
			}
			tg.Set(l, ir.ParseType(typeName))
		}
		candidates = append(candidates, tg)
	}

	strategy.Minimize(&candidates)

	lines := make([]string, 0, len(candidates))
	for _, tg := range candidates {
		if *finalizeSurvivors {
			strategy.FinalizeTypes(tg)
		}
		lines = append(lines, tg.String())
	}
	sort.Strings(lines)
	return lines, nil
}
