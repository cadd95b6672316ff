package main

import (
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/g-m-twostay/maxq/Trees"
	"github.com/spf13/cobra"
)

var defaultValues = []float64{11, 13, 21, 11, 20, 221, 89, -13}

func parseValues(args []string) ([]float64, error) {
	if len(args) == 0 {
		return slices.Clone(defaultValues), nil
	}
	vs := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", a, err)
		}
		vs[i] = v
	}
	return vs, nil
}

func format(vs ...float64) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(s, " ")
}

// demo prints the values sorted, then the maximum before and after removing it.
func demo(out io.Writer, vs []float64) error {
	sorted := slices.Clone(vs)
	slices.Sort(sorted)
	fmt.Fprintln(out, format(sorted...))

	tree := Trees.From(vs...)
	m, err := tree.Peek()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, format(m))
	if err = tree.RemoveMax(); err != nil {
		return err
	}
	if m, err = tree.Peek(); Trees.IsEmptyTree(err) {
		fmt.Fprintln(out, "empty")
		return nil
	}
	fmt.Fprintln(out, format(m))
	return nil
}

func drain(out io.Writer, vs []float64, ascending bool) {
	var tree Trees.MaxHeap[float64]
	if ascending {
		tree = Trees.FromC(func(a, b float64) bool { return a > b }, vs...)
	} else {
		tree = Trees.From(vs...)
	}
	popped := make([]float64, 0, len(vs))
	for !tree.Empty() {
		v, _ := tree.Pop()
		popped = append(popped, v)
	}
	fmt.Fprintln(out, format(popped...))
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "maxq",
		Short:         "Max priority queue backed by an AVL tree",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "demo [--] [numbers...]",
		Short: "Sort the numbers, print the maximum, remove it and print the next maximum",
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseValues(args)
			if err != nil {
				return err
			}
			return demo(cmd.OutOrStdout(), vs)
		},
	})

	var ascending bool
	cmdDrain := &cobra.Command{
		Use:   "drain [--] [numbers...]",
		Short: "Pop every number, greatest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseValues(args)
			if err != nil {
				return err
			}
			drain(cmd.OutOrStdout(), vs, ascending)
			return nil
		},
	}
	cmdDrain.Flags().BoolVar(&ascending, "ascending", false, "pop the smallest first")
	root.AddCommand(cmdDrain)

	var configPath string
	cmdBench := &cobra.Command{
		Use:   "bench",
		Short: "Measure insert and pop times for the sizes in the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			return runBench(config, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmdBench.Flags().StringVarP(&configPath, "config", "c", "", "YAML bench config")
	root.AddCommand(cmdBench)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
