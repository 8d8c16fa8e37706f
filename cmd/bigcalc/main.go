// Command bigcalc is a thin Cobra front-end over the parbig library: it
// carries no arithmetic of its own, only argument parsing and result
// formatting.
package main

import (
	"fmt"
	"os"

	"github.com/rezaramadhan/parbig"
	"github.com/rezaramadhan/parbig/addsub"
	"github.com/rezaramadhan/parbig/arena"
	"github.com/rezaramadhan/parbig/karatsuba"
	"github.com/spf13/cobra"
)

var (
	threads int
	budget  int
)

func parseOperands(args []string) (*parbig.Int, *parbig.Int, error) {
	a, b := parbig.NewInt(), parbig.NewInt()
	if err := a.SetHex(args[0]); err != nil {
		return nil, nil, err
	}
	if err := b.SetHex(args[1]); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bigcalc",
		Short: "Exercise parbig's Add/Sub/Mul from the command line",
	}
	root.PersistentFlags().IntVar(&threads, "threads", addsub.NumThreads, "add/sub worker fan-out")
	root.PersistentFlags().IntVar(&budget, "budget", karatsuba.NumThreads, "karatsuba recursion thread budget")

	root.AddCommand(&cobra.Command{
		Use:   "add a b",
		Short: "Print a + b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addsub.NumThreads = threads
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			r := parbig.NewInt()
			parbig.Add(r, a, b)
			fmt.Fprintln(cmd.OutOrStdout(), r.String())
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "sub a b",
		Short: "Print a - b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addsub.NumThreads = threads
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			r := parbig.NewInt()
			parbig.Sub(r, a, b)
			fmt.Fprintln(cmd.OutOrStdout(), r.String())
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "mul a b",
		Short: "Print a * b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addsub.NumThreads = threads
			karatsuba.NumThreads = budget
			a, b, err := parseOperands(args)
			if err != nil {
				return err
			}
			r := parbig.NewInt()
			ctx := arena.New()
			if err := parbig.Mul(r, a, b, ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.String())
			return nil
		},
	})

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
