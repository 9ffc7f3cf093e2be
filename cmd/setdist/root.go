// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvopt/constraints"
	"github.com/katalvlaran/lvopt/kernel"
	"github.com/katalvlaran/lvopt/matrix"
	"github.com/katalvlaran/lvopt/symbolic"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// errNoPoint is returned when a command needs --point (or --dim) and got neither.
var errNoPoint = errors.New("setdist: --point is required")

// setOptions collects the flags describing one set and one point.
type setOptions struct {
	kind     string
	center   []float64
	radius   float64
	xmin     []float64
	xmax     []float64
	normal   []float64
	offset   float64
	point    []float64
	dim      int
	symbolic bool
	verbose  bool

	flags *pflag.FlagSet
}

func (o *setOptions) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.kind, "kind", "k", constraints.KindBall2.String(), "constraint kind (see 'setdist kinds')")
	fs.Float64SliceVar(&o.center, "center", nil, "ball center; omit for the origin")
	fs.Float64VarP(&o.radius, "radius", "r", 1, "ball radius")
	fs.Float64SliceVar(&o.xmin, "xmin", nil, "rectangle lower bounds")
	fs.Float64SliceVar(&o.xmax, "xmax", nil, "rectangle upper bounds")
	fs.Float64SliceVar(&o.normal, "normal", nil, "halfspace normal a in <a,x> <= b")
	fs.Float64Var(&o.offset, "offset", 0, "halfspace offset b in <a,x> <= b")
	fs.Float64SliceVarP(&o.point, "point", "p", nil, "point to evaluate, comma separated")
	fs.IntVar(&o.dim, "dim", 0, "dimension of the symbolic point when --point is omitted")
	fs.BoolVarP(&o.symbolic, "symbolic", "s", false, "build the expression graph instead of a number")
	o.flags = fs
}

// vector returns the flag value, or nil when the flag was not given.
func (o *setOptions) vector(name string, v []float64) []float64 {
	if o.flags == nil || !o.flags.Changed(name) {
		return nil
	}

	return v
}

// build parses --kind and constructs the set through the registry.
func (o *setOptions) build() (constraints.Constraint, error) {
	kind, err := constraints.ParseKind(o.kind)
	if err != nil {
		return nil, err
	}

	return constraints.New(kind, constraints.Params{
		Center: o.vector("center", o.center),
		Radius: o.radius,
		XMin:   o.vector("xmin", o.xmin),
		XMax:   o.vector("xmax", o.xmax),
		Normal: o.vector("normal", o.normal),
		Offset: o.offset,
	})
}

// pointDim is the dimension of the point to build.
func (o *setOptions) pointDim(c constraints.Constraint) (int, error) {
	if len(o.point) > 0 {
		return len(o.point), nil
	}
	if o.dim > 0 {
		return o.dim, nil
	}
	if n, fixed := c.Dimension(); fixed {
		return n, nil
	}

	return 0, errNoPoint
}

// newLogger writes text logs to w; --verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCommand() *cobra.Command {
	opts := &setOptions{}
	root := &cobra.Command{
		Use:          "setdist",
		Short:        "Evaluate constraint sets numerically and symbolically",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug information to stderr")
	opts.register(root.PersistentFlags())

	root.AddCommand(
		newDistanceCommand(opts),
		newProjectCommand(opts),
		newGradientCommand(opts),
		newKindsCommand(),
	)

	return root
}

func newDistanceCommand(opts *setOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "distance",
		Short: "Squared distance from --point to the set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), opts.verbose)
			c, err := opts.build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !opts.symbolic {
				if len(opts.point) == 0 {
					return errNoPoint
				}
				log.Debug("evaluating", "set", fmt.Sprint(c), "domain", kernel.Numeric, "dim", len(opts.point))
				d, err := c.DistanceSquared(opts.point)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, d)
				return nil
			}

			n, err := opts.pointDim(c)
			if err != nil {
				return err
			}
			u := symbolic.NewVector("u", n)
			log.Debug("evaluating", "set", fmt.Sprint(c), "domain", kernel.Symbolic, "dim", n)
			d, err := c.DistanceSquared(u)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, d)
			if len(opts.point) == 0 {
				return nil
			}
			e, _ := d.Expr()
			fn, err := symbolic.NewFunction("dist", u, e)
			if err != nil {
				return err
			}
			vals, err := fn.Call(opts.point)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "at %s: %g\n", matrix.FormatVector(opts.point), vals[0])
			log.Debug("graph", "nodes", symbolic.Size(e))
			return nil
		},
	}
}

// unmoved reports whether the projection left the point in place, within tol.
func unmoved(point, proj []float64, tol float64) (bool, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return false, fmt.Errorf("setdist: --tol must be finite and non-negative, got %g", tol)
	}
	a, err := matrix.NewVector(point, matrix.WithNoValidateNaNInf())
	if err != nil {
		return false, err
	}
	b, err := matrix.NewVector(proj, matrix.WithNoValidateNaNInf())
	if err != nil {
		return false, err
	}

	return matrix.AllClose(a, b, matrix.WithEpsilon(tol))
}

func newProjectCommand(opts *setOptions) *cobra.Command {
	var tol float64
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Euclidean projection of --point onto the set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), opts.verbose)
			c, err := opts.build()
			if err != nil {
				return err
			}
			var p kernel.Point = opts.point
			if opts.symbolic {
				n, err := opts.pointDim(c)
				if err != nil {
					return err
				}
				p = symbolic.NewVector("u", n)
			} else if len(opts.point) == 0 {
				return errNoPoint
			}
			log.Debug("projecting", "set", fmt.Sprint(c), "symbolic", opts.symbolic)
			v, err := c.Project(p)
			if err != nil {
				if errors.Is(err, constraints.ErrNotImplemented) {
					log.Warn("projection is not available for this set", "kind", c.Kind())
				}
				return err
			}
			if proj, ok := v.Float64s(); ok {
				same, err := unmoved(opts.point, proj, tol)
				if err != nil {
					return err
				}
				if same {
					log.Info("point is already in the set", "tol", tol)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", matrix.DefaultEpsilon, "tolerance for reporting that the point was already in the set")

	return cmd
}

func newGradientCommand(opts *setOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gradient",
		Short: "Gradient of the squared distance, built symbolically and evaluated at --point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr(), opts.verbose)
			c, err := opts.build()
			if err != nil {
				return err
			}
			if len(opts.point) == 0 {
				return errNoPoint
			}
			u := symbolic.NewVector("u", len(opts.point))
			d, err := c.DistanceSquared(u)
			if err != nil {
				return err
			}
			e, _ := d.Expr()
			grad, err := symbolic.Gradient(e, u)
			if err != nil {
				return err
			}
			fn, err := symbolic.NewFunction("grad", u, grad...)
			if err != nil {
				return err
			}
			log.Debug("differentiated", "set", fmt.Sprint(c), "nodes", symbolic.Size(e))
			vals, err := fn.Call(opts.point)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), matrix.FormatVector(vals))
			return nil
		},
	}
}

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List constraint kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range constraints.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}
