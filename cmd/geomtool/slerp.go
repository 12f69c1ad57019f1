package main

import (
	"errors"
	"fmt"

	"github.com/soypat/geom"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func (a *app) slerpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slerp FROM TO",
		Short: "Sample the interpolation between two quaternions",
		Long: `slerp prints steps+1 evenly spaced samples between FROM and TO, given in
the "<[x, y, z] ~ w>" form. With --plot the component curves are also
written to an image whose format follows the file extension.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			lerp, _ := cmd.Flags().GetBool("lerp")
			long, _ := cmd.Flags().GetBool("long")
			plotFile, _ := cmd.Flags().GetString("plot")
			if steps < 1 {
				return fmt.Errorf("steps must be positive, got %d", steps)
			}
			start, err := geom.ParseQuat(args[0])
			if err != nil {
				return err
			}
			end, err := geom.ParseQuat(args[1])
			if err != nil {
				return err
			}
			if start == geom.QuatZero || end == geom.QuatZero {
				return errors.New("cannot interpolate the zero quaternion")
			}
			if long && start.Unit().Dot(end.Unit()) < -antiparallelCos {
				return errors.New("opposite quaternions have no long interpolation path")
			}
			interp := geom.SlerpPath
			if lerp {
				interp = geom.LerpAndNormalizePath
			}
			samples := sampleRotations(start, end, steps, !long, interp)
			for i, q := range samples {
				t := float32(i) / float32(steps)
				fmt.Fprintln(cmd.OutOrStdout(), formatFloat(t, a.decimals), q.Format(a.decimals))
			}
			if plotFile == "" {
				return nil
			}
			if err := plotRotations(plotFile, samples); err != nil {
				return err
			}
			if a.verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), "wrote", plotFile)
			}
			return nil
		},
	}
	cmd.Flags().Int("steps", 8, "number of intervals sampled")
	cmd.Flags().Bool("lerp", false, "interpolate linearly and normalize instead of slerp")
	cmd.Flags().Bool("long", false, "do not force the shortest path")
	cmd.Flags().String("plot", "", "write the component curves to this image file")
	return cmd
}

// antiparallelCos bounds the cosine below which the unforced path passes
// too close to the zero quaternion.
const antiparallelCos = 1 - 0.001

type interpolator func(start, end geom.Quat, t float32, forceShortestPath bool) geom.Quat

func sampleRotations(start, end geom.Quat, steps int, shortest bool, interp interpolator) []geom.Quat {
	samples := make([]geom.Quat, steps+1)
	for i := range samples {
		samples[i] = interp(start, end, float32(i)/float32(steps), shortest)
	}
	return samples
}

func plotRotations(filename string, samples []geom.Quat) error {
	n := len(samples)
	curves := [4]plotter.XYs{}
	for c := range curves {
		curves[c] = make(plotter.XYs, n)
	}
	for i, q := range samples {
		t := float64(i) / float64(n-1)
		for c, v := range [4]float32{q.X, q.Y, q.Z, q.W} {
			curves[c][i].X = t
			curves[c][i].Y = float64(v)
		}
	}
	p := plot.New()
	p.Title.Text = "Quaternion interpolation"
	p.X.Label.Text = "t"
	p.Y.Label.Text = "component"
	err := plotutil.AddLinePoints(p,
		"x", curves[0],
		"y", curves[1],
		"z", curves[2],
		"w", curves[3],
	)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
