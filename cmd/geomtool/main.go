package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/geom"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// app carries the configuration resolved for a single invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	decimals int
	verbose  bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:   "geomtool",
		Short: "Compose, invert and interpolate float32 transforms",
		Long: `geomtool builds transform matrices, rotates vectors, interpolates
rotations and normalizes the text form of vectors and quaternions.
Rotation angles are given in degrees and are clockwise positive.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.initConfig(cmd) },
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/geomtool.yaml)")
	flags.Float64("tolerance", float64(geom.DefaultTolerance), "epsilon of tolerance comparisons")
	flags.Int("decimals", -1, "decimals printed, negative for shortest exact form")
	flags.BoolP("verbose", "v", false, "verbose output")
	for _, key := range []string{"tolerance", "decimals", "verbose"} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		a.srtCmd(),
		a.invertCmd(),
		a.rotateCmd(),
		a.slerpCmd(),
		a.parseCmd(),
	)
	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config"))
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigName("geomtool")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("GEOM")
	a.v.AutomaticEnv()

	err := a.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
	case a.cfgFile == "" && errors.As(err, &notFound):
	default:
		return fmt.Errorf("reading config: %w", err)
	}

	a.verbose = a.v.GetBool("verbose")
	a.decimals = a.v.GetInt("decimals")
	tol := a.v.GetFloat64("tolerance")
	if !(tol >= 0) || tol > math.MaxFloat32 {
		return fmt.Errorf("invalid tolerance %v", tol)
	}
	geom.SetTolerance(float32(tol))
	if a.verbose {
		if used := a.v.ConfigFileUsed(); used != "" && err == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", used)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Using tolerance:", geom.Tolerance())
	}
	return nil
}

type formatter interface {
	Format(decimals int) string
}

func (a *app) println(cmd *cobra.Command, prefix string, f formatter) {
	if prefix != "" {
		fmt.Fprint(cmd.OutOrStdout(), prefix, " ")
	}
	fmt.Fprintln(cmd.OutOrStdout(), f.Format(a.decimals))
}

func (a *app) printMat(cmd *cobra.Command, m geom.Mat4) {
	for i := 0; i < 4; i++ {
		a.println(cmd, "", m.Row(i))
	}
}

func (a *app) srtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "srt",
		Short: "Print the scale, rotate then translate matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scaleFlag, _ := cmd.Flags().GetString("scale")
			eulerFlag, _ := cmd.Flags().GetString("euler")
			translateFlag, _ := cmd.Flags().GetString("translate")
			transposed, _ := cmd.Flags().GetBool("transposed")

			scale, err := geom.ParseVec3(scaleFlag)
			if err != nil {
				return err
			}
			euler, err := geom.ParseVec3(eulerFlag)
			if err != nil {
				return err
			}
			translate, err := geom.ParseVec3(translateFlag)
			if err != nil {
				return err
			}
			rot := geom.FromEulerRotations(geom.DtoR(euler.X), geom.DtoR(euler.Y), geom.DtoR(euler.Z))
			if a.verbose {
				fmt.Fprintln(cmd.ErrOrStderr(), "rotation:", rot.Format(a.decimals))
			}
			m := geom.FromSRT(scale, rot, translate)
			if transposed {
				m = geom.FromSRTTransposed(scale, rot, translate)
			}
			a.printMat(cmd, m)
			return nil
		},
	}
	cmd.Flags().String("scale", "[1, 1, 1]", "scale vector")
	cmd.Flags().String("euler", "[0, 0, 0]", "pitch, yaw and roll in degrees")
	cmd.Flags().String("translate", "[0, 0, 0]", "translation vector")
	cmd.Flags().Bool("transposed", false, "print the column-major upload layout")
	return cmd
}

func (a *app) invertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invert ROW ROW ROW ROW",
		Short: "Print the determinant and inverse of a matrix given by rows",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [4]geom.Vec4
			for i, arg := range args {
				row, err := geom.ParseVec4(arg)
				if err != nil {
					return fmt.Errorf("row %d: %w", i, err)
				}
				rows[i] = row
			}
			m := geom.Mat4FromRows(rows[0], rows[1], rows[2], rows[3])
			det := m.Det()
			fmt.Fprintln(cmd.OutOrStdout(), "det", formatFloat(det, a.decimals))
			if !m.HasInverse() {
				return errors.New("matrix is singular")
			}
			if a.verbose && m.IsOrthogonal() {
				fmt.Fprintln(cmd.ErrOrStderr(), "orthogonal matrix, inverting by transpose")
			}
			a.printMat(cmd, m.Inverse())
			return nil
		},
	}
	return cmd
}

func (a *app) rotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate VEC",
		Short: "Rotate a vector about an axis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axisFlag, _ := cmd.Flags().GetString("axis")
			angle, _ := cmd.Flags().GetFloat32("angle")
			v, err := geom.ParseVec3(args[0])
			if err != nil {
				return err
			}
			axis, err := geom.ParseVec3(axisFlag)
			if err != nil {
				return err
			}
			if axis == geom.Vec3Zero {
				return errors.New("rotation axis is the zero vector")
			}
			q := geom.FromAxialRotation(axis, geom.DtoR(angle))
			a.println(cmd, "quat", q)
			a.println(cmd, "vec", q.Rotate(v))
			return nil
		},
	}
	cmd.Flags().String("axis", "[0, 1, 0]", "rotation axis")
	cmd.Flags().Float32("angle", 0, "clockwise rotation in degrees")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse VALUE",
		Short: "Parse a vector or quaternion and print it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, typ, err := parseValue(args[0])
			if err != nil {
				return err
			}
			a.println(cmd, typ, f)
			return nil
		},
	}
	return cmd
}

// parseValue picks the type from the shape of s: a quaternion when it
// carries the '~' separator, otherwise a vector by component count.
func parseValue(s string) (formatter, string, error) {
	if strings.ContainsRune(s, '~') {
		q, err := geom.ParseQuat(s)
		return q, "Quat", err
	}
	switch 1 + strings.Count(s, ",") {
	case 2:
		v, err := geom.ParseVec2(s)
		return v, "Vec2", err
	case 3:
		v, err := geom.ParseVec3(s)
		return v, "Vec3", err
	case 4:
		v, err := geom.ParseVec4(s)
		return v, "Vec4", err
	}
	return nil, "", fmt.Errorf("%w: %q is neither a vector nor a quaternion", geom.ErrFormat, s)
}

// formatFloat formats a scalar the way geom formats vector components.
func formatFloat(f float32, decimals int) string {
	s := geom.Vec2{X: f}.Format(decimals)
	s, _, _ = strings.Cut(strings.TrimPrefix(s, "["), ",")
	return s
}
