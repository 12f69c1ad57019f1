package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/geom"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	old := geom.Tolerance()
	t.Cleanup(func() { geom.SetTolerance(old) })
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSRT(t *testing.T) {
	out, _, err := run(t, "srt", "--scale", "[2, 2, 2]", "--translate", "[1, 2, 3]")
	if err != nil {
		t.Fatal(err)
	}
	want := "[2, 0, 0, 0]\n[0, 2, 0, 0]\n[0, 0, 2, 0]\n[1, 2, 3, 1]\n"
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}

	out, _, err = run(t, "srt", "--translate", "[1, 2, 3]", "--transposed", "--decimals", "1")
	if err != nil {
		t.Fatal(err)
	}
	want = "[1.0, 0.0, 0.0, 1.0]\n[0.0, 1.0, 0.0, 2.0]\n[0.0, 0.0, 1.0, 3.0]\n[0.0, 0.0, 0.0, 1.0]\n"
	if out != want {
		t.Errorf("transposed: got\n%s\nwant\n%s", out, want)
	}

	if _, _, err := run(t, "srt", "--scale", "[1, 2]"); !errors.Is(err, geom.ErrFormat) {
		t.Errorf("bad scale: got %v. want ErrFormat", err)
	}
}

func TestInvert(t *testing.T) {
	out, _, err := run(t, "invert", "[2, 0, 0, 0]", "[0, 4, 0, 0]", "[0, 0, 5, 0]", "[1, 2, 3, 1]")
	if err != nil {
		t.Fatal(err)
	}
	want := "det 40\n[0.5, 0, 0, 0]\n[0, 0.25, 0, 0]\n[0, 0, 0.2, 0]\n[-0.5, -0.5, -0.6, 1]\n"
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}

	out, _, err = run(t, "invert", "[1, 2, 3, 4]", "[2, 4, 6, 8]", "[0, 0, 1, 0]", "[0, 0, 0, 1]")
	if err == nil {
		t.Fatal("expected singular matrix error")
	}
	if out != "det 0\n" {
		t.Errorf("singular output: got %q", out)
	}
	if _, _, err := run(t, "invert", "[1, 0, 0, 0]"); err == nil {
		t.Error("expected argument count error")
	}
}

func TestRotate(t *testing.T) {
	out, _, err := run(t, "rotate", "[1, 0, 0]", "--axis", "[0, 1, 0]", "--angle", "90", "--decimals", "3")
	if err != nil {
		t.Fatal(err)
	}
	want := "quat <[0.000, -0.707, 0.000] ~ 0.707>\nvec [0.000, 0.000, 1.000]\n"
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
	if _, _, err := run(t, "rotate", "[1, 0, 0]", "--axis", "[0, 0, 0]"); err == nil {
		t.Error("expected zero axis error")
	}
}

func TestParse(t *testing.T) {
	for _, test := range []struct {
		arg, want string
	}{
		{"1.500,-2.250", "Vec2 [1.5, -2.25]\n"},
		{" [ 1, 2 ,3 ] ", "Vec3 [1, 2, 3]\n"},
		{"[1, 2, 3, 4]", "Vec4 [1, 2, 3, 4]\n"},
		{"<[0, 0, 0] ~ 1.0>", "Quat <[0, 0, 0] ~ 1>\n"},
	} {
		out, _, err := run(t, "parse", test.arg)
		if err != nil {
			t.Errorf("%q: %v", test.arg, err)
			continue
		}
		if out != test.want {
			t.Errorf("%q: got %q. want %q", test.arg, out, test.want)
		}
	}
	for _, arg := range []string{"7", "[1, x, 3]", "<[1, 2, 3] ~ >"} {
		if _, _, err := run(t, "parse", arg); !errors.Is(err, geom.ErrFormat) {
			t.Errorf("%q: got %v. want ErrFormat", arg, err)
		}
	}
}

func TestSlerpCmd(t *testing.T) {
	out, _, err := run(t, "slerp", "<[0, 0, 0] ~ 1>", "<[0, -1, 0] ~ 0>", "--steps", "2", "--decimals", "3")
	if err != nil {
		t.Fatal(err)
	}
	want := "0.000 <[0.000, 0.000, 0.000] ~ 1.000>\n" +
		"0.500 <[0.000, -0.707, 0.000] ~ 0.707>\n" +
		"1.000 <[0.000, -1.000, 0.000] ~ 0.000>\n"
	if out != want {
		t.Errorf("got\n%s\nwant\n%s", out, want)
	}
	if _, _, err := run(t, "slerp", "<[0, 0, 0] ~ 1>", "<[0, 0, 0] ~ 0>"); err == nil {
		t.Error("expected zero quaternion error")
	}
	if _, _, err := run(t, "slerp", "<[0, 0, 0] ~ 1>", "<[0, 1, 0] ~ 0>", "--steps", "0"); err == nil {
		t.Error("expected steps error")
	}
	// Opposite inputs without the shortest path would cross the zero quaternion.
	for _, extra := range [][]string{{"--long"}, {"--long", "--lerp"}} {
		args := append([]string{"slerp", "<[0, 0, 0] ~ 1>", "<[0, 0, 0] ~ -1>", "--steps", "2"}, extra...)
		var err error
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("%v panicked: %v", extra, r)
				}
			}()
			_, _, err = run(t, args...)
		}()
		if err == nil {
			t.Errorf("%v: expected opposite quaternion error", extra)
		}
	}
	// The shortest path between a rotation and its negation is a constant.
	out, _, err = run(t, "slerp", "<[0, 0, 0] ~ 1>", "<[0, 0, 0] ~ -1>", "--steps", "2", "--decimals", "1")
	if err != nil {
		t.Fatal(err)
	}
	want = "0.0 <[0.0, 0.0, 0.0] ~ 1.0>\n0.5 <[0.0, 0.0, 0.0] ~ 1.0>\n1.0 <[0.0, 0.0, 0.0] ~ 1.0>\n"
	if out != want {
		t.Errorf("shortest path to -q: got\n%s\nwant\n%s", out, want)
	}
}

func TestSlerpPlot(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "slerp.png")
	_, stderr, err := run(t, "slerp", "<[0, 0, 0] ~ 1>", "<[0.6, 0, 0] ~ 0.8>", "--plot", filename, "-v")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "wrote "+filename) {
		t.Errorf("verbose output missing plot file: %q", stderr)
	}
	fp, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		t.Errorf("empty plot image %v", b)
	}
}

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "geomtool.yaml")
	if err := os.WriteFile(cfg, []byte("tolerance: 0.01\ndecimals: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, stderr, err := run(t, "parse", "[1, 2]", "--config", cfg, "--verbose")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Vec2 [1.00, 2.00]\n" {
		t.Errorf("config decimals: got %q", out)
	}
	if !strings.Contains(stderr, "Using config file: "+cfg) || !strings.Contains(stderr, "Using tolerance: 0.01") {
		t.Errorf("verbose output: got %q", stderr)
	}
	if got := geom.Tolerance(); got != 0.01 {
		t.Errorf("tolerance: got %v. want 0.01", got)
	}

	// Flags take precedence over the config file.
	out, _, err = run(t, "parse", "[1, 2]", "--config", cfg, "--decimals", "0")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Vec2 [1, 2]\n" {
		t.Errorf("flag precedence: got %q", out)
	}

	t.Setenv("GEOM_DECIMALS", "1")
	out, _, err = run(t, "parse", "[1, 2]")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Vec2 [1.0, 2.0]\n" {
		t.Errorf("env decimals: got %q", out)
	}

	if _, _, err := run(t, "parse", "[1, 2]", "--tolerance", "-1"); err == nil {
		t.Error("expected negative tolerance error")
	}
	if _, _, err := run(t, "parse", "[1, 2]", "--config", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected missing config error")
	}
}
