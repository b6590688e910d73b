package ascii

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uniform(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func litCount(s string) int {
	return len(s) - strings.Count(s, " ") - strings.Count(s, "\n")
}

func TestConvert_BlackImageIsBlank(t *testing.T) {
	out := Convert(uniform(10, 10, color.Black), Options{Size: 8})

	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	for i, line := range lines {
		if line != strings.Repeat(" ", 8) {
			t.Errorf("line %d = %q, want 8 spaces", i, line)
		}
	}
}

func TestConvert_WhiteImageOutlinesBorder(t *testing.T) {
	out := Convert(uniform(8, 8, color.White), Options{Size: 8})

	want := []string{
		`_/\|-oO!`,
		`U      _`,
		`/      \`,
		`|      -`,
		`o      O`,
		`!      U`,
		`_      /`,
		`\|-oO!U_`,
	}
	got := strings.Split(out, "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(got), len(want), out)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	// Top and bottom rows are fully lit, every row between them only at both ends.
	for i, line := range got {
		wantLit := 2
		if i == 0 || i == len(got)-1 {
			wantLit = 8
		}
		if n := litCount(line); n != wantLit {
			t.Errorf("line %d has %d lit pixels, want %d", i, n, wantLit)
		}
	}
}

func TestConvert_GrayscaleUsesLuma(t *testing.T) {
	// Pure blue is dark in luma (0.114 * 255 = 29) and stays under the threshold.
	out := Convert(uniform(8, 8, color.RGBA{B: 255, A: 255}), Options{Size: 8})
	if litCount(out) != 0 {
		t.Errorf("blue image should render blank, got:\n%s", out)
	}

	// Pure green is bright (0.587 * 255 = 150) and lights the border.
	out = Convert(uniform(8, 8, color.RGBA{G: 255, A: 255}), Options{Size: 8})
	if n := litCount(out); n != 28 {
		t.Errorf("green image lit %d pixels, want the 28-pixel border", n)
	}
}

func TestConvert_UpscalesSmallImage(t *testing.T) {
	small := Convert(uniform(4, 4, color.White), Options{Size: 8})
	exact := Convert(uniform(8, 8, color.White), Options{Size: 8})
	if small != exact {
		t.Errorf("upscaled output differs:\n%s\n---\n%s", small, exact)
	}
}

func TestConvert_ThinNeverAddsPixels(t *testing.T) {
	img := uniform(16, 16, color.Black)
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			img.Set(x, y, color.White)
		}
	}

	plain := Convert(img, Options{Size: 16})
	thin := Convert(img, Options{Size: 16, Thin: true})

	if litCount(plain) == 0 {
		t.Fatal("square should produce edge pixels")
	}
	if litCount(thin) > litCount(plain) {
		t.Errorf("thin lit %d pixels, plain lit %d", litCount(thin), litCount(plain))
	}
}

func TestConvert_ThinErodesOutline(t *testing.T) {
	out := Convert(uniform(8, 8, color.White), Options{Size: 8, Thin: true})
	if litCount(out) != 0 {
		t.Errorf("one-pixel outline should erode away, got:\n%s", out)
	}
}

func TestConvert_DefaultSize(t *testing.T) {
	out := Convert(uniform(64, 48, color.Black), Options{})

	lines := strings.Split(out, "\n")
	if len(lines) != DefaultSize {
		t.Fatalf("got %d lines, want %d", len(lines), DefaultSize)
	}
	if len([]rune(lines[0])) != DefaultSize {
		t.Errorf("line width = %d, want %d", len([]rune(lines[0])), DefaultSize)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("output should not end with a newline")
	}
}

func TestConvertFile(t *testing.T) {
	img := uniform(8, 8, color.White)
	path := filepath.Join(t.TempDir(), "frog.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := ConvertFile(path, Options{Size: 8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := Convert(img, Options{Size: 8}); got != want {
		t.Errorf("ConvertFile output differs from Convert:\n%s\n---\n%s", got, want)
	}
}

func TestConvertFile_Errors(t *testing.T) {
	if _, err := ConvertFile("/nonexistent/frog.png", Options{}); err == nil {
		t.Error("missing file should return error")
	}

	path := filepath.Join(t.TempDir(), "frog.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ConvertFile(path, Options{}); err == nil {
		t.Error("undecodable file should return error")
	}
}
