// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/colormine/internal/cli"
	"github.com/jmylchreest/colormine/internal/colour"
	"github.com/jmylchreest/colormine/internal/config"
	imageloader "github.com/jmylchreest/colormine/internal/image"
)

// run executes the root command with an isolated history file and returns
// stdout.
func run(t *testing.T, historyFile string, args ...string) (string, error) {
	t.Helper()
	for _, name := range []string{config.EnvHistoryFile, config.EnvCenter, config.EnvSize, config.EnvSampler, config.EnvLogLevel} {
		t.Setenv(name, "")
	}

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--history-file", historyFile}, args...))
	err := cmd.Execute()
	return stdout.String(), err
}

func historyPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "history.json")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, historyPath(t), "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "colormine version") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "default", args: []string{"--size", "64"}},
		{name: "black centre scaled", args: []string{"--size", "64", "--center", "black", "--scale", "2"}},
		{name: "marker", args: []string{"--size", "64", "--marker", "0.5,-0.5"}},
		{name: "colour", args: []string{"--size", "64", "--colour", "#3399FF"}},
		{name: "marker and colour", args: []string{"--marker", "0,0", "--colour", "#3399FF"}, wantErr: true},
		{name: "size too small", args: []string{"--size", "1"}, wantErr: true},
		{name: "bad scale", args: []string{"--size", "64", "--scale", "0"}, wantErr: true},
		{name: "bad colour", args: []string{"--colour", "nope"}, wantErr: true},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(dir, "wheel"+string(rune('a'+i))+".png")
			_, err := run(t, historyPath(t), append([]string{"render", "-o", output}, tt.args...)...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("render error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			img, err := imageloader.NewFileLoader().Load(output)
			if err != nil {
				t.Fatalf("failed to load rendered wheel: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
				t.Errorf("bounds = %v, want 64x64", b)
			}
			if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
				t.Errorf("corner alpha = %d, want transparent", a)
			}
		})
	}
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, historyPath(t), "convert", "0,0,255", "--format", "json")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	var got struct {
		Hex    string `json:"hex"`
		Center string `json:"center"`
		Name   string `json:"name"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Hex != "#0000FF" || got.Center != "white" || got.Name != "blue" {
		t.Errorf("convert = %+v", got)
	}

	out, err = run(t, historyPath(t), "convert", "#800000")
	if err != nil {
		t.Fatalf("convert text failed: %v", err)
	}
	if !strings.Contains(out, "black") || !strings.Contains(out, "#800000") {
		t.Errorf("text output missing centre or hex: %q", out)
	}

	if _, err := run(t, historyPath(t), "convert", "12,34"); err == nil {
		t.Error("expected error for partial RGB")
	}
	if _, err := run(t, historyPath(t), "convert", "#FFF", "--format", "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestPickCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantHex string
		wantErr bool
	}{
		{name: "rim red", args: []string{"pick", "100", "50", "--size", "100"}, wantHex: "#FF0000"},
		{name: "within tolerance", args: []string{"pick", "105", "50", "--size", "100"}, wantHex: "#FF0000"},
		{name: "white centre", args: []string{"pick", "50", "50", "--size", "100"}, wantHex: "#FFFFFF"},
		{name: "black centre", args: []string{"pick", "50", "50", "--size", "100", "--center", "black"}, wantHex: "#000000"},
		{name: "outside", args: []string{"pick", "0", "0", "--size", "100"}, wantErr: true},
		{name: "bad coordinate", args: []string{"pick", "x", "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, historyPath(t), append(tt.args, "--format", "json")...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("pick error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			var got struct {
				Hex string `json:"hex"`
			}
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("invalid JSON %q: %v", out, err)
			}
			if got.Hex != tt.wantHex {
				t.Errorf("hex = %s, want %s", got.Hex, tt.wantHex)
			}
		})
	}
}

func TestHarmonyCommand(t *testing.T) {
	out, err := run(t, historyPath(t), "harmony", "#FF0000", "--format", "json")
	if err != nil {
		t.Fatalf("harmony failed: %v", err)
	}
	var got map[string][]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}

	want := map[string][]string{
		"Complementary": {"#00FFFF"},
		"Triadic":       {"#00FF00", "#0000FF"},
	}
	for name, hexes := range want {
		if strings.Join(got[name], ",") != strings.Join(hexes, ",") {
			t.Errorf("%s = %v, want %v", name, got[name], hexes)
		}
	}
	if len(got) != 4 {
		t.Errorf("harmonies = %d, want 4", len(got))
	}

	out, err = run(t, historyPath(t), "harmony", "#FF0000")
	if err != nil {
		t.Fatalf("harmony text failed: %v", err)
	}
	if !strings.Contains(out, "Split Complementary") {
		t.Errorf("text output missing rows: %q", out)
	}
}

func TestHistoryCommands(t *testing.T) {
	path := historyPath(t)

	if _, err := run(t, path, "history", "add", "#ff0000", "0,255,0", "#F00"); err != nil {
		t.Fatalf("history add failed: %v", err)
	}

	out, err := run(t, path, "history", "list", "--format", "json")
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	var entries []string
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if strings.Join(entries, ",") != "#FF0000,#00FF00" {
		t.Errorf("entries = %v", entries)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("history file not written: %v", err)
	}

	if _, err := run(t, path, "history", "add", "bogus"); err == nil {
		t.Error("expected error for invalid colour")
	}

	if _, err := run(t, path, "history", "clear"); err != nil {
		t.Fatalf("history clear failed: %v", err)
	}
	out, err = run(t, path, "history", "list")
	if err != nil {
		t.Fatalf("history list failed: %v", err)
	}
	if !strings.Contains(out, "No colours in history") {
		t.Errorf("list after clear = %q", out)
	}
}

func TestHistoryKeepsTen(t *testing.T) {
	path := historyPath(t)
	args := []string{"history", "add"}
	for i := range 12 {
		args = append(args, string([]byte{'#', '0', '0', '0', '0', '0', "0123456789AB"[i]}))
	}
	if _, err := run(t, path, args...); err != nil {
		t.Fatalf("history add failed: %v", err)
	}

	out, err := run(t, path, "history", "list", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	var entries []string
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 10 || entries[0] != "#00000B" || entries[9] != "#000002" {
		t.Errorf("entries = %v", entries)
	}
}

func TestPaletteExport(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, historyPath(t), "palette", "export", "#FF0000", "#00ff00", "#F00")
	if err != nil {
		t.Fatalf("palette export failed: %v", err)
	}
	want := ":root {\n  --color-1: #FF0000;\n  --color-2: #00FF00;\n}\n"
	if out != want {
		t.Errorf("css = %q, want %q", out, want)
	}

	jsonPath := filepath.Join(dir, "palette.json")
	if _, err := run(t, historyPath(t), "palette", "export", "-o", jsonPath, "#123456"); err != nil {
		t.Fatalf("json export failed: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[\n  \"#123456\"\n]" {
		t.Errorf("json file = %q", data)
	}

	pdfPath := filepath.Join(dir, "palette.pdf")
	if _, err := run(t, historyPath(t), "palette", "export", "-o", pdfPath, "#123456", "#ABCDEF"); err != nil {
		t.Fatalf("pdf export failed: %v", err)
	}
	data, err = os.ReadFile(pdfPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("pdf file does not start with a PDF header")
	}

	if _, err := run(t, historyPath(t), "palette", "export"); err == nil {
		t.Error("expected error for empty palette")
	}
	if _, err := run(t, historyPath(t), "palette", "export", "--format", "svg", "#FFF"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestPaletteFromHistory(t *testing.T) {
	path := historyPath(t)
	if _, err := run(t, path, "history", "add", "#0000FF", "#00FF00"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, path, "palette", "show", "--from-history", "--quiet", "#00FF00", "#FFFFFF")
	if err != nil {
		t.Fatalf("palette show failed: %v", err)
	}
	if out != "#00FF00, #0000FF, #FFFFFF\n" {
		t.Errorf("palette = %q", out)
	}
}

func TestSampleImage(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "swatch.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 1, color.RGBA{R: 0x33, G: 0x99, B: 0xFF, A: 0xFF})
	if err := imageloader.SavePNG(imgPath, img); err != nil {
		t.Fatal(err)
	}

	path := historyPath(t)
	out, err := run(t, path, "sample", "--image", imgPath, "--at", "2,1")
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if out != "#3399FF\n" {
		t.Errorf("sample = %q", out)
	}

	out, err = run(t, path, "history", "list", "--format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "#3399FF") {
		t.Errorf("sampled colour not recorded: %s", out)
	}

	if _, err := run(t, path, "sample", "--image", imgPath, "--at", "9,9"); err == nil {
		t.Error("expected error for out-of-bounds pixel")
	}
	if _, err := run(t, path, "sample", "--image", imgPath); err == nil {
		t.Error("expected error without --at")
	}
}

func TestNoColorFlag(t *testing.T) {
	t.Cleanup(func() { colour.DisableColourOutput = false })

	out, err := run(t, historyPath(t), "--no-color", "convert", "#FF0000")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !colour.DisableColourOutput {
		t.Error("--no-color did not disable colour previews")
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output contains ANSI escapes: %q", out)
	}

	if _, err := run(t, historyPath(t), "convert", "#FF0000"); err != nil {
		t.Fatal(err)
	}
	if colour.DisableColourOutput {
		t.Error("previews stayed disabled without --no-color")
	}
}
