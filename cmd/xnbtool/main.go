// Command xnbtool unpacks XNB assets: LZX-decompressing the frame stream
// and, for DXT-compressed textures, converting the result to a PNG.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lyrositor/bastionmod-codec/bundle"
	"github.com/lyrositor/bastionmod-codec/container"
	"github.com/lyrositor/bastionmod-codec/dxt"
	"github.com/lyrositor/bastionmod-codec/lzx"
	"github.com/lyrositor/bastionmod-codec/xnbfile"
)

var (
	inputPath    = flag.String("i", "", "input path: a bare .xnb file, or archive.zip!member.xnb")
	globPatterns = flag.String("glob", "", "comma-separated doublestar glob patterns for batch input")
	bundlePath   = flag.String("bundle", "", "unpack every entry of a bundle file instead of -i/-glob")
	dxtSpec      = flag.String("dxt", "", "version,width,height: decode the payload as a DXT block stream and also write a PNG")
	doVerify     = flag.Bool("verify", false, "print an xxhash digest of the decompressed output")
	outputPath   = flag.String("o", "", "output file (single input) or directory (batch input)")
	jsonOutput   = flag.Bool("json", false, "output results as JSON")
	batchLimit   = flag.Int("j", 4, "maximum concurrent entries for -glob/-bundle")
	version      = flag.Bool("version", false, "print version and exit")
)

const appVersion = "0.1.0"

// result describes one processed entry, printed as text or as JSON.
type result struct {
	Input   string `json:"input"`
	Output  string `json:"output,omitempty"`
	PNG     string `json:"png,omitempty"`
	Bytes   int    `json:"bytes"`
	Verify  string `json:"verify,omitempty"`
	Error   string `json:"error,omitempty"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i <file> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Unpacks XNB assets: LZX-decompresses the frame stream and\n")
		fmt.Fprintf(os.Stderr, "optionally decodes a DXT texture payload to PNG.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -i texture.xnb -o texture.bin\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i assets.zip!textures/hero.xnb -dxt 1,256,256\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -glob 'assets/**/*.xnb' -o out/\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -bundle pack.bdl -o out/\n", os.Args[0])
	}
	flag.Parse()

	if *version {
		fmt.Printf("xnbtool version %s\n", appVersion)
		os.Exit(0)
	}

	modes := 0
	for _, set := range []bool{*inputPath != "", *globPatterns != "", *bundlePath != ""} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		fmt.Fprintf(os.Stderr, "Error: specify exactly one of -i, -glob, -bundle\n")
		flag.Usage()
		os.Exit(1)
	}

	cache, err := container.NewCache(0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating archive cache: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cache.Close() }()

	var results []result
	switch {
	case *inputPath != "":
		r := processEntry(*inputPath, *outputPath, cache)
		results = []result{r}
	case *globPatterns != "":
		paths, globErr := expandGlobs(*globPatterns)
		if globErr != nil {
			fmt.Fprintf(os.Stderr, "Error expanding -glob: %v\n", globErr)
			os.Exit(1)
		}
		results = processBatch(paths, cache)
	case *bundlePath != "":
		var bundleErr error
		results, bundleErr = processBundle(*bundlePath)
		if bundleErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading bundle: %v\n", bundleErr)
			os.Exit(1)
		}
	}

	if *jsonOutput {
		outputJSON(results)
	} else {
		outputText(results)
	}

	for _, r := range results {
		if r.Error != "" {
			os.Exit(1)
		}
	}
}

// concurrencyLimit maps -j to errgroup.Group.SetLimit's convention,
// where a non-positive limit disables the cap (errgroup.SetLimit(0)
// would instead block every Go call forever).
func concurrencyLimit() int {
	if *batchLimit <= 0 {
		return -1
	}
	return *batchLimit
}

// expandGlobs splits globPatterns on commas and expands each doublestar
// pattern against the local filesystem.
func expandGlobs(patterns string) ([]string, error) {
	var paths []string
	for _, pat := range strings.Split(patterns, ",") {
		pat = strings.TrimSpace(pat)
		if pat == "" {
			continue
		}
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pat, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// processBatch runs processEntry over paths concurrently, bounded by
// -j, logging per-entry failures without aborting the rest of the batch.
func processBatch(paths []string, cache *container.Cache) []result {
	results := make([]result, len(paths))

	var eg errgroup.Group
	eg.SetLimit(concurrencyLimit())
	for i, p := range paths {
		i, p := i, p
		eg.Go(func() error {
			results[i] = processEntry(p, batchOutputPath(p), cache)
			if results[i].Error != "" {
				slog.Error("entry failed", "input", p, "error", results[i].Error)
			}
			return nil
		})
	}
	_ = eg.Wait() // per-entry errors are captured in results, never returned here

	return results
}

// batchOutputPath derives a per-entry output path under -o (a directory)
// from an input's base name when running in batch mode.
func batchOutputPath(input string) string {
	if *outputPath == "" {
		return ""
	}
	base := filepath.Base(input)
	if idx := strings.Index(base, container.MemberSeparator); idx >= 0 {
		base = base[idx+len(container.MemberSeparator):]
		base = filepath.Base(base)
	}
	return filepath.Join(*outputPath, strings.TrimSuffix(base, filepath.Ext(base))+".bin")
}

// processBundle unpacks every entry of a bundle file concurrently.
func processBundle(path string) ([]result, error) {
	f, err := os.Open(path) //nolint:gosec // operator-supplied CLI input path
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	dir, err := bundle.ReadDirectory(f)
	if err != nil {
		return nil, err
	}

	results := make([]result, len(dir.Entries))
	var eg errgroup.Group
	eg.SetLimit(concurrencyLimit())
	for i, e := range dir.Entries {
		i, e := i, e
		eg.Go(func() error {
			data, extractErr := bundle.Extract(f, e)
			if extractErr != nil {
				results[i] = result{Input: e.Name, Error: extractErr.Error()}
				slog.Error("bundle entry failed", "name", e.Name, "error", extractErr)
				return nil
			}
			results[i] = finishEntry(e.Name, data, batchOutputPath(e.Name))
			return nil
		})
	}
	_ = eg.Wait()

	return results, nil
}

// processEntry reads one input (bare .xnb file or archive!member reference),
// strips its XNB preamble, LZX-decompresses it if flagged, and writes the
// result (plus an optional PNG) to out.
func processEntry(path, out string, cache *container.Cache) result {
	data, err := readInput(path, cache)
	if err != nil {
		return result{Input: path, Error: err.Error()}
	}

	payload, err := decodeXNB(data)
	if err != nil {
		return result{Input: path, Error: err.Error()}
	}

	return finishEntry(path, payload, out)
}

// readInput loads the raw bytes for path, dispatching to the archive cache
// when path names an archive member.
func readInput(path string, cache *container.Cache) ([]byte, error) {
	if p, ok := container.ParsePath(path); ok {
		arc, err := cache.Open(p.ArchivePath)
		if err != nil {
			return nil, err
		}
		r, _, err := arc.Open(p.InternalPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()
		buf := &bytes.Buffer{}
		if _, err := buf.ReadFrom(r); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return os.ReadFile(path) //nolint:gosec // operator-supplied CLI input path
}

// decodeXNB strips the XNB preamble from data and LZX-decompresses the
// remaining frame stream if the header's compressed flag is set.
func decodeXNB(data []byte) ([]byte, error) {
	r := bytes.NewReader(data)
	hdr, err := xnbfile.ReadHeader(r)
	if err != nil {
		return nil, err
	}

	rest := make([]byte, r.Len())
	if _, err := r.Read(rest); err != nil {
		return nil, err
	}

	if !hdr.Compressed {
		return rest, nil
	}
	return lzx.Decompress(hdr.DecompressedSize, rest)
}

// finishEntry writes payload to out (if set), optionally decodes it as a
// DXT texture and writes a sibling PNG, and builds the result summary.
func finishEntry(input string, payload []byte, out string) result {
	r := result{Input: input, Bytes: len(payload)}

	if out != "" {
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			r.Error = err.Error()
			return r
		}
		if err := os.WriteFile(out, payload, 0o644); err != nil { //nolint:gosec // CLI output, not a secret
			r.Error = err.Error()
			return r
		}
		r.Output = out
	}

	if *doVerify {
		r.Verify = fmt.Sprintf("%016x", xxhash.Sum64(payload))
	}

	if *dxtSpec != "" {
		pngPath, err := writeDXTPNG(*dxtSpec, payload, out)
		if err != nil {
			r.Error = err.Error()
			return r
		}
		r.PNG = pngPath
	}

	return r
}

// writeDXTPNG parses spec as "version,width,height", decodes payload as a
// DXT block stream, and writes a PNG next to out (or to out.png in the
// working directory if out is empty).
func writeDXTPNG(spec string, payload []byte, out string) (string, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid -dxt spec %q: want version,width,height", spec)
	}
	version, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid -dxt version: %w", err)
	}
	width, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid -dxt width: %w", err)
	}
	height, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid -dxt height: %w", err)
	}

	rgba, err := dxt.ToRGBA(uint32(version), uint32(width), uint32(height), payload)
	if err != nil {
		return "", fmt.Errorf("dxt decode: %w", err)
	}

	img := &image.RGBA{
		Pix:    rgba,
		Stride: int(width) * 4,
		Rect:   image.Rect(0, 0, int(width), int(height)),
	}

	pngPath := out
	if pngPath == "" {
		pngPath = "out"
	}
	pngPath = strings.TrimSuffix(pngPath, filepath.Ext(pngPath)) + ".png"

	if err := os.MkdirAll(filepath.Dir(pngPath), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(pngPath) //nolint:gosec // CLI output path
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("png encode: %w", err)
	}
	return pngPath, nil
}

func outputJSON(results []result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func outputText(results []result) {
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("%s: error: %s\n", r.Input, r.Error)
			continue
		}
		fmt.Printf("%s: %d bytes", r.Input, r.Bytes)
		if r.Output != "" {
			fmt.Printf(" -> %s", r.Output)
		}
		if r.PNG != "" {
			fmt.Printf(" (png: %s)", r.PNG)
		}
		if r.Verify != "" {
			fmt.Printf(" [xxhash %s]", r.Verify)
		}
		fmt.Println()
	}
}
