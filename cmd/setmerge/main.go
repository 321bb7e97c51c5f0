// Command setmerge combines several labeled datasets whose class lists
// differ into one dataset with a unified class registry.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AybarsKansu/image-labeling/internal/annotation"
	"github.com/AybarsKansu/image-labeling/internal/classes"
	"github.com/AybarsKansu/image-labeling/internal/version"
)

func main() {
	outDir := flag.String("out", "merged", "Output directory")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("setmerge %s (%s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
		return
	}

	sources := flag.Args()
	if len(sources) == 0 {
		fmt.Println("Usage: setmerge [-out merged] <source-dir> [<source-dir> ...]")
		fmt.Println("Each source directory holds a classes.txt and the label record JSONs.")
		os.Exit(1)
	}

	lists := make([][]string, len(sources))
	for i, dir := range sources {
		names, err := readClassList(filepath.Join(dir, "classes.txt"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read classes for %s: %v\n", dir, err)
			os.Exit(1)
		}
		lists[i] = names
		fmt.Printf("Source %s: %d classes\n", dir, len(names))
	}

	rm := classes.BuildRemap(lists)
	fmt.Printf("Unified class list: %s\n", strings.Join(rm.Unified, ", "))

	// Registering the unified names in order also writes the merged
	// registry.json and classes.txt into the output directory.
	reg, err := classes.OpenRegistry(*outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open registry: %v\n", err)
		os.Exit(1)
	}
	for _, name := range rm.Unified {
		if _, err := reg.GetOrCreate(name); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register class %q: %v\n", name, err)
			os.Exit(1)
		}
	}

	total := 0
	for i, dir := range sources {
		n, err := mergeSource(dir, *outDir, rm, i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to merge %s: %v\n", dir, err)
			os.Exit(1)
		}
		total += n
	}
	fmt.Printf("Done: %d records merged into %s\n", total, *outDir)
}

// mergeSource rewrites every label record of one source through its
// remap table and writes it into the output directory. Name clashes
// across sources get the source index as a suffix.
func mergeSource(dir, outDir string, rm classes.Remap, src int) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return 0, err
	}

	n := 0
	for _, path := range paths {
		if filepath.Base(path) == "registry.json" {
			continue
		}
		rec, err := annotation.LoadRecord(path)
		if err != nil {
			return n, err
		}
		rm.Apply(rec, src)

		out := filepath.Join(outDir, filepath.Base(path))
		if _, err := os.Stat(out); err == nil {
			base := strings.TrimSuffix(filepath.Base(path), ".json")
			out = filepath.Join(outDir, fmt.Sprintf("%s_s%d.json", base, src))
		}
		if err := rec.Save(out); err != nil {
			return n, err
		}
		n++
	}
	fmt.Printf("  %s: %d records\n", dir, n)
	return n, nil
}

// readClassList reads one class name per line; the line number is the
// source-local class id.
func readClassList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			names = append(names, line)
		}
	}
	return names, sc.Err()
}
