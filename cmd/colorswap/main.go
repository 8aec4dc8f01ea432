package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Utility-class rewrite for the frontend sources: moves hardcoded green/gray
// palettes onto the themeable primary/secondary tokens.
var replacements = [][2]string{
	{"text-green-", "text-primary-"},
	{"bg-green-", "bg-primary-"},
	{"border-green-", "border-primary-"},
	{"ring-green-", "ring-primary-"},
	{"hover:bg-green-", "hover:bg-primary-"},
	{"hover:text-green-", "hover:text-primary-"},
	{"text-gray-", "text-secondary-"},
	{"bg-gray-", "bg-secondary-"},
	{"border-gray-", "border-secondary-"},
	{"ring-gray-", "ring-secondary-"},
	{"hover:bg-gray-", "hover:bg-secondary-"},
	{"hover:text-gray-", "hover:text-secondary-"},
}

func main() {
	dir := flag.String("dir", "src", "directory to rewrite")
	ext := flag.String("ext", ".tsx", "file extension to process")
	dryRun := flag.Bool("dry-run", false, "report files without writing")
	flag.Parse()

	updated := 0
	err := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), *ext) {
			return nil
		}

		changed, err := rewriteFile(path, *dryRun)
		if err != nil {
			return err
		}
		if changed {
			updated++
			log.Printf("Updated %s", path)
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("done: %d file(s) updated", updated)
}

func rewriteFile(path string, dryRun bool) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}

	content := string(data)
	for _, r := range replacements {
		content = strings.ReplaceAll(content, r[0], r[1])
	}
	if content == string(data) {
		return false, nil
	}
	if dryRun {
		return true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return true, os.WriteFile(path, []byte(content), info.Mode())
}
