package assets

import (
	"bufio"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed categories/*.txt
var FS embed.FS

//go:embed sql/*.sql
var SQL embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// Categories returns every embedded word list keyed by its file name without extension.
func Categories() (map[string][]string, error) {
	entries, err := fs.ReadDir(FS, "categories")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".txt" {
			continue
		}
		list, err := readLines(path.Join("categories", e.Name()))
		if err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(e.Name(), ".txt")] = list
	}
	return out, nil
}

// Migrations returns the embedded migration file names in lexical order.
func Migrations() ([]string, error) {
	entries, err := fs.ReadDir(SQL, "sql")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			names = append(names, path.Join("sql", e.Name()))
		}
	}
	sort.Strings(names)
	return names, nil
}
