package grep

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CollectFiles resolves the positional paths into the list of files to
// search, in argument order.
//
// In recursive mode each path is walked and every non-directory entry
// under it is included; a path that is itself a regular file is
// included directly. In non-recursive mode each path is vetted:
// missing paths and non-regular files are reported to stderr and
// skipped, and processing continues with the remaining paths.
func CollectFiles(paths []string, recursive bool, stderr io.Writer) []string {
	var files []string
	if recursive {
		for _, root := range paths {
			info, err := os.Stat(root)
			if err != nil {
				fmt.Fprintf(stderr, "Error: Path not found: %s\n", root)
				continue
			}
			if !info.IsDir() {
				if info.Mode().IsRegular() {
					files = append(files, root)
				}
				continue
			}
			filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return nil
				}
				files = append(files, path)
				return nil
			})
		}
		return files
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		switch {
		case err != nil:
			fmt.Fprintf(stderr, "Error: Path not found: %s\n", path)
		case !info.Mode().IsRegular():
			fmt.Fprintf(stderr, "Warning: Skipping non-regular file: %s\n", path)
		default:
			files = append(files, path)
		}
	}
	return files
}
