package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"iconview/internal/errors"
	"iconview/internal/icondb"
	"iconview/internal/log"
	"iconview/internal/preview"
)

func thumbsCmd() *cobra.Command {
	var dbPath string
	var rootDir string
	var outDir string
	var size int

	cmd := &cobra.Command{
		Use:   "thumbs",
		Short: "Export square thumbnails for every entry in an index",
		Long: `Walks every id in the index, resolves its image under the root directory
and writes a PNG thumbnail under the output directory, mirroring the
relative paths from the index. Entries whose files are missing or cannot
be decoded are skipped and counted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = cfg.Paths.IndexFile
			}
			if rootDir == "" {
				rootDir = cfg.Paths.ImageRoot
			}
			if dbPath == "" || rootDir == "" || outDir == "" {
				return errors.New("thumbs needs --db, --root and --out")
			}
			if size <= 0 {
				size = cfg.Thumbs.Size
			}

			db, err := icondb.Load(dbPath)
			if err != nil {
				return errors.Wrap(err, "loading index")
			}

			written, skipped := 0, 0
			for _, typeName := range db.Types() {
				for _, entries := range typeEntries(db, typeName) {
					for _, id := range entries.SortedIDs("") {
						rel := entries[id]
						if err := exportThumb(rootDir, rel, outDir, size); err != nil {
							log.Debugf("skipping %s: %v", id, err)
							skipped++
							continue
						}
						written++
					}
				}
			}

			fmt.Printf("Wrote %d thumbnails to %s", written, outDir)
			if skipped > 0 {
				fmt.Printf(" (%d skipped)", skipped)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "icon index file to load")
	cmd.Flags().StringVar(&rootDir, "root", "", "image root directory")
	cmd.Flags().StringVar(&outDir, "out", "", "directory to write thumbnails into")
	cmd.Flags().IntVar(&size, "size", 0, "thumbnail edge length in pixels")

	return cmd
}

// typeEntries flattens a type into one entry map per category, or a single
// map for flat types.
func typeEntries(db icondb.Index, typeName string) []icondb.Entries {
	if !db.IsNested(typeName) {
		return []icondb.Entries{db.Entries(typeName, "")}
	}
	var out []icondb.Entries
	for _, category := range db.Categories(typeName) {
		out = append(out, db.Entries(typeName, category))
	}
	return out
}

func exportThumb(rootDir, rel, outDir string, size int) error {
	src := filepath.Clean(filepath.Join(rootDir, filepath.FromSlash(rel)))
	img, err := preview.Thumbnail(src, size)
	if err != nil {
		return err
	}

	dst := filepath.Join(outDir, filepath.FromSlash(rel))
	ext := filepath.Ext(dst)
	if !strings.EqualFold(ext, ".png") {
		dst = strings.TrimSuffix(dst, ext) + ".png"
	}
	return preview.WriteThumbnail(img, dst)
}
