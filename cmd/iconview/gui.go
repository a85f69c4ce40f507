package main

import (
	"github.com/spf13/cobra"

	"iconview/internal/gui"
	"iconview/internal/session"
)

func guiCmd() *cobra.Command {
	var dbPath string
	var rootDir string

	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the graphical icon browser",
		Long:  `Opens the Fyne window. The index file and image root can be picked from within the window or preloaded with flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := session.New()
			app := gui.NewApp(cfg, sess)

			if dbPath == "" {
				dbPath = cfg.Paths.IndexFile
			}
			if rootDir == "" {
				rootDir = cfg.Paths.ImageRoot
			}
			if rootDir != "" {
				app.SetRoot(rootDir)
			}
			if dbPath != "" {
				app.LoadIndex(dbPath)
			}

			app.Run()
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "icon index file to load on startup")
	cmd.Flags().StringVar(&rootDir, "root", "", "image root directory")

	return cmd
}
