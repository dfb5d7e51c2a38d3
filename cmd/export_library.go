/*
Copyright © 2025 doclibhq
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/doclibhq/doclib-be/service"
)

// exportLibraryCmd represents the export-library command
var exportLibraryCmd = &cobra.Command{
	Use:   "export-library",
	Short: "Export the whole library to a JSON file",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		outPath, _ := cmd.Flags().GetString("out")

		library, cleanup, err := buildLibrary(configPath)
		if err != nil {
			log.Fatalf("Failed to initialize library: %v", err)
		}
		defer cleanup()

		ctx := context.Background()
		docs, _, err := library.LoadDocuments(ctx)
		if err != nil {
			log.Fatalf("Failed to load documents: %v", err)
		}
		synth, _, err := library.LoadSynthesized(ctx)
		if err != nil {
			log.Fatalf("Failed to load synthesized documents: %v", err)
		}

		now := time.Now().UTC()
		if outPath == "" {
			outPath = fmt.Sprintf("document-library-%s.json", now.Format("2006-01-02"))
		}

		data, err := json.MarshalIndent(service.ExportLibrary(docs, synth, now), "", "  ")
		if err != nil {
			log.Fatalf("Failed to serialize library: %v", err)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", outPath, err)
		}
		fmt.Printf("Exported %d documents and %d synthesized documents to %s\n", len(docs), len(synth), outPath)
	},
}

func init() {
	rootCmd.AddCommand(exportLibraryCmd)
	exportLibraryCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	exportLibraryCmd.Flags().StringP("out", "o", "", "output path (default document-library-<date>.json)")
}
