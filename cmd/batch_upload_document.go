/*
Copyright © 2025 doclibhq
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// batchUploadDocumentCmd represents the batch-upload-document command
var batchUploadDocumentCmd = &cobra.Command{
	Use:   "batch-upload-document",
	Short: "Upload every file in a directory into the shared library",
	Long: `Walks a directory and uploads each regular file. A file that fails
to read or has an unsupported media type is reported and skipped; the batch
continues with the remaining files.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		dir, _ := cmd.Flags().GetString("dir")
		uploadedBy, _ := cmd.Flags().GetString("uploaded-by")

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Fatalf("Failed to read directory %s: %v", dir, err)
		}

		library, cleanup, err := buildLibrary(configPath)
		if err != nil {
			log.Fatalf("Failed to initialize library: %v", err)
		}
		defer cleanup()

		var uploaded, failed int
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			doc, origin, err := ingestFile(library, path, "", uploadedBy)
			if err != nil {
				failed++
				fmt.Printf("FAILED  %s: %v\n", entry.Name(), err)
				continue
			}
			uploaded++
			fmt.Printf("OK      %s (id=%s, origin=%s)\n", doc.Name, doc.ID, origin)
		}
		fmt.Printf("Done: %d uploaded, %d failed\n", uploaded, failed)
	},
}

func init() {
	rootCmd.AddCommand(batchUploadDocumentCmd)
	batchUploadDocumentCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	batchUploadDocumentCmd.Flags().StringP("dir", "d", "", "directory of files to upload")
	batchUploadDocumentCmd.Flags().String("uploaded-by", "anonymous", "email recorded as the uploader")
	batchUploadDocumentCmd.MarkFlagRequired("dir")
}
