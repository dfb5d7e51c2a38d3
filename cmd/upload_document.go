/*
Copyright © 2025 doclibhq
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/doclibhq/doclib-be/service"
	"github.com/doclibhq/doclib-be/types"
	"github.com/doclibhq/doclib-be/utils"
)

// uploadDocumentCmd represents the upload-document command
var uploadDocumentCmd = &cobra.Command{
	Use:   "upload-document",
	Short: "Upload a single file into the shared library",
	Long: `Reads a local file, derives tags and a summary, and stores the
document in the shared library. Binary formats (PDF, Word) are recorded with
a placeholder description instead of their payload.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		filePath, _ := cmd.Flags().GetString("file")
		mediaType, _ := cmd.Flags().GetString("media-type")
		uploadedBy, _ := cmd.Flags().GetString("uploaded-by")

		library, cleanup, err := buildLibrary(configPath)
		if err != nil {
			log.Fatalf("Failed to initialize library: %v", err)
		}
		defer cleanup()

		doc, origin, err := ingestFile(library, filePath, mediaType, uploadedBy)
		if err != nil {
			log.Fatalf("Failed to upload %s: %v", filePath, err)
		}
		fmt.Printf("Uploaded %s (id=%s, origin=%s, tags=%v)\n", doc.Name, doc.ID, origin, doc.Tags)
	},
}

// ingestFile runs the extraction pipeline for one local file and stores the
// result. Shared with the batch command, which reports per-file failures
// instead of aborting.
func ingestFile(library service.LibraryService, filePath, mediaType, uploadedBy string) (types.LibraryDocument, types.Origin, error) {
	data, err := utils.ReadUploadFile(filePath)
	if err != nil {
		return types.LibraryDocument{}, "", err
	}

	name := filepath.Base(filePath)
	resolved := utils.MediaTypeFor(mediaType, name)
	extraction, err := service.ExtractDocument(resolved, name, data, time.Now())
	if err != nil {
		return types.LibraryDocument{}, "", err
	}

	return library.AddDocument(context.Background(), types.LibraryDocument{
		Name:      name,
		MediaType: resolved,
		SizeBytes: int64(len(data)),
		Content:   extraction.Content,
		Tags:      extraction.Tags,
		Summary:   extraction.Summary,
	}, uploadedBy)
}

func init() {
	rootCmd.AddCommand(uploadDocumentCmd)
	uploadDocumentCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	uploadDocumentCmd.Flags().StringP("file", "f", "", "path of the file to upload")
	uploadDocumentCmd.Flags().String("media-type", "", "declared media type (derived from the extension when empty)")
	uploadDocumentCmd.Flags().String("uploaded-by", "anonymous", "email recorded as the uploader")
	uploadDocumentCmd.MarkFlagRequired("file")
}
