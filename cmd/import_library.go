/*
Copyright © 2025 doclibhq
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/doclibhq/doclib-be/service"
)

// importLibraryCmd represents the import-library command
var importLibraryCmd = &cobra.Command{
	Use:   "import-library",
	Short: "Import a previously exported library JSON file",
	Long: `Validates and imports an exported library file. Every record gets a
fresh id so an import never collides with entries already in the library. An
invalid file is rejected before a single record is applied.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		filePath, _ := cmd.Flags().GetString("file")
		importedBy, _ := cmd.Flags().GetString("imported-by")

		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", filePath, err)
		}
		result, err := service.ParseLibraryImport(data)
		if err != nil {
			log.Fatalf("Failed to parse %s: %v", filePath, err)
		}

		library, cleanup, err := buildLibrary(configPath)
		if err != nil {
			log.Fatalf("Failed to initialize library: %v", err)
		}
		defer cleanup()

		ctx := context.Background()
		for _, doc := range result.Documents {
			if _, _, err := library.AddDocument(ctx, doc, importedBy); err != nil {
				log.Fatalf("Failed to import document %s: %v", doc.Name, err)
			}
		}
		for _, doc := range result.Synthesized {
			if _, _, err := library.AddSynthesized(ctx, doc); err != nil {
				log.Fatalf("Failed to import synthesized document %s: %v", doc.Title, err)
			}
		}

		docCount, synthCount := result.Counts()
		fmt.Printf("Imported %d documents and %d synthesized documents from %s\n", docCount, synthCount, filePath)
	},
}

func init() {
	rootCmd.AddCommand(importLibraryCmd)
	importLibraryCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	importLibraryCmd.Flags().StringP("file", "f", "", "exported library JSON file")
	importLibraryCmd.Flags().String("imported-by", "anonymous", "email recorded as the uploader of imported documents")
	importLibraryCmd.MarkFlagRequired("file")
}
