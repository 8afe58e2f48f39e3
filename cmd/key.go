package cmd

import (
	"errors"
	"fmt"

	"segment-audit/core/keys"

	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Derive a document key",
	Long:  `Derives the document key from a catalog URL, a folder name or a segment filename.`,
	Example: `  segment-audit key --url https://library.example/view/Energetica_1969
  segment-audit key --folder "Energetica, 1969"
  segment-audit key --file Energetica_1969__pages1-49.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		folder, _ := cmd.Flags().GetString("folder")
		file, _ := cmd.Flags().GetString("file")

		var (
			key keys.Key
			ok  bool
		)
		switch {
		case url != "":
			key, ok = keys.FromURL(url)
		case folder != "":
			key, ok = keys.FromFolder(folder)
		case file != "":
			key, ok = keys.FromFilename(file)
		default:
			return errors.New("one of --url, --folder or --file is required")
		}
		if !ok {
			return errors.New("no key could be derived")
		}

		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}

func init() {
	keyCmd.Flags().String("url", "", "Catalog URL containing /view/<key>")
	keyCmd.Flags().String("folder", "", "Folder name in the form \"<Title>, <year>\"")
	keyCmd.Flags().String("file", "", "Segment filename starting with <key>")
	keyCmd.MarkFlagsMutuallyExclusive("url", "folder", "file")
	RootCmd.AddCommand(keyCmd)
}
