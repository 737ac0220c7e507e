package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/heathj/htmlattrs/spec"
)

func newDatasetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Translate between dataset keys and data-* attribute names",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "encode <key>...",
		Short: "Print the attribute name each dataset key is stored under",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := spec.NewHTMLDocument()
			for _, key := range args {
				e := doc.CreateElement("div")
				if err := e.SetCustomAttr(key, ""); err != nil {
					return errors.Wrapf(err, "key %q", key)
				}
				fmt.Fprintln(cmd.OutOrStdout(), e.Attributes.Item(0).LocalName)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "decode <name>...",
		Short: "Print the dataset key of each data-* attribute name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				key, ok := spec.DecodeCustomAttrName(name)
				if !ok {
					return errors.Errorf("%q is not a data-* attribute", name)
				}
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	})
	return cmd
}
