// Command htmlmin minifies an HTML document, writing the smallest byte
// sequence that renders identically to the input.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/quietbyte/htmlmin/minify"
	"github.com/spf13/cobra"
)

func main() {
	var (
		outputFile string
		cfg        minify.Cfg
	)

	cmd := &cobra.Command{
		Use:   "htmlmin [input]",
		Short: "Minify an HTML document",
		Long: `htmlmin reparses an HTML document with the same forgiving recovery
rules a browser applies and re-emits the smallest byte sequence that
renders identically.

Examples:
  htmlmin input.html -o output.html
  cat input.html | htmlmin > output.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) == 1 {
				src, err = os.ReadFile(args[0])
			} else {
				src, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			out := minify.Minify(src, cfg)

			if outputFile != "" {
				if err := os.WriteFile(outputFile, out, 0o644); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
				return nil
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().BoolVar(&cfg.KeepHTMLAndHeadOpeningTags, "keep-html-and-head-opening-tags", false, "do not omit <html>/<head> opening tags")
	cmd.Flags().BoolVar(&cfg.KeepClosingTags, "keep-closing-tags", false, "never apply closing-tag omission")
	cmd.Flags().BoolVar(&cfg.KeepSpacesBetweenAttributes, "keep-spaces-between-attributes", false, "always emit a space between attributes")
	cmd.Flags().BoolVar(&cfg.KeepComments, "keep-comments", false, "preserve HTML comments")
	cmd.Flags().BoolVar(&cfg.EnsureSpecCompliantUnquotedAttributeValues, "ensure-spec-compliant-unquoted-attribute-values", false, "restrict unquoted attribute encoding per WHATWG")
	cmd.Flags().BoolVar(&cfg.MinifyJS, "minify-js", false, "pass <script> contents through the JS delegate")
	cmd.Flags().BoolVar(&cfg.MinifyCSS, "minify-css", false, "pass <style> contents and style= attributes through the CSS delegate")
	cmd.Flags().BoolVar(&cfg.RemoveBangs, "remove-bangs", false, "drop <!...> bogus comments")
	cmd.Flags().BoolVar(&cfg.RemoveProcessingInstructions, "remove-processing-instructions", false, "drop <?...?> tokens")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
