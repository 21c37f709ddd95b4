package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smt-joen/plunet2peppol/internal/converter"
	"github.com/smt-joen/plunet2peppol/internal/loader"
	"github.com/smt-joen/plunet2peppol/internal/logger"
)

var outputDir string

var convertCmd = &cobra.Command{
	Use:   "convert [files|dirs|globs...]",
	Short: "Convert record files to PEPPOL XML",
	Long: `Convert one or more billing record files into PEPPOL BIS Billing 3.0
XML documents. Each output is written next to its input with an .xml
extension.

With no arguments the current directory is scanned for .json records.
Directory arguments are scanned the same way. A record that fails its
preconditions is skipped with a diagnostic; the rest of the batch
continues.`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Write XML files here instead of next to the input")
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("convert")

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no record files found to convert")
	}
	log.Debug().Int("files", len(files)).Msg("collected record files")

	conv := converter.New(
		converter.WithDefaultCountry(cfg.DefaultCountry),
		converter.WithLogger(log),
	)

	var converted, failed int
	for _, file := range files {
		rec, err := loader.Load(file)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("cannot load record")
			failed++
			continue
		}

		results, err := conv.Convert(rec)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("conversion failed")
			failed++
			continue
		}

		for _, result := range results {
			out := outputPath(file, string(result.Kind), len(results) > 1)
			if err := os.WriteFile(out, result.XML, 0o644); err != nil {
				log.Error().Err(err).Str("file", out).Msg("cannot write output")
				failed++
				continue
			}
			log.Info().Str("kind", string(result.Kind)).Str("output", out).Msg("converted")
			converted++
		}
	}

	log.Info().Int("converted", converted).Int("failed", failed).Msg("batch done")
	if converted == 0 {
		return fmt.Errorf("no documents produced")
	}
	return nil
}

// collectFiles expands the arguments into record file paths: globs are
// expanded, directories scanned for .json files, plain files taken as
// given. Without arguments the working directory is scanned.
func collectFiles(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var files []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("file not found: %s", arg)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				continue
			}
			if info.IsDir() {
				entries, err := os.ReadDir(match)
				if err != nil {
					return nil, err
				}
				for _, entry := range entries {
					if !entry.IsDir() && isRecordFile(entry.Name()) {
						files = append(files, filepath.Join(match, entry.Name()))
					}
				}
				continue
			}
			files = append(files, match)
		}
	}
	return files, nil
}

func isRecordFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

// outputPath names the XML output after the input record, in the same
// directory unless --output-dir overrides it. A record yielding more
// than one document gets the document kind as a suffix so the outputs
// do not overwrite each other.
func outputPath(input, kind string, multi bool) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if multi {
		base += "." + kind
	}
	dir := filepath.Dir(input)
	if outputDir != "" {
		dir = outputDir
	}
	return filepath.Join(dir, base+".xml")
}
