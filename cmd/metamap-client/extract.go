// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/metamap-client/internal/metamap"
	"github.com/pdiddy/metamap-client/internal/report"
	"github.com/pdiddy/metamap-client/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [sentences...]",
	Short: "Extract UMLS concepts from sentences or an input file",
	Long: `Extract runs MetaMap over the given sentences, sentences read from stdin
(--stdin, one per line), or a pre-formatted input file (--file). Identifiers
may be paired with sentences through --ids; MetaMap then reports each concept
under its sentence's identifier.

When MetaMap prints an ERROR line it is stopped; any concepts it produced
before failing are still printed and the command exits non-zero.`,
	RunE: runExtract,
}

// metamapFlags maps extract flags to metamap.* config keys.
var metamapFlags = map[string]string{
	"metamap":  "metamap.binary",
	"temp-dir": "metamap.temp_dir",
	"timeout":  "metamap.timeout",
}

// optionFlags are bound under extract.* so config files can change their
// defaults.
var optionFlags = []string{
	"composite-phrase",
	"word-sense-disambiguation",
	"allow-large-n",
	"restrict-to",
	"no-derivational-variants",
	"derivational-variants",
	"allow-concept-gaps",
	"ignore-word-order",
	"allow-acronym-variants",
	"unique-acronym-variants",
	"prefer-multiple-concepts",
	"ignore-stop-phrases",
	"compute-all-mappings",
	"extra",
	"fold-ascii",
	"file-format",
	"format",
}

func init() {
	d := metamap.DefaultOptions()
	f := extractCmd.Flags()

	f.String("metamap", types.DefaultBinary, "MetaMap executable name or path")
	f.String("temp-dir", "", "directory for staged input/output files (default: OS temp dir)")
	f.Duration("timeout", 0, "stop MetaMap after this long (0 = no limit)")

	f.String("file", "", "pre-formatted input file (instead of sentences)")
	f.String("file-format", string(d.FileFormat), "input file format: sldi or sldiID")
	f.Bool("stdin", false, "read sentences from stdin, one per line")
	f.StringSlice("ids", nil, "comma-separated identifiers, one per sentence")
	f.String("format", string(report.FormatTable), "output format: table, mmi, json, or yaml")

	f.Int("composite-phrase", d.CompositePhrase, "composite phrase depth (-Q)")
	f.Bool("word-sense-disambiguation", d.WordSenseDisambiguation, "word sense disambiguation (-y)")
	f.Bool("allow-large-n", d.AllowLargeN, "allow large N (-l)")
	f.StringSlice("restrict-to", d.RestrictToVocabularies, "restrict to vocabularies (-R)")
	f.Bool("no-derivational-variants", d.NoDerivationalVariants, "no derivational variants (-d)")
	f.Bool("derivational-variants", d.DerivationalVariants, "all derivational variants (-D)")
	f.Bool("allow-concept-gaps", d.AllowConceptGaps, "allow concept gaps (-g)")
	f.Bool("ignore-word-order", d.IgnoreWordOrder, "ignore word order (-i)")
	f.Bool("allow-acronym-variants", d.AllowAcronymVariants, "allow acronym variants (-a)")
	f.Bool("unique-acronym-variants", d.UniqueAcronymVariants, "unique acronym variants (-u)")
	f.Bool("prefer-multiple-concepts", d.PreferMultipleConcepts, "prefer multiple concepts (-Y)")
	f.Bool("ignore-stop-phrases", d.IgnoreStopPhrases, "ignore stop phrases (-K)")
	f.Bool("compute-all-mappings", d.ComputeAllMappings, "compute all mappings (-b)")
	f.StringArray("extra", nil, "additional MetaMap argument, passed verbatim (repeatable)")
	f.Bool("fold-ascii", d.FoldASCII, "strip accents and non-ASCII characters before staging")

	for name, key := range metamapFlags {
		viper.BindPFlag(key, f.Lookup(name))
	}
	for _, name := range optionFlags {
		viper.BindPFlag(extractKey(name), f.Lookup(name))
	}

	rootCmd.AddCommand(extractCmd)
}

// extractKey returns the config key for an option flag.
func extractKey(flag string) string {
	return "extract." + strings.ReplaceAll(flag, "-", "_")
}

func runExtract(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	file, _ := flags.GetString("file")
	useStdin, _ := flags.GetBool("stdin")
	ids, _ := flags.GetStringSlice("ids")

	sentences, err := collectSentences(args, useStdin, os.Stdin)
	if err != nil {
		return err
	}

	opts := optionsFromConfig(viper.GetViper())
	opts.Sentences = sentences
	opts.IDs = ids
	opts.Filename = file
	if err := opts.Validate(); err != nil {
		return err
	}

	format, err := report.ParseFormat(viper.GetString(extractKey("format")))
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true

	runner, err := metamap.NewRunner(metamapConfig(viper.GetViper()),
		metamap.WithLogger(slog.Default()),
		metamap.WithStderr(os.Stderr),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := runner.Extract(ctx, opts)
	if res != nil {
		if werr := report.Write(os.Stdout, res.Concepts, format); werr != nil {
			return werr
		}
	}
	if err != nil {
		return err
	}
	if res.HasError() {
		fmt.Fprintln(os.Stderr, "metamap:", res.ToolError)
		return fmt.Errorf("metamap reported an error")
	}
	return nil
}

// collectSentences gathers sentences from args and, when fromStdin is set,
// from r. Blank stdin lines are skipped.
func collectSentences(args []string, fromStdin bool, r io.Reader) ([]string, error) {
	sentences := append([]string(nil), args...)
	if !fromStdin {
		return sentences, nil
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			sentences = append(sentences, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading sentences from stdin: %w", err)
	}
	return sentences, nil
}

// optionsFromConfig builds extraction options from the extract.* keys,
// falling back to metamap.DefaultOptions for unset keys.
func optionsFromConfig(v *viper.Viper) metamap.Options {
	o := metamap.DefaultOptions()
	if v.IsSet(extractKey("composite-phrase")) {
		o.CompositePhrase = v.GetInt(extractKey("composite-phrase"))
	}
	if v.IsSet(extractKey("restrict-to")) {
		o.RestrictToVocabularies = v.GetStringSlice(extractKey("restrict-to"))
	}
	if v.IsSet(extractKey("extra")) {
		o.AdditionalOptions = v.GetStringSlice(extractKey("extra"))
	}
	if v.IsSet(extractKey("file-format")) {
		o.FileFormat = metamap.FileFormat(v.GetString(extractKey("file-format")))
	}

	toggles := map[string]*bool{
		"word-sense-disambiguation": &o.WordSenseDisambiguation,
		"allow-large-n":             &o.AllowLargeN,
		"no-derivational-variants":  &o.NoDerivationalVariants,
		"derivational-variants":     &o.DerivationalVariants,
		"allow-concept-gaps":        &o.AllowConceptGaps,
		"ignore-word-order":         &o.IgnoreWordOrder,
		"allow-acronym-variants":    &o.AllowAcronymVariants,
		"unique-acronym-variants":   &o.UniqueAcronymVariants,
		"prefer-multiple-concepts":  &o.PreferMultipleConcepts,
		"ignore-stop-phrases":       &o.IgnoreStopPhrases,
		"compute-all-mappings":      &o.ComputeAllMappings,
		"fold-ascii":                &o.FoldASCII,
	}
	for flag, dst := range toggles {
		if key := extractKey(flag); v.IsSet(key) {
			*dst = v.GetBool(key)
		}
	}
	return o
}

// metamapConfig reads the metamap.* keys.
func metamapConfig(v *viper.Viper) types.MetaMapConfig {
	return types.MetaMapConfig{
		Binary:  v.GetString("metamap.binary"),
		TempDir: v.GetString("metamap.temp_dir"),
		Timeout: v.GetDuration("metamap.timeout"),
	}
}
