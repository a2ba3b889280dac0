package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/YoshitsuguKoike/helloworld/internal/app/config"
	"github.com/YoshitsuguKoike/helloworld/internal/domain/model/record"
	"github.com/YoshitsuguKoike/helloworld/internal/hello"
	"github.com/YoshitsuguKoike/helloworld/internal/infra/journal"
	"github.com/YoshitsuguKoike/helloworld/internal/pkg/names"
)

// now is replaced in tests
var now = time.Now

// greetOptions are the flags shared by greet and batch
type greetOptions struct {
	format    string
	normalize bool
	journal   string
}

// resolve fills unset options from the loaded configuration
func (o *greetOptions) resolve(cfg config.Config, changed func(string) bool) error {
	if !changed("format") {
		o.format = cfg.Format()
	}
	if !changed("normalize") {
		o.normalize = cfg.Normalize()
	}
	if !changed("journal") {
		o.journal = cfg.JournalPath()
	}
	if !config.IsValidFormat(o.format) {
		return fmt.Errorf("unsupported format %q (want text, json or yaml)", o.format)
	}
	return nil
}

// render produces a record for one person. A nil platform selects the
// build target's label. Normalization applies to names only; an explicit
// platform label is used as given.
func (o *greetOptions) render(firstName, lastName string, platform *string) record.Record {
	if o.normalize {
		firstName = names.Normalize(firstName)
		lastName = names.Normalize(lastName)
	}

	if platform == nil {
		return record.New(firstName, lastName, hello.Platform, hello.HelloWorld(firstName, lastName), now())
	}
	return record.New(firstName, lastName, *platform, hello.Greeting(firstName, lastName, *platform), now())
}

// emit writes records to out in the selected format. Records reach the
// journal only after the output was written in full.
func (o *greetOptions) emit(out io.Writer, records []record.Record) error {
	var buf bytes.Buffer
	if err := encode(&buf, o.format, records); err != nil {
		return err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if o.journal != "" {
		w := journal.NewWriter(appFs, o.journal)
		if err := w.Append(records...); err != nil {
			return err
		}
		Info("appended %d record(s) to %s", len(records), w.Path())
	}
	return nil
}

func encode(out io.Writer, format string, records []record.Record) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		for _, rec := range records {
			if err := enc.Encode(rec); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
		}
		return enc.Close()
	default:
		for _, rec := range records {
			fmt.Fprintln(out, rec.Greeting)
		}
	}
	return nil
}

func addOutputFlags(cmd *cobra.Command, opts *greetOptions) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatText, "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.normalize, "normalize", false, "Normalize names to Unicode NFC before greeting")
	cmd.Flags().StringVar(&opts.journal, "journal", "", "Append greeting records to this NDJSON file after output succeeds")
}
