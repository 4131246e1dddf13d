package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resend-cli/rusend/internal/config"
)

type configOptions struct {
	key         string
	defaultFrom string
	defaultTo   string

	keySet  bool
	fromSet bool
	toSet   bool
}

func (a App) newConfigCommand(g *globalOptions) *cobra.Command {
	var opts configOptions
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Save your API key and default addresses for reuse",
		Args:  usageArgs(cobra.NoArgs),
	}
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		opts.keySet = cmd.Flags().Changed("key")
		opts.fromSet = cmd.Flags().Changed("default-from")
		opts.toSet = cmd.Flags().Changed("default-to")
		_, store, cfg, err := a.loadConfig(g)
		if err != nil {
			// an explicit --key may overwrite an unreadable file
			if store == nil || !opts.keySet || !errors.Is(err, config.ErrCorrupt) {
				return err
			}
			g.log.Warn().Str("path", store.Path()).Msg("replacing corrupt credentials file")
			cfg = config.Default()
		}
		res, err := cmdConfig(store, cfg, opts, cmd.InOrStdin(), a.Stderr)
		if err != nil {
			return err
		}
		g.result = res
		return nil
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.key, "key", "k", "", "set the API key (prompted for when omitted and none is stored)")
	flags.StringVar(&opts.defaultFrom, "default-from", "", "default From address for send")
	flags.StringVar(&opts.defaultTo, "default-to", "", "default To addresses for send, comma separated")
	return cmd
}

// cmdConfig overlays the provided fields on the stored config and saves the
// result. An empty --default-from or --default-to clears the stored value.
func cmdConfig(store *config.Store, cfg config.AppConfig, opts configOptions, in io.Reader, prompt io.Writer) (any, error) {
	merged := cfg
	if opts.keySet {
		merged.APIKey = strings.TrimSpace(opts.key)
	}
	if opts.fromSet {
		merged.DefaultFrom = optionalString(opts.defaultFrom)
	}
	if opts.toSet {
		merged.DefaultTo = optionalString(opts.defaultTo)
	}
	if !merged.HasKey() {
		key, err := promptAPIKey(in, prompt)
		if err != nil {
			return nil, err
		}
		merged.APIKey = key
	}
	if err := store.Save(merged); err != nil {
		return nil, cliError{exit: 3, code: "config_error", msg: err.Error(), err: err}
	}
	return configResponse{
		ConfigPath:  store.Path(),
		APIKey:      merged.MaskedKey(),
		DefaultFrom: merged.DefaultFrom,
		DefaultTo:   merged.DefaultTo,
	}, nil
}

// promptAPIKey asks for the key on prompt and reads one line from in. Input
// is echoed.
func promptAPIKey(in io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprintln(prompt, "Enter your resend API key (starts with re_):")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", cliError{exit: 1, code: "runtime_error", msg: "failed to read api key: " + err.Error(), err: err}
	}
	key := strings.TrimSpace(line)
	if key == "" {
		return "", validationError("an API key is required", "Pass --key re_... or type the key at the prompt")
	}
	return key, nil
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
