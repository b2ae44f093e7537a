package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cfpath/internal/pathid"
	"github.com/roach88/cfpath/internal/store"
)

// StoreOptions holds flags shared by the store subcommands.
type StoreOptions struct {
	*RootOptions
	DB string // database file path
}

// StoreRecord is the JSON shape of a stored path record.
type StoreRecord struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
	Num   uint64 `json:"num"`
	Den   uint64 `json:"den"`
}

// PutResult is the payload produced by "store put".
type PutResult struct {
	StoreRecord
	Inserted bool `json:"inserted"`
}

// ListResult is the payload produced by "store list".
type ListResult struct {
	Records []StoreRecord `json:"records"`
	Count   int           `json:"count"`
}

// NewStoreCommand creates the store command and its subcommands.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Persist labeled path identifiers in SQLite",
		Long: `Persist labeled path identifiers in a SQLite database.

The identifier's fixed-width matrix round-trips exactly through the
database: a stored path always reads back equal to the one written.`,
	}

	cmd.PersistentFlags().StringVar(&opts.DB, "db", "cfpath.db", "database file path")

	cmd.AddCommand(newStorePutCommand(opts))
	cmd.AddCommand(newStoreGetCommand(opts))
	cmd.AddCommand(newStoreRmCommand(opts))
	cmd.AddCommand(newStoreListCommand(opts))

	return cmd
}

func newStorePutCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "put <label> <path>",
		Short:         "Store a path identifier under a label",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStorePut(opts, args[0], args[1], cmd)
		},
	}
}

func newStoreGetCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "get <label>",
		Short:         "Look up the path stored under a label",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreGet(opts, args[0], cmd)
		},
	}
}

func newStoreRmCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "rm <label>",
		Short:         "Remove the record stored under a label",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreRm(opts, args[0], cmd)
		},
	}
}

func newStoreListCommand(opts *StoreOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List all stored path records",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreList(opts, cmd)
		},
	}
}

// openStore opens the database, reporting failures as command errors.
func openStore(opts *StoreOptions, formatter *OutputFormatter) (*store.Store, error) {
	s, err := store.Open(opts.DB)
	if err != nil {
		return nil, formatter.fail(ExitCommandError, ErrCodeStore, fmt.Sprintf("open %s: %v", opts.DB, err), nil)
	}
	formatter.VerboseLog("using database %s", opts.DB)
	return s, nil
}

func newFormatter(opts *StoreOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

func toStoreRecord(rec store.Record) StoreRecord {
	num, den := rec.Path.Rational()
	return StoreRecord{
		ID:    rec.ID,
		Label: rec.Label,
		Path:  rec.Path.String(),
		Num:   num,
		Den:   den,
	}
}

func runStorePut(opts *StoreOptions, label, text string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	id, err := pathid.Parse(text)
	if err != nil {
		exitCode, errCode := classifyPathError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}

	s, err := openStore(opts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	rec, inserted, err := s.Put(cmd.Context(), label, id)
	if err != nil {
		exitCode, errCode := classifyStoreError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}

	result := &PutResult{StoreRecord: toStoreRecord(rec), Inserted: inserted}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	verb := "stored"
	if !inserted {
		verb = "already stored"
	}
	fmt.Fprintf(formatter.Writer, "%s %q -> %s (%d/%d)\n",
		verb, result.Label, displayPath(result.Path), result.Num, result.Den)
	return nil
}

func runStoreGet(opts *StoreOptions, label string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(opts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := s.Get(cmd.Context(), label)
	if err != nil {
		exitCode, errCode := classifyStoreError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}

	result := toStoreRecord(rec)
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "%q -> %s (%d/%d)\n",
		result.Label, displayPath(result.Path), result.Num, result.Den)
	return nil
}

func runStoreRm(opts *StoreOptions, label string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(opts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(cmd.Context(), label); err != nil {
		exitCode, errCode := classifyStoreError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]any{"label": label, "deleted": true})
	}
	fmt.Fprintf(formatter.Writer, "deleted %q\n", label)
	return nil
}

func runStoreList(opts *StoreOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openStore(opts, formatter)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.List(cmd.Context())
	if err != nil {
		exitCode, errCode := classifyStoreError(err)
		return formatter.fail(exitCode, errCode, err.Error(), nil)
	}

	result := &ListResult{Records: make([]StoreRecord, 0, len(records)), Count: len(records)}
	for _, rec := range records {
		result.Records = append(result.Records, toStoreRecord(rec))
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	if result.Count == 0 {
		fmt.Fprintln(formatter.Writer, "no records")
		return nil
	}
	for _, rec := range result.Records {
		fmt.Fprintf(formatter.Writer, "%q -> %s (%d/%d)\n",
			rec.Label, displayPath(rec.Path), rec.Num, rec.Den)
	}
	return nil
}
