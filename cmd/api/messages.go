package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"beaticafe/internal/domain/model"
	"beaticafe/internal/repository"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
)

func newMessagesCmd() *cobra.Command {
	var (
		kind   string
		email  string
		since  time.Duration
		limit  int
		offset int
	)
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List contact messages and issue reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			filter := repository.ContactFilter{Email: email, Limit: limit, Offset: offset}
			switch k := model.ContactKind(kind); k {
			case "":
			case model.ContactKindMessage, model.ContactKindReport:
				filter.Kind = &k
			default:
				return errors.Errorf("--kind must be %q or %q", model.ContactKindMessage, model.ContactKindReport)
			}
			if since > 0 {
				from := time.Now().Add(-since)
				filter.CreatedFrom = &from
			}

			st, err := openStores(e)
			if err != nil {
				return err
			}
			msgs, err := st.contacts.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printMessages(cmd.OutOrStdout(), msgs)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "contact or report")
	cmd.Flags().StringVar(&email, "email", "", "only messages from this address")
	cmd.Flags().DurationVar(&since, "since", 0, "only messages newer than this (e.g. 72h)")
	cmd.Flags().IntVar(&limit, "limit", 50, "max rows (1-200)")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}

func printMessages(w io.Writer, msgs []model.ContactMessage) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tKIND\tFROM\tTYPE\tMESSAGE\t")
	for _, m := range msgs {
		fmt.Fprintf(tw, "%s\t%s\t%s <%s>\t%s\t%s\t\n",
			m.CreatedAt.Format(time.RFC3339), m.Kind, m.Name, m.Email, m.IssueType, preview(m.Body, 60))
	}
	return tw.Flush()
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
