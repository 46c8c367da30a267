package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nailuj1992/polls-api/internal/config"
	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/logger"
)

// questionTypesCommand manages the question type vocabulary, which the HTTP
// API only reads.
func questionTypesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question-types",
		Short: "Lists or updates the question type vocabulary",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Prints every question type",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			types, err := strg.QuestionTypes(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not list question types", zap.Error(err))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tCODE\tDESCRIPTION")
			for _, qt := range types {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", qt.ID, qt.Code, qt.Description)
			}
			_ = w.Flush()
		},
	}

	upsert := &cobra.Command{
		Use:   "upsert",
		Short: "Adds a question type or updates its description",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			code, _ := cmd.Flags().GetString("code")
			description, _ := cmd.Flags().GetString("description")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			qt, err := strg.UpsertQuestionType(ctx, domain.QuestionType{Code: code, Description: description})
			if err != nil {
				logger.Fatal(ctx, "could not upsert question type", zap.Error(err), zap.String("code", code))
			}

			fmt.Printf("%d\t%s\t%s\n", qt.ID, qt.Code, qt.Description) //nolint: forbidigo
		},
	}
	upsert.Flags().String("code", "", "Question type code referenced by poll questions")
	upsert.Flags().String("description", "", "Human readable description")
	_ = upsert.MarkFlagRequired("code")

	cmd.AddCommand(list, upsert)

	return cmd
}
