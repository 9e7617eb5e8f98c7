package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ArowuTest/oripay-exchange-backend/internal/app"
	"github.com/ArowuTest/oripay-exchange-backend/internal/services"
	"github.com/ArowuTest/oripay-exchange-backend/internal/utils"
	"github.com/spf13/cobra"
)

func seedContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-content [file.yaml]",
		Short: "Load pages, services and announcements from a YAML bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			seed, err := app.LoadSeed(f)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), func(a *app.App) error {
				content := services.NewContentService(a.Repos.Content, a.Repos.Services, a.Repos.Announcements)
				result, err := app.ApplySeed(cmd.Context(), content, seed)
				if err != nil {
					return err
				}
				fmt.Printf("Seeded %d pages, %d services, %d announcements\n",
					result.Pages, result.Services, result.Announcements)
				return nil
			})
		},
	}
}

func importCurrenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-currencies [file.csv]",
		Short: "Upsert currencies from a CSV file (code,name,rate,active)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importReference(cmd, args[0], (*utils.CSVImporter).ImportCurrencies)
		},
	}
}

func importCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-countries [file.csv]",
		Short: "Upsert countries from a CSV file (code,name,flag,active)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importReference(cmd, args[0], (*utils.CSVImporter).ImportCountries)
		},
	}
}

type importFunc func(i *utils.CSVImporter, ctx context.Context, r io.Reader) (*utils.ImportResult, error)

func importReference(cmd *cobra.Command, path string, run importFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return withApp(cmd.Context(), func(a *app.App) error {
		settings := services.NewSystemSettingsService(a.Repos.Settings, a.Repos.Currencies, a.Repos.Countries)
		result, err := run(utils.NewCSVImporter(settings), cmd.Context(), f)
		if err != nil {
			return err
		}
		fmt.Printf("Processed %d rows, saved %d\n", result.TotalRows, result.Saved)
		for _, msg := range result.Errors {
			fmt.Printf("  %s\n", msg)
		}
		return nil
	})
}
