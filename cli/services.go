package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/jungle-app/jungle-booking/catalog"
	"github.com/jungle-app/jungle-booking/config"
	"github.com/jungle-app/jungle-booking/database"
	"github.com/spf13/cobra"
)

type serviceFetcher interface {
	FetchServices(ctx context.Context, limit int) []catalog.Service
}

// openCatalog is swapped in tests.
var openCatalog = func(ctx context.Context, cfg config.Config) (serviceFetcher, func()) {
	db, closeDB := database.Open(ctx, cfg.DB)
	return catalog.NewCatalog(catalog.NewRepository(db)), closeDB
}

var (
	servicesLimit    int
	servicesJSON     bool
	servicesCriteria catalog.CriteriaInput
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List bookable services",
	Long: `Fetches the service catalog and prints it filtered and sorted.
Categories accept the English, Italian or Spanish labels used by the app.`,
	Args: cobra.NoArgs,
	RunE: runServices,
}

func init() {
	flags := servicesCmd.Flags()
	flags.IntVarP(&servicesLimit, "limit", "n", 0, "maximum number of services to fetch (0 for all)")
	flags.BoolVar(&servicesJSON, "json", false, "output services as JSON")
	flags.StringVar(&servicesCriteria.Category, "category", "", "category label, e.g. rest or Doccia")
	flags.StringVar(&servicesCriteria.Destination, "destination", "", "text the location must contain")
	flags.StringVar(&servicesCriteria.MaxPrice, "max-price", "", "maximum price in EUR")
	flags.StringVar(&servicesCriteria.MaxDistanceKm, "max-distance", "", "maximum distance in km")
	flags.StringVar(&servicesCriteria.MinRating, "min-rating", "", "minimum rating")
	flags.StringVar(&servicesCriteria.Sort, "sort", "", "price_asc, price_desc, top_rated or nearest")
	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, _ []string) error {
	criteria, err := catalog.ParseCriteria(servicesCriteria)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	fetcher, closeCatalog := openCatalog(ctx, cfg)
	defer closeCatalog()

	services := catalog.Apply(fetcher.FetchServices(ctx, servicesLimit), criteria)

	if servicesJSON {
		return outputServicesJSON(cmd, services)
	}

	return outputServicesTable(cmd, services)
}

func outputServicesJSON(cmd *cobra.Command, services []catalog.Service) error {
	data, err := json.MarshalIndent(services, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal services: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputServicesTable(cmd *cobra.Command, services []catalog.Service) error {
	if len(services) == 0 {
		cmd.Println("No services found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tCATEGORY\tPRICE\tRATING\tDISTANCE\tLOCATION")

	for _, s := range services {
		rating := "-"
		if s.Rating != nil {
			rating = strconv.FormatFloat(*s.Rating, 'f', 1, 64)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Title, s.Category, catalog.PriceLabel(s.PriceEUR), rating, catalog.DistanceLabel(s.DistanceMeters), s.Location)
	}

	return w.Flush()
}
