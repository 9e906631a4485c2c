package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"ssakpotato/internal/client"
	"ssakpotato/internal/dto"
	"ssakpotato/internal/fridge"
	"ssakpotato/pkg/config"
	"ssakpotato/pkg/logger"

	"go.uber.org/zap"
)

// receipt-import drives the whole flow from the command line: log in,
// upload a receipt, review the recognized drafts, commit them and show the
// resulting fridge state.
func main() {
	var (
		email    = flag.String("email", os.Getenv("SSAKPOTATO_EMAIL"), "account email")
		password = flag.String("password", os.Getenv("SSAKPOTATO_PASSWORD"), "account password")
		file     = flag.String("file", "", "receipt file (jpg, png or pdf)")
		mock     = flag.Bool("mock", false, "classify by filename instead of uploading")
		recipe   = flag.Bool("recipe", false, "generate a recipe from expiring items afterwards")
	)
	flag.Parse()

	if *email == "" || *password == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "usage: receipt-import -email ... -password ... -file receipt.jpg [-mock] [-recipe]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	api := client.New(&cfg.Client, appLogger)

	auth, err := api.Login(ctx, *email, *password)
	if err != nil {
		appLogger.Fatal("Login failed", zap.Error(err))
	}
	fmt.Printf("Logged in as %s\n", auth.User.Username)

	classified, err := parseReceipt(ctx, api, *file, *mock)
	if err != nil {
		appLogger.Fatal("Receipt parsing failed", zap.Error(err))
	}

	drafts := fridge.MaterializeDrafts(classified, time.Now())
	if len(drafts) == 0 {
		fmt.Println("No food items recognized on the receipt.")
		return
	}

	fmt.Printf("\nRecognized %d item(s):\n", len(drafts))
	for i, d := range drafts {
		fmt.Printf("  %2d. %-12s %s  %s  (%s ~ %s)\n",
			i+1, d.Category, d.Name, d.Amount, d.PurchaseDate, d.ExpireDate)
	}

	items, err := api.AddBulk(ctx, drafts)
	if err != nil {
		appLogger.Warn("Bulk commit incomplete", zap.Error(err))
		fmt.Printf("\nSome items were not saved: %v\n", err)
	} else {
		fmt.Printf("\nAll items saved.\n")
	}
	fmt.Printf("Fridge now holds %d item(s).\n", len(items))

	dashboard, err := api.Dashboard(ctx)
	if err != nil {
		appLogger.Fatal("Failed to fetch dashboard", zap.Error(err))
	}
	fmt.Printf("Status: %d fresh, %d expiring soon, %d expired\n",
		dashboard.FreshCount, dashboard.WarningCount, dashboard.ExpiredCount)

	if *recipe {
		generateRecipe(ctx, api, appLogger)
	}
}

func parseReceipt(ctx context.Context, api *client.Client, path string, mock bool) (fridge.ClassifiedMap, error) {
	onProgress := func(percent int) {
		fmt.Printf("\r%-10s %3d%%", fridge.StageFor(percent), percent)
		if percent >= 100 {
			fmt.Println()
		}
	}

	if mock {
		return client.MockParseReceipt(path, onProgress), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return api.ParseReceipt(ctx, path, f, onProgress)
}

func generateRecipe(ctx context.Context, api *client.Client, appLogger *zap.Logger) {
	expiring, err := api.ExpiringItems(ctx)
	if err != nil {
		appLogger.Fatal("Failed to fetch expiring items", zap.Error(err))
	}
	if len(expiring) == 0 {
		fmt.Println("Nothing is expiring soon; skipping recipe generation.")
		return
	}

	req := &dto.GenerateRecipeRequest{}
	for _, item := range expiring {
		req.Ingredients = append(req.Ingredients, dto.RecipeIngredient{
			Name:   item.IngredientName,
			Amount: item.Quantity,
		})
	}

	resp, err := api.GenerateRecipe(ctx, req)
	if err != nil {
		appLogger.Fatal("Recipe request failed", zap.Error(err))
	}

	if resp.Success && resp.Recipe != nil {
		fmt.Printf("\nRecipe: %s (%d min, %s)\n",
			resp.Recipe.MenuName, resp.Recipe.EstimatedCookingTime, resp.Recipe.Difficulty)
		for _, step := range resp.Recipe.CookingSteps {
			fmt.Printf("  %d. %s\n", step.Step, step.Instruction)
		}
		return
	}

	fmt.Println("\nRecipe generation unavailable; try these instead:")
	for _, s := range resp.FallbackSuggestions {
		fmt.Printf("  - %s (%s)\n", s.MenuName, s.Reason)
	}
}
