package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/cache"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/calculator"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/config"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/pipeline"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/predict"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/providers/nbastats"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/providers/oddsapi"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/publisher"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/reconciler"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/registry"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/schedule"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("✗ Config error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDeps(cfg)
	if err != nil {
		fmt.Printf("✗ Setup error: %v\n", err)
		os.Exit(1)
	}

	p := pipeline.New(deps)
	fmt.Printf("✓ Prediction pipeline starting (run %s)\n", p.RunID())
	if cfg.Sportsbook != "" {
		fmt.Printf("  Bookmaker: %s\n", cfg.Sportsbook)
	} else {
		fmt.Println("  Bookmaker: none (manual odds entry)")
	}
	fmt.Printf("  Bankroll Cap: %.1f%%\n", deps.Engine.CapPct())
	if model, ok := deps.Predictors.Get(cfg.ModelKey); ok {
		fmt.Printf("  Model: %s (normalized inputs: %v)\n", model.Key(), model.WantsNormalized())
	}

	result, err := p.Run(ctx)
	if err != nil {
		fmt.Printf("✗ Pipeline error: %v\n", err)
		os.Exit(1)
	}

	printBoard(result)
}

func buildDeps(cfg *config.Config) (pipeline.Deps, error) {
	var scheduleSource contracts.ScheduleSource
	if cfg.ScheduleDSN != "" {
		db, err := schedule.OpenPostgres(cfg.ScheduleDSN)
		if err != nil {
			return pipeline.Deps{}, err
		}
		scheduleSource = schedule.NewPostgresSource(db)
	} else {
		scheduleSource = schedule.NewCSVSource(cfg.ScheduleCSV)
	}

	nbaClient := nbastats.New(cfg.ScoreboardURL, cfg.StatsURL)

	predictors := registry.NewPredictorRegistry()
	if cfg.ModelURL != "" {
		if err := predictors.Register(predict.NewHTTPPredictor(cfg.ModelURL, cfg.ModelKey, cfg.ModelNormalized)); err != nil {
			return pipeline.Deps{}, err
		}
	}
	if predictors.Count() == 0 {
		return pipeline.Deps{}, fmt.Errorf("no predictors configured (set MODEL_URL)")
	}

	deps := pipeline.Deps{
		GameSource:     nbaClient,
		StatsSource:    nbaClient,
		ScheduleSource: scheduleSource,
		Manual:         reconciler.NewStdinOddsProvider(),
		Predictors:     predictors,
		Engine:         calculator.New(cfg.BankrollCapPct),
		TeamIndex:      basketball_nba.TeamIndex(),
		Bookmaker:      cfg.Sportsbook,
		ReferenceDate:  cfg.ReferenceDate,
	}

	if cfg.Sportsbook != "" {
		deps.OddsSource = oddsapi.New(cfg.OddsAPIURL, cfg.OddsAPIKey)
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		deps.Cache = cache.NewRedisWriter(client)
		deps.Publisher = publisher.NewStreamPublisher(client)
	}

	return deps, nil
}

// printBoard prints the odds board and each predictor's recommendations
func printBoard(result *pipeline.RunResult) {
	fmt.Printf("------------------ today's board (%d games) ------------------\n", len(result.Games))
	for _, g := range result.Games {
		fmt.Printf("%s (%+d) @ %s (%+d)  O/U %.1f  rest %d/%d\n",
			basketball_nba.GetTeamAbbreviation(g.Game.AwayTeam), g.AwayMoneyline,
			basketball_nba.GetTeamAbbreviation(g.Game.HomeTeam), g.HomeMoneyline,
			g.OverUnder, g.HomeDaysRest, g.AwayDaysRest)
	}

	for _, set := range result.Predictions {
		fmt.Printf("--------------- %s predictions ---------------\n", set.Predictor)
		for i, g := range result.Games {
			fmt.Printf("%s @ %s: home win %.1f%%  stake home %s / away %s\n",
				basketball_nba.GetTeamAbbreviation(g.Game.AwayTeam),
				basketball_nba.GetTeamAbbreviation(g.Game.HomeTeam),
				set.Probabilities[i]*100,
				formatStake(set.Stakes[i].Home),
				formatStake(set.Stakes[i].Away))
		}
	}
}

func formatStake(rec models.StakeRecommendation) string {
	if !rec.Computable {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", rec.BankrollFractionPct)
}
