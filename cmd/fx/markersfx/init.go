package markersfx

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"mapsplanner/internal/api/controllers"
	"mapsplanner/internal/repositories"
	"mapsplanner/internal/services"
	"mapsplanner/pkg/config"
	"mapsplanner/pkg/utils"
)

var Module = fx.Provide(
	ProvideSuggestionClient,
	provideMaptilerClient,
	provideMarkerRepo,
	provideMarkerService,
	provideMarkersController)

// ProvideSuggestionClient selects the AI backend from AI_PROVIDER.
func ProvideSuggestionClient(cfg *config.Config) (utils.SuggestionClient, error) {
	log.Printf("Initializing %s suggestion client", cfg.AIProvider)

	switch strings.ToLower(cfg.AIProvider) {
	case "openai":
		return utils.NewOpenAISuggestionClient(cfg.ChatGPTAPIKey), nil
	case "gemini":
		client, err := utils.NewGeminiSuggestionClient(context.Background(), cfg.GeminiAPIKey, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", cfg.AIProvider)
	}
}

func provideMaptilerClient(cfg *config.Config) utils.GeocodingClient {
	return utils.NewMaptilerClient(cfg.MaptilerAPIKey)
}

func provideMarkerRepo(db *gorm.DB) repositories.MarkerRepository {
	return repositories.NewMarkerRepository(db)
}

func provideMarkerService(
	markerRepo repositories.MarkerRepository,
	tripRepo repositories.TripRepository,
	auditService services.AuditServiceInterface,
	suggestions utils.SuggestionClient,
	geocoder utils.GeocodingClient,
) services.MarkerServiceInterface {
	return services.NewMarkerService(markerRepo, tripRepo, auditService, suggestions, geocoder)
}

func provideMarkersController(markerService services.MarkerServiceInterface) *controllers.MarkersController {
	return controllers.NewMarkersController(markerService)
}
