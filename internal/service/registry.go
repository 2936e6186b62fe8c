package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/workspacefs/workspaced/internal/types"
	"github.com/workspacefs/workspaced/internal/workspace"
)

// Registry manages service discovery and execution
type Registry struct {
	services map[string]Provider
	order    []string
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{services: make(map[string]Provider)}
}

// Register adds a service provider. Providers are registered once at
// startup; the registry is read-only afterwards.
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	if _, exists := r.services[def.ID]; exists {
		return fmt.Errorf("service already registered: %s", def.ID)
	}

	r.services[def.ID] = provider
	r.order = append(r.order, def.ID)
	return nil
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	provider, ok := r.services[serviceID]
	return provider, ok
}

// List returns all registered services in registration order
func (r *Registry) List(category *types.Category) []types.Service {
	services := make([]types.Service, 0, len(r.order))
	for _, id := range r.order {
		def := r.services[id].Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
	}
	return services
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	for _, id := range r.order {
		def := r.services[id].Definition()
		score := calculateRelevance(intentLower, def)
		if score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}
	return output
}

// Execute runs a service tool. The tool ID carries the service prefix, so
// routing needs no separate service parameter.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return failResult(workspace.CodeInvalidArgument, fmt.Sprintf("invalid tool ID format: %s", toolID)), nil
	}

	provider, ok := r.Get(parts[0])
	if !ok {
		return failResult(workspace.CodeNotFound, fmt.Sprintf("service not found: %s", parts[0])), nil
	}

	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var totalTools int
	categories := make(map[string]int)

	for _, id := range r.order {
		def := r.services[id].Definition()
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
	}

	return map[string]interface{}{
		"total_services": len(r.order),
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func calculateRelevance(intent string, service types.Service) float64 {
	score := 0.0

	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		if strings.Contains(intent, word) {
			score += 5.0
		}
	}

	for _, cap := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(cap), "_", " ")
		if strings.Contains(intent, capClean) {
			score += 3.0
		}
	}

	if strings.Contains(intent, string(service.Category)) {
		score += 2.0
	}

	return score
}

func failResult(code, message string) *types.Result {
	return &types.Result{Success: false, Code: code, Error: &message}
}
