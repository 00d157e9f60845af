package home

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/cicd-demo-app/internal/platform/logging"
)

// Register wires the home route into the provided API.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-home",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Greet the caller",
		Tags:        []string{"Home"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "home get", zap.String("path", "/"))
	return &GetOutput{Body: Data{Message: Greeting}}, nil
}
