package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/hsinghweb/eag-v2-s2/internal/container"
	"github.com/hsinghweb/eag-v2-s2/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()
	mux := router.New(router.RouterConfig{
		SetupHandler:      c.SetupContainer.Handler,
		SettingHandler:    c.SettingContainer.Handler,
		CoursePlanHandler: c.CoursePlanContainer.Handler,
		BuzzwordHandler:   c.BuzzwordContainer.Handler,
		QuizHandler:       c.QuizContainer.Handler,
		ProgressHandler:   c.ProgressContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(mux)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	addr := ":" + c.Config.ServerPort
	logrus.Infof("Listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
