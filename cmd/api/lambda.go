//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/agroflow/agroflow-api/docs"
	"github.com/agroflow/agroflow-api/internal/logger"
	"github.com/agroflow/agroflow-api/internal/server"
)

// @title           AgroFlow API
// @version         1.0
// @description     Billing and document API for farm management

// @host      localhost:8000
// @BasePath  /api/v1

// @securityDefinitions.apikey OrganizationID
// @in header
// @name X-Organization-ID

var ginLambda *ginadapter.GinLambda

func init() {
	r := gin.Default()
	server.InitializeHandlers()
	server.InitializeRoutes(r)
	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.Any("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
