package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/coneno/logger"
	"github.com/okteto/attendees-function/pkg/config"
	"github.com/okteto/attendees-function/pkg/db"
	"github.com/okteto/attendees-function/pkg/http/lambdaproxy"
)

func main() {
	conf := config.InitConfig()
	logger.SetLevel(conf.LogLevel)

	dbService := db.NewAttendeesDBService(conf.DBConfig)

	// no scrape endpoint inside Lambda
	lambda.Start(lambdaproxy.NewProxy(dbService, nil).HandleRequest)
}
